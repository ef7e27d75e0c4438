package parser

import (
	"strings"
)

// span is a half-open byte range of the literal being parsed.
type span struct {
	lo, hi int
}

// decompose splits the body d.text[lo:hi] of a GEOMETRYCOLLECTION into the
// spans of its member literals.
//
// The body is scanned once at depth 0: a parenthesized group is stepped over
// using the paren index, so commas and keywords inside a member are never
// considered. A word starts a new member when it is the first word of the
// body, a known geometry keyword, or directly follows a separating comma (so
// an unsupported member is reported by keyword rather than swallowed by its
// predecessor).
//
// Members are separated by exactly one comma. Text before the first member,
// an empty member or a trailing comma is MalformedStructure. An empty body
// yields no members.
func (d *dispatcher) decompose(lo, hi int) ([]span, error) {
	body := d.text[lo:hi]
	var members []span
	start := -1
	var prev byte // last non-space byte seen at depth 0

	for i := lo; i < hi; {
		c := d.text[i]
		switch {
		case c == '(':
			closing := d.parens.closing(i)
			if closing < 0 || closing >= hi {
				return nil, structureError(body, "unbalanced parentheses")
			}
			i = closing + 1
			prev = ')'
			continue
		case c == ')':
			return nil, structureError(body, "unbalanced parentheses")
		case isLetter(c) && (i == lo || !isLetter(d.text[i-1])):
			n := wordLength(d.text[i:hi])
			_, known := keywords[strings.ToUpper(d.text[i:i+n])]
			if start < 0 || known || prev == ',' {
				if start >= 0 {
					m, err := d.closeMember(start, i)
					if err != nil {
						return nil, err
					}
					members = append(members, m)
				} else if lead := strings.TrimSpace(d.text[lo:i]); lead != "" {
					return nil, leadingError(lead)
				}
				start = i
			}
			prev = c
			i += n
			continue
		}
		if !isSpace(c) {
			prev = c
		}
		i++
	}

	if start < 0 {
		if lead := strings.TrimSpace(body); lead != "" {
			return nil, leadingError(lead)
		}
		return nil, nil
	}
	if prev == ',' {
		return nil, structureError(body, "trailing comma")
	}
	return append(members, span{start, trimRight(d.text, start, hi)}), nil
}

// closeMember returns the member starting at start once the next member
// begins at next. Exactly one comma must separate the two.
func (d *dispatcher) closeMember(start, next int) (span, error) {
	end := trimRight(d.text, start, next)
	if end == start || d.text[end-1] != ',' {
		return span{}, structureError(d.text[start:next], "missing comma between geometries")
	}
	end = trimRight(d.text, start, end-1)
	if end > start && d.text[end-1] == ',' {
		return span{}, structureError(d.text[start:next], "empty member")
	}
	return span{start, end}, nil
}

// leadingError reports text found before the first member of a collection.
func leadingError(lead string) *ParseError {
	if strings.Trim(lead, ", \t\n\r\v\f") == "" {
		return structureError(lead, "empty member")
	}
	return structureError(lead, "unexpected text before first geometry")
}

// trimRight returns end moved back over whitespace, stopping at start.
func trimRight(s string, start, end int) int {
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return end
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func wordLength(s string) int {
	n := 0
	for n < len(s) && isLetter(s[n]) {
		n++
	}
	return n
}
