package parser

import (
	"strings"
)

// splitGroups returns the contents of the top-level parenthesized groups in
// text, in order, with the enclosing parentheses removed.
//
// "(0 0,1 1),(2 2,3 3)" yields ["0 0,1 1", "2 2,3 3"]. Commas inside a group
// never split it, and a group may itself contain nested groups, so
// "((0 0)),((1 1),(2 2))" yields ["(0 0)", "(1 1),(2 2)"].
//
// At least one group is required. Groups must be separated by a single comma
// and nothing but whitespace may appear outside them.
func splitGroups(text string) ([]string, error) {
	var groups []string
	depth := 0
	start := 0
	afterGroup := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '(':
			if depth == 0 {
				if afterGroup {
					return nil, structureError(text, "missing comma between parts")
				}
				start = i + 1
			}
			depth++
		case c == ')':
			depth--
			if depth < 0 {
				return nil, structureError(text, "unbalanced parentheses")
			}
			if depth == 0 {
				groups = append(groups, strings.TrimSpace(text[start:i]))
				afterGroup = true
			}
		case depth > 0:
			// inside a group
		case c == ',':
			if !afterGroup {
				return nil, structureError(text, "empty part")
			}
			afterGroup = false
		case !isSpace(c):
			return nil, structureError(text, "unexpected text outside parentheses")
		}
	}

	if depth != 0 {
		return nil, structureError(text, "unbalanced parentheses")
	}
	if len(groups) == 0 {
		return nil, structureError(text, "no parenthesized parts")
	}
	if !afterGroup {
		return nil, structureError(text, "trailing comma")
	}
	return groups, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
