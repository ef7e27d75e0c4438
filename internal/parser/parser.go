package parser

import (
	"regexp"
	"sort"
	"strings"
)

// Parser parses WKT geometry literals.
//
// A literal has the form "<TYPE> ( <body> )" where TYPE is one of POINT,
// LINESTRING, POLYGON, MULTIPOINT, MULTILINESTRING, MULTIPOLYGON or
// GEOMETRYCOLLECTION (case-insensitive). Parsing is all-or-nothing: either a
// complete Geometry is returned or a *ParseError describing the first problem.
//
// Implementations hold no mutable state and are safe for concurrent use.
type Parser interface {
	// Parse parses one literal with default options.
	Parse(wkt string) (Geometry, error)

	// ParseWithOptions parses one literal with custom options.
	ParseWithOptions(wkt string, opts ParseOptions) (Geometry, error)
}

// ParseOptions configures parsing behavior
type ParseOptions struct {
	// ValidateRange: if true, every coordinate must be a WGS-84 lon/lat pair
	// (lon within ±180, lat within ±90).
	// Default: false
	ValidateRange bool

	// MaxDepth limits GEOMETRYCOLLECTION nesting. 0 means no limit.
	MaxDepth int
}

// DefaultParseOptions returns parse options with defaults
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		ValidateRange: false,
		MaxDepth:      0,
	}
}

// defaultParser implements the Parser interface
type defaultParser struct {
}

// NewParser creates a new WKT parser
func NewParser() Parser {
	return &defaultParser{}
}

// Parse parses one literal with default options.
func (p *defaultParser) Parse(wkt string) (Geometry, error) {
	return p.ParseWithOptions(wkt, DefaultParseOptions())
}

// ParseWithOptions parses one literal with custom options.
func (p *defaultParser) ParseWithOptions(wkt string, opts ParseOptions) (Geometry, error) {
	return ParseWithOptions(wkt, opts)
}

// Parse parses a single WKT literal with default options.
func Parse(wkt string) (Geometry, error) {
	return ParseWithOptions(wkt, DefaultParseOptions())
}

// ParseWithOptions parses a single WKT literal.
func ParseWithOptions(wkt string, opts ParseOptions) (Geometry, error) {
	d := dispatcher{opts: opts, text: wkt, parens: indexParens(wkt)}
	g, err := d.parse(0, len(wkt), 0)
	if err != nil {
		return nil, err
	}
	if opts.ValidateRange {
		if err := ValidateGeometry(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// taggedText matches the keyword and opening parenthesis of a literal.
var taggedText = regexp.MustCompile(`^\s*([A-Za-z]+)\s*\(`)

// keywords maps upper-case WKT keywords to kinds. Read-only after init.
var keywords = map[string]Kind{
	"POINT":              KindPoint,
	"LINESTRING":         KindLineString,
	"POLYGON":            KindPolygon,
	"MULTIPOINT":         KindMultiPoint,
	"MULTILINESTRING":    KindMultiLineString,
	"MULTIPOLYGON":       KindMultiPolygon,
	"GEOMETRYCOLLECTION": KindGeometryCollection,
}

// LookupKind returns the kind for a WKT keyword, ignoring case.
func LookupKind(keyword string) (Kind, bool) {
	k, ok := keywords[strings.ToUpper(keyword)]
	return k, ok
}

// dispatcher recognizes the type keyword of a literal and routes its body to
// the assembler for that kind.
//
// Nested literals are addressed by offsets into text, and parens is built once
// per top-level literal, so every level of a nested collection only looks at
// its own characters.
type dispatcher struct {
	opts   ParseOptions
	text   string
	parens parenIndex
}

// parse parses the literal d.text[lo:hi].
func (d *dispatcher) parse(lo, hi, depth int) (Geometry, error) {
	text := d.text[lo:hi]
	m := taggedText.FindStringSubmatchIndex(text)
	if m == nil {
		return nil, &ParseError{
			Kind:   InvalidWKT,
			Text:   strings.TrimSpace(text),
			Reason: "expected TYPE(...)",
		}
	}

	keyword := strings.ToUpper(text[m[2]:m[3]])
	kind, ok := keywords[keyword]
	if !ok {
		return nil, &ParseError{Kind: UnsupportedGeometryType, Keyword: keyword}
	}

	open := lo + m[1] - 1
	closing := d.parens.closing(open)
	if closing < 0 || closing >= hi {
		return nil, &ParseError{
			Kind:    MalformedStructure,
			Keyword: keyword,
			Text:    strings.TrimSpace(text),
			Reason:  "unbalanced parentheses",
		}
	}
	if rest := strings.TrimSpace(d.text[closing+1 : hi]); rest != "" {
		return nil, &ParseError{
			Kind:    MalformedStructure,
			Keyword: keyword,
			Text:    rest,
			Reason:  "unexpected text after geometry",
		}
	}

	g, err := d.assemble(kind, open+1, closing, depth)
	if err != nil {
		if pe, ok := err.(*ParseError); ok && pe.Keyword == "" {
			pe.Keyword = keyword
		}
		return nil, err
	}
	return g, nil
}

// parenIndex maps the position of every '(' in a literal to the position of
// its matching ')'.
type parenIndex struct {
	opens  []int
	closes []int // -1 when the text ends first
}

func indexParens(text string) parenIndex {
	var idx parenIndex
	var stack []int
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			stack = append(stack, len(idx.opens))
			idx.opens = append(idx.opens, i)
			idx.closes = append(idx.closes, -1)
		case ')':
			if n := len(stack); n > 0 {
				idx.closes[stack[n-1]] = i
				stack = stack[:n-1]
			}
		}
	}
	return idx
}

// closing returns the index of the parenthesis closing the one at open, or -1
// if the text ends first.
func (idx parenIndex) closing(open int) int {
	i := sort.SearchInts(idx.opens, open)
	if i < len(idx.opens) && idx.opens[i] == open {
		return idx.closes[i]
	}
	return -1
}
