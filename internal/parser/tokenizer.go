package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// listSeparator splits "x1 y1, x2 y2" into pairs.
var listSeparator = regexp.MustCompile(`\s*,\s*`)

// decimalNumber is the WKT number syntax. strconv.ParseFloat alone would also
// accept hex floats, digit separators, NaN and Inf.
var decimalNumber = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?$`)

// parseCoordinate converts one "x y" pair into a Coordinate.
//
// Tokens are separated by whitespace or '+'. A '+' that directly follows an
// exponent marker belongs to the number ("1e+5"). Exactly two finite numbers
// are required; Z and M ordinates are not supported.
func parseCoordinate(text string) (Coordinate, error) {
	text = strings.TrimSpace(text)
	tokens := splitOrdinates(text)
	if len(tokens) < 2 {
		return Coordinate{}, coordinateError(text, "expected two numbers", nil)
	}
	if len(tokens) > 2 {
		return Coordinate{}, coordinateError(text, "only x and y ordinates are supported", nil)
	}

	x, err := parseOrdinate(text, tokens[0])
	if err != nil {
		return Coordinate{}, err
	}
	y, err := parseOrdinate(text, tokens[1])
	if err != nil {
		return Coordinate{}, err
	}
	return Coordinate{X: x, Y: y}, nil
}

func parseOrdinate(pair, token string) (float64, error) {
	if !decimalNumber.MatchString(token) {
		return 0, coordinateError(pair, "not a number: "+strconv.Quote(token), nil)
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		// Only range errors remain: the value overflows a float64.
		return 0, coordinateError(pair, "not a finite number: "+strconv.Quote(token), err)
	}
	return v, nil
}

// splitOrdinates splits a coordinate pair into numeric tokens.
func splitOrdinates(s string) []string {
	var tokens []string
	start := -1
	for i, r := range s {
		sep := unicode.IsSpace(r)
		if r == '+' {
			// "1e+5": keep the sign with the exponent.
			sep = !(start >= 0 && i > start && (s[i-1] == 'e' || s[i-1] == 'E'))
		}
		switch {
		case sep && start >= 0:
			tokens = append(tokens, s[start:i])
			start = -1
		case !sep && start < 0:
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, s[start:])
	}
	return tokens
}

// parseCoordinateList converts "x1 y1, x2 y2, ..." into a sequence of at least
// one coordinate.
func parseCoordinateList(text string) (CoordinateSequence, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, structureError(text, "empty coordinate list")
	}
	pairs := listSeparator.Split(text, -1)
	seq := make(CoordinateSequence, 0, len(pairs))
	for _, pair := range pairs {
		c, err := parseCoordinate(pair)
		if err != nil {
			return nil, err
		}
		seq = append(seq, c)
	}
	return seq, nil
}
