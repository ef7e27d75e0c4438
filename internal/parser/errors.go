package parser

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrorKind classifies why a WKT literal could not be parsed.
type ErrorKind int

const (
	// InvalidWKT: the input does not have the TYPE(...) shape at all.
	InvalidWKT ErrorKind = iota + 1

	// UnsupportedGeometryType: the leading keyword is not one of the seven
	// supported geometry types.
	UnsupportedGeometryType

	// MalformedStructure: parentheses or part separators cannot be decomposed.
	MalformedStructure

	// MalformedCoordinate: a coordinate pair fails numeric parsing.
	MalformedCoordinate
)

// String returns the name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case InvalidWKT:
		return "InvalidWKT"
	case UnsupportedGeometryType:
		return "UnsupportedGeometryType"
	case MalformedStructure:
		return "MalformedStructure"
	case MalformedCoordinate:
		return "MalformedCoordinate"
	default:
		return "Unknown"
	}
}

// Sentinels for errors.Is matching against a *ParseError of the same kind.
var (
	ErrInvalidWKT              = errors.New("invalid WKT")
	ErrUnsupportedGeometryType = errors.New("unsupported geometry type")
	ErrMalformedStructure      = errors.New("malformed structure")
	ErrMalformedCoordinate     = errors.New("malformed coordinate")
)

// ParseError reports a failure to parse one WKT literal.
type ParseError struct {
	Kind ErrorKind

	// Keyword is set for UnsupportedGeometryType and, when known, for the other
	// kinds to name the geometry being parsed.
	Keyword string

	// Text is the offending fragment (a coordinate pair, a body, or the whole
	// literal), trimmed.
	Text string

	Reason string

	// Err is the underlying cause, e.g. a strconv error.
	Err error
}

func (e *ParseError) Error() string {
	var msg string
	switch e.Kind {
	case UnsupportedGeometryType:
		msg = fmt.Sprintf("unsupported geometry type %q", e.Keyword)
	case InvalidWKT:
		msg = "invalid WKT"
	case MalformedStructure:
		msg = "malformed structure"
	case MalformedCoordinate:
		msg = "malformed coordinate"
	default:
		msg = "parse error"
	}
	if e.Keyword != "" && e.Kind != UnsupportedGeometryType {
		msg = fmt.Sprintf("%s (%s)", msg, e.Keyword)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Text != "" {
		msg += fmt.Sprintf(" in %q", truncate(e.Text, 64))
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's kind.
func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrInvalidWKT:
		return e.Kind == InvalidWKT
	case ErrUnsupportedGeometryType:
		return e.Kind == UnsupportedGeometryType
	case ErrMalformedStructure:
		return e.Kind == MalformedStructure
	case ErrMalformedCoordinate:
		return e.Kind == MalformedCoordinate
	}
	return false
}

// KindOf returns the ErrorKind of the first *ParseError in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}

func structureError(text, reason string) *ParseError {
	return &ParseError{Kind: MalformedStructure, Text: text, Reason: reason}
}

func coordinateError(text, reason string, cause error) *ParseError {
	return &ParseError{Kind: MalformedCoordinate, Text: text, Reason: reason, Err: cause}
}

// ErrInvalidCoordinate indicates a coordinate outside WGS-84 bounds.
type ErrInvalidCoordinate struct {
	Lon, Lat float64
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid coordinate: lon=%g lat=%g (lon must be ±180, lat must be ±90)",
		e.Lon, e.Lat)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
