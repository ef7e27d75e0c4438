package wkt

import (
	"github.com/beetlebugorg/wkt2geojson/internal/parser"
)

// Geometry is a parsed WKT geometry. It is implemented by exactly the seven
// concrete types below.
type Geometry = parser.Geometry

// Kind identifies a geometry type.
type Kind = parser.Kind

// Coordinate is an x/y position.
type Coordinate = parser.Coordinate

// CoordinateSequence is an ordered list of coordinates.
type CoordinateSequence = parser.CoordinateSequence

// Concrete geometry types.
type (
	Point              = parser.Point
	LineString         = parser.LineString
	Polygon            = parser.Polygon
	MultiPoint         = parser.MultiPoint
	MultiLineString    = parser.MultiLineString
	MultiPolygon       = parser.MultiPolygon
	GeometryCollection = parser.GeometryCollection
)

const (
	KindPoint              = parser.KindPoint
	KindLineString         = parser.KindLineString
	KindPolygon            = parser.KindPolygon
	KindMultiPoint         = parser.KindMultiPoint
	KindMultiLineString    = parser.KindMultiLineString
	KindMultiPolygon       = parser.KindMultiPolygon
	KindGeometryCollection = parser.KindGeometryCollection
)

// ParseError describes why a literal could not be parsed.
type ParseError = parser.ParseError

// ErrorKind classifies a ParseError.
type ErrorKind = parser.ErrorKind

// ErrInvalidCoordinate is returned when ValidateRange is set and a coordinate
// is outside WGS-84 bounds.
type ErrInvalidCoordinate = parser.ErrInvalidCoordinate

const (
	InvalidWKT              = parser.InvalidWKT
	UnsupportedGeometryType = parser.UnsupportedGeometryType
	MalformedStructure      = parser.MalformedStructure
	MalformedCoordinate     = parser.MalformedCoordinate
)

// Sentinel errors matched by errors.Is against a *ParseError of the same kind.
var (
	ErrInvalidWKT              = parser.ErrInvalidWKT
	ErrUnsupportedGeometryType = parser.ErrUnsupportedGeometryType
	ErrMalformedStructure      = parser.ErrMalformedStructure
	ErrMalformedCoordinate     = parser.ErrMalformedCoordinate
)

// Parser parses WKT literals.
type Parser = parser.Parser

// ParseOptions configures parsing.
type ParseOptions = parser.ParseOptions

// NewParser returns a Parser. It is safe for concurrent use.
func NewParser() Parser {
	return parser.NewParser()
}

// DefaultParseOptions returns the options used by Parse.
func DefaultParseOptions() ParseOptions {
	return parser.DefaultParseOptions()
}

// Parse parses one WKT literal.
func Parse(text string) (Geometry, error) {
	return parser.Parse(text)
}

// ParseWithOptions parses one WKT literal with custom options.
func ParseWithOptions(text string, opts ParseOptions) (Geometry, error) {
	return parser.ParseWithOptions(text, opts)
}

// KindOf returns the ErrorKind of the first *ParseError in err's chain, or 0.
func KindOf(err error) ErrorKind {
	return parser.KindOf(err)
}

// Walk calls fn for every coordinate of g in document order.
func Walk(g Geometry, fn func(Coordinate)) {
	parser.Walk(g, fn)
}

// Leaves returns the non-collection geometries of g in document order,
// expanding nested collections.
func Leaves(g Geometry) []Geometry {
	return parser.Leaves(g)
}
