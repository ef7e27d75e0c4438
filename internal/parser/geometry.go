package parser

// Kind identifies which of the seven WKT geometry types a node holds.
//
// The set is closed: every Geometry implementation reports exactly one Kind and
// the payload of each implementation is fixed by its Go type.
type Kind int

const (
	// KindPoint is a single coordinate.
	KindPoint Kind = iota

	// KindLineString is an ordered sequence of coordinates.
	KindLineString

	// KindPolygon is an ordered list of rings, outer ring first.
	KindPolygon

	// KindMultiPoint is an ordered sequence of point coordinates.
	KindMultiPoint

	// KindMultiLineString is an ordered list of lines.
	KindMultiLineString

	// KindMultiPolygon is an ordered list of polygons.
	KindMultiPolygon

	// KindGeometryCollection is an ordered list of arbitrary geometries.
	KindGeometryCollection
)

// String returns the GeoJSON type name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindLineString:
		return "LineString"
	case KindPolygon:
		return "Polygon"
	case KindMultiPoint:
		return "MultiPoint"
	case KindMultiLineString:
		return "MultiLineString"
	case KindMultiPolygon:
		return "MultiPolygon"
	case KindGeometryCollection:
		return "GeometryCollection"
	default:
		return "Unknown"
	}
}

// Keyword returns the upper-case WKT keyword of the kind.
func (k Kind) Keyword() string {
	switch k {
	case KindPoint:
		return "POINT"
	case KindLineString:
		return "LINESTRING"
	case KindPolygon:
		return "POLYGON"
	case KindMultiPoint:
		return "MULTIPOINT"
	case KindMultiLineString:
		return "MULTILINESTRING"
	case KindMultiPolygon:
		return "MULTIPOLYGON"
	case KindGeometryCollection:
		return "GEOMETRYCOLLECTION"
	default:
		return ""
	}
}

// Coordinate is an (x, y) pair. For geographic data x is longitude and y is
// latitude, matching the GeoJSON [lon, lat] order.
type Coordinate struct {
	X, Y float64
}

// CoordinateSequence is a line or a ring.
type CoordinateSequence []Coordinate

// Geometry is a parsed WKT geometry.
//
// Implementations are Point, LineString, Polygon, MultiPoint, MultiLineString,
// MultiPolygon and GeometryCollection. The interface is sealed so callers can
// switch over those seven types exhaustively.
type Geometry interface {
	Kind() Kind
	sealed()
}

// Point holds a single coordinate.
type Point struct {
	Coord Coordinate
}

// LineString holds one coordinate sequence.
type LineString struct {
	Coords CoordinateSequence
}

// Polygon holds its rings; Rings[0] is the exterior ring.
// Ring closure and winding order are not checked.
type Polygon struct {
	Rings []CoordinateSequence
}

// MultiPoint holds its points as a flat coordinate sequence.
type MultiPoint struct {
	Points CoordinateSequence
}

// MultiLineString holds its member lines.
type MultiLineString struct {
	Lines []CoordinateSequence
}

// MultiPolygon holds its member polygons, each a list of rings.
type MultiPolygon struct {
	Polygons [][]CoordinateSequence
}

// GeometryCollection owns its child geometries. Children may themselves be
// collections.
type GeometryCollection struct {
	Geometries []Geometry
}

func (*Point) Kind() Kind              { return KindPoint }
func (*LineString) Kind() Kind         { return KindLineString }
func (*Polygon) Kind() Kind            { return KindPolygon }
func (*MultiPoint) Kind() Kind         { return KindMultiPoint }
func (*MultiLineString) Kind() Kind    { return KindMultiLineString }
func (*MultiPolygon) Kind() Kind       { return KindMultiPolygon }
func (*GeometryCollection) Kind() Kind { return KindGeometryCollection }

func (*Point) sealed()              {}
func (*LineString) sealed()         {}
func (*Polygon) sealed()            {}
func (*MultiPoint) sealed()         {}
func (*MultiLineString) sealed()    {}
func (*MultiPolygon) sealed()       {}
func (*GeometryCollection) sealed() {}

// Walk calls fn for every coordinate of g in document order.
// Collections are traversed depth-first.
func Walk(g Geometry, fn func(Coordinate)) {
	switch g := g.(type) {
	case *Point:
		fn(g.Coord)
	case *LineString:
		walkSequence(g.Coords, fn)
	case *Polygon:
		for _, ring := range g.Rings {
			walkSequence(ring, fn)
		}
	case *MultiPoint:
		walkSequence(g.Points, fn)
	case *MultiLineString:
		for _, line := range g.Lines {
			walkSequence(line, fn)
		}
	case *MultiPolygon:
		for _, poly := range g.Polygons {
			for _, ring := range poly {
				walkSequence(ring, fn)
			}
		}
	case *GeometryCollection:
		for _, child := range g.Geometries {
			Walk(child, fn)
		}
	}
}

// Leaves returns the non-collection geometries of g in document order.
// Nested collections are expanded; an empty collection contributes nothing.
func Leaves(g Geometry) []Geometry {
	gc, ok := g.(*GeometryCollection)
	if !ok {
		if g == nil {
			return nil
		}
		return []Geometry{g}
	}
	var leaves []Geometry
	for _, child := range gc.Geometries {
		leaves = append(leaves, Leaves(child)...)
	}
	return leaves
}

func walkSequence(seq CoordinateSequence, fn func(Coordinate)) {
	for _, c := range seq {
		fn(c)
	}
}
