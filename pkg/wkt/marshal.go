package wkt

import (
	"strconv"
	"strings"

	"github.com/beetlebugorg/wkt2geojson/internal/parser"
)

// Marshal returns the canonical WKT text of g.
//
// The output uses upper-case keywords, no whitespace around delimiters, the
// parenthesized MULTIPOINT form and the shortest float formatting that
// round-trips, so Parse(Marshal(g)) yields a geometry equal to g. An empty
// collection is written as GEOMETRYCOLLECTION().
func Marshal(g Geometry) string {
	var b strings.Builder
	writeGeometry(&b, g)
	return b.String()
}

func writeGeometry(b *strings.Builder, g Geometry) {
	if g == nil {
		return
	}
	b.WriteString(g.Kind().Keyword())
	b.WriteByte('(')

	switch g := g.(type) {
	case *parser.Point:
		writeCoordinate(b, g.Coord)
	case *parser.LineString:
		writeSequence(b, g.Coords)
	case *parser.Polygon:
		writeRings(b, g.Rings)
	case *parser.MultiPoint:
		for i, c := range g.Points {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('(')
			writeCoordinate(b, c)
			b.WriteByte(')')
		}
	case *parser.MultiLineString:
		writeRings(b, g.Lines)
	case *parser.MultiPolygon:
		for i, rings := range g.Polygons {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('(')
			writeRings(b, rings)
			b.WriteByte(')')
		}
	case *parser.GeometryCollection:
		for i, child := range g.Geometries {
			if i > 0 {
				b.WriteByte(',')
			}
			writeGeometry(b, child)
		}
	}

	b.WriteByte(')')
}

func writeRings(b *strings.Builder, rings []CoordinateSequence) {
	for i, ring := range rings {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('(')
		writeSequence(b, ring)
		b.WriteByte(')')
	}
}

func writeSequence(b *strings.Builder, seq CoordinateSequence) {
	for i, c := range seq {
		if i > 0 {
			b.WriteByte(',')
		}
		writeCoordinate(b, c)
	}
}

func writeCoordinate(b *strings.Builder, c Coordinate) {
	b.WriteString(strconv.FormatFloat(c.X, 'g', -1, 64))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(c.Y, 'g', -1, 64))
}
