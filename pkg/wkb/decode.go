package wkb

import (
	"github.com/cockroachdb/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkbhex"

	"github.com/beetlebugorg/wkt2geojson/pkg/wkt"
)

// ErrUnsupportedLayout is returned by FromGeom for geometries with Z or M
// ordinates.
var ErrUnsupportedLayout = errors.New("only XY geometries are supported")

// FromGeom converts a go-geom value back into a parsed geometry.
//
// Only XY geometries are accepted. Empty geometries other than collections
// have no WKT form here and are rejected.
func FromGeom(t geom.T) (wkt.Geometry, error) {
	if t == nil {
		return nil, errors.New("geometry is nil")
	}
	if gc, ok := t.(*geom.GeometryCollection); ok {
		out := &wkt.GeometryCollection{Geometries: make([]wkt.Geometry, 0, gc.NumGeoms())}
		for i, child := range gc.Geoms() {
			g, err := FromGeom(child)
			if err != nil {
				return nil, errors.Wrapf(err, "collection member %d", i+1)
			}
			out.Geometries = append(out.Geometries, g)
		}
		return out, nil
	}

	if t.Layout() != geom.XY {
		return nil, errors.Wrapf(ErrUnsupportedLayout, "layout %s", t.Layout())
	}
	if t.Empty() {
		return nil, errors.Newf("empty %T", t)
	}

	switch t := t.(type) {
	case *geom.Point:
		return &wkt.Point{Coord: fromCoord(t.Coords())}, nil
	case *geom.LineString:
		return &wkt.LineString{Coords: fromCoords(t.Coords())}, nil
	case *geom.Polygon:
		return &wkt.Polygon{Rings: fromCoords2(t.Coords())}, nil
	case *geom.MultiPoint:
		return &wkt.MultiPoint{Points: fromCoords(t.Coords())}, nil
	case *geom.MultiLineString:
		return &wkt.MultiLineString{Lines: fromCoords2(t.Coords())}, nil
	case *geom.MultiPolygon:
		src := t.Coords()
		polys := make([][]wkt.CoordinateSequence, len(src))
		for i, p := range src {
			polys[i] = fromCoords2(p)
		}
		return &wkt.MultiPolygon{Polygons: polys}, nil
	default:
		return nil, errors.Newf("unsupported geometry %T", t)
	}
}

// DecodeHex parses hex-encoded WKB into a geometry.
func DecodeHex(s string) (wkt.Geometry, error) {
	t, err := wkbhex.Decode(s)
	if err != nil {
		return nil, errors.Wrap(err, "decode wkb")
	}
	return FromGeom(t)
}

func fromCoord(c geom.Coord) wkt.Coordinate {
	return wkt.Coordinate{X: c.X(), Y: c.Y()}
}

func fromCoords(src []geom.Coord) wkt.CoordinateSequence {
	out := make(wkt.CoordinateSequence, len(src))
	for i, c := range src {
		out[i] = fromCoord(c)
	}
	return out
}

func fromCoords2(src [][]geom.Coord) []wkt.CoordinateSequence {
	out := make([]wkt.CoordinateSequence, len(src))
	for i, seq := range src {
		out[i] = fromCoords(seq)
	}
	return out
}
