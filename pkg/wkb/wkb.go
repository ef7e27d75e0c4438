// Package wkb bridges parsed WKT geometries to the go-geom geometry model,
// giving access to its Well-Known Binary encoders.
package wkb

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkbhex"

	"github.com/beetlebugorg/wkt2geojson/pkg/wkt"
)

// DefaultByteOrder is the byte order used by EncodeHex.
var DefaultByteOrder binary.ByteOrder = binary.LittleEndian

// ToGeom converts a parsed geometry into the equivalent go-geom value. All
// coordinates use the XY layout.
func ToGeom(g wkt.Geometry) (geom.T, error) {
	switch g := g.(type) {
	case *wkt.Point:
		return geom.NewPoint(geom.XY).SetCoords(coord(g.Coord))
	case *wkt.LineString:
		return geom.NewLineString(geom.XY).SetCoords(coords(g.Coords))
	case *wkt.Polygon:
		return geom.NewPolygon(geom.XY).SetCoords(coords2(g.Rings))
	case *wkt.MultiPoint:
		return geom.NewMultiPoint(geom.XY).SetCoords(coords(g.Points))
	case *wkt.MultiLineString:
		return geom.NewMultiLineString(geom.XY).SetCoords(coords2(g.Lines))
	case *wkt.MultiPolygon:
		polys := make([][][]geom.Coord, len(g.Polygons))
		for i, p := range g.Polygons {
			polys[i] = coords2(p)
		}
		return geom.NewMultiPolygon(geom.XY).SetCoords(polys)
	case *wkt.GeometryCollection:
		gc := geom.NewGeometryCollection()
		for i, child := range g.Geometries {
			t, err := ToGeom(child)
			if err != nil {
				return nil, errors.Wrapf(err, "collection member %d", i+1)
			}
			if err := gc.Push(t); err != nil {
				return nil, errors.Wrapf(err, "collection member %d", i+1)
			}
		}
		return gc, nil
	case nil:
		return nil, errors.New("geometry is nil")
	default:
		return nil, errors.Newf("unsupported geometry %T", g)
	}
}

// EncodeHex returns the hex-encoded WKB of g in DefaultByteOrder.
func EncodeHex(g wkt.Geometry) (string, error) {
	t, err := ToGeom(g)
	if err != nil {
		return "", err
	}
	s, err := wkbhex.Encode(t, DefaultByteOrder)
	if err != nil {
		return "", errors.Wrapf(err, "encode %s", g.Kind())
	}
	return s, nil
}

func coord(c wkt.Coordinate) geom.Coord {
	return geom.Coord{c.X, c.Y}
}

func coords(seq wkt.CoordinateSequence) []geom.Coord {
	out := make([]geom.Coord, len(seq))
	for i, c := range seq {
		out[i] = coord(c)
	}
	return out
}

func coords2(seqs []wkt.CoordinateSequence) [][]geom.Coord {
	out := make([][]geom.Coord, len(seqs))
	for i, seq := range seqs {
		out[i] = coords(seq)
	}
	return out
}
