// Package geojson converts parsed WKT geometries into RFC 7946 GeoJSON
// geometry objects, Features and FeatureCollections.
//
// Encoding is done by go-geom's GeoJSON encoder. Positions are always
// two-element [x, y] arrays in input order, and a GeometryCollection is
// written with a "geometries" array, empty rather than null.
package geojson

import (
	"github.com/cockroachdb/errors"
	geomjson "github.com/twpayne/go-geom/encoding/geojson"

	"github.com/beetlebugorg/wkt2geojson/pkg/wkb"
	"github.com/beetlebugorg/wkt2geojson/pkg/wkt"
)

// Geometry is a GeoJSON geometry object.
type Geometry = geomjson.Geometry

// FromGeometry converts a parsed geometry into its GeoJSON form. Every
// geometry produced by the parser converts; only nil is rejected.
func FromGeometry(g wkt.Geometry) (*Geometry, error) {
	t, err := wkb.ToGeom(g)
	if err != nil {
		return nil, err
	}
	out, err := geomjson.Encode(t)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s", g.Kind())
	}
	return out, nil
}

// Marshal returns the GeoJSON text of g.
func Marshal(g wkt.Geometry) ([]byte, error) {
	t, err := wkb.ToGeom(g)
	if err != nil {
		return nil, err
	}
	data, err := geomjson.Marshal(t)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s", g.Kind())
	}
	return data, nil
}
