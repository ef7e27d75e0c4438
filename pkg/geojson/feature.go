package geojson

import (
	"encoding/json"
	"io"

	geomjson "github.com/twpayne/go-geom/encoding/geojson"

	"github.com/beetlebugorg/wkt2geojson/pkg/wkb"
	"github.com/beetlebugorg/wkt2geojson/pkg/wkt"
)

// NameProperty is the Feature property holding a literal's label.
const NameProperty = "Name"

// Feature is a GeoJSON Feature.
type Feature = geomjson.Feature

// NewFeature wraps a geometry in a Feature named label.
func NewFeature(g wkt.Geometry, label string) (*Feature, error) {
	t, err := wkb.ToGeom(g)
	if err != nil {
		return nil, err
	}
	return &Feature{
		Geometry:   t,
		Properties: map[string]interface{}{NameProperty: label},
	}, nil
}

// NewFeatures returns the Features for one parsed literal.
//
// Without flatten the result is always a single Feature. With flatten a
// GeometryCollection is replaced by one Feature per leaf geometry, in
// document order and all sharing label; nested collections are flattened
// too, so an empty collection yields no Features.
func NewFeatures(g wkt.Geometry, label string, flatten bool) ([]*Feature, error) {
	geometries := []wkt.Geometry{g}
	if flatten {
		geometries = wkt.Leaves(g)
	}

	features := make([]*Feature, 0, len(geometries))
	for _, leaf := range geometries {
		f, err := NewFeature(leaf, label)
		if err != nil {
			return nil, err
		}
		features = append(features, f)
	}
	return features, nil
}

// FeatureCollection is a GeoJSON FeatureCollection.
type FeatureCollection struct {
	geomjson.FeatureCollection
}

// NewFeatureCollection returns a FeatureCollection holding features. A nil
// slice is written as an empty array.
func NewFeatureCollection(features []*Feature) *FeatureCollection {
	return &FeatureCollection{geomjson.FeatureCollection{Features: features}}
}

// Encode writes fc as JSON followed by a newline. With pretty set the output
// is indented by two spaces.
func (fc *FeatureCollection) Encode(w io.Writer, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(&fc.FeatureCollection)
}
