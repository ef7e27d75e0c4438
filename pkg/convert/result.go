package convert

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/beetlebugorg/wkt2geojson/pkg/geojson"
	"github.com/beetlebugorg/wkt2geojson/pkg/wkt"
)

// Item is one successfully parsed input line.
type Item struct {
	Line     int
	Label    string
	Geometry wkt.Geometry
}

// LineError records why an input line could not be converted.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Result holds the outcome of a batch conversion.
type Result struct {
	// Items are the parsed lines in input order.
	Items []Item

	// Errors are the failed lines in input order. Only populated when
	// SkipErrors is set.
	Errors []*LineError

	flatten bool
}

// Features returns one or more Features per item, in input order.
func (r *Result) Features() ([]*geojson.Feature, error) {
	features := make([]*geojson.Feature, 0, len(r.Items))
	for _, item := range r.Items {
		fs, err := geojson.NewFeatures(item.Geometry, item.Label, r.flatten)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", item.Line)
		}
		features = append(features, fs...)
	}
	return features, nil
}

// FeatureCollection wraps Features in a FeatureCollection.
func (r *Result) FeatureCollection() (*geojson.FeatureCollection, error) {
	features, err := r.Features()
	if err != nil {
		return nil, err
	}
	return geojson.NewFeatureCollection(features), nil
}

// Filter returns a Result holding only the items whose envelope intersects
// bounds. Errors are carried over unchanged.
//
// When the result is flattened each leaf of a collection is tested on its
// own, so only the leaves inside bounds become Features.
func (r *Result) Filter(bounds wkt.Bounds) *Result {
	items := r.Items
	if r.flatten {
		items = leafItems(r.Items)
	}
	return &Result{
		Items:   NewFeatureIndex(items).Query(bounds),
		Errors:  r.Errors,
		flatten: r.flatten,
	}
}

// leafItems splits every collection item into one item per leaf geometry,
// keeping line and label.
func leafItems(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if _, ok := item.Geometry.(*wkt.GeometryCollection); !ok {
			out = append(out, item)
			continue
		}
		for _, leaf := range wkt.Leaves(item.Geometry) {
			out = append(out, Item{Line: item.Line, Label: item.Label, Geometry: leaf})
		}
	}
	return out
}
