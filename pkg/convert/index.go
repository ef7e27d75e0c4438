package convert

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/beetlebugorg/wkt2geojson/pkg/wkt"
)

// FeatureIndex provides fast bounding-box queries over converted items.
//
// The index stores the envelope of each item in an R-tree. Queries are
// answered from the tree and then checked against the exact envelope, so a
// result always intersects the query bounds. Items without coordinates (an
// empty GEOMETRYCOLLECTION) are never returned.
//
// Example:
//
//	idx := convert.NewFeatureIndex(result.Items)
//	boston := wkt.Bounds{MinX: -71.2, MinY: 42.2, MaxX: -70.9, MaxY: 42.5}
//	for _, item := range idx.Query(boston) {
//	    fmt.Println(item.Line, item.Label)
//	}
type FeatureIndex struct {
	count  int
	rtree  *rtreego.Rtree // Spatial index for fast queries
	bounds wkt.Bounds
}

// indexedItem wraps an item for R-tree storage.
type indexedItem struct {
	order    int
	item     Item
	envelope wkt.Bounds
}

// Bounds implements rtreego.Spatial interface.
func (i *indexedItem) Bounds() rtreego.Rect {
	return toRect(i.envelope)
}

// epsilon pads zero-width envelopes (points, vertical and horizontal lines);
// the R-tree rejects rectangles with a zero side.
const epsilon = 0.0001

func toRect(b wkt.Bounds) rtreego.Rect {
	point := rtreego.Point{b.MinX, b.MinY}

	width := b.Width()
	if width < epsilon {
		width = epsilon
	}
	height := b.Height()
	if height < epsilon {
		height = epsilon
	}

	rect, _ := rtreego.NewRect(point, []float64{width, height})
	return rect
}

// NewFeatureIndex builds an index over items.
func NewFeatureIndex(items []Item) *FeatureIndex {
	// Create R-tree (2D, min=25 children, max=50 children)
	idx := &FeatureIndex{rtree: rtreego.NewTree(2, 25, 50)}

	for order, item := range items {
		envelope, ok := wkt.Envelope(item.Geometry)
		if !ok {
			continue
		}
		if idx.count == 0 {
			idx.bounds = envelope
		} else {
			idx.bounds = idx.bounds.Union(envelope)
		}

		idx.rtree.Insert(&indexedItem{order: order, item: item, envelope: envelope})
		idx.count++
	}

	return idx
}

// Query returns the items whose envelope intersects bounds, in input order.
// Touching edges count as intersecting.
func (idx *FeatureIndex) Query(bounds wkt.Bounds) []Item {
	// Pad the search rectangle so items touching its edges are candidates.
	spatials := idx.rtree.SearchIntersect(toRect(bounds.Expand(epsilon)))

	matches := make([]*indexedItem, 0, len(spatials))
	for _, spatial := range spatials {
		entry := spatial.(*indexedItem)
		if bounds.Intersects(entry.envelope) {
			matches = append(matches, entry)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].order < matches[j].order
	})

	result := make([]Item, len(matches))
	for i, entry := range matches {
		result[i] = entry.item
	}
	return result
}

// Count returns the number of indexed items.
func (idx *FeatureIndex) Count() int {
	return idx.count
}

// Bounds returns the union of all indexed envelopes. The second result is
// false for an empty index.
func (idx *FeatureIndex) Bounds() (wkt.Bounds, bool) {
	return idx.bounds, idx.count > 0
}
