package wkt

// Bounds is an axis-aligned bounding box in the coordinate space of the
// parsed geometries. For GeoJSON data X is longitude and Y is latitude.
type Bounds struct {
	MinX float64 // Western edge
	MinY float64 // Southern edge
	MaxX float64 // Eastern edge
	MaxY float64 // Northern edge
}

// Contains returns true if the point (x, y) is within the bounds.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX &&
		y >= b.MinY && y <= b.MaxY
}

// Intersects returns true if the given bounds intersects with this bounds.
// Touching edges count as intersecting.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.MaxX < b.MinX ||
		other.MinX > b.MaxX ||
		other.MaxY < b.MinY ||
		other.MinY > b.MaxY)
}

// Expand returns a new Bounds expanded by the given margin in all directions.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		MinX: b.MinX - margin,
		MinY: b.MinY - margin,
		MaxX: b.MaxX + margin,
		MaxY: b.MaxY + margin,
	}
}

// Union returns the smallest Bounds containing both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		MinX: min(b.MinX, other.MinX),
		MinY: min(b.MinY, other.MinY),
		MaxX: max(b.MaxX, other.MaxX),
		MaxY: max(b.MaxY, other.MaxY),
	}
}

// Width returns the X extent of the bounds.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the Y extent of the bounds.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Envelope calculates the bounding box of every coordinate in g.
//
// The second result is false when g has no coordinates, which only happens
// for an empty GEOMETRYCOLLECTION (or one holding only empty collections).
func Envelope(g Geometry) (Bounds, bool) {
	var bounds Bounds
	found := false

	Walk(g, func(c Coordinate) {
		if !found {
			// Initialize with first coordinate
			bounds = Bounds{MinX: c.X, MinY: c.Y, MaxX: c.X, MaxY: c.Y}
			found = true
			return
		}
		if c.X < bounds.MinX {
			bounds.MinX = c.X
		}
		if c.X > bounds.MaxX {
			bounds.MaxX = c.X
		}
		if c.Y < bounds.MinY {
			bounds.MinY = c.Y
		}
		if c.Y > bounds.MaxY {
			bounds.MaxY = c.Y
		}
	})

	return bounds, found
}
