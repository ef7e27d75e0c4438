package testutil

import (
	"fmt"
	"strings"
)

// Literals holds one canonical literal of every geometry kind.
var Literals = map[string]string{
	"Point":              "POINT(30 10)",
	"LineString":         "LINESTRING(30 10,10 30,40 40)",
	"Polygon":            "POLYGON((35 10,45 45,15 40,10 20,35 10),(20 30,35 35,30 20,20 30))",
	"MultiPoint":         "MULTIPOINT((10 40),(40 30),(20 20),(30 10))",
	"MultiLineString":    "MULTILINESTRING((10 10,20 20,10 40),(40 40,30 30,40 20,30 10))",
	"MultiPolygon":       "MULTIPOLYGON(((0 0,4 0,4 4,0 4,0 0)),((1 1,2 1,2 2,1 2,1 1)))",
	"GeometryCollection": "GEOMETRYCOLLECTION(POLYGON((0 0,1 1,1 0,0 0)),POINT(4 6))",
}

// GridPoints returns n POINT literals, one per line, laid out on a 10-wide
// grid with unit spacing starting at (0, 0).
func GridPoints(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "POINT(%d %d)\n", i%10, i/10)
	}
	return b.String()
}
