// Package wkt parses Well-Known Text geometry literals.
//
// It supports the seven 2D geometry types of the WKT grammar: POINT,
// LINESTRING, POLYGON, MULTIPOINT, MULTILINESTRING, MULTIPOLYGON and
// GEOMETRYCOLLECTION. Collections may nest to any depth.
//
// # Basic Usage
//
//	g, err := wkt.Parse("POLYGON((0 0, 4 0, 4 4, 0 4, 0 0))")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(g.Kind()) // Polygon
//
// The result is one of the concrete geometry types. Use a type switch to
// access its coordinates:
//
//	switch g := g.(type) {
//	case *wkt.Point:
//	    fmt.Println(g.Coord.X, g.Coord.Y)
//	case *wkt.Polygon:
//	    fmt.Println(len(g.Rings), "rings")
//	case *wkt.GeometryCollection:
//	    for _, child := range g.Geometries {
//	        // ...
//	    }
//	}
//
// # Error Handling
//
// Every failure is a *ParseError. Its Kind tells what went wrong, and it
// matches one of the sentinel errors with errors.Is:
//
//	_, err := wkt.Parse("FOO(1 2)")
//	if errors.Is(err, wkt.ErrUnsupportedGeometryType) {
//	    var pe *wkt.ParseError
//	    errors.As(err, &pe)
//	    fmt.Println("unsupported:", pe.Keyword) // FOO
//	}
//
// Parsing is all-or-nothing. No partial geometry is returned for a literal
// that fails.
//
// # Coordinate Ranges
//
// By default coordinates are not range checked. Set ValidateRange to require
// WGS-84 longitude/latitude pairs:
//
//	g, err := wkt.ParseWithOptions(text, wkt.ParseOptions{ValidateRange: true})
//
// # Thread Safety
//
// Parse, Marshal and Envelope hold no state and may be called concurrently.
package wkt
