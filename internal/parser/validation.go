package parser

import (
	"github.com/cockroachdb/errors"
)

// ValidateCoordinate checks that c is a WGS-84 lon/lat pair.
// GeoJSON (RFC 7946 §4) positions are longitude first.
func ValidateCoordinate(c Coordinate) error {
	if c.X < -180.0 || c.X > 180.0 {
		return &ErrInvalidCoordinate{Lon: c.X, Lat: c.Y}
	}
	if c.Y < -90.0 || c.Y > 90.0 {
		return &ErrInvalidCoordinate{Lon: c.X, Lat: c.Y}
	}
	return nil
}

// ValidateGeometry checks every coordinate of g with ValidateCoordinate.
// Ring closure, winding order and self-intersection are not checked.
func ValidateGeometry(g Geometry) error {
	if g == nil {
		return errors.New("geometry is nil")
	}

	var firstErr error
	index := 0
	Walk(g, func(c Coordinate) {
		if firstErr == nil {
			if err := ValidateCoordinate(c); err != nil {
				firstErr = errors.Wrapf(err, "%s coordinate %d", g.Kind(), index)
			}
		}
		index++
	})
	return firstErr
}
