package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestKindNames tests the GeoJSON and WKT names of every kind
func TestKindNames(t *testing.T) {
	tests := []struct {
		kind    Kind
		name    string
		keyword string
	}{
		{KindPoint, "Point", "POINT"},
		{KindLineString, "LineString", "LINESTRING"},
		{KindPolygon, "Polygon", "POLYGON"},
		{KindMultiPoint, "MultiPoint", "MULTIPOINT"},
		{KindMultiLineString, "MultiLineString", "MULTILINESTRING"},
		{KindMultiPolygon, "MultiPolygon", "MULTIPOLYGON"},
		{KindGeometryCollection, "GeometryCollection", "GEOMETRYCOLLECTION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.kind.String())
			assert.Equal(t, tt.keyword, tt.kind.Keyword())

			k, ok := LookupKind(tt.keyword)
			require.True(t, ok)
			assert.Equal(t, tt.kind, k)
		})
	}
}

// TestValidateGeometry tests the optional WGS-84 range check
func TestValidateGeometry(t *testing.T) {
	tests := []struct {
		name    string
		wkt     string
		wantErr bool
	}{
		{"boston", "POINT(-71.0589 42.3601)", false},
		{"corners", "LINESTRING(-180 -90, 180 90)", false},
		{"longitude out of range", "POINT(181 0)", true},
		{"latitude out of range", "POINT(0 -90.5)", true},
		{"bad member", "GEOMETRYCOLLECTION(POINT(0 0),LINESTRING(0 0, 0 91))", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Parse(tt.wkt)
			require.NoError(t, err)

			err = ValidateGeometry(g)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var coordErr *ErrInvalidCoordinate
			assert.ErrorAs(t, err, &coordErr)
		})
	}

	assert.Error(t, ValidateGeometry(nil))
}
