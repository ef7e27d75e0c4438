package config

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/beetlebugorg/wkt2geojson/pkg/wkt"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatGeoJSON, FormatWKB:
	default:
		return errors.Newf("unknown format %q (want %s or %s)", c.Format, FormatGeoJSON, FormatWKB)
	}
	if c.Workers < 0 {
		return errors.Newf("workers must not be negative, got %d", c.Workers)
	}
	if c.CacheSize < 0 {
		return errors.Newf("cache_size must not be negative, got %d", c.CacheSize)
	}
	if c.MaxDepth < 0 {
		return errors.Newf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.Newf("unknown log_level %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return errors.Newf("unknown log_format %q", c.LogFormat)
	}
	if _, _, err := c.Bounds(); err != nil {
		return err
	}
	return nil
}

// Bounds parses the bbox setting, "minx,miny,maxx,maxy". The second result is
// false when no bbox is configured.
func (c *Config) Bounds() (wkt.Bounds, bool, error) {
	if strings.TrimSpace(c.BBox) == "" {
		return wkt.Bounds{}, false, nil
	}

	parts := strings.Split(c.BBox, ",")
	if len(parts) != 4 {
		return wkt.Bounds{}, false, errors.Newf("bbox %q: expected minx,miny,maxx,maxy", c.BBox)
	}

	var v [4]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return wkt.Bounds{}, false, errors.Wrapf(err, "bbox %q", c.BBox)
		}
		v[i] = f
	}

	b := wkt.Bounds{MinX: v[0], MinY: v[1], MaxX: v[2], MaxY: v[3]}
	if b.MinX > b.MaxX || b.MinY > b.MaxY {
		return wkt.Bounds{}, false, errors.Newf("bbox %q: minimum exceeds maximum", c.BBox)
	}
	return b, true, nil
}
