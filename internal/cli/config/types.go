// Package config provides configuration management for the wkt2geojson CLI.
package config

import (
	"log/slog"

	"github.com/beetlebugorg/wkt2geojson/pkg/convert"
	"github.com/beetlebugorg/wkt2geojson/pkg/wkt"
)

// Default configuration values.
const (
	DefaultFormat    = FormatGeoJSON
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultCacheSize = 1024
	DefaultMaxDepth  = 256
)

// Output formats.
const (
	FormatGeoJSON = "geojson"
	FormatWKB     = "wkb"
)

// Config holds all CLI configuration options.
type Config struct {
	Name           string `koanf:"name"`
	LabelSeparator string `koanf:"label_separator"`
	Flatten        bool   `koanf:"flatten"`
	Workers        int    `koanf:"workers"`
	SkipErrors     bool   `koanf:"skip_errors"`
	Format         string `koanf:"format"`
	Pretty         bool   `koanf:"pretty"`
	ValidateRange  bool   `koanf:"validate_range"`
	BBox           string `koanf:"bbox"`
	CacheSize      int    `koanf:"cache_size"`
	MaxDepth       int    `koanf:"max_depth"`
	LogLevel       string `koanf:"log_level"`
	LogFormat      string `koanf:"log_format"`
	MetricsFile    string `koanf:"metrics_file"`

	// ConfigFile is the file the configuration was read from, if any.
	ConfigFile string `koanf:"-"`
}

// ConvertOptions maps the configuration onto converter options.
func (c *Config) ConvertOptions(logger *slog.Logger, observer convert.Observer) convert.Options {
	return convert.Options{
		DefaultLabel:   c.Name,
		LabelSeparator: c.LabelSeparator,
		Flatten:        c.Flatten,
		Workers:        c.Workers,
		SkipErrors:     c.SkipErrors,
		Parse:          wkt.ParseOptions{ValidateRange: c.ValidateRange, MaxDepth: c.MaxDepth},
		CacheSize:      c.CacheSize,
		Observer:       observer,
		Logger:         logger,
	}
}
