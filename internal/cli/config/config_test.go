package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beetlebugorg/wkt2geojson/pkg/wkt"
)

// chdir switches to a fresh temp directory so no stray config file is found.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "")
	flags.String("name", "", "")
	flags.Int("workers", 0, "")
	flags.Bool("skip-errors", true, "")
	flags.String("format", "", "")
	flags.String("bbox", "", "")
	flags.Bool("flatten", false, "")
	return flags
}

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "Unnamed", cfg.Name)
	assert.Equal(t, FormatGeoJSON, cfg.Format)
	assert.True(t, cfg.SkipErrors)
	assert.False(t, cfg.Flatten)
	assert.Equal(t, DefaultCacheSize, cfg.CacheSize)
	assert.Equal(t, DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoadConfigPrecedence(t *testing.T) {
	dir := chdir(t)

	yaml := `name: from-file
workers: 2
flatten: true
format: wkb
label_separator: "|"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wkt2geojson.yaml"), []byte(yaml), 0o644))

	t.Run("file", func(t *testing.T) {
		cfg, err := LoadConfig("", nil)
		require.NoError(t, err)
		assert.Equal(t, "wkt2geojson.yaml", cfg.ConfigFile)
		assert.Equal(t, "from-file", cfg.Name)
		assert.Equal(t, 2, cfg.Workers)
		assert.True(t, cfg.Flatten)
		assert.Equal(t, FormatWKB, cfg.Format)
		assert.Equal(t, "|", cfg.LabelSeparator)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("WKT2GEOJSON_WORKERS", "6")
		t.Setenv("WKT2GEOJSON_SKIP_ERRORS", "false")

		cfg, err := LoadConfig("", nil)
		require.NoError(t, err)
		assert.Equal(t, 6, cfg.Workers)
		assert.False(t, cfg.SkipErrors)
		assert.Equal(t, "from-file", cfg.Name)
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Setenv("WKT2GEOJSON_WORKERS", "6")

		flags := newFlags()
		require.NoError(t, flags.Parse([]string{"--workers", "9", "--name", "cli", "--format", "GeoJSON"}))

		cfg, err := LoadConfig("", flags)
		require.NoError(t, err)
		assert.Equal(t, 9, cfg.Workers)
		assert.Equal(t, "cli", cfg.Name)
		assert.Equal(t, FormatGeoJSON, cfg.Format)
		assert.True(t, cfg.Flatten, "unset flags keep lower layers")
	})
}

func TestLoadConfigExplicitFile(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("pretty: true\nbbox: \"-72,42,-70,43\"\n"), 0o644))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.True(t, cfg.Pretty)
	assert.Equal(t, path, cfg.ConfigFile)

	b, ok, err := cfg.Bounds()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, wkt.Bounds{MinX: -72, MinY: 42, MaxX: -70, MaxY: 43}, b)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadConfigInvalid(t *testing.T) {
	chdir(t)

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--format", "kml"}))
	_, err := LoadConfig("", flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		return Config{Format: FormatGeoJSON, LogLevel: "info", LogFormat: "text"}
	}

	tests := []struct {
		name      string
		mutate    func(*Config)
		errSubstr string
	}{
		{"valid", func(*Config) {}, ""},
		{"wkb", func(c *Config) { c.Format = FormatWKB }, ""},
		{"bad format", func(c *Config) { c.Format = "csv" }, "unknown format"},
		{"negative workers", func(c *Config) { c.Workers = -1 }, "workers"},
		{"negative cache", func(c *Config) { c.CacheSize = -5 }, "cache_size"},
		{"negative max depth", func(c *Config) { c.MaxDepth = -1 }, "max_depth"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, "log_format"},
		{"bbox arity", func(c *Config) { c.BBox = "1,2,3" }, "expected minx,miny,maxx,maxy"},
		{"bbox number", func(c *Config) { c.BBox = "1,2,x,4" }, "bbox"},
		{"bbox inverted", func(c *Config) { c.BBox = "5,0,1,1" }, "minimum exceeds maximum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestConvertOptions(t *testing.T) {
	cfg := &Config{
		Name:           "site",
		LabelSeparator: ";",
		Flatten:        true,
		Workers:        3,
		SkipErrors:     true,
		ValidateRange:  true,
		CacheSize:      10,
		MaxDepth:       4,
	}

	opts := cfg.ConvertOptions(nil, nil)
	assert.Equal(t, "site", opts.DefaultLabel)
	assert.Equal(t, ";", opts.LabelSeparator)
	assert.True(t, opts.Flatten)
	assert.Equal(t, 3, opts.Workers)
	assert.True(t, opts.SkipErrors)
	assert.True(t, opts.Parse.ValidateRange)
	assert.Equal(t, 10, opts.CacheSize)
	assert.Equal(t, 4, opts.Parse.MaxDepth)
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, FormatGeoJSON, FromContext(ctx).Format)
	assert.NotNil(t, GetLogger(ctx))

	cfg := &Config{Name: "ctx"}
	assert.Same(t, cfg, FromContext(WithConfig(ctx, cfg)))

	logger := GetLogger(ctx)
	assert.Same(t, logger, GetLogger(WithLogger(ctx, logger)))
}
