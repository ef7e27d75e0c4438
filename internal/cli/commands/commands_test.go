package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beetlebugorg/wkt2geojson/internal/cli/config"
	"github.com/beetlebugorg/wkt2geojson/internal/testutil"
)

// defaultConfig mirrors the configuration LoadConfig yields with no
// file, environment or flags.
func defaultConfig() *config.Config {
	return config.FromContext(context.Background())
}

// execute runs cmd with cfg and a test logger in its context.
func execute(t *testing.T, cmd *cobra.Command, cfg *config.Config, stdin string, args ...string) (string, error) {
	t.Helper()

	ctx := config.WithConfig(context.Background(), cfg)
	ctx = config.WithLogger(ctx, testutil.NewTestLogger(t))

	var out, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestNewConvertCommand(t *testing.T) {
	cmd := NewConvertCommand()

	assert.Equal(t, "convert [file|-]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("out"))
}

func TestNewValidateCommand(t *testing.T) {
	cmd := NewValidateCommand()

	assert.Equal(t, "validate [file|-]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("normalize"))
}

func TestConvertStdin(t *testing.T) {
	out, err := execute(t, NewConvertCommand(), defaultConfig(), "POINT(1 2)\nFOO(1 2)\n")
	require.NoError(t, err)

	expected := `{"type":"FeatureCollection","features":[` +
		`{"type":"Feature","geometry":{"type":"Point","coordinates":[1,2]},"properties":{"Name":"Unnamed"}}` +
		`]}` + "\n"
	assert.Equal(t, expected, out)
}

func TestConvertFileToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "shapes.wkt")
	out := filepath.Join(dir, "shapes.geojson")
	require.NoError(t, os.WriteFile(in, []byte("harbor|POINT(-71.05 42.35)\n"), 0o600))

	cfg := defaultConfig()
	cfg.LabelSeparator = "|"
	cfg.Pretty = true

	stdout, err := execute(t, NewConvertCommand(), cfg, "", in, "--out", out)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"type\": \"FeatureCollection\"")
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[`+
		`{"type":"Feature","geometry":{"type":"Point","coordinates":[-71.05,42.35]},"properties":{"Name":"harbor"}}]}`,
		string(data))
}

func TestConvertMissingFile(t *testing.T) {
	_, err := execute(t, NewConvertCommand(), defaultConfig(), "", filepath.Join(t.TempDir(), "missing.wkt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open input")
}

func TestConvertAbortOnError(t *testing.T) {
	cfg := defaultConfig()
	cfg.SkipErrors = false

	_, err := execute(t, NewConvertCommand(), cfg, "POINT(1 2)\nPOINT(1)\nPOINT(3 4)\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestConvertWKB(t *testing.T) {
	cfg := defaultConfig()
	cfg.Format = config.FormatWKB
	cfg.LabelSeparator = "|"
	cfg.Flatten = true

	out, err := execute(t, NewConvertCommand(), cfg, "a|POINT(1 2)\nb|GEOMETRYCOLLECTION(POINT(1 2),POINT(1 2))\n")
	require.NoError(t, err)

	point := "0101000000000000000000f03f0000000000000040"
	assert.Equal(t, "a\t"+point+"\nb\t"+point+"\nb\t"+point+"\n", out)
}

func TestConvertBBox(t *testing.T) {
	cfg := defaultConfig()
	cfg.BBox = "0,0,5,5"

	out, err := execute(t, NewConvertCommand(), cfg, "POINT(1 1)\nPOINT(10 10)\nLINESTRING(-1 -1,1 1)\n")
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[`+
		`{"type":"Feature","geometry":{"type":"Point","coordinates":[1,1]},"properties":{"Name":"Unnamed"}},`+
		`{"type":"Feature","geometry":{"type":"LineString","coordinates":[[-1,-1],[1,1]]},"properties":{"Name":"Unnamed"}}]}`,
		out)
}

func TestConvertBBoxFlattened(t *testing.T) {
	cfg := defaultConfig()
	cfg.BBox = "0,0,5,5"
	cfg.Flatten = true

	out, err := execute(t, NewConvertCommand(), cfg, "GEOMETRYCOLLECTION(POINT(1 1),POINT(100 100))\n")
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[`+
		`{"type":"Feature","geometry":{"type":"Point","coordinates":[1,1]},"properties":{"Name":"Unnamed"}}]}`,
		out)
}

func TestConvertMetricsFile(t *testing.T) {
	cfg := defaultConfig()
	cfg.MetricsFile = filepath.Join(t.TempDir(), "wkt2geojson.prom")
	cfg.Workers = 1

	_, err := execute(t, NewConvertCommand(), cfg, "POINT(1 2)\nPOINT(1 2)\nPOINT(x y)\n")
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `wkt2geojson_parse_literals_total{kind="Point"} 2`)
	assert.Contains(t, string(data), `wkt2geojson_parse_errors_total{error="MalformedCoordinate"} 1`)
	assert.Contains(t, string(data), "wkt2geojson_cache_hits_total 1")
}

func TestValidate(t *testing.T) {
	input := "POINT(1 2)\n# comment\nFOO(1 2)\nLINESTRING (0 0, 1 1)\n"

	out, err := execute(t, NewValidateCommand(), defaultConfig(), input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 literals are invalid")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "line 1: OK Point", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "line 3: "), lines[1])
	assert.Contains(t, lines[1], `"FOO"`)
	assert.Equal(t, "line 4: OK LineString", lines[2])
}

func TestValidateNormalize(t *testing.T) {
	out, err := execute(t, NewValidateCommand(), defaultConfig(), "point ( 1 2 )\nmultipoint (1 2, 3 4)\n", "--normalize")
	require.NoError(t, err)
	assert.Equal(t, "line 1: OK POINT(1 2)\nline 2: OK MULTIPOINT((1 2),(3 4))\n", out)
}

func TestValidateIgnoresSkipErrors(t *testing.T) {
	cfg := defaultConfig()
	cfg.SkipErrors = false

	out, err := execute(t, NewValidateCommand(), cfg, "POINT(1)\nPOINT(1 2)\n")
	require.Error(t, err)
	assert.Contains(t, out, "line 1: ")
	assert.Contains(t, out, "line 2: OK Point")
}
