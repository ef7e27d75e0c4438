package commands

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/beetlebugorg/wkt2geojson/internal/cli/config"
	"github.com/beetlebugorg/wkt2geojson/pkg/convert"
	"github.com/beetlebugorg/wkt2geojson/pkg/geojson"
	"github.com/beetlebugorg/wkt2geojson/pkg/wkb"
	"github.com/beetlebugorg/wkt2geojson/pkg/wkt"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "convert [file|-]",
		Short: "Convert WKT literals to a GeoJSON FeatureCollection",
		Long: `Convert reads one WKT geometry literal per line and writes a GeoJSON
FeatureCollection with one Feature per literal.

Lines may carry a label before --label-separator; it becomes the Feature's
Name property. Blank lines and lines starting with # are ignored.

With --skip-errors (the default) malformed literals are logged and skipped.
Otherwise the first malformed literal aborts the conversion.

Examples:
  wkt2geojson convert shapes.wkt > shapes.geojson
  echo 'POINT(-71.06 42.36)' | wkt2geojson convert --pretty
  wkt2geojson convert --label-separator '|' --flatten sites.wkt
  wkt2geojson convert --format wkb --bbox -72,42,-70,43 shapes.wkt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, outPath)
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Write output to file instead of stdout")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string, outPath string) (err error) {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := config.GetLogger(ctx)

	in, source, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	recorder, flushMetrics := newRecorder(cfg.MetricsFile)
	defer func() {
		if ferr := flushMetrics(); ferr != nil && err == nil {
			err = ferr
		}
	}()

	opts := cfg.ConvertOptions(logger, nil)
	if recorder != nil {
		opts.Observer = recorder
	}
	conv := convert.New(opts)

	logger.Debug("converting", "source", source, "workers", opts.Workers, "format", cfg.Format)
	result, err := conv.ConvertReader(ctx, in)
	if err != nil {
		return err
	}

	if cache := conv.Cache(); cache != nil {
		stats := cache.Stats()
		logger.Debug("geometry cache", "entries", stats.Entries, "hits", stats.Hits, "misses", stats.Misses, "evictions", stats.Evictions)
	}

	if bounds, ok, _ := cfg.Bounds(); ok {
		before := len(result.Items)
		result = result.Filter(bounds)
		logger.Debug("bbox filter", "kept", len(result.Items), "dropped", before-len(result.Items))
	}

	out, err := openOutput(cmd, outPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close output")
		}
	}()

	switch cfg.Format {
	case config.FormatWKB:
		err = writeWKB(out, result, cfg.Flatten)
	default:
		var fc *geojson.FeatureCollection
		if fc, err = result.FeatureCollection(); err == nil {
			err = fc.Encode(out, cfg.Pretty)
		}
	}
	if err != nil {
		return errors.Wrap(err, "write output")
	}

	if n := len(result.Errors); n > 0 {
		logger.Warn("some literals were skipped", "skipped", n, "source", source)
	}
	return nil
}

// writeWKB writes one "label<TAB>hex" line per geometry. With flatten,
// collections are written as their leaf geometries.
func writeWKB(w io.Writer, result *convert.Result, flatten bool) error {
	for _, item := range result.Items {
		geometries := []wkt.Geometry{item.Geometry}
		if flatten {
			geometries = wkt.Leaves(item.Geometry)
		}
		for _, g := range geometries {
			hex, err := wkb.EncodeHex(g)
			if err != nil {
				return errors.Wrapf(err, "line %d", item.Line)
			}
			if _, err := fmt.Fprintf(w, "%s\t%s\n", item.Label, hex); err != nil {
				return err
			}
		}
	}
	return nil
}
