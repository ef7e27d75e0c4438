package convert

import (
	"context"
	"io"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/beetlebugorg/wkt2geojson/pkg/wkt"
)

// Converter parses batches of WKT literals in parallel.
//
// A single malformed literal never affects its siblings. With SkipErrors the
// failure is recorded and conversion continues; otherwise the first failing
// line in input order is returned and outstanding work is cancelled.
//
// Example:
//
//	conv := convert.New(convert.Options{
//	    LabelSeparator: "|",
//	    Flatten:        true,
//	    SkipErrors:     true,
//	    Logger:         logger,
//	})
//
//	result, err := conv.ConvertReader(ctx, os.Stdin)
//	if err != nil {
//	    return err
//	}
//	for _, lineErr := range result.Errors {
//	    fmt.Fprintln(os.Stderr, lineErr)
//	}
//	fc, err := result.FeatureCollection()
//	if err != nil {
//	    return err
//	}
//	return fc.Encode(os.Stdout, false)
type Converter struct {
	opts   Options
	parser wkt.Parser
	cache  *GeometryCache
}

// New creates a Converter. Zero-valued options take their defaults.
func New(opts Options) *Converter {
	opts = opts.withDefaults()
	c := &Converter{
		opts:   opts,
		parser: wkt.NewParser(),
	}
	if opts.CacheSize > 0 {
		c.cache = NewGeometryCache(opts.CacheSize)
	}
	return c
}

// Cache returns the converter's GeometryCache, or nil when caching is off.
func (c *Converter) Cache() *GeometryCache {
	return c.cache
}

// ConvertReader splits r into lines and converts them.
func (c *Converter) ConvertReader(ctx context.Context, r io.Reader) (*Result, error) {
	lines, err := SplitLines(r)
	if err != nil {
		return nil, err
	}
	return c.Convert(ctx, lines)
}

// lineResult is the outcome of one line. done is false for lines skipped
// after cancellation.
type lineResult struct {
	item Item
	err  *LineError
	done bool
}

// Convert parses every line, preserving input order in the Result.
func (c *Converter) Convert(ctx context.Context, lines []Line) (*Result, error) {
	start := time.Now()
	results := make([]lineResult, len(lines))

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(c.opts.Workers)

	for i := range lines {
		if egctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if egctx.Err() != nil {
				return nil
			}
			results[i] = c.convertLine(lines[i])
			if results[i].err != nil && !c.opts.SkipErrors {
				return results[i].err
			}
			return nil
		})
	}
	_ = eg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "convert")
	}

	result := &Result{
		Items:   make([]Item, 0, len(lines)),
		flatten: c.opts.Flatten,
	}
	for i := range results {
		// Lines left unparsed after an abort are converted here so the error
		// returned is always the first one in input order.
		if !results[i].done {
			results[i] = c.convertLine(lines[i])
		}
		if lineErr := results[i].err; lineErr != nil {
			if !c.opts.SkipErrors {
				return nil, lineErr
			}
			c.opts.Logger.Warn("skipping literal",
				"line", lineErr.Line,
				"kind", wkt.KindOf(lineErr.Err).String(),
				"error", lineErr.Err)
			result.Errors = append(result.Errors, lineErr)
			continue
		}
		result.Items = append(result.Items, results[i].item)
	}

	c.opts.Logger.Info("conversion complete",
		"lines", len(lines),
		"converted", len(result.Items),
		"failed", len(result.Errors),
		"duration", time.Since(start))

	return result, nil
}

func (c *Converter) convertLine(line Line) lineResult {
	label, literal := c.opts.splitLabel(line.Text)

	start := time.Now()
	g, cached, err := c.parse(literal)
	elapsed := time.Since(start)

	if err != nil {
		if c.opts.Observer != nil {
			c.opts.Observer.LiteralFailed(err, elapsed)
		}
		return lineResult{
			err:  &LineError{Line: line.Number, Text: line.Text, Err: err},
			done: true,
		}
	}

	if c.opts.Observer != nil {
		c.opts.Observer.LiteralParsed(g.Kind(), elapsed, cached)
	}
	return lineResult{
		item: Item{Line: line.Number, Label: label, Geometry: g},
		done: true,
	}
}

func (c *Converter) parse(literal string) (wkt.Geometry, bool, error) {
	load := func() (wkt.Geometry, error) {
		return c.parser.ParseWithOptions(literal, c.opts.Parse)
	}
	if c.cache == nil {
		g, err := load()
		return g, false, err
	}
	return c.cache.Get(literal, load)
}
