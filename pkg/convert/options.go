package convert

import (
	"log/slog"
	"runtime"

	"github.com/beetlebugorg/wkt2geojson/pkg/wkt"
)

// DefaultLabel is the Name given to features whose line carries no label.
const DefaultLabel = "Unnamed"

// Options controls batch conversion behavior and error handling.
type Options struct {
	// DefaultLabel is used when a line has no label. Defaults to "Unnamed".
	DefaultLabel string

	// LabelSeparator splits "label<sep>literal" lines. Empty disables labels.
	// Only the first occurrence splits, so labels cannot contain it.
	LabelSeparator string

	// Flatten replaces each GeometryCollection with one Feature per leaf
	// geometry when building the FeatureCollection.
	Flatten bool

	// Workers specifies the number of parallel parser goroutines.
	// If 0, defaults to runtime.NumCPU().
	Workers int

	// SkipErrors causes conversion to continue when individual literals fail.
	// Failed literals are collected in Result.Errors.
	// When false, the first failing line (in input order) is returned.
	SkipErrors bool

	// Parse holds the options passed to the parser for every literal.
	Parse wkt.ParseOptions

	// CacheSize enables a GeometryCache holding that many parsed literals.
	// 0 disables caching.
	CacheSize int

	// Observer, if set, is notified of every parsed literal.
	Observer Observer

	// Logger receives warnings for skipped literals and a summary line.
	// Nil discards log output.
	Logger *slog.Logger
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		DefaultLabel: DefaultLabel,
		Workers:      runtime.NumCPU(),
		SkipErrors:   true,
		Parse:        wkt.DefaultParseOptions(),
	}
}

func (o Options) withDefaults() Options {
	if o.DefaultLabel == "" {
		o.DefaultLabel = DefaultLabel
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}
