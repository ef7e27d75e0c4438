// Package metrics records conversion counters in a Prometheus registry and
// exports them in the text exposition format.
package metrics

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/beetlebugorg/wkt2geojson/pkg/convert"
	"github.com/beetlebugorg/wkt2geojson/pkg/wkt"
)

const namespace = "wkt2geojson"

// Recorder implements convert.Observer on top of its own registry, so several
// recorders (one per test, say) never collide.
type Recorder struct {
	registry *prometheus.Registry

	literalsParsed *prometheus.CounterVec
	literalsFailed *prometheus.CounterVec
	parseDuration  prometheus.Histogram
	cacheHits      prometheus.Counter
}

var _ convert.Observer = (*Recorder)(nil)

// NewRecorder creates a Recorder with a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,

		literalsParsed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "parse",
			Name:      "literals_total",
			Help:      "Total WKT literals parsed successfully",
		}, []string{"kind"}),

		literalsFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "parse",
			Name:      "errors_total",
			Help:      "Total WKT literals that failed to parse",
		}, []string{"error"}),

		parseDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "parse",
			Name:      "duration_seconds",
			Help:      "Time spent parsing one literal",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 10, 7),
		}),

		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Total literals answered from the geometry cache",
		}),
	}
}

// LiteralParsed implements convert.Observer.
func (r *Recorder) LiteralParsed(kind wkt.Kind, elapsed time.Duration, cached bool) {
	r.literalsParsed.WithLabelValues(kind.String()).Inc()
	r.parseDuration.Observe(elapsed.Seconds())
	if cached {
		r.cacheHits.Inc()
	}
}

// LiteralFailed implements convert.Observer.
func (r *Recorder) LiteralFailed(err error, elapsed time.Duration) {
	r.literalsFailed.WithLabelValues(errorLabel(err)).Inc()
	r.parseDuration.Observe(elapsed.Seconds())
}

// errorLabel keeps the label set small: one value per ErrorKind plus
// out_of_range for the optional coordinate range check.
func errorLabel(err error) string {
	if kind := wkt.KindOf(err); kind != 0 {
		return kind.String()
	}
	var coordErr *wkt.ErrInvalidCoordinate
	if errors.As(err, &coordErr) {
		return "OutOfRange"
	}
	return "Unknown"
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteFile writes all metrics to path in the Prometheus text format, in the
// style of the node_exporter textfile collector. The file is replaced
// atomically.
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return errors.Wrapf(err, "write metrics to %s", path)
	}
	return nil
}
