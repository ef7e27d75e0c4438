package convert

import (
	"time"

	"github.com/beetlebugorg/wkt2geojson/pkg/wkt"
)

// Observer receives per-literal conversion events. Implementations must be
// safe for concurrent use.
type Observer interface {
	// LiteralParsed is called after a literal parses. cached reports whether
	// the geometry came from the GeometryCache.
	LiteralParsed(kind wkt.Kind, elapsed time.Duration, cached bool)

	// LiteralFailed is called after a literal fails to parse.
	LiteralFailed(err error, elapsed time.Duration)
}
