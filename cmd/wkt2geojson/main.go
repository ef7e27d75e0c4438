// Command wkt2geojson converts WKT geometry literals to GeoJSON.
package main

import (
	"os"

	"github.com/beetlebugorg/wkt2geojson/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
