// Package cli provides the command-line interface for wkt2geojson.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/beetlebugorg/wkt2geojson/internal/cli/commands"
	"github.com/beetlebugorg/wkt2geojson/internal/cli/config"
	"github.com/beetlebugorg/wkt2geojson/internal/logging"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "wkt2geojson",
		Short: "Convert WKT geometry literals to GeoJSON",
		Long: `wkt2geojson converts Well-Known Text geometry literals into GeoJSON.

Supported geometry types are POINT, LINESTRING, POLYGON, MULTIPOINT,
MULTILINESTRING, MULTIPOLYGON and GEOMETRYCOLLECTION (including nested
collections). Coordinates are two-dimensional.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help, completion and version
			switch cmd.Name() {
			case "help", "completion", "__complete", "version":
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
			if cfg.ConfigFile != "" {
				logger.Debug("using config file", "path", cfg.ConfigFile)
			}

			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	// Global persistent flags. Names map onto config keys with dashes
	// replaced by underscores.
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./wkt2geojson.yaml)")
	flags.String("name", "", "Name property for unlabelled features (default \"Unnamed\")")
	flags.String("label-separator", "", "Separator between a label and its literal on each line")
	flags.Bool("flatten", false, "Emit one feature per leaf geometry of a collection")
	flags.Int("workers", 0, "Parallel parse workers (0 = number of CPUs)")
	flags.Bool("skip-errors", true, "Log and skip malformed literals instead of failing")
	flags.StringP("format", "f", "", "Output format (geojson|wkb)")
	flags.Bool("pretty", false, "Indent GeoJSON output")
	flags.Bool("validate-range", false, "Reject coordinates outside lon [-180,180], lat [-90,90]")
	flags.String("bbox", "", "Keep only geometries intersecting minx,miny,maxx,maxy")
	flags.Int("cache-size", 0, "Parsed literal cache entries (0 disables)")
	flags.Int("max-depth", 0, "Maximum GEOMETRYCOLLECTION nesting (0 = no limit, default 256)")
	flags.String("log-level", "", "Log level (debug|info|warn|error)")
	flags.String("log-format", "", "Log format (text|json)")
	flags.String("metrics-file", "", "Write Prometheus metrics to this file on exit")

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.FormatGeoJSON, config.FormatWKB}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version, GitCommit, BuildDate))
	rootCmd.AddCommand(commands.NewConvertCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
