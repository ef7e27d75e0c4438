package commands

import (
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/beetlebugorg/wkt2geojson/internal/cli/config"
	"github.com/beetlebugorg/wkt2geojson/pkg/convert"
	"github.com/beetlebugorg/wkt2geojson/pkg/wkt"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	var normalize bool

	cmd := &cobra.Command{
		Use:   "validate [file|-]",
		Short: "Check that every line is a supported WKT literal",
		Long: `Validate parses one WKT literal per line and reports the result for
each line. The command fails if any literal is malformed.

With --normalize the canonical WKT of every valid literal is printed
instead of its geometry type.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, normalize)
		},
	}

	cmd.Flags().BoolVar(&normalize, "normalize", false, "Print the canonical WKT of valid literals")

	return cmd
}

type report struct {
	line int
	text string
}

func runValidate(cmd *cobra.Command, args []string, normalize bool) (err error) {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := config.GetLogger(ctx)

	in, _, err := openInput(cmd, args)
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
	opts.SkipErrors = true
	if recorder != nil {
		opts.Observer = recorder
	}

	result, err := convert.New(opts).ConvertReader(ctx, in)
	if err != nil {
		return err
	}

	reports := make([]report, 0, len(result.Items)+len(result.Errors))
	for _, item := range result.Items {
		detail := item.Geometry.Kind().String()
		if normalize {
			detail = wkt.Marshal(item.Geometry)
		}
		reports = append(reports, report{item.Line, fmt.Sprintf("line %d: OK %s", item.Line, detail)})
	}
	for _, lineErr := range result.Errors {
		reports = append(reports, report{lineErr.Line, lineErr.Error()})
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].line < reports[j].line })

	w := cmd.OutOrStdout()
	for _, r := range reports {
		if _, err := fmt.Fprintln(w, r.text); err != nil {
			return errors.Wrap(err, "write report")
		}
	}

	if n := len(result.Errors); n > 0 {
		return errors.Newf("%d of %d literals are invalid", n, len(reports))
	}
	return nil
}
