// Package commands implements the wkt2geojson subcommands.
package commands

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/beetlebugorg/wkt2geojson/internal/metrics"
)

// openInput returns the file named by args[0], or the command's stdin when no
// argument or "-" is given.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", errors.Wrap(err, "open input")
	}
	return f, args[0], nil
}

// openOutput returns the file at path, or the command's stdout when path is
// empty.
func openOutput(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{cmd.OutOrStdout()}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create output")
	}
	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// newRecorder returns a metrics recorder when a metrics file is configured.
// The returned flush writes the file and is a no-op otherwise.
func newRecorder(path string) (*metrics.Recorder, func() error) {
	if path == "" {
		return nil, func() error { return nil }
	}
	r := metrics.NewRecorder()
	return r, func() error { return r.WriteFile(path) }
}
