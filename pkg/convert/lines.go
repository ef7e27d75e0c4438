package convert

import (
	"bufio"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// maxLineSize bounds a single input line. Large MULTIPOLYGON literals easily
// exceed bufio's 64KB default.
const maxLineSize = 64 << 20

// Line is one WKT literal read from the input.
type Line struct {
	Number int    // 1-based line number in the input
	Text   string // line text without the line terminator
}

// SplitLines reads one literal per line from r.
//
// Blank lines and lines whose first non-space character is '#' are skipped;
// line numbers still count them. Both LF and CRLF line endings are accepted.
func SplitLines(r io.Reader) ([]Line, error) {
	var lines []Line

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	number := 0
	for scanner.Scan() {
		number++
		text := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, Line{Number: number, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read line %d", number+1)
	}
	return lines, nil
}

// splitLabel separates an optional "label<sep>" prefix from a literal.
func (o Options) splitLabel(text string) (label, literal string) {
	if o.LabelSeparator != "" {
		if before, after, found := strings.Cut(text, o.LabelSeparator); found {
			label = strings.TrimSpace(before)
			text = after
		}
	}
	if label == "" {
		label = o.DefaultLabel
	}
	return label, strings.TrimSpace(text)
}
