package report

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Writer streams suite progress to a terminal as results are recorded:
// section headers, one line per result, and a final summary. Rendering a
// finished suite in a specific style is Render's job; Writer is for live
// feedback while a suite is being built.
type Writer struct {
	out   io.Writer
	err   io.Writer
	color bool
	quiet bool
}

// NewWriter creates a Writer with default settings.
func NewWriter() *Writer {
	return &Writer{
		out:   os.Stdout,
		err:   os.Stderr,
		color: isTerminal(),
	}
}

// NewWriterTo creates a Writer with custom io.Writers (for testing).
func NewWriterTo(out, err io.Writer, color bool) *Writer {
	return &Writer{
		out:   out,
		err:   err,
		color: color,
	}
}

// SetQuiet enables or disables quiet mode. In quiet mode only failures
// and the final summary are emitted.
func (w *Writer) SetQuiet(quiet bool) {
	w.quiet = quiet
}

// SuiteStart prints the suite header.
func (w *Writer) SuiteStart(title string) {
	if w.quiet {
		return
	}
	if w.color {
		fmt.Fprintf(w.out, "%s=== %s ===%s\n", ansiBold+ansiCyan, title, ansiReset)
	} else {
		fmt.Fprintf(w.out, "=== %s ===\n", title)
	}
}

// SectionStart prints a section header with enhanced visibility.
func (w *Writer) SectionStart(title string) {
	if w.quiet {
		return
	}
	fmt.Fprintln(w.out)
	label := fmt.Sprintf("─── %s ───", title)
	if w.color {
		fmt.Fprintf(w.out, "%s%s%s\n", ansiBold+ansiCyan, label, ansiReset)
	} else {
		fmt.Fprintf(w.out, "%s\n", label)
	}
}

// Result prints one result line. Failed results are always emitted, with
// both rendered sides truncated to the display budget.
func (w *Writer) Result(r Result) {
	switch r.Outcome {
	case Passed:
		if w.quiet {
			return
		}
		if w.color {
			fmt.Fprintf(w.out, "  %s✓%s %s\n", ansiGreen, ansiReset, r.Title)
		} else {
			fmt.Fprintf(w.out, "  + %s\n", r.Title)
		}
	case Failed:
		if w.color {
			fmt.Fprintf(w.out, "  %s✗%s %s\n", ansiRed, ansiReset, r.Title)
		} else {
			fmt.Fprintf(w.out, "  x %s\n", r.Title)
		}
		fmt.Fprintf(w.out, "      actually: %s\n", Truncate(r.Actually.Text(), DefaultMaxWidth))
		fmt.Fprintf(w.out, "      expected: %s\n", Truncate(r.Expected.Text(), DefaultMaxWidth))
	default:
		if w.quiet {
			return
		}
		if w.color {
			fmt.Fprintf(w.out, "  %s-%s %s %s(pending)%s\n", ansiYellow, ansiReset, r.Title, ansiDim, ansiReset)
		} else {
			fmt.Fprintf(w.out, "  - %s (pending)\n", r.Title)
		}
	}
}

// Warning prints a warning message to stderr.
func (w *Writer) Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		fmt.Fprintf(w.err, "%swarning:%s %s\n", ansiYellow, ansiReset, msg)
	} else {
		fmt.Fprintf(w.err, "warning: %s\n", msg)
	}
}

// Error prints an error message to stderr.
func (w *Writer) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		fmt.Fprintf(w.err, "%salike:%s %s\n", ansiRed, ansiReset, msg)
	} else {
		fmt.Fprintf(w.err, "alike: %s\n", msg)
	}
}

// Summary prints the final tallies.
func (w *Writer) Summary(c Counts) {
	fmt.Fprintln(w.out)
	if w.color {
		fmt.Fprintf(w.out, "  %spassed:%s %s%d%s\n", ansiDim, ansiReset, ansiGreen, c.Passed, ansiReset)
		fmt.Fprintf(w.out, "  %sfailed:%s %s%d%s\n", ansiDim, ansiReset, ansiRed, c.Failed, ansiReset)
		fmt.Fprintf(w.out, "  %spending:%s %d\n", ansiDim, ansiReset, c.Pending)
		fmt.Fprintf(w.out, "  %stotal:%s %d\n", ansiDim, ansiReset, c.Total)
	} else {
		fmt.Fprintf(w.out, "  passed: %d\n", c.Passed)
		fmt.Fprintf(w.out, "  failed: %d\n", c.Failed)
		fmt.Fprintf(w.out, "  pending: %d\n", c.Pending)
		fmt.Fprintf(w.out, "  total: %d\n", c.Total)
	}
}

// EmitSuite replays a finished suite through the writer.
func (w *Writer) EmitSuite(s *Suite) {
	w.SuiteStart(s.Title)
	for i := range s.Sections {
		sec := &s.Sections[i]
		w.SectionStart(sec.Title)
		for _, r := range sec.Results {
			w.Result(r)
		}
	}
	w.Summary(s.Tally())
}

// isTerminal returns true if stdout is a terminal.
func isTerminal() bool {
	if fi, _ := os.Stdout.Stat(); fi != nil {
		return (fi.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// Table prints simple aligned rows, used for suite listings.
func (w *Writer) Table(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var headerParts []string
	for i, h := range headers {
		headerParts = append(headerParts, fmt.Sprintf("%-*s", widths[i], h))
	}
	fmt.Fprintln(w.out, strings.Join(headerParts, "  "))

	var sepParts []string
	for _, width := range widths {
		sepParts = append(sepParts, strings.Repeat("-", width))
	}
	fmt.Fprintln(w.out, strings.Join(sepParts, "  "))

	for _, row := range rows {
		var rowParts []string
		for i, cell := range row {
			if i < len(widths) {
				rowParts = append(rowParts, fmt.Sprintf("%-*s", widths[i], cell))
			}
		}
		fmt.Fprintln(w.out, strings.Join(rowParts, "  "))
	}
}
