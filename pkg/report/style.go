package report

import (
	"fmt"

	"github.com/AndreyAkinshin/alike/pkg/alike"
)

// Style selects the output format of a rendered report.
type Style int

const (
	// Plain renders text without any escape sequences or markup.
	Plain Style = iota
	// ANSI renders text with terminal color escape sequences.
	ANSI
	// HTML renders a minimal HTML document with highlight spans.
	HTML
	// JSON renders a machine-readable structured document.
	JSON
)

// String returns the lowercase style name.
func (s Style) String() string {
	switch s {
	case Plain:
		return "plain"
	case ANSI:
		return "ansi"
	case HTML:
		return "html"
	default:
		return "json"
	}
}

// ParseStyle parses a style name as used in configuration files.
func ParseStyle(name string) (Style, error) {
	switch name {
	case "plain":
		return Plain, nil
	case "ansi":
		return ANSI, nil
	case "html":
		return HTML, nil
	case "json":
		return JSON, nil
	}
	return Plain, fmt.Errorf("invalid style: %q (must be \"plain\", \"ansi\", \"html\", or \"json\")", name)
}

// Verbosity selects the amount of detail in a rendered report.
type Verbosity int

const (
	// Quiet emits summary tallies only.
	Quiet Verbosity = iota
	// Verbose adds failed results with their rendered values.
	Verbose
	// Very lists every result with an outcome marker.
	Very
	// VeryVery additionally includes notes and untruncated renders.
	VeryVery
)

// String returns the lowercase verbosity name.
func (v Verbosity) String() string {
	switch v {
	case Quiet:
		return "quiet"
	case Verbose:
		return "verbose"
	case Very:
		return "very"
	default:
		return "veryvery"
	}
}

// ParseVerbosity parses a verbosity name as used in configuration files.
func ParseVerbosity(name string) (Verbosity, error) {
	switch name {
	case "quiet":
		return Quiet, nil
	case "verbose":
		return Verbose, nil
	case "very":
		return Very, nil
	case "veryvery":
		return VeryVery, nil
	}
	return Quiet, fmt.Errorf("invalid verbosity: %q (must be \"quiet\", \"verbose\", \"very\", or \"veryvery\")", name)
}

// ANSI escape codes.
const (
	ansiReset   = "\033[0m"
	ansiBold    = "\033[1m"
	ansiDim     = "\033[2m"
	ansiRed     = "\033[31m"
	ansiGreen   = "\033[32m"
	ansiYellow  = "\033[33m"
	ansiBlue    = "\033[34m"
	ansiMagenta = "\033[35m"
	ansiCyan    = "\033[36m"
)

// highlightColor maps a highlight kind to its terminal color.
func highlightColor(kind alike.HighlightKind) string {
	switch kind {
	case alike.HighlightBoolNum:
		return ansiGreen
	case alike.HighlightString:
		return ansiYellow
	case alike.HighlightNullish:
		return ansiDim
	case alike.HighlightSymbol:
		return ansiMagenta
	case alike.HighlightRegexp:
		return ansiCyan
	case alike.HighlightFunction:
		return ansiBlue
	case alike.HighlightError, alike.HighlightException:
		return ansiRed
	default:
		return ansiBold
	}
}

// paintANSI interleaves color escape sequences into a rendered text
// according to its highlight spans. Spans are non-overlapping and sorted,
// so a single left-to-right pass suffices.
func paintANSI(r alike.Renderable) string {
	text := r.Text()
	highlights := r.Highlights()
	if len(highlights) == 0 {
		return text
	}

	var b []byte
	pos := 0
	for _, h := range highlights {
		if h.Start < pos || h.Stop > len(text) {
			continue
		}
		b = append(b, text[pos:h.Start]...)
		b = append(b, highlightColor(h.Kind)...)
		b = append(b, text[h.Start:h.Stop]...)
		b = append(b, ansiReset...)
		pos = h.Stop
	}
	b = append(b, text[pos:]...)
	return string(b)
}
