package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rivo/uniseg"

	"github.com/AndreyAkinshin/alike/pkg/alike"
)

// Render renders the suite in the given style and verbosity.
func Render(s *Suite, style Style, verbosity Verbosity) (string, error) {
	if s == nil {
		return "", fmt.Errorf("report: nil suite")
	}
	switch style {
	case JSON:
		return renderJSON(s, verbosity)
	case HTML:
		return renderHTML(s, verbosity)
	case Plain, ANSI:
		return renderText(s, style == ANSI, verbosity), nil
	}
	return "", fmt.Errorf("report: invalid style %d", int(style))
}

var titleCaser = cases.Title(language.English)

// renderText produces the Plain and ANSI forms. The two share layout;
// ANSI adds escape sequences for headers, outcome markers and value
// highlights.
func renderText(s *Suite, color bool, verbosity Verbosity) string {
	var b strings.Builder

	writeHeading(&b, titleCaser.String(s.Title), color)

	if verbosity > Quiet {
		for i := range s.Sections {
			writeSectionText(&b, &s.Sections[i], color, verbosity)
		}
	}

	writeSummary(&b, s.Tally(), color)
	return b.String()
}

func writeHeading(b *strings.Builder, title string, color bool) {
	if color {
		fmt.Fprintf(b, "%s=== %s ===%s\n", ansiBold+ansiCyan, title, ansiReset)
	} else {
		fmt.Fprintf(b, "=== %s ===\n", title)
	}
}

func writeSectionText(b *strings.Builder, sec *Section, color bool, verbosity Verbosity) {
	shown := sectionResultsToShow(sec, verbosity)
	if len(shown) == 0 {
		return
	}

	b.WriteString("\n")
	label := fmt.Sprintf("─── %s ───", sec.Title)
	if color {
		fmt.Fprintf(b, "%s%s%s\n", ansiBold+ansiCyan, label, ansiReset)
	} else {
		fmt.Fprintf(b, "%s\n", label)
	}

	for _, r := range shown {
		writeResultText(b, r, color, verbosity)
	}
}

// sectionResultsToShow filters a section's results for the verbosity:
// Verbose shows failures only, Very and above show everything.
func sectionResultsToShow(sec *Section, verbosity Verbosity) []*Result {
	var out []*Result
	for i := range sec.Results {
		r := &sec.Results[i]
		if verbosity >= Very || r.Outcome == Failed {
			out = append(out, r)
		}
	}
	return out
}

func writeResultText(b *strings.Builder, r *Result, color bool, verbosity Verbosity) {
	switch r.Outcome {
	case Passed:
		if color {
			fmt.Fprintf(b, "  %s✓%s %s\n", ansiGreen, ansiReset, r.Title)
		} else {
			fmt.Fprintf(b, "  + %s\n", r.Title)
		}
	case Failed:
		if color {
			fmt.Fprintf(b, "  %s✗%s %s\n", ansiRed, ansiReset, r.Title)
		} else {
			fmt.Fprintf(b, "  x %s\n", r.Title)
		}
		writeValueLine(b, "actually", r.Actually, color, verbosity)
		writeValueLine(b, "expected", r.Expected, color, verbosity)
	default:
		if color {
			fmt.Fprintf(b, "  %s-%s %s %s(pending)%s\n", ansiYellow, ansiReset, r.Title, ansiDim, ansiReset)
		} else {
			fmt.Fprintf(b, "  - %s (pending)\n", r.Title)
		}
	}

	if verbosity >= VeryVery {
		for _, note := range r.Notes {
			if color {
				fmt.Fprintf(b, "      %snote:%s %s\n", ansiDim, ansiReset, note)
			} else {
				fmt.Fprintf(b, "      note: %s\n", note)
			}
		}
	}
}

// writeValueLine prints one side of a failed comparison. Below VeryVery
// the rendered text is truncated to the display budget; truncated text
// loses its highlight offsets, so it is printed unpainted.
func writeValueLine(b *strings.Builder, label string, r alike.Renderable, color bool, verbosity Verbosity) {
	text := r.Text()
	truncated := false
	if verbosity < VeryVery && uniseg.StringWidth(text) > DefaultMaxWidth {
		text = Truncate(text, DefaultMaxWidth)
		truncated = true
	}

	if color {
		if !truncated {
			text = paintANSI(r)
		}
		fmt.Fprintf(b, "      %s%s:%s %s\n", ansiDim, label, ansiReset, text)
	} else {
		fmt.Fprintf(b, "      %s: %s\n", label, text)
	}
}

func writeSummary(b *strings.Builder, c Counts, color bool) {
	b.WriteString("\n")
	if color {
		fmt.Fprintf(b, "%spassed:%s %s%d%s, %sfailed:%s %s%d%s, %spending:%s %d, %stotal:%s %d\n",
			ansiDim, ansiReset, ansiGreen, c.Passed, ansiReset,
			ansiDim, ansiReset, ansiRed, c.Failed, ansiReset,
			ansiDim, ansiReset, c.Pending,
			ansiDim, ansiReset, c.Total)
	} else {
		fmt.Fprintf(b, "passed: %d, failed: %d, pending: %d, total: %d\n",
			c.Passed, c.Failed, c.Pending, c.Total)
	}
}
