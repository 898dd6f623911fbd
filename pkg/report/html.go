package report

import (
	"fmt"
	"html"
	"strings"

	"github.com/AndreyAkinshin/alike/pkg/alike"
)

// htmlPalette maps every highlight kind to a CSS color for the embedded
// stylesheet. The report layer owns the full palette, including the
// kinds the renderer itself never emits.
var htmlPalette = []struct {
	kind  alike.HighlightKind
	color string
}{
	{alike.HighlightArray, "#666666"},
	{alike.HighlightBoolNum, "#107040"},
	{alike.HighlightDOM, "#805010"},
	{alike.HighlightError, "#b01010"},
	{alike.HighlightException, "#b01010"},
	{alike.HighlightFunction, "#1040a0"},
	{alike.HighlightNullish, "#888888"},
	{alike.HighlightObject, "#666666"},
	{alike.HighlightRegexp, "#106070"},
	{alike.HighlightString, "#905000"},
	{alike.HighlightSymbol, "#701090"},
}

// renderHTML renders the suite as a self-contained HTML document with a
// span per highlight. The same verbosity filtering as the text styles
// applies.
func renderHTML(s *Suite, verbosity Verbosity) (string, error) {
	var b strings.Builder

	title := html.EscapeString(titleCaser.String(s.Title))
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", title)
	writeStylesheet(&b)
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", title)

	if verbosity > Quiet {
		for i := range s.Sections {
			writeSectionHTML(&b, &s.Sections[i], verbosity)
		}
	}

	c := s.Tally()
	fmt.Fprintf(&b, "<p class=\"summary\">passed: <span class=\"passed\">%d</span>, failed: <span class=\"failed\">%d</span>, pending: %d, total: %d</p>\n",
		c.Passed, c.Failed, c.Pending, c.Total)

	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

func writeStylesheet(b *strings.Builder) {
	b.WriteString("<style>\n")
	b.WriteString("body { font-family: monospace; }\n")
	b.WriteString(".passed { color: #107040; }\n")
	b.WriteString(".failed { color: #b01010; }\n")
	b.WriteString(".pending { color: #805010; }\n")
	b.WriteString(".value { margin: 0 0 0 2em; }\n")
	b.WriteString(".note { color: #888888; margin-left: 2em; }\n")
	for _, p := range htmlPalette {
		fmt.Fprintf(b, ".hl-%s { color: %s; }\n", strings.ToLower(p.kind.String()), p.color)
	}
	b.WriteString("</style>\n")
}

func writeSectionHTML(b *strings.Builder, sec *Section, verbosity Verbosity) {
	shown := sectionResultsToShow(sec, verbosity)
	if len(shown) == 0 {
		return
	}

	fmt.Fprintf(b, "<section>\n<h2>%s</h2>\n<ul>\n", html.EscapeString(sec.Title))
	for _, r := range shown {
		writeResultHTML(b, r, verbosity)
	}
	b.WriteString("</ul>\n</section>\n")
}

func writeResultHTML(b *strings.Builder, r *Result, verbosity Verbosity) {
	title := html.EscapeString(r.Title)
	switch r.Outcome {
	case Passed:
		fmt.Fprintf(b, "<li class=\"passed\">✓ %s\n", title)
	case Failed:
		fmt.Fprintf(b, "<li class=\"failed\">✗ %s\n", title)
		fmt.Fprintf(b, "<pre class=\"value\">actually: %s</pre>\n", highlightHTML(r.Actually))
		fmt.Fprintf(b, "<pre class=\"value\">expected: %s</pre>\n", highlightHTML(r.Expected))
	default:
		fmt.Fprintf(b, "<li class=\"pending\">%s (pending)\n", title)
	}
	writeNotesHTML(b, r, verbosity)
	b.WriteString("</li>\n")
}

func writeNotesHTML(b *strings.Builder, r *Result, verbosity Verbosity) {
	if verbosity < VeryVery {
		return
	}
	for _, note := range r.Notes {
		fmt.Fprintf(b, "<p class=\"note\">%s</p>\n", html.EscapeString(note))
	}
}

// highlightHTML converts a renderable into escaped HTML with a span per
// highlight. Spans are non-overlapping and sorted, so a single pass over
// the text suffices.
func highlightHTML(r alike.Renderable) string {
	text := r.Text()
	var b strings.Builder
	pos := 0
	for _, h := range r.Highlights() {
		if h.Start < pos || h.Stop > len(text) {
			continue
		}
		b.WriteString(html.EscapeString(text[pos:h.Start]))
		fmt.Fprintf(&b, "<span class=\"hl-%s\">%s</span>",
			strings.ToLower(h.Kind.String()), html.EscapeString(text[h.Start:h.Stop]))
		pos = h.Stop
	}
	b.WriteString(html.EscapeString(text[pos:]))
	return b.String()
}
