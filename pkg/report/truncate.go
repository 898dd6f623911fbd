package report

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// DefaultMaxWidth is the display budget used when rendering values into
// column-limited report lines.
const DefaultMaxWidth = 120

// minTruncateWidth is the smallest budget that leaves room for a useful
// head, the ellipsis, and a tail.
const minTruncateWidth = 12

// ellipsis marks the removed middle of a truncated string.
const ellipsis = "..."

// Truncate fits s into maxWidth display columns. Strings that already
// fit are returned unchanged; longer strings keep their leading ~70% of
// the budget, an ellipsis, and a tail from the end of the string.
// Widths are monospace display columns over grapheme clusters, so
// combining characters and wide runes truncate cleanly.
//
// Truncate panics if maxWidth is below 12; that is a programming error,
// not an input condition.
func Truncate(s string, maxWidth int) string {
	if maxWidth < minTruncateWidth {
		panic(fmt.Sprintf("report.Truncate: maxWidth %d is below the minimum of %d", maxWidth, minTruncateWidth))
	}
	if uniseg.StringWidth(s) <= maxWidth {
		return s
	}

	clusters, widths := splitGraphemes(s)

	// The ellipsis sits near 0.7 * maxWidth.
	headBudget := maxWidth * 7 / 10
	tailBudget := maxWidth - headBudget - len(ellipsis)

	var head strings.Builder
	used := 0
	i := 0
	for ; i < len(clusters); i++ {
		if used+widths[i] > headBudget {
			break
		}
		head.WriteString(clusters[i])
		used += widths[i]
	}

	var tail []string
	used = 0
	for j := len(clusters) - 1; j > i; j-- {
		if used+widths[j] > tailBudget {
			break
		}
		tail = append(tail, clusters[j])
		used += widths[j]
	}

	var b strings.Builder
	b.WriteString(head.String())
	b.WriteString(ellipsis)
	for k := len(tail) - 1; k >= 0; k-- {
		b.WriteString(tail[k])
	}
	return b.String()
}

func splitGraphemes(s string) (clusters []string, widths []int) {
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
		widths = append(widths, gr.Width())
	}
	return clusters, widths
}
