package report

import (
	"strings"
	"testing"

	"github.com/rivo/uniseg"
)

func TestTruncate_Fits(t *testing.T) {
	t.Parallel()

	tests := []string{
		"",
		"short",
		strings.Repeat("x", 20),
	}
	for _, s := range tests {
		if got := Truncate(s, 20); got != s {
			t.Errorf("Truncate(%q, 20) = %q, want unchanged", s, got)
		}
	}
}

func TestTruncate_KeepsHeadAndTail(t *testing.T) {
	t.Parallel()

	s := "abcdefghijklmnopqrstuvwxyz0123"
	got := Truncate(s, 20)

	// 70% of the budget goes to the head, the rest to the tail.
	want := "abcdefghijklmn...123"
	if got != want {
		t.Errorf("Truncate() = %q, want %q", got, want)
	}
	if w := uniseg.StringWidth(got); w > 20 {
		t.Errorf("truncated width = %d, want <= 20", w)
	}
}

func TestTruncate_MinimumWidth(t *testing.T) {
	t.Parallel()

	s := strings.Repeat("a", 40)
	got := Truncate(s, minTruncateWidth)
	if w := uniseg.StringWidth(got); w > minTruncateWidth {
		t.Errorf("truncated width = %d, want <= %d", w, minTruncateWidth)
	}
	if !strings.Contains(got, ellipsis) {
		t.Errorf("Truncate() = %q, want an ellipsis", got)
	}
}

func TestTruncate_WideRunes(t *testing.T) {
	t.Parallel()

	// Each rune occupies two display columns; the budget counts columns,
	// not runes or bytes.
	s := strings.Repeat("語", 10)
	got := Truncate(s, 12)
	if w := uniseg.StringWidth(got); w > 12 {
		t.Errorf("truncated width = %d, want <= 12", w)
	}
	if !strings.HasPrefix(got, "語") {
		t.Errorf("Truncate() = %q, want head preserved", got)
	}
}

func TestTruncate_CombiningCharacters(t *testing.T) {
	t.Parallel()

	// "e" + combining acute forms one cluster; truncation must not split it.
	cluster := "e\u0301"
	s := strings.Repeat(cluster, 40)
	got := Truncate(s, 20)
	if w := uniseg.StringWidth(got); w > 20 {
		t.Errorf("truncated width = %d, want <= 20", w)
	}
	head, tail, found := strings.Cut(got, ellipsis)
	if !found {
		t.Fatalf("Truncate() = %q, want an ellipsis", got)
	}
	for _, part := range []string{head, tail} {
		if rest := strings.ReplaceAll(part, cluster, ""); rest != "" {
			t.Errorf("Truncate() split a grapheme cluster, leftover %q in %q", rest, part)
		}
	}
}

func TestTruncate_PanicsBelowMinimum(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("Truncate() should panic for maxWidth below the minimum")
		}
	}()
	Truncate("whatever", minTruncateWidth-1)
}
