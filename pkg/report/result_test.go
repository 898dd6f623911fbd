package report

import (
	"testing"

	"github.com/AndreyAkinshin/alike/pkg/alike"
)

func TestCounts_Add(t *testing.T) {
	t.Parallel()

	c := Counts{Passed: 1, Failed: 2, Pending: 3, Total: 6}
	c.Add(Counts{Passed: 10, Failed: 20, Pending: 30, Total: 60})

	want := Counts{Passed: 11, Failed: 22, Pending: 33, Total: 66}
	if c != want {
		t.Errorf("Add() = %+v, want %+v", c, want)
	}
}

func TestSection_Tally(t *testing.T) {
	t.Parallel()

	sec := Section{Results: []Result{
		{Title: "a", Outcome: Passed},
		{Title: "b", Outcome: Passed},
		{Title: "c", Outcome: Failed},
		{Title: "d", Outcome: Pending},
	}}

	want := Counts{Passed: 2, Failed: 1, Pending: 1, Total: 4}
	if got := sec.Tally(); got != want {
		t.Errorf("Tally() = %+v, want %+v", got, want)
	}
}

func TestSuite_Tally(t *testing.T) {
	t.Parallel()

	s := Suite{
		Title: "suite",
		Sections: []Section{
			{Results: []Result{{Outcome: Passed}, {Outcome: Failed}}},
			{Results: []Result{{Outcome: Pending}}},
		},
	}

	want := Counts{Passed: 1, Failed: 1, Pending: 1, Total: 3}
	if got := s.Tally(); got != want {
		t.Errorf("Tally() = %+v, want %+v", got, want)
	}
}

func TestSuite_AddSection(t *testing.T) {
	t.Parallel()

	s, err := NewSuite("numbers")
	if err != nil {
		t.Fatalf("NewSuite() error = %v", err)
	}

	sec, err := s.AddSection("integers")
	if err != nil {
		t.Fatalf("AddSection() error = %v", err)
	}
	if err := sec.AddResult(Result{
		Title:    "one is one",
		Outcome:  Passed,
		Actually: alike.RenderableFrom(1),
		Expected: alike.RenderableFrom(1),
	}); err != nil {
		t.Fatalf("AddResult() error = %v", err)
	}

	if len(s.Sections) != 1 || len(s.Sections[0].Results) != 1 {
		t.Fatalf("unexpected suite shape: %+v", s)
	}
	if s.Sections[0].Results[0].Title != "one is one" {
		t.Errorf("result title = %q", s.Sections[0].Results[0].Title)
	}
}

func TestValidateTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		valid bool
	}{
		{"plain ascii", "all good here", true},
		{"punctuation", "x != y (edge #3)?", true},
		{"empty", "", false},
		{"backslash", `bad\title`, false},
		{"newline", "bad\ntitle", false},
		{"tab", "bad\ttitle", false},
		{"non-ascii", "café", false},
		{"del byte", "bad\x7ftitle", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateTitle(tt.title)
			if (err == nil) != tt.valid {
				t.Errorf("ValidateTitle(%q) error = %v, want valid = %v", tt.title, err, tt.valid)
			}
		})
	}
}

func TestValidateNotes(t *testing.T) {
	t.Parallel()

	if err := ValidateNotes([]string{"fine", "also fine"}); err != nil {
		t.Errorf("ValidateNotes() error = %v", err)
	}
	if err := ValidateNotes([]string{"fine", "bad\\note"}); err == nil {
		t.Error("ValidateNotes() should reject a backslash")
	}
	// Empty notes are allowed; only content is constrained.
	if err := ValidateNotes([]string{""}); err != nil {
		t.Errorf("ValidateNotes() error = %v for empty note", err)
	}
}

func TestAddResult_RejectsInvalid(t *testing.T) {
	t.Parallel()

	var sec Section
	if err := sec.AddResult(Result{Title: ""}); err == nil {
		t.Error("AddResult() should reject an empty title")
	}
	if err := sec.AddResult(Result{Title: "ok", Notes: []string{"bad\x01note"}}); err == nil {
		t.Error("AddResult() should reject a control byte in notes")
	}
	if len(sec.Results) != 0 {
		t.Errorf("rejected results must not be stored, got %d", len(sec.Results))
	}
}

func TestOutcome_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		outcome Outcome
		want    string
	}{
		{Passed, "passed"},
		{Failed, "failed"},
		{Pending, "pending"},
	}
	for _, tt := range tests {
		tt := tt
		if got := tt.outcome.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", int(tt.outcome), got, tt.want)
		}
	}
}
