package fixture

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/AndreyAkinshin/alike/pkg/alike"
	"github.com/AndreyAkinshin/alike/pkg/report"
)

func sumFunc(input map[string]interface{}) (interface{}, error) {
	x, okX := input["x"].(float64)
	y, okY := input["y"].(float64)
	if !okX || !okY {
		return nil, fmt.Errorf("inputs x and y must be numbers, got %v", input)
	}
	return x + y, nil
}

func TestRun_Outcomes(t *testing.T) {
	t.Parallel()

	cases := []Case{
		{Name: "passes", Suite: "sum", Input: map[string]interface{}{"x": 2.0, "y": 3.0}, Output: 5.0},
		{Name: "fails", Suite: "sum", Input: map[string]interface{}{"x": 2.0, "y": 3.0}, Output: 6.0},
		{Name: "skipped", Suite: "sum", Skip: true},
		{Name: "errors", Suite: "sum", Input: map[string]interface{}{"x": "two"}, Output: 5.0},
	}

	suite, err := Run("arithmetic", cases, sumFunc)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(suite.Sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(suite.Sections))
	}
	results := suite.Sections[0].Results
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}

	wantOutcomes := []report.Outcome{report.Passed, report.Failed, report.Pending, report.Failed}
	for i, want := range wantOutcomes {
		if results[i].Outcome != want {
			t.Errorf("result %q outcome = %v, want %v", results[i].Title, results[i].Outcome, want)
		}
	}

	c := suite.Tally()
	if c.Passed != 1 || c.Failed != 2 || c.Pending != 1 || c.Total != 4 {
		t.Errorf("tally = %+v", c)
	}
}

func TestRun_FailureRenders(t *testing.T) {
	t.Parallel()

	cases := []Case{
		{Name: "fails", Suite: "sum", Input: map[string]interface{}{"x": 1.0, "y": 1.0}, Output: 3.0},
	}
	suite, err := Run("arithmetic", cases, sumFunc)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	r := suite.Sections[0].Results[0]
	if r.Actually.Text() != "2" {
		t.Errorf("actually = %q, want %q", r.Actually.Text(), "2")
	}
	if r.Expected.Text() != "3" {
		t.Errorf("expected = %q, want %q", r.Expected.Text(), "3")
	}
}

func TestRun_SectionGrouping(t *testing.T) {
	t.Parallel()

	cases := []Case{
		{Name: "a", Suite: "first", Skip: true},
		{Name: "b", Suite: "second", Skip: true},
		{Name: "c", Suite: "first", Skip: true},
		{Name: "d", Suite: "", Skip: true},
	}
	suite, err := Run("grouped", cases, sumFunc)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(suite.Sections) != 3 {
		t.Fatalf("got %d sections, want 3", len(suite.Sections))
	}
	// Sections appear in first-appearance order; the blank suite falls
	// back to the run title.
	wantTitles := []string{"first", "second", "grouped"}
	for i, want := range wantTitles {
		if suite.Sections[i].Title != want {
			t.Errorf("section %d title = %q, want %q", i, suite.Sections[i].Title, want)
		}
	}
	if len(suite.Sections[0].Results) != 2 {
		t.Errorf("section %q has %d results, want 2", wantTitles[0], len(suite.Sections[0].Results))
	}
}

func TestRun_PanicBecomesException(t *testing.T) {
	t.Parallel()

	panicky := func(map[string]interface{}) (interface{}, error) {
		panic("division by zero")
	}
	cases := []Case{{Name: "explodes", Suite: "panics", Output: 1.0}}

	suite, err := Run("panics", cases, panicky)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	r := suite.Sections[0].Results[0]
	if r.Outcome != report.Failed {
		t.Fatalf("outcome = %v, want %v", r.Outcome, report.Failed)
	}
	if r.Actually.Text() != "panic(division by zero)" {
		t.Errorf("actually = %q", r.Actually.Text())
	}
	highlights := r.Actually.Highlights()
	if len(highlights) != 1 || highlights[0].Kind != alike.HighlightException {
		t.Errorf("highlights = %v, want a single exception span", highlights)
	}
	if highlights[0].Start != 0 || highlights[0].Stop != len(r.Actually.Text()) {
		t.Errorf("exception span = %+v, want full text", highlights[0])
	}
}

func TestRun_ErrorRendered(t *testing.T) {
	t.Parallel()

	failing := func(map[string]interface{}) (interface{}, error) {
		return nil, errors.New("backend unavailable")
	}
	cases := []Case{{Name: "errs", Suite: "net", Output: 1.0}}

	suite, err := Run("net", cases, failing)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	r := suite.Sections[0].Results[0]
	if r.Outcome != report.Failed {
		t.Fatalf("outcome = %v, want %v", r.Outcome, report.Failed)
	}
	if !strings.Contains(r.Actually.Text(), "backend unavailable") {
		t.Errorf("actually = %q, want the error message", r.Actually.Text())
	}
}

func TestRun_DescriptionBecomesNote(t *testing.T) {
	t.Parallel()

	cases := []Case{{
		Name:        "documented",
		Suite:       "sum",
		Input:       map[string]interface{}{"x": 1.0, "y": 2.0},
		Output:      3.0,
		Description: "covers the smallest interesting case",
	}}

	suite, err := Run("sum", cases, sumFunc)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	r := suite.Sections[0].Results[0]
	if len(r.Notes) != 1 || r.Notes[0] != "covers the smallest interesting case" {
		t.Errorf("notes = %v", r.Notes)
	}
}

func TestRun_InvalidTitle(t *testing.T) {
	t.Parallel()

	if _, err := Run("", nil, sumFunc); err == nil {
		t.Error("Run() should reject an empty title")
	}
	if _, err := Run("ok", []Case{{Name: "", Suite: "s", Skip: true}}, sumFunc); err == nil {
		t.Error("Run() should reject a case with an empty name")
	}
}
