// Package report accumulates comparison outcomes into a structured
// test-suite report and renders it in multiple styles and verbosities.
package report

import (
	"github.com/AndreyAkinshin/alike/internal/errors"
	"github.com/AndreyAkinshin/alike/pkg/alike"
)

// Outcome is the recorded state of a single result.
type Outcome int

const (
	// Passed means the actual value compared alike to the expected one.
	Passed Outcome = iota
	// Failed means the comparison did not hold.
	Failed
	// Pending means the case was recorded but not executed.
	Pending
)

// String returns the lowercase outcome name.
func (o Outcome) String() string {
	switch o {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	default:
		return "pending"
	}
}

// Result records one comparison: its title, outcome, optional free-form
// notes, and the rendered forms of both sides. Pending results carry no
// renderables.
type Result struct {
	Title    string
	Outcome  Outcome
	Notes    []string
	Actually alike.Renderable
	Expected alike.Renderable
}

// Section groups results under a title.
type Section struct {
	Title   string
	Results []Result
}

// Suite is a complete report: a titled collection of sections.
type Suite struct {
	Title    string
	Sections []Section
}

// Counts holds tallied outcome counts.
type Counts struct {
	Passed  int
	Failed  int
	Pending int
	Total   int
}

// Add adds another Counts to this one, aggregating the tallies.
func (c *Counts) Add(other Counts) {
	c.Passed += other.Passed
	c.Failed += other.Failed
	c.Pending += other.Pending
	c.Total += other.Total
}

// Tally counts the outcomes of all results in the section.
func (s *Section) Tally() Counts {
	var c Counts
	for _, r := range s.Results {
		switch r.Outcome {
		case Passed:
			c.Passed++
		case Failed:
			c.Failed++
		default:
			c.Pending++
		}
		c.Total++
	}
	return c
}

// Tally aggregates the tallies of all sections in the suite.
func (s *Suite) Tally() Counts {
	var c Counts
	for i := range s.Sections {
		c.Add(s.Sections[i].Tally())
	}
	return c
}

// AddSection appends a section to the suite after validating its title.
// The returned pointer is valid until the next AddSection call.
func (s *Suite) AddSection(title string) (*Section, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	s.Sections = append(s.Sections, Section{Title: title})
	return &s.Sections[len(s.Sections)-1], nil
}

// AddResult appends a result to the section after validating its title
// and notes.
func (sec *Section) AddResult(r Result) error {
	if err := ValidateTitle(r.Title); err != nil {
		return err
	}
	if err := ValidateNotes(r.Notes); err != nil {
		return err
	}
	sec.Results = append(sec.Results, r)
	return nil
}

// NewSuite creates a suite with a validated title.
func NewSuite(title string) (*Suite, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	return &Suite{Title: title}, nil
}

// ValidateTitle checks that a title is a non-empty printable string.
func ValidateTitle(title string) error {
	if title == "" {
		return errors.Validation("title must not be empty")
	}
	return validatePrintable("title", title)
}

// ValidateNotes checks every note against the printable rule.
func ValidateNotes(notes []string) error {
	for _, n := range notes {
		if err := validatePrintable("note", n); err != nil {
			return err
		}
	}
	return nil
}

// validatePrintable enforces the printable-ASCII-except-backslash rule
// for free-form report strings.
func validatePrintable(what, s string) error {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 0x20 || b > 0x7e || b == '\\' {
			return errors.Validationf("%s contains forbidden byte 0x%02x at offset %d", what, b, i)
		}
	}
	return nil
}
