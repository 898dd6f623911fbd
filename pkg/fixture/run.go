package fixture

import (
	"fmt"

	"github.com/AndreyAkinshin/alike/pkg/alike"
	"github.com/AndreyAkinshin/alike/pkg/report"
)

// Func executes one case: it receives the case input and returns the
// actual value to compare against the expected output.
type Func func(input map[string]interface{}) (interface{}, error)

// Run executes the cases against fn and accumulates the outcomes into a
// suite report. Cases are grouped into sections by their Suite name,
// preserving first-appearance order. Skipped cases record as pending; a
// panic inside fn records as a failure whose rendered text carries an
// EXCEPTION highlight.
func Run(title string, cases []Case, fn Func) (*report.Suite, error) {
	suite, err := report.NewSuite(title)
	if err != nil {
		return nil, err
	}

	// Section pointers go stale when the sections slice grows, so track
	// indexes instead.
	index := make(map[string]int)
	for _, c := range cases {
		sectionTitle := c.Suite
		if sectionTitle == "" {
			sectionTitle = title
		}
		idx, ok := index[sectionTitle]
		if !ok {
			if _, err := suite.AddSection(sectionTitle); err != nil {
				return nil, err
			}
			idx = len(suite.Sections) - 1
			index[sectionTitle] = idx
		}

		if err := suite.Sections[idx].AddResult(runCase(c, fn)); err != nil {
			return nil, err
		}
	}

	return suite, nil
}

func runCase(c Case, fn Func) report.Result {
	r := report.Result{Title: c.Name}
	if c.Description != "" {
		r.Notes = append(r.Notes, c.Description)
	}

	if c.Skip {
		r.Outcome = report.Pending
		return r
	}

	actual, panicked, err := invoke(fn, c.Input)
	r.Expected = alike.RenderableFrom(c.Output)
	switch {
	case panicked != nil:
		r.Outcome = report.Failed
		r.Actually = exceptionRenderable(panicked)
	case err != nil:
		r.Outcome = report.Failed
		r.Actually = alike.RenderableFrom(err)
	case alike.Alike(actual, c.Output):
		r.Outcome = report.Passed
		r.Actually = alike.RenderableFrom(actual)
	default:
		r.Outcome = report.Failed
		r.Actually = alike.RenderableFrom(actual)
	}
	return r
}

// invoke runs fn with panic recovery. The recovered value is returned
// separately from ordinary errors so the caller can mark it distinctly.
func invoke(fn Func, input map[string]interface{}) (actual interface{}, panicked interface{}, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			panicked = rec
		}
	}()
	actual, err = fn(input)
	return
}

// exceptionRenderable renders a recovered panic value as a single
// EXCEPTION-highlighted token.
func exceptionRenderable(rec interface{}) alike.Renderable {
	text := fmt.Sprintf("panic(%v)", rec)
	return alike.NewRenderable(text, alike.Highlight{
		Kind:  alike.HighlightException,
		Start: 0,
		Stop:  len(text),
	})
}
