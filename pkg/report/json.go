package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/AndreyAkinshin/alike/pkg/alike"
)

// jsonDocument is the machine-readable report form. Field order is fixed
// by the struct layout so the output is stable across runs.
type jsonDocument struct {
	Title     string        `json:"title"`
	Verbosity string        `json:"verbosity"`
	Counts    jsonCounts    `json:"counts"`
	Sections  []jsonSection `json:"sections,omitempty"`
}

type jsonCounts struct {
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Pending int `json:"pending"`
	Total   int `json:"total"`
}

type jsonSection struct {
	Title   string       `json:"title"`
	Counts  jsonCounts   `json:"counts"`
	Results []jsonResult `json:"results,omitempty"`
}

type jsonResult struct {
	Title    string          `json:"title"`
	Outcome  string          `json:"outcome"`
	Notes    []string        `json:"notes,omitempty"`
	Actually *jsonRenderable `json:"actually,omitempty"`
	Expected *jsonRenderable `json:"expected,omitempty"`
}

type jsonRenderable struct {
	Text       string          `json:"text"`
	Highlights []jsonHighlight `json:"highlights"`
}

type jsonHighlight struct {
	Kind  string `json:"kind"`
	Start int    `json:"start"`
	Stop  int    `json:"stop"`
}

// renderJSON renders the suite as an indented JSON document. Verbosity
// controls inclusion: Quiet keeps tallies only, Verbose adds failed
// results with both rendered sides, Very lists every result, and
// VeryVery additionally includes notes and renders for passing results.
func renderJSON(s *Suite, verbosity Verbosity) (string, error) {
	doc := jsonDocument{
		Title:     s.Title,
		Verbosity: verbosity.String(),
		Counts:    toJSONCounts(s.Tally()),
	}

	if verbosity > Quiet {
		for i := range s.Sections {
			sec := &s.Sections[i]
			js := jsonSection{
				Title:  sec.Title,
				Counts: toJSONCounts(sec.Tally()),
			}
			for _, r := range sectionResultsToShow(sec, verbosity) {
				js.Results = append(js.Results, toJSONResult(r, verbosity))
			}
			doc.Sections = append(doc.Sections, js)
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("report: marshal JSON report: %w", err)
	}
	return string(data) + "\n", nil
}

func toJSONCounts(c Counts) jsonCounts {
	return jsonCounts{Passed: c.Passed, Failed: c.Failed, Pending: c.Pending, Total: c.Total}
}

func toJSONResult(r *Result, verbosity Verbosity) jsonResult {
	jr := jsonResult{
		Title:   r.Title,
		Outcome: r.Outcome.String(),
	}
	if verbosity >= VeryVery {
		jr.Notes = r.Notes
	}
	includeRenders := r.Outcome == Failed || (verbosity >= VeryVery && r.Outcome == Passed)
	if includeRenders {
		jr.Actually = toJSONRenderable(r.Actually)
		jr.Expected = toJSONRenderable(r.Expected)
	}
	return jr
}

func toJSONRenderable(r alike.Renderable) *jsonRenderable {
	highlights := r.Highlights()
	out := &jsonRenderable{
		Text:       r.Text(),
		Highlights: make([]jsonHighlight, 0, len(highlights)),
	}
	for _, h := range highlights {
		out.Highlights = append(out.Highlights, jsonHighlight{
			Kind:  strings.ToLower(h.Kind.String()),
			Start: h.Start,
			Stop:  h.Stop,
		})
	}
	return out
}
