package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/AndreyAkinshin/alike/pkg/alike"
)

func TestWriter_Result(t *testing.T) {
	t.Parallel()

	var out, errBuf bytes.Buffer
	w := NewWriterTo(&out, &errBuf, false)

	w.Result(Result{Title: "pass case", Outcome: Passed})
	w.Result(Result{
		Title:    "fail case",
		Outcome:  Failed,
		Actually: alike.RenderableFrom(1),
		Expected: alike.RenderableFrom(2),
	})
	w.Result(Result{Title: "pending case", Outcome: Pending})

	got := out.String()
	for _, want := range []string{
		"  + pass case\n",
		"  x fail case\n",
		"      actually: 1\n",
		"      expected: 2\n",
		"  - pending case (pending)\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in output:\n%s", want, got)
		}
	}
	if errBuf.Len() != 0 {
		t.Errorf("results must not write to stderr: %q", errBuf.String())
	}
}

func TestWriter_Quiet(t *testing.T) {
	t.Parallel()

	var out, errBuf bytes.Buffer
	w := NewWriterTo(&out, &errBuf, false)
	w.SetQuiet(true)

	w.SuiteStart("suite")
	w.SectionStart("section")
	w.Result(Result{Title: "pass case", Outcome: Passed})
	w.Result(Result{
		Title:    "fail case",
		Outcome:  Failed,
		Actually: alike.RenderableFrom("a"),
		Expected: alike.RenderableFrom("b"),
	})

	got := out.String()
	if strings.Contains(got, "suite") || strings.Contains(got, "pass case") {
		t.Errorf("quiet mode should suppress headers and passes:\n%s", got)
	}
	if !strings.Contains(got, "x fail case") {
		t.Errorf("quiet mode must still report failures:\n%s", got)
	}
}

func TestWriter_Color(t *testing.T) {
	t.Parallel()

	var out, errBuf bytes.Buffer
	w := NewWriterTo(&out, &errBuf, true)

	w.Result(Result{Title: "pass case", Outcome: Passed})
	if !strings.Contains(out.String(), ansiGreen+"✓"+ansiReset) {
		t.Errorf("missing colored marker in %q", out.String())
	}

	var plainOut bytes.Buffer
	NewWriterTo(&plainOut, &errBuf, false).Result(Result{Title: "pass case", Outcome: Passed})
	if strings.Contains(plainOut.String(), "\033[") {
		t.Errorf("plain writer must not emit escapes: %q", plainOut.String())
	}
}

func TestWriter_WarningAndError(t *testing.T) {
	t.Parallel()

	var out, errBuf bytes.Buffer
	w := NewWriterTo(&out, &errBuf, false)

	w.Warning("unknown field %q", "reprot")
	w.Error("suite %q not found", "missing")

	got := errBuf.String()
	if !strings.Contains(got, `warning: unknown field "reprot"`) {
		t.Errorf("missing warning in %q", got)
	}
	if !strings.Contains(got, `alike: suite "missing" not found`) {
		t.Errorf("missing error in %q", got)
	}
	if out.Len() != 0 {
		t.Errorf("diagnostics must not write to stdout: %q", out.String())
	}
}

func TestWriter_EmitSuite(t *testing.T) {
	t.Parallel()

	var out, errBuf bytes.Buffer
	w := NewWriterTo(&out, &errBuf, false)
	w.EmitSuite(sampleSuite(t))

	got := out.String()
	for _, want := range []string{
		"=== math checks ===",
		"─── integers ───",
		"+ one is one",
		"x one is two",
		"passed: 1",
		"failed: 1",
		"pending: 1",
		"total: 3",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in output:\n%s", want, got)
		}
	}
}

func TestWriter_Table(t *testing.T) {
	t.Parallel()

	var out, errBuf bytes.Buffer
	w := NewWriterTo(&out, &errBuf, false)
	w.Table([]string{"SUITE", "CASES"}, [][]string{
		{"numbers", "12"},
		{"strings", "7"},
	})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out.String())
	}
	if lines[0] != "SUITE    CASES" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "-------  -----" {
		t.Errorf("separator = %q", lines[1])
	}
	if lines[2] != "numbers  12   " {
		t.Errorf("row = %q", lines[2])
	}
}
