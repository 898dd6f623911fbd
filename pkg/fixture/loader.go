// Package fixture loads test-case files and runs them through the
// comparator into a suite report.
//
// Case files live in <projectRoot>/tests/<suite>/ and may be JSON or
// YAML. A minimal case file:
//
//	{
//	    "input": { "x": 2, "y": 3 },
//	    "output": 5
//	}
//
// Example usage in a Go test:
//
//	func TestCalculation(t *testing.T) {
//	    root, err := fixture.FindProjectRoot()
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//
//	    cases, err := fixture.LoadSuite(root, "calculation")
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//
//	    suite, err := fixture.Run("calculation", cases, runCalculation)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    if suite.Tally().Failed > 0 {
//	        out, _ := report.Render(suite, report.Plain, report.Verbose)
//	        t.Error(out)
//	    }
//	}
package fixture

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/alike/internal/errors"
)

// Case represents a single test case loaded from a case file.
type Case struct {
	// Name is the case name (derived from filename).
	Name string `json:"-" yaml:"-"`

	// Suite is the suite name (directory name).
	Suite string `json:"-" yaml:"-"`

	// Input contains the input data for the case.
	Input map[string]interface{} `json:"input" yaml:"input"`

	// Output contains the expected output.
	Output interface{} `json:"output" yaml:"output"`

	// Description provides optional documentation.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Skip marks the case as pending if true.
	Skip bool `json:"skip,omitempty" yaml:"skip,omitempty"`

	// Tags provides optional categorization.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// caseExtensions are the recognized case file extensions, in load order.
var caseExtensions = []string{".json", ".yaml", ".yml"}

// LoadSuite loads all case files from a suite directory, sorted by name.
func LoadSuite(projectRoot, suite string) ([]Case, error) {
	dir := filepath.Join(projectRoot, "tests", suite)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var cases []Case
	for _, entry := range entries {
		if entry.IsDir() || !isCaseFile(entry.Name()) {
			continue
		}
		c, err := LoadCase(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		c.Suite = suite
		cases = append(cases, *c)
	}

	sort.Slice(cases, func(i, j int) bool { return cases[i].Name < cases[j].Name })
	return cases, nil
}

func isCaseFile(name string) bool {
	ext := filepath.Ext(name)
	for _, e := range caseExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// LoadCase loads a single case from a JSON or YAML file.
func LoadCase(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Case
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, errors.Wrap(err, "parse case file "+path)
		}
	default:
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, errors.Wrap(err, "parse case file "+path)
		}
	}

	c.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &c, nil
}

// LoadAllSuites loads cases from all suites in the tests directory.
func LoadAllSuites(projectRoot string) (map[string][]Case, error) {
	testsDir := filepath.Join(projectRoot, "tests")
	entries, err := os.ReadDir(testsDir)
	if err != nil {
		return nil, err
	}

	suites := make(map[string][]Case)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		suiteName := entry.Name()
		cases, err := LoadSuite(projectRoot, suiteName)
		if err != nil {
			return nil, err
		}

		if len(cases) > 0 {
			suites[suiteName] = cases
		}
	}

	return suites, nil
}

// FindProjectRoot walks up the directory tree to find .alike/config.json.
// It returns the directory containing .alike/config.json.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindProjectRootFrom(cwd)
}

// FindProjectRootFrom finds the project root starting from a specific directory.
func FindProjectRootFrom(startDir string) (string, error) {
	dir := startDir

	for {
		configPath := filepath.Join(dir, ".alike", "config.json")
		if _, err := os.Stat(configPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", errors.NotFound("project root (.alike/config.json)", startDir)
}

// ListSuites returns the names of all available suites.
func ListSuites(projectRoot string) ([]string, error) {
	testsDir := filepath.Join(projectRoot, "tests")
	entries, err := os.ReadDir(testsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var suites []string
	for _, entry := range entries {
		if entry.IsDir() {
			suites = append(suites, entry.Name())
		}
	}

	return suites, nil
}

// SuiteExists checks if a suite directory exists.
func SuiteExists(projectRoot, suite string) bool {
	suiteDir := filepath.Join(projectRoot, "tests", suite)
	info, err := os.Stat(suiteDir)
	return err == nil && info.IsDir()
}

// CaseExists checks if a specific case exists in any recognized format.
func CaseExists(projectRoot, suite, name string) bool {
	for _, ext := range caseExtensions {
		path := filepath.Join(projectRoot, "tests", suite, name+ext)
		if _, err := os.Stat(path); err == nil {
			return true
		}
	}
	return false
}
