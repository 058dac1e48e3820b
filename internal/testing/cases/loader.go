// Package cases loads end-to-end resolution cases from JSON files.
//
// A case file lives at <dir>/<suite>/<name>.json:
//
//	{
//	  "description": "mingw64 gcc under the msys2 root",
//	  "settings": {"msys2.root": "C:\\msys64"},
//	  "args": ["tool", "cc", "--kit", "MinGW64"],
//	  "output": "C:/msys64/mingw64/bin/gcc.exe"
//	}
//
// Settings are written to a settings file before the CLI runs with args.
// Output is the expected stdout without the trailing newline; an empty
// output expects nothing to be printed.
package cases

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Case is a single resolution case.
type Case struct {
	// Name is the case name (derived from filename).
	Name string `json:"-"`

	// Suite is the suite name (directory name).
	Suite string `json:"-"`

	// Settings is the settings document written before the run.
	Settings map[string]any `json:"settings"`

	// Env holds environment variables set for the run.
	Env map[string]string `json:"env,omitempty"`

	// Args are the CLI arguments.
	Args []string `json:"args"`

	// Output is the expected stdout, trimmed.
	Output string `json:"output"`

	// Exit is the expected exit code.
	Exit int `json:"exit,omitempty"`

	// Description provides optional documentation.
	Description string `json:"description,omitempty"`

	// Skip marks the case as skipped if true.
	Skip bool `json:"skip,omitempty"`
}

// LoadSuite loads all cases from dir/suite/*.json, sorted by name.
func LoadSuite(dir, suite string) ([]Case, error) {
	files, err := filepath.Glob(filepath.Join(dir, suite, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	var out []Case
	for _, f := range files {
		c, err := LoadCase(f)
		if err != nil {
			return nil, err
		}
		c.Suite = suite
		out = append(out, *c)
	}
	return out, nil
}

// LoadCase loads a single case from a JSON file.
func LoadCase(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Case
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}

	c.Name = strings.TrimSuffix(filepath.Base(path), ".json")
	return &c, nil
}

// LoadAll loads every suite under dir.
func LoadAll(dir string) (map[string][]Case, error) {
	suites, err := ListSuites(dir)
	if err != nil {
		return nil, err
	}

	all := make(map[string][]Case)
	for _, suite := range suites {
		loaded, err := LoadSuite(dir, suite)
		if err != nil {
			return nil, err
		}
		if len(loaded) > 0 {
			all[suite] = loaded
		}
	}
	return all, nil
}

// ListSuites returns the names of all suites under dir.
func ListSuites(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
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
