// Package testutil provides shared test helpers: golden directory comparison
// and a harness that runs a single rule over literal source text.
package testutil

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/donaldgifford/swiftfmt/internal/diag"
)

// Update is a flag that, when set, regenerates golden files from current output.
// Usage: go test ./... -update
var Update = flag.Bool("update", false, "update golden files")

// Files of a golden case directory. Only input.swift is required; a missing
// findings.txt skips the diagnostics comparison and a missing swiftfmt.yml
// means default settings.
const (
	InputFile    = "input.swift"
	ExpectedFile = "expected.swift"
	FindingsFile = "findings.txt"
	ConfigFile   = "swiftfmt.yml"
)

// Case is one golden directory.
type Case struct {
	Name  string
	Dir   string
	Input string
	// ConfigPath is the case's own config file, or empty.
	ConfigPath string
}

// Outcome is what a golden function produced for a case.
type Outcome struct {
	Output      string
	Diagnostics []diag.Diagnostic
}

// GoldenFunc runs the code under test over a case.
type GoldenFunc func(t *testing.T, c Case) Outcome

// RunGolden runs the golden case in dir: the output is compared with
// expected.swift and, when present, the findings with findings.txt.
func RunGolden(t *testing.T, dir string, fn GoldenFunc) {
	t.Helper()

	c := Case{Name: filepath.Base(dir), Dir: dir}
	input, err := os.ReadFile(filepath.Join(dir, InputFile))
	if err != nil {
		t.Fatalf("failed to read case %s: %v", dir, err)
	}
	c.Input = string(input)
	if cfg := filepath.Join(dir, ConfigFile); exists(cfg) {
		c.ConfigPath = cfg
	}

	got := fn(t, c)
	compare(t, filepath.Join(dir, ExpectedFile), got.Output, true)
	compare(t, filepath.Join(dir, FindingsFile), FormatFindings(got.Diagnostics), false)
}

// RunGoldenDir runs every case directory under root as a subtest.
func RunGoldenDir(t *testing.T, root string, fn GoldenFunc) {
	t.Helper()

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("failed to read testdata dir %s: %v", root, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		t.Run(entry.Name(), func(t *testing.T) {
			RunGolden(t, filepath.Join(root, entry.Name()), fn)
		})
	}
}

// FormatFindings renders diagnostics one per line as
// "line:column: rule: message", the format of findings.txt.
func FormatFindings(diags []diag.Diagnostic) string {
	var b strings.Builder
	for _, d := range diags {
		fmt.Fprintf(&b, "%d:%d: %s: %s\n", d.Line, d.Column, d.Rule, d.Text)
	}
	return b.String()
}

// compare checks actual against the golden file at path, or rewrites the
// file under -update. Optional files that do not exist are not compared.
func compare(t *testing.T, path, actual string, required bool) {
	t.Helper()

	if *Update {
		if !required && actual == "" && !exists(path) {
			return
		}
		if err := os.WriteFile(path, []byte(actual), 0o644); err != nil {
			t.Fatalf("failed to update golden file %s: %v", path, err)
		}
		t.Logf("updated golden file: %s", path)
		return
	}

	want, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return
	}
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}

	if actual != string(want) {
		t.Errorf("mismatch for %s:\n--- expected\n%s\n--- actual\n%s", path, want, actual)
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
