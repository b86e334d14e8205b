package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestUnifiedIdentical(t *testing.T) {
	result := Unified("App.swift", "let a = 1\n", "let a = 1\n")
	if result != "" {
		t.Errorf("expected empty diff for identical inputs, got:\n%s", result)
	}
}

func TestUnifiedEmptyInputs(t *testing.T) {
	tests := []struct {
		name         string
		old, updated string
		want         string
	}{
		{"both empty", "", "", ""},
		{
			"old empty", "", "import Foundation\n",
			"--- a/App.swift\n+++ b/App.swift\n@@ -0,0 +1,1 @@\n+import Foundation\n",
		},
		{
			"new empty", "import Foundation\n", "",
			"--- a/App.swift\n+++ b/App.swift\n@@ -1,1 +0,0 @@\n-import Foundation\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Unified("App.swift", tt.old, tt.updated)
			if result != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", result, tt.want)
			}
		})
	}
}

func TestUnifiedModification(t *testing.T) {
	old := "let a = 10000\nlet b = 2\n"
	updated := "let a = 10_000\nlet b = 2\n"

	want := "--- a/Sources/App.swift\n" +
		"+++ b/Sources/App.swift\n" +
		"@@ -1,2 +1,2 @@\n" +
		"-let a = 10000\n" +
		"+let a = 10_000\n" +
		" let b = 2\n"

	if got := Unified("Sources/App.swift", old, updated); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestUnifiedAddition(t *testing.T) {
	old := "struct S {}\n"
	updated := "struct S {}\nextension S {}\n"

	result := Unified("S.swift", old, updated)
	if !strings.Contains(result, "+extension S {}\n") {
		t.Errorf("missing addition line, got:\n%s", result)
	}
	if strings.Contains(result, "-struct S {}") {
		t.Errorf("unchanged line reported as deleted, got:\n%s", result)
	}
}

func TestUnifiedDeletion(t *testing.T) {
	old := "import UIKit\nimport Foundation\nlet x = 1\n"
	updated := "import UIKit\nlet x = 1\n"

	result := Unified("S.swift", old, updated)
	if !strings.Contains(result, "-import Foundation\n") {
		t.Errorf("missing deletion line, got:\n%s", result)
	}
}

func TestUnifiedNoNewlineAtEnd(t *testing.T) {
	result := Unified("S.swift", "let a = 1", "let a = 2")

	want := "-let a = 1\n\\ No newline at end of file\n+let a = 2\n\\ No newline at end of file\n"
	if !strings.HasSuffix(result, want) {
		t.Errorf("missing end-of-file markers, got:\n%s", result)
	}
}

func TestUnifiedTrailingNewlineOnly(t *testing.T) {
	result := Unified("S.swift", "let a = 1", "let a = 1\n")

	want := "-let a = 1\n\\ No newline at end of file\n+let a = 1\n"
	if !strings.HasSuffix(result, want) {
		t.Errorf("got:\n%s", result)
	}
}

func swiftLines(n int) []string {
	lines := make([]string, 0, n)
	for i := range n {
		lines = append(lines, fmt.Sprintf("let v%d = %d\n", i, i))
	}
	return lines
}

func TestUnifiedContextLines(t *testing.T) {
	lines := swiftLines(20)
	old := strings.Join(lines, "")

	changed := append([]string(nil), lines...)
	changed[10] = "let v10 = 1_000\n"
	updated := strings.Join(changed, "")

	result := Unified("S.swift", old, updated)

	if !strings.Contains(result, "@@ -8,7 +8,7 @@\n") {
		t.Errorf("unexpected hunk header, got:\n%s", result)
	}
	if !strings.Contains(result, " let v7 = 7\n") {
		t.Errorf("expected context line before change, got:\n%s", result)
	}
	if !strings.Contains(result, " let v13 = 13\n") {
		t.Errorf("expected context line after change, got:\n%s", result)
	}
	if strings.Contains(result, "let v6 = 6") || strings.Contains(result, "let v14 = 14") {
		t.Errorf("context wider than expected, got:\n%s", result)
	}
}

func TestUnifiedHunkGrouping(t *testing.T) {
	tests := []struct {
		name      string
		changes   []int
		wantHunks int
	}{
		{"single", []int{5}, 1},
		{"close together", []int{5, 9}, 1},
		{"far apart", []int{2, 17}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := swiftLines(20)
			old := strings.Join(lines, "")
			for _, i := range tt.changes {
				lines[i] = "// changed\n"
			}
			hunks := Compute(old, strings.Join(lines, ""))
			if len(hunks) != tt.wantHunks {
				t.Errorf("got %d hunks, want %d", len(hunks), tt.wantHunks)
			}
		})
	}
}

func TestUnifiedLargeFile(t *testing.T) {
	oldLines := swiftLines(1000)
	newLines := append([]string(nil), oldLines...)
	newLines[500] = "let v500 = 500_000\n"
	newLines[999] = "let v999 = 999_000\n"

	result := Unified("Large.swift", strings.Join(oldLines, ""), strings.Join(newLines, ""))

	if !strings.Contains(result, "+let v500 = 500_000\n") {
		t.Error("missing change at line 500")
	}
	if !strings.Contains(result, "+let v999 = 999_000\n") {
		t.Error("missing change at line 999")
	}
	if strings.Count(result, "@@ -") != 2 {
		t.Errorf("expected two hunks, got:\n%s", result)
	}
}

func TestStat(t *testing.T) {
	old := "import UIKit\nlet a = 10000\n"
	updated := "import UIKit\nlet a = 10_000\nlet b = 2\n"

	added, deleted := Stat(Compute(old, updated))
	if added != 2 || deleted != 1 {
		t.Errorf("Stat = +%d -%d, want +2 -1", added, deleted)
	}
}

func TestColorize(t *testing.T) {
	saved := color.NoColor
	t.Cleanup(func() { color.NoColor = saved })

	d := Unified("S.swift", "let a = 10000\n", "let a = 10_000\n")

	color.NoColor = true
	if got := Colorize(d); got != d {
		t.Errorf("Colorize with NoColor changed the diff:\n%q", got)
	}

	color.NoColor = false
	got := Colorize(d)
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected escape sequences, got %q", got)
	}
	if !strings.Contains(got, "-let a = 10000") || !strings.Contains(got, "+let a = 10_000") {
		t.Errorf("colored diff lost content: %q", got)
	}
	if strings.Count(got, "\n") != strings.Count(d, "\n") {
		t.Errorf("line count changed: %q", got)
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"one line with newline", "let a = 1\n", 1},
		{"one line no newline", "let a = 1", 1},
		{"two lines", "a\nb\n", 2},
		{"trailing blank", "a\n\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := splitLines(tt.input)
			if len(lines) != tt.want {
				t.Errorf("splitLines(%q) = %d lines, want %d: %q", tt.input, len(lines), tt.want, lines)
			}
		})
	}
}
