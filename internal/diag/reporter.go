package diag

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// WriteText renders diagnostics in compiler style: a header line, the
// offending source line and a caret under the reported column. src is the
// text the diagnostics refer to; when empty only header lines are written.
// Colouring follows color.NoColor.
func WriteText(w io.Writer, src string, diags []Diagnostic) error {
	var lines []string
	if src != "" {
		lines = strings.Split(src, "\n")
	}

	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	for _, d := range diags {
		sev := severityColor(d.Severity)
		if _, err := fmt.Fprintf(w, "%s: %s: %s %s\n",
			bold(d.Location.String()), sev(d.Severity.String()), d.Text, dim("["+d.Rule+"]")); err != nil {
			return err
		}
		if d.Line < 1 || d.Line > len(lines) {
			continue
		}
		line := strings.TrimRight(lines[d.Line-1], "\r")
		if _, err := fmt.Fprintf(w, "  %s\n  %s%s\n", line, caretIndent(line, d.Column), sev("^")); err != nil {
			return err
		}
	}
	return nil
}

func severityColor(s Severity) func(...any) string {
	if s >= SevError {
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
	return color.New(color.FgYellow, color.Bold).SprintFunc()
}

// caretIndent returns the padding that places a caret under the byte column
// col of line, keeping tabs and honouring wide characters.
func caretIndent(line string, col int) string {
	end := min(max(col-1, 0), len(line))
	var b strings.Builder
	for _, r := range line[:end] {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}

// WriteJSON writes diagnostics as a JSON array.
func WriteJSON(w io.Writer, diags []Diagnostic) error {
	if diags == nil {
		diags = []Diagnostic{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(diags)
}
