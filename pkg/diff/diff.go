// Package diff renders line-oriented unified diffs.
package diff

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fatih/color"
)

// contextLines is the number of unchanged lines shown around each change.
const contextLines = 3

// Op is the kind of a diff line.
type Op int8

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) prefix() byte {
	switch o {
	case Insert:
		return '+'
	case Delete:
		return '-'
	}
	return ' '
}

// Line is one line of a hunk, without its line terminator.
type Line struct {
	Op   Op
	Text string
	// NoEOL marks the final line of a text that does not end in a newline.
	NoEOL bool
}

// Hunk is a run of changes with surrounding context. Starts are 1-based;
// a start of 0 with a zero count denotes an insertion at the top.
type Hunk struct {
	OldStart, OldLines int
	NewStart, NewLines int
	Lines              []Line
}

// Compute returns the hunks that turn oldText into newText.
func Compute(oldText, newText string) []Hunk {
	if oldText == newText {
		return nil
	}
	a, b := splitLines(oldText), splitLines(newText)
	return group(annotate(a, b, script(a, b)))
}

// Unified generates a unified diff between oldText and newText.
// Returns an empty string if the inputs are identical.
func Unified(filename, oldText, newText string) string {
	hunks := Compute(oldText, newText)
	if len(hunks) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", filename)
	fmt.Fprintf(&b, "+++ b/%s\n", filename)
	for _, h := range hunks {
		h.writeTo(&b)
	}
	return b.String()
}

// Stat counts inserted and deleted lines across hunks.
func Stat(hunks []Hunk) (added, deleted int) {
	for _, h := range hunks {
		for _, l := range h.Lines {
			switch l.Op {
			case Insert:
				added++
			case Delete:
				deleted++
			}
		}
	}
	return added, deleted
}

// Colorize highlights a unified diff for terminal output. The result is
// unchanged when color.NoColor is set.
func Colorize(d string) string {
	header := color.New(color.Bold)
	hunk := color.New(color.FgCyan)
	added := color.New(color.FgGreen)
	deleted := color.New(color.FgRed)

	var b strings.Builder
	for _, line := range strings.SplitAfter(d, "\n") {
		text, nl := strings.CutSuffix(line, "\n")
		switch {
		case strings.HasPrefix(text, "+++ "), strings.HasPrefix(text, "--- "):
			text = header.Sprint(text)
		case strings.HasPrefix(text, "@@"):
			text = hunk.Sprint(text)
		case strings.HasPrefix(text, "+"):
			text = added.Sprint(text)
		case strings.HasPrefix(text, "-"):
			text = deleted.Sprint(text)
		}
		b.WriteString(text)
		if nl {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (h *Hunk) writeTo(b *strings.Builder) {
	fmt.Fprintf(b, "@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldLines, h.NewStart, h.NewLines)
	for _, l := range h.Lines {
		b.WriteByte(l.Op.prefix())
		b.WriteString(l.Text)
		b.WriteByte('\n')
		if l.NoEOL {
			b.WriteString("\\ No newline at end of file\n")
		}
	}
}

// splitLines splits text into lines, each keeping its newline. An empty
// string produces zero lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	// SplitAfter leaves an empty trailing element when s ends with \n.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// script computes a shortest edit script from a to b with the Myers
// algorithm.
func script(a, b []string) []Op {
	n, m := len(a), len(b)
	limit := n + m
	if limit == 0 {
		return nil
	}

	// v[off+k] is the furthest x reached on diagonal k = x - y.
	off := limit + 1
	v := make([]int, 2*limit+2)
	var trace [][]int

	for d := 0; d <= limit; d++ {
		trace = append(trace, slices.Clone(v))
		for k := -d; k <= d; k += 2 {
			var x int
			if down(v, off, k, d) {
				x = v[off+k+1]
			} else {
				x = v[off+k-1] + 1
			}
			y := x - k
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}
			v[off+k] = x
			if x >= n && y >= m {
				return walkBack(trace, n, m, off)
			}
		}
	}
	return nil
}

// down reports whether diagonal k at step d is reached by an insertion.
func down(v []int, off, k, d int) bool {
	return k == -d || (k != d && v[off+k-1] < v[off+k+1])
}

// walkBack turns the saved frontier of every step into the edit script.
func walkBack(trace [][]int, x, y, off int) []Op {
	var ops []Op
	for d := len(trace) - 1; d > 0; d-- {
		v := trace[d]
		k := x - y
		prevK := k - 1
		if down(v, off, k, d) {
			prevK = k + 1
		}
		prevX := v[off+prevK]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			ops = append(ops, Equal)
			x--
			y--
		}
		if prevK == k+1 {
			ops = append(ops, Insert)
		} else {
			ops = append(ops, Delete)
		}
		x, y = prevX, prevY
	}
	for ; x > 0; x-- {
		ops = append(ops, Equal)
	}
	slices.Reverse(ops)
	return ops
}

// entry is a script step with the number of old and new lines before it.
type entry struct {
	Line
	oldPos, newPos int
}

func annotate(a, b []string, ops []Op) []entry {
	out := make([]entry, 0, len(ops))
	i, j := 0, 0
	for _, op := range ops {
		e := entry{oldPos: i, newPos: j}
		var raw string
		switch op {
		case Equal:
			raw = a[i]
			i++
			j++
		case Delete:
			raw = a[i]
			i++
		case Insert:
			raw = b[j]
			j++
		}
		text, nl := strings.CutSuffix(raw, "\n")
		e.Line = Line{Op: op, Text: text, NoEOL: !nl}
		out = append(out, e)
	}
	return out
}

// group splits the annotated script into hunks, merging changes whose
// context would overlap.
func group(es []entry) []Hunk {
	var hunks []Hunk
	i := 0
	for i < len(es) {
		for i < len(es) && es[i].Op == Equal {
			i++
		}
		if i == len(es) {
			break
		}

		start := max(i-contextLines, 0)
		last := i
		for j := i + 1; j < len(es) && j-last <= 2*contextLines; j++ {
			if es[j].Op != Equal {
				last = j
			}
		}
		stop := min(last+contextLines+1, len(es))
		hunks = append(hunks, makeHunk(es[start:stop]))
		i = stop
	}
	return hunks
}

func makeHunk(es []entry) Hunk {
	h := Hunk{Lines: make([]Line, 0, len(es))}
	for _, e := range es {
		if e.Op != Insert {
			h.OldLines++
		}
		if e.Op != Delete {
			h.NewLines++
		}
		h.Lines = append(h.Lines, e.Line)
	}
	h.OldStart = es[0].oldPos
	if h.OldLines > 0 {
		h.OldStart++
	}
	h.NewStart = es[0].newPos
	if h.NewLines > 0 {
		h.NewStart++
	}
	return h
}
