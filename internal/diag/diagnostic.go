// Package diag collects and reports the findings produced by rules.
package diag

import (
	"fmt"
	"sort"
)

// Message is the severity and human-readable text of a finding.
type Message struct {
	Severity Severity `json:"severity"`
	Text     string   `json:"message"`
}

// Warning builds a warning message.
func Warning(format string, args ...any) Message {
	return Message{Severity: SevWarning, Text: fmt.Sprintf(format, args...)}
}

// Error builds an error message.
func Error(format string, args ...any) Message {
	return Message{Severity: SevError, Text: fmt.Sprintf(format, args...)}
}

func (m Message) String() string {
	return m.Severity.String() + ": " + m.Text
}

// Location identifies a position in a source file. Line and Column are
// 1-based; Column counts bytes.
type Location struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Diagnostic is a single finding emitted by a rule.
type Diagnostic struct {
	Rule string `json:"rule"`
	Message
	Location
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s [%s]", d.Location, d.Message, d.Rule)
}

// Collector accumulates the diagnostics of one run. It is not safe for
// concurrent use; each unit of work owns its own Collector.
type Collector struct {
	file  string
	items []Diagnostic
}

// NewCollector creates an empty collector for diagnostics in file.
func NewCollector(file string) *Collector {
	return &Collector{file: file}
}

// File returns the file name given to NewCollector.
func (c *Collector) File() string { return c.file }

// Add records a finding. An empty loc.File is filled with the collector's
// file name.
func (c *Collector) Add(rule string, msg Message, loc Location) {
	if loc.File == "" {
		loc.File = c.file
	}
	c.items = append(c.items, Diagnostic{Rule: rule, Message: msg, Location: loc})
}

// Items returns the recorded diagnostics in emission order. The slice must
// not be modified.
func (c *Collector) Items() []Diagnostic {
	return c.items
}

func (c *Collector) Len() int {
	return len(c.items)
}

// Sort orders diagnostics by line, column and rule name.
func (c *Collector) Sort() {
	sort.SliceStable(c.items, func(i, j int) bool {
		di, dj := c.items[i], c.items[j]
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		return di.Rule < dj.Rule
	})
}

// Count returns how many diagnostics carry exactly msg.
func (c *Collector) Count(msg Message) int {
	n := 0
	for _, d := range c.items {
		if d.Message == msg {
			n++
		}
	}
	return n
}

// HasErrors reports whether any diagnostic has error severity.
func (c *Collector) HasErrors() bool {
	for i := range c.items {
		if c.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}
