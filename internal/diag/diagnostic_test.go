package diag

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorAddFillsFile(t *testing.T) {
	c := NewCollector("a.swift")
	c.Add("r1", Warning("first"), Location{Line: 2, Column: 1})
	c.Add("r2", Error("second"), Location{File: "b.swift", Line: 1, Column: 4})

	require.Equal(t, 2, c.Len())
	assert.Equal(t, "a.swift", c.Items()[0].File)
	assert.Equal(t, "b.swift", c.Items()[1].File)
	assert.True(t, c.HasErrors())
}

func TestCollectorSort(t *testing.T) {
	c := NewCollector("f.swift")
	c.Add("b", Warning("x"), Location{Line: 3, Column: 1})
	c.Add("b", Warning("x"), Location{Line: 1, Column: 9})
	c.Add("a", Warning("x"), Location{Line: 1, Column: 9})
	c.Add("a", Warning("x"), Location{Line: 1, Column: 2})
	c.Sort()

	var got []string
	for _, d := range c.Items() {
		got = append(got, d.Location.String()+" "+d.Rule)
	}
	assert.Equal(t, []string{
		"f.swift:1:2 a",
		"f.swift:1:9 a",
		"f.swift:1:9 b",
		"f.swift:3:1 b",
	}, got)
}

func TestCollectorCount(t *testing.T) {
	c := NewCollector("f.swift")
	c.Add("r", Warning("replace '()' with 'Void'"), Location{Line: 1, Column: 1})
	c.Add("r", Warning("replace '()' with 'Void'"), Location{Line: 2, Column: 1})
	c.Add("r", Error("replace '()' with 'Void'"), Location{Line: 3, Column: 1})

	assert.Equal(t, 2, c.Count(Warning("replace '()' with 'Void'")))
	assert.Equal(t, 1, c.Count(Error("replace '()' with 'Void'")))
	assert.Zero(t, c.Count(Warning("other")))
	assert.False(t, NewCollector("").HasErrors())
}

func TestParseSeverity(t *testing.T) {
	s, err := ParseSeverity("error")
	require.NoError(t, err)
	assert.Equal(t, SevError, s)

	s, err = ParseSeverity("warning")
	require.NoError(t, err)
	assert.Equal(t, SevWarning, s)

	_, err = ParseSeverity("fatal")
	assert.Error(t, err)
}

func TestWriteText(t *testing.T) {
	color.NoColor = true

	src := "let a = 1\n\tfoo() { }\n"
	diags := []Diagnostic{
		{Rule: "r", Message: Warning("remove '()' after foo"), Location: Location{File: "f.swift", Line: 2, Column: 5}},
		{Rule: "r", Message: Error("out of range"), Location: Location{File: "f.swift", Line: 9, Column: 1}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, src, diags))

	want := "f.swift:2:5: warning: remove '()' after foo [r]\n" +
		"  \tfoo() { }\n" +
		"  \t   ^\n" +
		"f.swift:9:1: error: out of range [r]\n"
	assert.Equal(t, want, buf.String())
}

func TestCaretIndentWideRunes(t *testing.T) {
	// "日本" is four columns wide and six bytes long.
	assert.Equal(t, "    ", caretIndent("日本x", 7))
	assert.Equal(t, "", caretIndent("abc", 0))
	assert.Equal(t, "   ", caretIndent("abc", 40))
}

func TestWriteJSON(t *testing.T) {
	diags := []Diagnostic{
		{Rule: "r", Message: Warning("m"), Location: Location{File: "f.swift", Line: 1, Column: 2}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, diags))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "r", got[0]["rule"])
	assert.Equal(t, "warning", got[0]["severity"])
	assert.Equal(t, "m", got[0]["message"])
	assert.Equal(t, "f.swift", got[0]["file"])
	assert.InDelta(t, 1, got[0]["line"], 0)

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}
