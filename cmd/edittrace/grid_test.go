package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edittrace"
)

// TestRenderGrid_RevealProgression checks that only replayed cells are
// visible: with one step revealed, every other cell is a placeholder.
func TestRenderGrid_RevealProgression(t *testing.T) {
	tr := edittrace.BuildStrings("ab", "a")

	out := renderGrid(tr, 1, nil)
	assert.Equal(t, (2+1)*(1+1)-1, strings.Count(out, "·"), "all but the origin stay hidden")

	out = renderGrid(tr, len(tr.Steps), nil)
	assert.Zero(t, strings.Count(out, "·"), "full replay reveals every cell")
}

// TestRenderGrid_PathMarkers checks the backtrace overlay brackets.
func TestRenderGrid_PathMarkers(t *testing.T) {
	tr := edittrace.BuildStrings("kitten", "sitting")
	path, err := tr.Backtrace(tr.Final())
	require.NoError(t, err)

	out := renderGrid(tr, len(tr.Steps), path)
	assert.Contains(t, out, "[", "path cells are bracketed")
	assert.Contains(t, out, "*", "current cell is starred")
	assert.Contains(t, out, "ε", "empty-prefix headers present")
}

// TestDescribeStep pins the inspector line format for an interior step.
func TestDescribeStep(t *testing.T) {
	tr := edittrace.BuildStrings("ab", "a")

	// First interior step: (1,1), 'a' vs 'a', a match from the origin.
	var step edittrace.Step[rune]
	for _, s := range tr.Steps {
		if s.Cell.I == 1 && s.Cell.J == 1 {
			step = s
			break
		}
	}

	got := describeStep(step)
	assert.Contains(t, got, "step (1,1)")
	assert.Contains(t, got, "compare 'a'/'a'")
	assert.Contains(t, got, "chosen: match(0) from (0,0)")
}

// TestExportHTML writes the standalone page and checks the table and
// path highlighting made it in.
func TestExportHTML(t *testing.T) {
	tr := edittrace.BuildStrings("abc", "abd")
	path, err := tr.Backtrace(tr.Final())
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "trace.html")
	require.NoError(t, exportHTML(out, tr, path))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "= 1", "distance in the title line")
	assert.Contains(t, html, `class="path`, "backtrace cells highlighted")
	assert.Contains(t, html, "steps (16)", "step count rendered")
}
