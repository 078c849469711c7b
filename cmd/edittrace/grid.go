package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/edittrace"
)

// renderGrid draws the cost table with the first `revealed` steps
// filled in; unrevealed cells show a dot. Cells on the backtrace path
// are wrapped in brackets, the current (last revealed) cell in stars.
//
// Replaying Steps in emission order is exactly the consumer contract:
// a cell becomes visible the moment its Step has been replayed.
func renderGrid(tr *edittrace.Trace[rune], revealed int, path map[edittrace.Coord]struct{}) string {
	n, m := len(tr.A), len(tr.B)

	shown := make(map[edittrace.Coord]struct{}, revealed)
	for _, s := range tr.Steps[:revealed] {
		shown[s.Cell] = struct{}{}
	}
	var current edittrace.Coord
	if revealed > 0 {
		current = tr.Steps[revealed-1].Cell
	}

	var sb strings.Builder

	// Header row: target tokens across the top.
	sb.WriteString("   ")
	sb.WriteString(fmt.Sprintf("%5s", "ε"))
	for _, r := range tr.B {
		sb.WriteString(fmt.Sprintf("%5c", r))
	}
	sb.WriteByte('\n')

	for i := 0; i <= n; i++ {
		if i == 0 {
			sb.WriteString("  ε")
		} else {
			sb.WriteString(fmt.Sprintf("  %c", tr.A[i-1]))
		}
		for j := 0; j <= m; j++ {
			cell := edittrace.Coord{I: i, J: j}
			if _, ok := shown[cell]; !ok {
				sb.WriteString("    ·")
				continue
			}
			val := tr.Cost[i][j]
			_, onPath := path[cell]
			switch {
			case revealed > 0 && cell == current:
				sb.WriteString(fmt.Sprintf(" *%2d*", val))
			case onPath:
				sb.WriteString(fmt.Sprintf(" [%2d]", val))
			default:
				sb.WriteString(fmt.Sprintf("  %2d ", val))
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// describeStep formats one Step for the inspector line under the grid:
// coordinates, compared tokens, every candidate, and the chosen one.
func describeStep(s edittrace.Step[rune]) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("step (%d,%d): compare %s/%s", s.Cell.I, s.Cell.J, tokenLabel(s.AToken, s.HasA), tokenLabel(s.BToken, s.HasB)))
	sb.WriteString(" | candidates:")
	for _, c := range s.Candidates {
		sb.WriteString(fmt.Sprintf(" %s(%d)", c.Op, c.Value))
	}
	sb.WriteString(fmt.Sprintf(" | chosen: %s(%d) from (%d,%d)", s.Chosen.Op, s.Chosen.Value, s.Chosen.From.I, s.Chosen.From.J))

	return sb.String()
}

// tokenLabel renders a compared token, or ε for the empty prefix at
// table boundaries.
func tokenLabel(r rune, ok bool) string {
	if !ok {
		return "ε"
	}

	return fmt.Sprintf("%q", r)
}
