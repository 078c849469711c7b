package edittrace_test

import (
	"fmt"

	"github.com/katalvlaran/edittrace"
)

// ExampleBuildStrings traces the classic kitten→sitting computation:
// three edits, one Step per table cell in the contract order, the last
// Step filling the final cell.
func ExampleBuildStrings() {
	tr := edittrace.BuildStrings("kitten", "sitting")

	last := tr.Steps[len(tr.Steps)-1]
	fmt.Printf("distance=%d\n", tr.Distance())
	fmt.Printf("steps=%d\n", len(tr.Steps))
	fmt.Printf("last cell=(%d,%d) chosen=%s\n", last.Cell.I, last.Cell.J, last.Chosen.Op)
	// Output:
	// distance=3
	// steps=56
	// last cell=(6,7) chosen=insert
}

// ExampleTrace_Backtrace reconstructs one optimal path and tests cells
// for membership — the only use the result set is meant for.
func ExampleTrace_Backtrace() {
	tr := edittrace.BuildStrings("kitten", "sitting")

	path, err := tr.Backtrace(tr.Final())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	_, onPath := path[edittrace.Coord{I: 3, J: 3}]
	fmt.Printf("cells=%d\n", len(path))
	fmt.Printf("(3,3) on path=%v\n", onPath)
	// Output:
	// cells=8
	// (3,3) on path=true
}

// ExampleBuild aligns word tokens instead of runes; any comparable
// token type works.
func ExampleBuild() {
	a := []string{"the", "quick", "brown", "fox"}
	b := []string{"the", "slow", "fox"}

	tr := edittrace.Build(a, b)
	fmt.Printf("distance=%d\n", tr.Distance())
	// Output:
	// distance=2
}

// ExampleDistanceStrings shows the trace-free fast path.
func ExampleDistanceStrings() {
	fmt.Println(edittrace.DistanceStrings("intention", "execution"))
	// Output:
	// 5
}
