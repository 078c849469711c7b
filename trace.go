package edittrace

// Build — Levenshtein dynamic programming with a full decision trace.
//
// Description:
//
//	Build computes the unit-cost edit distance between a and b while
//	recording the complete cost table, one Step per cell in a fixed,
//	replayable order, and one Parent link per cell for backtrace
//	reconstruction.
//
// Algorithm Outline:
//  1. Let n = len(a), m = len(b). Allocate the (n+1)×(m+1) table.
//  2. Boundary column: table[i][0] = i for i=0..n. Cell (0,0) is OpInit;
//     each following cell is a forced OpDelete from (i-1,0). One Step
//     per cell, in increasing i.
//  3. Boundary row: table[0][j] = j for j=1..m, a forced OpInsert from
//     (0,j-1). One Step per cell, in increasing j.
//  4. Interior, row-major (i=1..n outer, j=1..m inner):
//     diag   = table[i-1][j-1] + (0 if a[i-1]==b[j-1] else 1)
//     delete = table[i-1][j]   + 1
//     insert = table[i][j-1]   + 1
//     table[i][j] = min of the three; ties prefer diagonal, then
//     delete, then insert. The Step records all three candidates in
//     that preference order plus the chosen one.
//  5. Total Steps emitted: (n+1) + m + n*m.
//
// The step order and the tie-break are part of the contract: consumers
// replay Steps to drive reveal order, so both must stay stable.
//
// Complexity: O(N·M) time and memory.
func Build[T comparable](a, b []T) *Trace[T] {
	n, m := len(a), len(b)

	t := &Trace[T]{
		A:       append([]T(nil), a...),
		B:       append([]T(nil), b...),
		Cost:    make([][]int, n+1),
		Steps:   make([]Step[T], 0, (n+1)+m+n*m),
		Parents: make([][]Parent, n+1),
	}
	for i := 0; i <= n; i++ {
		t.Cost[i] = make([]int, m+1)
		t.Parents[i] = make([]Parent, m+1)
	}

	// Boundary column: (0,0) origin, then forced deletions down column 0.
	t.Cost[0][0] = 0
	t.Parents[0][0] = Parent{Op: OpInit}
	t.Steps = append(t.Steps, Step[T]{
		Cell:       Coord{0, 0},
		Candidates: []Candidate{{Op: OpInit, From: Coord{0, 0}, Value: 0}},
		Chosen:     Candidate{Op: OpInit, From: Coord{0, 0}, Value: 0},
	})
	for i := 1; i <= n; i++ {
		cand := Candidate{Op: OpDelete, From: Coord{i - 1, 0}, Value: i}
		t.Cost[i][0] = i
		t.Parents[i][0] = Parent{Op: OpDelete, From: cand.From}
		t.Steps = append(t.Steps, Step[T]{
			Cell:       Coord{i, 0},
			AToken:     a[i-1],
			HasA:       true,
			Candidates: []Candidate{cand},
			Chosen:     cand,
		})
	}

	// Boundary row: forced insertions along row 0.
	for j := 1; j <= m; j++ {
		cand := Candidate{Op: OpInsert, From: Coord{0, j - 1}, Value: j}
		t.Cost[0][j] = j
		t.Parents[0][j] = Parent{Op: OpInsert, From: cand.From}
		t.Steps = append(t.Steps, Step[T]{
			Cell:       Coord{0, j},
			BToken:     b[j-1],
			HasB:       true,
			Candidates: []Candidate{cand},
			Chosen:     cand,
		})
	}

	// Interior fill, row-major.
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			diagOp, diagCost := OpMatch, 0
			if a[i-1] != b[j-1] {
				diagOp, diagCost = OpReplace, 1
			}
			// Candidates in tie-break preference order, so the chosen
			// one is always the first that attains the minimum.
			cands := []Candidate{
				{Op: diagOp, From: Coord{i - 1, j - 1}, Value: t.Cost[i-1][j-1] + diagCost},
				{Op: OpDelete, From: Coord{i - 1, j}, Value: t.Cost[i-1][j] + 1},
				{Op: OpInsert, From: Coord{i, j - 1}, Value: t.Cost[i][j-1] + 1},
			}
			chosen := cands[0]
			for _, c := range cands[1:] {
				if c.Value < chosen.Value {
					chosen = c
				}
			}

			t.Cost[i][j] = chosen.Value
			t.Parents[i][j] = Parent{Op: chosen.Op, From: chosen.From}
			t.Steps = append(t.Steps, Step[T]{
				Cell:       Coord{i, j},
				AToken:     a[i-1],
				BToken:     b[j-1],
				HasA:       true,
				HasB:       true,
				Candidates: cands,
				Chosen:     chosen,
			})
		}
	}

	return t
}

// BuildStrings is a rune-aware convenience wrapper around Build: both
// strings are decoded to code points first, so multi-byte characters
// count as single tokens.
func BuildStrings(a, b string) *Trace[rune] {
	return Build([]rune(a), []rune(b))
}
