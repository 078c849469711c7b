// Package edittrace defines the core types shared by the trace builder
// and the backtrace reconstructor.
package edittrace

// Coord identifies one cell of the cost table. I indexes prefixes of
// the first sequence, J prefixes of the second; (0,0) is the pair of
// empty prefixes.
type Coord struct {
	I, J int
}

// Op labels the transition that produced a cell's value.
type Op uint8

const (
	// OpInit marks the origin cell (0,0); it has no predecessor.
	OpInit Op = iota
	// OpMatch is the diagonal transition with equal tokens (cost 0).
	OpMatch
	// OpReplace is the diagonal transition with unequal tokens (cost 1).
	OpReplace
	// OpDelete removes one token from the first sequence (cost 1).
	OpDelete
	// OpInsert adds one token from the second sequence (cost 1).
	OpInsert
)

// String returns the lower-case operation name.
func (op Op) String() string {
	switch op {
	case OpInit:
		return "init"
	case OpMatch:
		return "match"
	case OpReplace:
		return "replace"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	}

	return "invalid"
}

// Candidate is one transition considered while filling a cell: the
// operation kind, the source cell it would come from, and the cell
// value it would produce.
type Candidate struct {
	Op    Op
	From  Coord
	Value int
}

// Parent is the single recorded predecessor of a cell. Every cell has
// exactly one Parent; the origin (0,0) carries OpInit and no meaningful
// From coordinate.
type Parent struct {
	Op   Op
	From Coord
}

// Step records the work done to fill one cell: its coordinates, the two
// tokens compared (HasA/HasB are false at boundaries, where the empty
// prefix stands in for a token), every Candidate considered, and the
// Candidate actually chosen. Interior steps always carry all three
// candidates in tie-break preference order: diagonal, delete, insert.
type Step[T comparable] struct {
	Cell       Coord
	AToken     T
	BToken     T
	HasA       bool
	HasB       bool
	Candidates []Candidate
	Chosen     Candidate
}

// Trace is the full output of Build. It is immutable once returned:
// A and B are deep copies of the inputs, Cost is the complete
// (lenA+1)×(lenB+1) table, Steps is the ordered fill log, and Parents
// holds one Parent per cell for backtrace reconstruction.
//
// Callers that replay Steps own their cursor; Trace keeps no playback
// state.
type Trace[T comparable] struct {
	A, B    []T
	Cost    [][]int
	Steps   []Step[T]
	Parents [][]Parent
}

// Distance returns the edit distance between the two input sequences,
// i.e. the value of the final table cell.
func (t *Trace[T]) Distance() int {
	return t.Cost[len(t.A)][len(t.B)]
}

// Final returns the coordinates of the last table cell (lenA, lenB),
// the usual starting point for Backtrace.
func (t *Trace[T]) Final() Coord {
	return Coord{I: len(t.A), J: len(t.B)}
}
