package edittrace

// Backtrace follows Parent links from end back to the origin (0,0) and
// returns the set of visited coordinates, end and origin included. The
// result is meant for membership testing (e.g. path highlighting);
// iteration order is unspecified.
//
// Each hop strictly decreases I+J by 1 (delete/insert) or 2 (diagonal),
// so the walk terminates after at most end.I+end.J+1 cells.
//
// Returns ErrOutOfRange if end lies outside the table. Well-formed
// callers pass the table's final cell, i.e. Trace.Final().
//
// Complexity: O(N+M) time and memory.
func (t *Trace[T]) Backtrace(end Coord) (map[Coord]struct{}, error) {
	if end.I < 0 || end.I >= len(t.Cost) || end.J < 0 || end.J >= len(t.Cost[0]) {
		return nil, ErrOutOfRange
	}

	path := make(map[Coord]struct{}, end.I+end.J+1)
	cur := end
	for {
		path[cur] = struct{}{}
		p := t.Parents[cur.I][cur.J]
		if p.Op == OpInit {
			break
		}
		cur = p.From
	}

	return path, nil
}
