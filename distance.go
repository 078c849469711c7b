package edittrace

// Distance returns the unit-cost edit distance between a and b without
// recording a trace. It keeps a single rolling row, so memory is
// O(min(N,M)) instead of Build's O(N·M); use it when only the number
// matters and no replay or backtrace is needed.
//
// Distance(a, b) always equals Build(a, b).Distance().
func Distance[T comparable](a, b []T) int {
	// Iterate over the longer sequence so the row is the shorter one.
	if len(b) > len(a) {
		a, b = b, a
	}
	n, m := len(a), len(b)
	if m == 0 {
		return n
	}

	// row[j] holds the distance between the current prefix of a and
	// the first j tokens of b.
	row := make([]int, m+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= n; i++ {
		prev := i // table[i][0]
		for j := 1; j <= m; j++ {
			cost := row[j-1] // diagonal
			if a[i-1] != b[j-1] {
				cost++
				if row[j]+1 < cost {
					cost = row[j] + 1 // delete
				}
				if prev+1 < cost {
					cost = prev + 1 // insert
				}
			}
			row[j-1] = prev
			prev = cost
		}
		row[m] = prev
	}

	return row[m]
}

// DistanceStrings is a rune-aware convenience wrapper around Distance.
func DistanceStrings(a, b string) int {
	return Distance([]rune(a), []rune(b))
}
