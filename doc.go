// Package edittrace computes Levenshtein edit distances between two
// token sequences while recording every intermediate decision, so that
// callers can replay the dynamic-programming fill cell by cell and
// reconstruct one optimal alignment path.
//
// What:
//
//   - Build fills the full (lenA+1)×(lenB+1) cost table and emits an
//     ordered Step log: one Step per cell, carrying the compared tokens,
//     every Candidate transition considered, and the Candidate chosen.
//   - Each cell records exactly one Parent link; Backtrace follows the
//     links from any in-bounds cell back to the origin (0,0).
//   - Distance is the trace-free fast path: same unit-cost model, a
//     single rolling row, O(min(N,M)) memory, no step log.
//
// Why:
//
//   - Algorithm visualization: replay Steps in order to drive a
//     "revealed so far" grid and a current-cell inspector.
//   - Teaching and debugging: every tie-break and candidate value is
//     recorded, not just the final distance.
//   - Spell-check / fuzzy matching backends that occasionally need to
//     show their work.
//
// Determinism:
//
//	Step order is part of the contract: the boundary column (i,0) for
//	i=0..lenA, then the boundary row (0,j) for j=1..lenB, then the
//	interior in row-major order. Ties between candidates are broken
//	diagonal (match/replace) first, then delete, then insert — a fixed
//	policy so that downstream renderers stay reproducible.
//
// Complexity:
//
//   - Build:     O(N·M) time, O(N·M) memory (table + steps + parents).
//   - Distance:  O(N·M) time, O(min(N,M)) memory.
//   - Backtrace: O(N+M) time, bounded by endI+endJ+1 hops.
//
// Errors:
//
//   - ErrOutOfRange: Backtrace was given coordinates outside the table.
//     Build and Distance are total over all finite inputs, including
//     empty sequences on either or both sides.
package edittrace
