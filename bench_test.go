package edittrace_test

import (
	"testing"

	"github.com/katalvlaran/edittrace"
)

// benchSequences builds two deterministic rune sequences of lengths n
// and m with a period-7 vs period-11 alphabet walk, so roughly every
// cell mixes matches and mismatches.
func benchSequences(n, m int) (a, b []rune) {
	a = make([]rune, n)
	b = make([]rune, m)
	for i := 0; i < n; i++ {
		a[i] = rune('a' + i%7)
	}
	for j := 0; j < m; j++ {
		b[j] = rune('a' + j%11)
	}

	return a, b
}

// benchmarkBuild runs Build on n×m sequences, ignoring setup time.
func benchmarkBuild(bn *testing.B, n, m int) {
	a, b := benchSequences(n, m)

	bn.ResetTimer()
	for i := 0; i < bn.N; i++ {
		_ = edittrace.Build(a, b)
	}
}

// BenchmarkBuild_Small benchmarks the traced build on 50×50 inputs.
func BenchmarkBuild_Small(b *testing.B) {
	benchmarkBuild(b, 50, 50)
}

// BenchmarkBuild_Medium benchmarks the traced build on 200×200 inputs.
func BenchmarkBuild_Medium(b *testing.B) {
	benchmarkBuild(b, 200, 200)
}

// BenchmarkDistance_Small benchmarks the rolling-row fast path on
// 50×50 inputs.
func BenchmarkDistance_Small(b *testing.B) {
	x, y := benchSequences(50, 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = edittrace.Distance(x, y)
	}
}

// BenchmarkDistance_Medium benchmarks the fast path on 500×500 inputs.
func BenchmarkDistance_Medium(b *testing.B) {
	x, y := benchSequences(500, 500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = edittrace.Distance(x, y)
	}
}

// BenchmarkBacktrace benchmarks path reconstruction on a prebuilt
// 200×200 trace.
func BenchmarkBacktrace(b *testing.B) {
	x, y := benchSequences(200, 200)
	tr := edittrace.Build(x, y)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tr.Backtrace(tr.Final()); err != nil {
			b.Fatalf("Backtrace failed: %v", err)
		}
	}
}
