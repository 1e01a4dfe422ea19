// Package sparse_test: benchmarks for the documented bulk-vs-mixed
// performance cliff. Appending on the pure path never touches the
// coordinate index; upserting pays for the hash on every insert.
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/lpbuild/sparse"
)

const benchCols = 64

// BenchmarkBulkAppend measures the index-free bulk path.
func BenchmarkBulkAppend(b *testing.B) {
	b.ReportAllocs()
	s := sparse.NewStore(b.N * benchCols)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for c := 0; c < benchCols; c++ {
			s.Append(i, c, float64(c), sparse.NoString)
		}
	}
}

// BenchmarkMixedUpsert measures the same workload once the coordinate
// index has been materialized by a single random access.
func BenchmarkMixedUpsert(b *testing.B) {
	b.ReportAllocs()
	s := sparse.NewStore(b.N * benchCols)
	_, _ = s.Lookup(0, 0) // leave the pure path
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for c := 0; c < benchCols; c++ {
			s.Upsert(i, c, float64(c), sparse.NoString)
		}
	}
}
