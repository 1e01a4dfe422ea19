// Package model_test: benchmarks for the advisory build-mode cliff at the
// façade level. Correctness is identical either way; only throughput
// differs, which is why this lives here and not in a unit test.
package model_test

import (
	"testing"

	"github.com/katalvlaran/lpbuild/model"
)

const benchRowWidth = 32

var benchCols = func() []int {
	cols := make([]int, benchRowWidth)
	for i := range cols {
		cols[i] = i
	}

	return cols
}()

var benchVals = func() []float64 {
	vals := make([]float64, benchRowWidth)
	for i := range vals {
		vals[i] = float64(i) + 0.5
	}

	return vals
}()

// BenchmarkAddRowPure keeps the model on the row-primary bulk path.
func BenchmarkAddRowPure(b *testing.B) {
	b.ReportAllocs()
	m := model.New(model.WithRowBuild(), model.WithExpectedElements(b.N*benchRowWidth))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.AddRow(benchCols, benchVals, 0, 1, "")
	}
}

// BenchmarkAddRowMixed issues one point edit first, so every subsequent
// insert maintains the coordinate index.
func BenchmarkAddRowMixed(b *testing.B) {
	b.ReportAllocs()
	m := model.New(model.WithExpectedElements(b.N*benchRowWidth + 1))
	_ = m.SetElement(0, 0, 1) // leave the pure path immediately
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.AddRow(benchCols, benchVals, 0, 1, "")
	}
}

// BenchmarkSetElementUpdate measures in-place overwrites through the index.
func BenchmarkSetElementUpdate(b *testing.B) {
	b.ReportAllocs()
	m := model.New()
	for c := 0; c < benchRowWidth; c++ {
		_ = m.SetElement(0, c, 1)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.SetElement(0, i%benchRowWidth, float64(i))
	}
}
