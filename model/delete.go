// Package model: entity deletion and packing. Deleting clears an entity
// into a hole (attributes reset, elements gone, count usually unchanged);
// packing removes holes permanently and is the only operation that
// renumbers surviving indices.
package model

import (
	"math"

	"github.com/katalvlaran/lpbuild/sparse"
)

// DeleteRow removes every element of row r and resets its bounds, name and
// flags to defaults. When r is the current last row the row count shrinks
// by one and true is returned; an interior delete leaves the count
// unchanged (the slot stays as a hole) and returns false. Out-of-range
// indices are a no-op returning false.
func (m *Model) DeleteRow(r int) bool {
	if r < 0 || r >= m.NumRows() {
		return false
	}
	m.store.RemoveLine(sparse.ByRow, r)
	m.rowLower[r] = DefaultRowLower
	m.rowUpper[r] = DefaultRowUpper
	m.rowFlags[r] = 0
	m.rowNames.rename(r, "")
	if r == m.NumRows()-1 {
		m.rowLower = m.rowLower[:r]
		m.rowUpper = m.rowUpper[:r]
		m.rowFlags = m.rowFlags[:r]
		m.rowNames.truncate(r)

		return true
	}

	return false
}

// DeleteColumn is the column mirror of DeleteRow. Quadratic entries
// referencing the column, on either side of the pair, are removed with it,
// so a later column at the same index starts with no quadratic baggage.
func (m *Model) DeleteColumn(c int) bool {
	if c < 0 || c >= m.NumColumns() {
		return false
	}
	m.store.RemoveLine(sparse.ByCol, c)
	m.quad.RemoveLine(sparse.ByRow, c)
	m.quad.RemoveLine(sparse.ByCol, c)
	m.colLower[c] = DefaultColumnLower
	m.colUpper[c] = DefaultColumnUpper
	m.objective[c] = DefaultObjective
	m.integer[c] = false
	m.colFlags[c] = 0
	m.colNames.rename(c, "")
	if c == m.NumColumns()-1 {
		m.colLower = m.colLower[:c]
		m.colUpper = m.colUpper[:c]
		m.objective = m.objective[:c]
		m.integer = m.integer[:c]
		m.colFlags = m.colFlags[:c]
		m.colNames.truncate(c)

		return true
	}

	return false
}

// PackRows permanently removes every empty row — no elements and default
// (trivially feasible) bounds — renumbering all surviving rows and every
// element's row index, and rebuilding the coordinate index and the row
// name table. Returns the number of rows removed. O(elements + rows).
func (m *Model) PackRows() int {
	remap := make([]int32, m.NumRows())
	kept := 0
	for r := range remap {
		if m.rowEmpty(r) {
			remap[r] = sparse.NoElement

			continue
		}
		remap[r] = int32(kept)
		kept++
	}
	removed := m.NumRows() - kept
	if removed == 0 {
		return 0
	}

	m.rowLower = compactSlice(m.rowLower, remap, kept)
	m.rowUpper = compactSlice(m.rowUpper, remap, kept)
	m.rowFlags = compactSlice(m.rowFlags, remap, kept)
	m.rowNames.compact(remap, kept)
	m.store.Compact(remap, nil, kept, m.NumColumns())

	return removed
}

// PackColumns permanently removes every empty column — no elements (linear
// or quadratic), default bounds, zero objective, continuous — renumbering
// all surviving columns, every element's column index and both sides of
// every quadratic entry. Returns the number of columns removed.
func (m *Model) PackColumns() int {
	remap := make([]int32, m.NumColumns())
	kept := 0
	for c := range remap {
		if m.columnEmpty(c) {
			remap[c] = sparse.NoElement

			continue
		}
		remap[c] = int32(kept)
		kept++
	}
	removed := m.NumColumns() - kept
	if removed == 0 {
		return 0
	}

	m.colLower = compactSlice(m.colLower, remap, kept)
	m.colUpper = compactSlice(m.colUpper, remap, kept)
	m.objective = compactSlice(m.objective, remap, kept)
	m.integer = compactSlice(m.integer, remap, kept)
	m.colFlags = compactSlice(m.colFlags, remap, kept)
	m.colNames.compact(remap, kept)
	m.store.Compact(nil, remap, m.NumRows(), kept)
	m.quad.Compact(remap, remap, kept, kept)

	return removed
}

// Pack removes empty rows and empty columns in one sweep and returns the
// total number removed.
func (m *Model) Pack() int { return m.PackRows() + m.PackColumns() }

// rowEmpty reports whether row r carries nothing worth keeping.
func (m *Model) rowEmpty(r int) bool {
	if m.store.First(sparse.ByRow, r).Valid() {
		return false
	}

	return m.rowFlags[r] == 0 &&
		math.IsInf(m.rowLower[r], -1) && math.IsInf(m.rowUpper[r], 1)
}

// columnEmpty reports whether column c carries nothing worth keeping.
func (m *Model) columnEmpty(c int) bool {
	if m.store.First(sparse.ByCol, c).Valid() {
		return false
	}
	if m.quad.First(sparse.ByRow, c).Valid() || m.quad.First(sparse.ByCol, c).Valid() {
		return false
	}

	return m.colFlags[c] == 0 && !m.integer[c] &&
		m.colLower[c] == DefaultColumnLower &&
		math.IsInf(m.colUpper[c], 1) &&
		m.objective[c] == DefaultObjective
}

// compactSlice renumbers vals through remap (old → new, NoElement drops)
// into a fresh slice of length n.
func compactSlice[T any](vals []T, remap []int32, n int) []T {
	out := make([]T, n)
	for old, v := range vals {
		if remap[old] != sparse.NoElement {
			out[remap[old]] = v
		}
	}

	return out
}
