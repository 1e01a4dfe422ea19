// Package model: the downstream-consumer boundary (Export) and deep copy.
package model

import "github.com/katalvlaran/lpbuild/sparse"

// Export materializes the whole problem into a Snapshot: owned slices, no
// aliasing into the model, every symbolic value resolved to its current
// binding. This is everything a solver loader needs; internal storage
// layout stays private.
func (m *Model) Export() Snapshot {
	rows, cols := m.NumRows(), m.NumColumns()
	snap := Snapshot{
		Rows:      rows,
		Cols:      cols,
		Direction: m.direction,
		RowLower:  make([]float64, rows),
		RowUpper:  make([]float64, rows),
		RowNames:  make([]string, rows),
		ColLower:  make([]float64, cols),
		ColUpper:  make([]float64, cols),
		Objective: make([]float64, cols),
		Integer:   make([]bool, cols),
		ColNames:  make([]string, cols),
		Elements:  make([]Nonzero, 0, m.NumElements()),
		Quadratic: make([]Nonzero, 0, m.NumQuadraticElements()),
	}
	for r := 0; r < rows; r++ {
		snap.RowLower[r] = m.GetRowLower(r)
		snap.RowUpper[r] = m.GetRowUpper(r)
		snap.RowNames[r] = m.GetRowName(r)
		for cur := m.FirstInRow(r); cur.Valid(); cur = cur.Next() {
			snap.Elements = append(snap.Elements, Nonzero{
				Row:   cur.Row(),
				Col:   cur.Col(),
				Value: m.CursorValue(cur),
			})
		}
	}
	for c := 0; c < cols; c++ {
		snap.ColLower[c] = m.GetColumnLower(c)
		snap.ColUpper[c] = m.GetColumnUpper(c)
		snap.Objective[c] = m.GetColumnObjective(c)
		snap.Integer[c] = m.GetColumnIsInteger(c)
		snap.ColNames[c] = m.GetColumnName(c)
		for cur := m.quad.First(sparse.ByRow, c); cur.Valid(); cur = cur.Next() {
			snap.Quadratic = append(snap.Quadratic, Nonzero{
				Row:   cur.Row(),
				Col:   cur.Col(),
				Value: cur.Value(),
			})
		}
	}

	return snap
}

// Clone returns a deep copy of the model: every array, both name tables,
// the string pool and both sparse stores are copied, sharing nothing with
// the receiver.
func (m *Model) Clone() *Model {
	cp := &Model{
		store:     m.store.Clone(),
		quad:      m.quad.Clone(),
		rowLower:  append([]float64(nil), m.rowLower...),
		rowUpper:  append([]float64(nil), m.rowUpper...),
		rowFlags:  append([]uint8(nil), m.rowFlags...),
		rowNames:  m.rowNames.clone(),
		colLower:  append([]float64(nil), m.colLower...),
		colUpper:  append([]float64(nil), m.colUpper...),
		objective: append([]float64(nil), m.objective...),
		integer:   append([]bool(nil), m.integer...),
		colFlags:  append([]uint8(nil), m.colFlags...),
		colNames:  m.colNames.clone(),
		strings:   m.strings.clone(),
		mode:      m.mode,
		direction: m.direction,
	}

	return cp
}
