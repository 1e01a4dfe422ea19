// Package model: traversal surface. Cursors come straight from the sparse
// store; they are transient views that must not outlive the next mutation
// of the model. Order within a row/column is insertion order — callers
// wanting index order must sort explicitly.
package model

import "github.com/katalvlaran/lpbuild/sparse"

// FirstInRow returns a cursor on the first element of row r, invalid when
// the row is empty or out of range.
func (m *Model) FirstInRow(r int) sparse.Cursor { return m.store.First(sparse.ByRow, r) }

// LastInRow returns a cursor on the last element of row r.
func (m *Model) LastInRow(r int) sparse.Cursor { return m.store.Last(sparse.ByRow, r) }

// FirstInColumn returns a cursor on the first element of column c.
func (m *Model) FirstInColumn(c int) sparse.Cursor { return m.store.First(sparse.ByCol, c) }

// LastInColumn returns a cursor on the last element of column c.
func (m *Model) LastInColumn(c int) sparse.Cursor { return m.store.Last(sparse.ByCol, c) }

// FirstInQuadraticColumn returns a cursor on the first quadratic entry
// whose second column index is c.
func (m *Model) FirstInQuadraticColumn(c int) sparse.Cursor { return m.quad.First(sparse.ByCol, c) }

// LastInQuadraticColumn mirrors FirstInQuadraticColumn for the tail.
func (m *Model) LastInQuadraticColumn(c int) sparse.Cursor { return m.quad.Last(sparse.ByCol, c) }

// CursorValue resolves the value under a cursor the same way GetElement
// does: symbolic cells yield their currently bound number.
func (m *Model) CursorValue(c sparse.Cursor) float64 {
	if !c.Valid() {
		return 0
	}

	return m.strings.resolve(c.Value(), c.StringID())
}
