// Package model: the Model aggregate and its lazy-extension machinery.
package model

import "github.com/katalvlaran/lpbuild/sparse"

// Model is the aggregate root. It exclusively owns every backing array,
// both name tables, the string pool and the two sparse stores (matrix and
// quadratic term); nothing is shared across Model instances.
type Model struct {
	store *sparse.Store // constraint matrix
	quad  *sparse.Store // quadratic objective, keyed (column-i, column-j)

	rowLower []float64
	rowUpper []float64
	rowFlags []uint8
	rowNames nameTable

	colLower  []float64
	colUpper  []float64
	objective []float64
	integer   []bool
	colFlags  []uint8
	colNames  nameTable

	strings stringPool

	mode      BuildMode
	direction Direction
}

// New returns an empty model. Options may pre-size storage and pick the
// advisory build orientation and optimization sense.
func New(opts ...Option) *Model {
	o := gatherOptions(opts...)
	m := &Model{
		store:     sparse.NewStore(o.hintElements),
		quad:      sparse.NewStore(0),
		mode:      o.mode,
		direction: o.direction,
	}
	if o.hintRows > 0 {
		m.rowLower = make([]float64, 0, o.hintRows)
		m.rowUpper = make([]float64, 0, o.hintRows)
		m.rowFlags = make([]uint8, 0, o.hintRows)
	}
	if o.hintCols > 0 {
		m.colLower = make([]float64, 0, o.hintCols)
		m.colUpper = make([]float64, 0, o.hintCols)
		m.objective = make([]float64, 0, o.hintCols)
		m.integer = make([]bool, 0, o.hintCols)
		m.colFlags = make([]uint8, 0, o.hintCols)
	}

	return m
}

// NumRows returns the number of rows (the highest index seen so far + 1).
func (m *Model) NumRows() int { return len(m.rowLower) }

// NumColumns returns the number of columns.
func (m *Model) NumColumns() int { return len(m.colLower) }

// NumElements returns the number of live matrix entries (holes excluded).
func (m *Model) NumElements() int { return m.store.Len() }

// NumQuadraticElements returns the number of live quadratic entries.
func (m *Model) NumQuadraticElements() int { return m.quad.Len() }

// Mode returns the current advisory build mode.
func (m *Model) Mode() BuildMode { return m.mode }

// Direction returns the optimization sense.
func (m *Model) Direction() Direction { return m.direction }

// SetDirection changes the optimization sense.
func (m *Model) SetDirection(d Direction) { m.direction = d }

// ensureRows materializes rows [NumRows, n) with default bounds, no name,
// clear flags and an empty store line. This is the single lazy-extension
// path every row-affecting setter funnels through.
func (m *Model) ensureRows(n int) {
	for len(m.rowLower) < n {
		m.rowLower = append(m.rowLower, DefaultRowLower)
		m.rowUpper = append(m.rowUpper, DefaultRowUpper)
		m.rowFlags = append(m.rowFlags, 0)
	}
	m.store.EnsureRows(n)
	m.rowNames.ensure(n)
}

// ensureColumns is the column mirror of ensureRows.
func (m *Model) ensureColumns(n int) {
	for len(m.colLower) < n {
		m.colLower = append(m.colLower, DefaultColumnLower)
		m.colUpper = append(m.colUpper, DefaultColumnUpper)
		m.objective = append(m.objective, DefaultObjective)
		m.integer = append(m.integer, false)
		m.colFlags = append(m.colFlags, 0)
	}
	m.store.EnsureCols(n)
	m.colNames.ensure(n)
}

// noteRowAppend records an AddRow on the mode state machine.
func (m *Model) noteRowAppend() {
	switch m.mode {
	case BuildUnset:
		m.mode = BuildByRow
	case BuildByColumn:
		m.mode = BuildLinked
	}
}

// noteColumnAppend records an AddColumn on the mode state machine.
func (m *Model) noteColumnAppend() {
	switch m.mode {
	case BuildUnset:
		m.mode = BuildByColumn
	case BuildByRow:
		m.mode = BuildLinked
	}
}

// noteRandomAccess records a point mutation: the pure bulk path is over.
func (m *Model) noteRandomAccess() { m.mode = BuildLinked }
