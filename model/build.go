// Package model: structural mutation — bulk appends, point upserts,
// symbolic entries, element deletion and the quadratic store.
package model

import "github.com/katalvlaran/lpbuild/sparse"

// AddRow appends one full constraint: (cols[i], vals[i]) coefficient pairs
// plus bounds and an optional name (empty means unnamed). Referenced
// columns that do not exist yet are auto-created with default attributes.
//
// The new row index is always NumRows() before the call, so entries are
// appended without consulting the coordinate index — this is the fast bulk
// path. Column indices within one call must be distinct; that precondition
// is the caller's to keep.
//
// numberInRow may be zero: AddRow(nil, nil, lo, hi, name) adds an empty row.
func (m *Model) AddRow(cols []int, vals []float64, lower, upper float64, name string) error {
	if len(cols) != len(vals) {
		return ErrLengthMismatch
	}
	for _, c := range cols {
		if c < 0 {
			return ErrNegativeIndex
		}
	}

	r := m.NumRows()
	m.ensureRows(r + 1)
	m.rowLower[r] = lower
	m.rowUpper[r] = upper
	if name != "" {
		m.rowNames.rename(r, name)
	}
	for i, c := range cols {
		m.ensureColumns(c + 1)
		m.store.Append(r, c, vals[i], sparse.NoString)
	}
	m.noteRowAppend()

	return nil
}

// AddColumn appends one full variable: (rows[i], vals[i]) pairs plus
// bounds, objective coefficient, optional name and integrality. The mirror
// of AddRow; the same fast-path reasoning and precondition apply.
func (m *Model) AddColumn(rows []int, vals []float64, lower, upper, objective float64, name string, isInteger bool) error {
	if len(rows) != len(vals) {
		return ErrLengthMismatch
	}
	for _, r := range rows {
		if r < 0 {
			return ErrNegativeIndex
		}
	}

	c := m.NumColumns()
	m.ensureColumns(c + 1)
	m.colLower[c] = lower
	m.colUpper[c] = upper
	m.objective[c] = objective
	m.integer[c] = isInteger
	if name != "" {
		m.colNames.rename(c, name)
	}
	for i, r := range rows {
		m.ensureRows(r + 1)
		m.store.Append(r, c, vals[i], sparse.NoString)
	}
	m.noteColumnAppend()

	return nil
}

// SetElement sets the coefficient at (r, c), overwriting in place when the
// cell exists and inserting otherwise. Out-of-range indices auto-create
// all intervening rows/columns with defaults.
func (m *Model) SetElement(r, c int, v float64) error {
	if r < 0 || c < 0 {
		return ErrNegativeIndex
	}
	m.ensureRows(r + 1)
	m.ensureColumns(c + 1)
	m.store.Upsert(r, c, v, sparse.NoString)
	m.noteRandomAccess()

	return nil
}

// SetStringElement stores a symbolic coefficient at (r, c): the cell holds
// a reference into the string pool instead of a number. An unseen string
// is interned with a zero binding; bind or rebind it with AssociateString.
func (m *Model) SetStringElement(r, c int, value string) error {
	if r < 0 || c < 0 {
		return ErrNegativeIndex
	}
	m.ensureRows(r + 1)
	m.ensureColumns(c + 1)
	id := m.strings.ensure(value)
	bound, _ := m.strings.value(id)
	m.store.Upsert(r, c, bound, int32(id))
	m.noteRandomAccess()

	return nil
}

// GetElement returns the coefficient at (r, c), 0 when the cell is absent.
// A symbolic cell resolves to its currently bound number, never the text.
func (m *Model) GetElement(r, c int) float64 {
	t, ok := m.store.Lookup(r, c)
	if !ok {
		return 0
	}

	return m.strings.resolve(t.Value, t.StringID)
}

// HasElement reports whether the cell (r, c) exists.
func (m *Model) HasElement(r, c int) bool {
	_, ok := m.store.Lookup(r, c)

	return ok
}

// GetElementAsString returns the placeholder text of a symbolic cell, ""
// for numeric or absent cells.
func (m *Model) GetElementAsString(r, c int) string {
	t, ok := m.store.Lookup(r, c)
	if !ok || t.StringID == sparse.NoString {
		return ""
	}

	return m.strings.content(int(t.StringID))
}

// DeleteElement removes the cell (r, c), unlinking it from both traversal
// lists. The slot becomes a hole until the next Pack. Returns false when
// the cell does not exist.
func (m *Model) DeleteElement(r, c int) bool {
	if !m.store.Remove(r, c) {
		return false
	}
	m.noteRandomAccess()

	return true
}

// ElementPointer borrows a pointer to the numeric value of cell (r, c),
// nil when absent. The borrow is valid only until the next mutation of the
// model — any insert may relocate storage, any delete or pack may retire
// the slot. Prefer GetElement unless in-place tweaking is worth the hazard.
func (m *Model) ElementPointer(r, c int) *float64 {
	slot := m.store.Slot(r, c)
	if slot == sparse.NoElement {
		return nil
	}

	return m.store.ValuePtr(slot)
}

// AssociateString interns value (first occurrence creates a fresh id) and
// binds it to bound, overwriting any previous binding. Every symbolic cell
// and string-valued attribute referencing it resolves to the new number
// from now on. Returns the stable string id.
func (m *Model) AssociateString(value string, bound float64) int {
	return m.strings.associate(value, bound)
}

// LookupString returns the id of an interned string without creating it,
// NoIndex when the string was never seen.
func (m *Model) LookupString(value string) int { return m.strings.lookup(value) }

// StringValue returns the number currently bound to the interned string id.
func (m *Model) StringValue(id int) (float64, bool) { return m.strings.value(id) }

// StringContent returns the text of the interned string id, "" when out of
// range.
func (m *Model) StringContent(id int) string { return m.strings.content(id) }

// NumStrings returns the number of interned strings.
func (m *Model) NumStrings() int { return m.strings.len() }

// SetQuadraticElement sets the quadratic-objective entry for the column
// pair (i, j). The quadratic store has its own capacity and coordinate
// index, independent from the constraint matrix.
func (m *Model) SetQuadraticElement(i, j int, v float64) error {
	if i < 0 || j < 0 {
		return ErrNegativeIndex
	}
	n := i
	if j > n {
		n = j
	}
	m.ensureColumns(n + 1)
	m.quad.Upsert(i, j, v, sparse.NoString)

	return nil
}

// GetQuadraticElement returns the quadratic entry for (i, j), 0 when absent.
func (m *Model) GetQuadraticElement(i, j int) float64 {
	t, ok := m.quad.Lookup(i, j)
	if !ok {
		return 0
	}

	return t.Value
}
