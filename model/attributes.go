// Package model: attribute setters and getters. Every setter funnels
// through ensureRows/ensureColumns, so referencing an index beyond the
// current count silently materializes all intervening entities with
// defaults. Getters on out-of-range indices return the documented default.
//
// An attribute may be symbolic: the Set*String variants store an interned
// string id in the slot and raise the matching flag bit; numeric getters
// then resolve through the pool's current binding.
package model

// SetRowLower sets the lower bound of row i.
func (m *Model) SetRowLower(i int, lower float64) error {
	if i < 0 {
		return ErrNegativeIndex
	}
	m.ensureRows(i + 1)
	m.rowLower[i] = lower
	m.rowFlags[i] &^= flagLowerIsString

	return nil
}

// SetRowUpper sets the upper bound of row i.
func (m *Model) SetRowUpper(i int, upper float64) error {
	if i < 0 {
		return ErrNegativeIndex
	}
	m.ensureRows(i + 1)
	m.rowUpper[i] = upper
	m.rowFlags[i] &^= flagUpperIsString

	return nil
}

// SetRowBounds sets both bounds of row i in one call.
func (m *Model) SetRowBounds(i int, lower, upper float64) error {
	if err := m.SetRowLower(i, lower); err != nil {
		return err
	}

	return m.SetRowUpper(i, upper)
}

// SetRowName names row i; an empty name makes it unnamed.
func (m *Model) SetRowName(i int, name string) error {
	if i < 0 {
		return ErrNegativeIndex
	}
	m.ensureRows(i + 1)
	m.rowNames.rename(i, name)

	return nil
}

// SetRowLowerString makes the lower bound of row i symbolic.
func (m *Model) SetRowLowerString(i int, value string) error {
	if i < 0 {
		return ErrNegativeIndex
	}
	m.ensureRows(i + 1)
	m.rowLower[i] = float64(m.strings.ensure(value))
	m.rowFlags[i] |= flagLowerIsString

	return nil
}

// SetRowUpperString makes the upper bound of row i symbolic.
func (m *Model) SetRowUpperString(i int, value string) error {
	if i < 0 {
		return ErrNegativeIndex
	}
	m.ensureRows(i + 1)
	m.rowUpper[i] = float64(m.strings.ensure(value))
	m.rowFlags[i] |= flagUpperIsString

	return nil
}

// GetRowLower returns the lower bound of row i, −Inf out of range. A
// symbolic bound resolves to its current binding.
func (m *Model) GetRowLower(i int) float64 {
	if i < 0 || i >= m.NumRows() {
		return DefaultRowLower
	}
	if m.rowFlags[i]&flagLowerIsString != 0 {
		return m.strings.resolve(0, int32(m.rowLower[i]))
	}

	return m.rowLower[i]
}

// GetRowUpper returns the upper bound of row i, +Inf out of range.
func (m *Model) GetRowUpper(i int) float64 {
	if i < 0 || i >= m.NumRows() {
		return DefaultRowUpper
	}
	if m.rowFlags[i]&flagUpperIsString != 0 {
		return m.strings.resolve(0, int32(m.rowUpper[i]))
	}

	return m.rowUpper[i]
}

// GetRowName returns the name of row i, "" when unnamed or out of range.
func (m *Model) GetRowName(i int) string { return m.rowNames.name(i) }

// RowLowerIsString reports whether row i's lower bound is symbolic.
func (m *Model) RowLowerIsString(i int) bool {
	return i >= 0 && i < m.NumRows() && m.rowFlags[i]&flagLowerIsString != 0
}

// RowUpperIsString reports whether row i's upper bound is symbolic.
func (m *Model) RowUpperIsString(i int) bool {
	return i >= 0 && i < m.NumRows() && m.rowFlags[i]&flagUpperIsString != 0
}

// Row returns the index of the row named name, NoIndex when no row owns it.
func (m *Model) Row(name string) int { return m.rowNames.lookup(name) }

// SetColumnLower sets the lower bound of column j.
func (m *Model) SetColumnLower(j int, lower float64) error {
	if j < 0 {
		return ErrNegativeIndex
	}
	m.ensureColumns(j + 1)
	m.colLower[j] = lower
	m.colFlags[j] &^= flagLowerIsString

	return nil
}

// SetColumnUpper sets the upper bound of column j.
func (m *Model) SetColumnUpper(j int, upper float64) error {
	if j < 0 {
		return ErrNegativeIndex
	}
	m.ensureColumns(j + 1)
	m.colUpper[j] = upper
	m.colFlags[j] &^= flagUpperIsString

	return nil
}

// SetColumnBounds sets both bounds of column j in one call.
func (m *Model) SetColumnBounds(j int, lower, upper float64) error {
	if err := m.SetColumnLower(j, lower); err != nil {
		return err
	}

	return m.SetColumnUpper(j, upper)
}

// SetColumnObjective sets the objective coefficient of column j.
func (m *Model) SetColumnObjective(j int, objective float64) error {
	if j < 0 {
		return ErrNegativeIndex
	}
	m.ensureColumns(j + 1)
	m.objective[j] = objective
	m.colFlags[j] &^= flagObjectiveIsString

	return nil
}

// SetColumnName names column j; an empty name makes it unnamed.
func (m *Model) SetColumnName(j int, name string) error {
	if j < 0 {
		return ErrNegativeIndex
	}
	m.ensureColumns(j + 1)
	m.colNames.rename(j, name)

	return nil
}

// SetColumnIsInteger flags column j as integer (or continuous again).
func (m *Model) SetColumnIsInteger(j int, isInteger bool) error {
	if j < 0 {
		return ErrNegativeIndex
	}
	m.ensureColumns(j + 1)
	m.integer[j] = isInteger
	m.colFlags[j] &^= flagIntegerIsString

	return nil
}

// SetColumnLowerString makes the lower bound of column j symbolic.
func (m *Model) SetColumnLowerString(j int, value string) error {
	if j < 0 {
		return ErrNegativeIndex
	}
	m.ensureColumns(j + 1)
	m.colLower[j] = float64(m.strings.ensure(value))
	m.colFlags[j] |= flagLowerIsString

	return nil
}

// SetColumnUpperString makes the upper bound of column j symbolic.
func (m *Model) SetColumnUpperString(j int, value string) error {
	if j < 0 {
		return ErrNegativeIndex
	}
	m.ensureColumns(j + 1)
	m.colUpper[j] = float64(m.strings.ensure(value))
	m.colFlags[j] |= flagUpperIsString

	return nil
}

// SetColumnObjectiveString makes the objective coefficient of column j
// symbolic.
func (m *Model) SetColumnObjectiveString(j int, value string) error {
	if j < 0 {
		return ErrNegativeIndex
	}
	m.ensureColumns(j + 1)
	m.objective[j] = float64(m.strings.ensure(value))
	m.colFlags[j] |= flagObjectiveIsString

	return nil
}

// GetColumnLower returns the lower bound of column j, 0 out of range.
func (m *Model) GetColumnLower(j int) float64 {
	if j < 0 || j >= m.NumColumns() {
		return DefaultColumnLower
	}
	if m.colFlags[j]&flagLowerIsString != 0 {
		return m.strings.resolve(0, int32(m.colLower[j]))
	}

	return m.colLower[j]
}

// GetColumnUpper returns the upper bound of column j, +Inf out of range.
func (m *Model) GetColumnUpper(j int) float64 {
	if j < 0 || j >= m.NumColumns() {
		return DefaultColumnUpper
	}
	if m.colFlags[j]&flagUpperIsString != 0 {
		return m.strings.resolve(0, int32(m.colUpper[j]))
	}

	return m.colUpper[j]
}

// GetColumnObjective returns the objective coefficient of column j, 0 out
// of range.
func (m *Model) GetColumnObjective(j int) float64 {
	if j < 0 || j >= m.NumColumns() {
		return DefaultObjective
	}
	if m.colFlags[j]&flagObjectiveIsString != 0 {
		return m.strings.resolve(0, int32(m.objective[j]))
	}

	return m.objective[j]
}

// GetColumnIsInteger reports integrality of column j, false out of range.
func (m *Model) GetColumnIsInteger(j int) bool {
	if j < 0 || j >= m.NumColumns() {
		return false
	}

	return m.integer[j]
}

// GetColumnName returns the name of column j, "" when unnamed or out of
// range.
func (m *Model) GetColumnName(j int) string { return m.colNames.name(j) }

// ColumnLowerIsString reports whether column j's lower bound is symbolic.
func (m *Model) ColumnLowerIsString(j int) bool {
	return j >= 0 && j < m.NumColumns() && m.colFlags[j]&flagLowerIsString != 0
}

// ColumnUpperIsString reports whether column j's upper bound is symbolic.
func (m *Model) ColumnUpperIsString(j int) bool {
	return j >= 0 && j < m.NumColumns() && m.colFlags[j]&flagUpperIsString != 0
}

// ColumnObjectiveIsString reports whether column j's objective is symbolic.
func (m *Model) ColumnObjectiveIsString(j int) bool {
	return j >= 0 && j < m.NumColumns() && m.colFlags[j]&flagObjectiveIsString != 0
}

// Column returns the index of the column named name, NoIndex when no
// column owns it.
func (m *Model) Column(name string) int { return m.colNames.lookup(name) }
