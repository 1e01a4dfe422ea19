// Package model_test: lazy extension, documented defaults, names and
// symbolic attributes.
package model_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lpbuild/model"
	"github.com/stretchr/testify/require"
)

// TestLazyExtensionOnSetter verifies the uniform auto-creation policy:
// one setter on a far index materializes every intervening entity with
// defaults.
func TestLazyExtensionOnSetter(t *testing.T) {
	m := model.New()
	require.NoError(t, m.SetRowLower(4, 2.0))

	require.Equal(t, 5, m.NumRows()) // rows 0..4 now exist
	for r := 0; r < 4; r++ {
		require.True(t, math.IsInf(m.GetRowLower(r), -1)) // default −Inf
		require.True(t, math.IsInf(m.GetRowUpper(r), 1))  // default +Inf
		require.Equal(t, "", m.GetRowName(r))
	}
	require.Equal(t, 2.0, m.GetRowLower(4))
}

// TestColumnObjectiveExtension mirrors the canonical empty-model scenario.
func TestColumnObjectiveExtension(t *testing.T) {
	m := model.New()
	require.NoError(t, m.SetColumnObjective(5, 7.5))

	require.Equal(t, 6, m.NumColumns())
	for c := 0; c < 5; c++ {
		require.Equal(t, 0.0, m.GetColumnObjective(c))
		require.Equal(t, 0.0, m.GetColumnLower(c))
		require.True(t, math.IsInf(m.GetColumnUpper(c), 1))
		require.False(t, m.GetColumnIsInteger(c))
	}
	require.Equal(t, 7.5, m.GetColumnObjective(5))
}

// TestGettersOutOfRange: absence is a default, never a failure.
func TestGettersOutOfRange(t *testing.T) {
	m := model.New()

	require.True(t, math.IsInf(m.GetRowLower(42), -1))
	require.True(t, math.IsInf(m.GetRowUpper(42), 1))
	require.Equal(t, "", m.GetRowName(42))
	require.Equal(t, 0.0, m.GetColumnLower(42))
	require.True(t, math.IsInf(m.GetColumnUpper(42), 1))
	require.Equal(t, 0.0, m.GetColumnObjective(42))
	require.False(t, m.GetColumnIsInteger(42))
	require.Equal(t, "", m.GetColumnName(42))
	require.Equal(t, 0.0, m.GetElement(3, 3))

	// Reads never create anything.
	require.Equal(t, 0, m.NumRows())
	require.Equal(t, 0, m.NumColumns())
}

// TestBoundsAndNames exercises the combined setters and name lookup.
func TestBoundsAndNames(t *testing.T) {
	m := model.New()
	require.NoError(t, m.SetRowBounds(0, -1, 1))
	require.NoError(t, m.SetRowName(0, "balance"))
	require.NoError(t, m.SetColumnBounds(2, 0.5, 2.5))
	require.NoError(t, m.SetColumnName(2, "x2"))
	require.NoError(t, m.SetColumnIsInteger(2, true))

	require.Equal(t, -1.0, m.GetRowLower(0))
	require.Equal(t, 1.0, m.GetRowUpper(0))
	require.Equal(t, 0, m.Row("balance"))
	require.Equal(t, model.NoIndex, m.Row("nope"))
	require.Equal(t, 2, m.Column("x2"))
	require.True(t, m.GetColumnIsInteger(2))

	// Renaming releases the old lookup entry.
	require.NoError(t, m.SetRowName(0, "mass"))
	require.Equal(t, model.NoIndex, m.Row("balance"))
	require.Equal(t, 0, m.Row("mass"))

	// Duplicate names: last writer owns the lookup.
	require.NoError(t, m.SetRowName(1, "mass"))
	require.Equal(t, 1, m.Row("mass"))
	require.Equal(t, "mass", m.GetRowName(0)) // per-index name unchanged
}

// TestSymbolicBounds stores string-valued bounds and resolves them through
// the pool's current bindings.
func TestSymbolicBounds(t *testing.T) {
	m := model.New()
	require.NoError(t, m.SetRowUpperString(0, "demand"))
	require.True(t, m.RowUpperIsString(0))
	require.False(t, m.RowLowerIsString(0))
	require.Equal(t, 0.0, m.GetRowUpper(0)) // unbound resolves to 0

	m.AssociateString("demand", 12.0)
	require.Equal(t, 12.0, m.GetRowUpper(0))

	require.NoError(t, m.SetColumnObjectiveString(1, "cost"))
	m.AssociateString("cost", -3.0)
	require.True(t, m.ColumnObjectiveIsString(1))
	require.Equal(t, -3.0, m.GetColumnObjective(1))

	// A numeric overwrite clears the flag.
	require.NoError(t, m.SetColumnObjective(1, 4.0))
	require.False(t, m.ColumnObjectiveIsString(1))
	require.Equal(t, 4.0, m.GetColumnObjective(1))

	require.NoError(t, m.SetColumnLowerString(0, "lo"))
	require.NoError(t, m.SetColumnUpperString(0, "hi"))
	m.AssociateString("lo", 1.0)
	m.AssociateString("hi", 2.0)
	require.Equal(t, 1.0, m.GetColumnLower(0))
	require.Equal(t, 2.0, m.GetColumnUpper(0))
	require.True(t, m.ColumnLowerIsString(0))
	require.True(t, m.ColumnUpperIsString(0))

	require.NoError(t, m.SetRowLowerString(2, "floor"))
	m.AssociateString("floor", -8.0)
	require.Equal(t, -8.0, m.GetRowLower(2))
	require.True(t, m.RowLowerIsString(2))
}
