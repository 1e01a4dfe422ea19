// Package model: domain types and documented defaults. Errors live in
// errors.go, functional options in options.go, per the package conventions.
package model

import "math"

// BuildMode tracks which bulk-append orientation the model is still
// optimized for. It is advisory: no operation is ever rejected because of
// the mode, it only records whether the index-free fast path still applies.
type BuildMode int

const (
	// BuildUnset — nothing appended yet; the first operation decides.
	BuildUnset BuildMode = iota
	// BuildByRow — all structural additions so far came through AddRow.
	BuildByRow
	// BuildByColumn — all structural additions so far came through AddColumn.
	BuildByColumn
	// BuildLinked — orientations were mixed or point edits were issued;
	// every insert now consults the coordinate index.
	BuildLinked
)

// Direction is the optimization sense carried alongside the matrix.
type Direction int

const (
	// Minimize is the default sense.
	Minimize Direction = iota
	// Maximize inverts the sense; the MPS writer emits OBJSENSE MAX.
	Maximize
	// IgnoreDirection marks the objective as irrelevant (feasibility model).
	IgnoreDirection
)

// Nonzero is one exported matrix entry: (Row, Col, Value). For quadratic
// entries Row and Col are both column indices.
type Nonzero struct {
	Row   int
	Col   int
	Value float64
}

// Snapshot is the solver-facing deep copy produced by Export: dimensions,
// bounds, objective, integrality, names and the sparse entries, with every
// symbolic value resolved to its currently bound number. A loader needs
// nothing beyond this to pull the full problem.
type Snapshot struct {
	Rows int
	Cols int

	Direction Direction

	RowLower []float64
	RowUpper []float64
	RowNames []string

	ColLower  []float64
	ColUpper  []float64
	Objective []float64
	Integer   []bool
	ColNames  []string

	// Elements is row-major: grouped by row, insertion order within a row.
	Elements []Nonzero
	// Quadratic holds the quadratic-objective entries, grouped by first
	// column index.
	Quadratic []Nonzero
}

// Documented defaults for implicitly created entities. Getters on
// out-of-range indices return exactly these.
var (
	// DefaultRowLower is −Inf: a fresh row constrains nothing from below.
	DefaultRowLower = math.Inf(-1)
	// DefaultRowUpper is +Inf: a fresh row constrains nothing from above.
	DefaultRowUpper = math.Inf(1)
	// DefaultColumnUpper is +Inf.
	DefaultColumnUpper = math.Inf(1)
)

const (
	// DefaultColumnLower is 0: variables are non-negative unless told otherwise.
	DefaultColumnLower = 0.0
	// DefaultObjective is 0.
	DefaultObjective = 0.0
)

// Per-entity bit flags marking which attribute currently holds an interned
// string id instead of a number. Rows use the first two bits, columns all
// four.
const (
	flagLowerIsString     uint8 = 1 << 0
	flagUpperIsString     uint8 = 1 << 1
	flagObjectiveIsString uint8 = 1 << 2
	flagIntegerIsString   uint8 = 1 << 3
)

// NoIndex is the absent-sentinel returned by name lookups and LookupString.
const NoIndex = -1
