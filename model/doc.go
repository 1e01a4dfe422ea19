// Package model is the public façade of lpbuild: a mutable sparse
// optimization model assembled row by row, column by column, or element by
// element in any mixed order.
//
// What:
//
//   - AddRow / AddColumn append a whole constraint or variable in one call
//     on the optimized single-orientation bulk path.
//   - SetElement upserts one coefficient through the coordinate index.
//   - Attribute setters (bounds, objective, names, integrality) silently
//     auto-create every entity up to the target index with default values.
//   - Entries may be symbolic: a string placeholder interned in the model's
//     pool and bound to a number via AssociateString, rebindable at any time.
//   - DeleteRow / DeleteColumn clear an entity into a hole; PackRows /
//     PackColumns / Pack remove holes permanently and renumber.
//   - Export produces a solver-facing Snapshot of the whole problem.
//
// Why:
//
//   - Solvers want the finished matrix; humans build it incrementally and
//     out of order. This package absorbs the mess and keeps O(1) edits.
//
// Absence is silent:
//
//   - Getters on a missing cell or out-of-range index return the documented
//     default (row bounds −Inf/+Inf, column bounds 0/+Inf, objective 0,
//     integer false, name ""), never an error. Errors are reserved for
//     structurally impossible arguments (negative indices, mismatched
//     slice lengths) and are package-level sentinels checked via errors.Is.
//
// Build mode:
//
//   - The mode (BuildByRow, BuildByColumn, BuildLinked) is advisory: it
//     tracks which fast path the model is still on. Mixing orientations or
//     issuing point edits flips it to BuildLinked, which consults the
//     coordinate index on every insert. Correctness is identical; only
//     throughput differs. See bench_test.go.
//
// Not safe for concurrent mutation; a mutation may grow backing arrays and
// invalidates all cursors and ElementPointer borrows issued earlier.
package model
