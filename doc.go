// Package lpbuild is an in-memory workbench for assembling sparse
// optimization models — rows are constraints, columns are variables,
// plus an optional quadratic objective — before handing the finished
// problem to a solving engine.
//
// 🚀 What is lpbuild?
//
//	A mutable, builder-oriented sparse store that lets you grow a model
//	by row, by column, or element-by-element in any mixed order:
//		• Bulk append: AddRow / AddColumn on the optimized one-orientation path
//		• Point edits: SetElement upserts through an O(1) coordinate index
//		• Traversal: by-row and by-column cursors over one physical arena
//		• Housekeeping: delete rows/columns as holes, Pack to renumber
//		• Symbolic entries: string-valued cells resolved via an interning pool
//		• Export: standard MPS exchange files, plain or gzip
//
// ✨ Why choose lpbuild?
//
//   - Builder-first – optimized for incremental construction, not algebra
//   - Predictable – absence is a documented default, never an error
//   - Pure Go core – no cgo; gzip output via klauspost/compress
//   - Solver-agnostic – Export() hands the whole problem to any loader
//
// Under the hood, everything is organized under three subpackages:
//
//	sparse/ — triple arena, coordinate index, dual row/column linked lists
//	model/  — the Model façade: bounds, objective, names, integrality, pack
//	mps/    — fixed-section MPS writer with three precision modes
//
// Quick sketch:
//
//	m := model.New(model.WithRowBuild())
//	_ = m.AddRow([]int{0, 2}, []float64{1, 3}, 0, 10, "capacity")
//	_ = m.SetColumnObjective(2, 7.5)
//	_ = mps.Write(m, "problem.mps", mps.WithGzip())
//
// The structure is single-threaded by design: every mutation may grow the
// backing arrays and invalidates outstanding cursors and raw cell
// pointers. Wrap it in your own mutex if you must share it.
//
//	go get github.com/katalvlaran/lpbuild
package lpbuild
