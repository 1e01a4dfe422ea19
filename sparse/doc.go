// Package sparse implements the storage engine behind lpbuild: a growable
// arena of (row, column, value) triples threaded by two independent doubly
// linked lists — one through every element of a row, one through every
// element of a column — with a coordinate hash for O(1) existence checks.
//
// What:
//
//   - Store owns the arena; elements are addressed by stable integer slots.
//   - Append writes blind (the pure bulk path); Upsert consults the
//     coordinate index and overwrites in place on a hit.
//   - Remove unlinks an element from both lists and leaves a hole; slots
//     are never renumbered until an explicit Compact.
//   - Cursor walks one orientation (ByRow or ByCol); the orientation is
//     part of the cursor, never inferred.
//
// Why index-linked lists instead of pointer graphs:
//
//   - next/prev are integer slots into one arena, so growing the backing
//     array relocates memory without invalidating anything except raw
//     *float64 cell pointers handed out by ValuePtr.
//   - One physical element sits in exactly one row list and one column
//     list at the same time; both lists share the element's storage.
//
// Laziness:
//
//   - The coordinate index is built on first random access (Upsert, Lookup,
//     Remove). A model assembled purely through Append never pays for it —
//     this is the documented bulk-vs-mixed performance cliff.
//
// Complexity:
//
//   - Append/Upsert/Lookup/Remove: O(1) amortized (expected for hash ops).
//   - Compact: O(elements + rows + columns).
//
// Invariants:
//
//   - Every live element has exactly one coordinate-index entry and one
//     position in each list; holes are in neither.
//   - Growth at least doubles capacity; counts never exceed capacity.
//   - Any mutation invalidates previously issued cursors and ValuePtr
//     borrows.
//
// Negative rows, columns, or slots are programmer errors and panic with a
// stable message; the model façade validates user input before calling in.
package sparse
