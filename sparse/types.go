// Package sparse: storage types shared by the arena, the linked lists and
// the cursors. Only domain-facing types live here; the Store itself is in
// store.go and traversal in cursor.go, per the package conventions.
package sparse

// NoElement is the absent-sentinel for slots, list pointers and head/tail
// entries. A cursor whose slot is NoElement is past the boundary.
const NoElement int32 = -1

// NoString marks a Triple whose value slot is numeric rather than a
// reference into the caller's string pool.
const NoString int32 = -1

// Orientation selects which of the two lists a cursor walks.
type Orientation uint8

const (
	// ByRow walks the elements sharing a row, in insertion order.
	ByRow Orientation = iota
	// ByCol walks the elements sharing a column, in insertion order.
	ByCol
)

// Triple is the unit of storage for one matrix entry: the owning row, the
// owning column, and a value slot that is either a plain number or — when
// StringID != NoString — a reference to an interned symbolic value. The
// quadratic store reuses Triple with (Row, Col) read as (column-i, column-j).
type Triple struct {
	Row      int32
	Col      int32
	Value    float64
	StringID int32
}

// IsHole reports whether the slot holding this triple was removed and not
// yet compacted away. Holes are unlinked from both lists and absent from
// the coordinate index.
func (t Triple) IsHole() bool { return t.Row == NoElement }

// coord keys the coordinate index. Using a small comparable struct keeps
// the key compact and hash-friendly.
type coord struct {
	r, c int32
}

// Internal panic messages (no magic strings). User-facing validation
// happens in the model façade; hitting these means a caller inside this
// module broke a precondition.
const (
	panicNegativeIndex = "sparse: negative row/column index"
	panicBadSlot       = "sparse: slot out of range"
)
