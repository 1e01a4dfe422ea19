// Package sparse: traversal cursors. A Cursor is a transient view over one
// element plus the orientation it was obtained from; it must not outlive
// the next mutation of its Store.
package sparse

// Cursor points at one element inside a Store and remembers whether it was
// issued for row traversal or column traversal. The zero Cursor is invalid.
type Cursor struct {
	store  *Store
	slot   int32
	orient Orientation
}

// First returns a cursor on the head element of the given line (a row for
// ByRow, a column for ByCol), or an invalid cursor when the line is empty
// or beyond the store's extent.
func (s *Store) First(o Orientation, line int) Cursor {
	return s.endpoint(o, line, true)
}

// Last mirrors First for the tail element.
func (s *Store) Last(o Orientation, line int) Cursor {
	return s.endpoint(o, line, false)
}

func (s *Store) endpoint(o Orientation, line int, head bool) Cursor {
	set := &s.rows
	if o == ByCol {
		set = &s.cols
	}
	cur := Cursor{store: s, slot: NoElement, orient: o}
	if line < 0 || line >= len(set.head) {
		return cur
	}
	if head {
		cur.slot = set.head[line]
	} else {
		cur.slot = set.tail[line]
	}

	return cur
}

// Valid reports whether the cursor points at an element. Next/Prev on the
// boundary return an invalid cursor rather than wrapping.
func (c Cursor) Valid() bool { return c.store != nil && c.slot != NoElement }

// Next advances within the list the cursor was obtained from.
func (c Cursor) Next() Cursor {
	if !c.Valid() {
		return c
	}
	if c.orient == ByRow {
		c.slot = c.store.rows.next[c.slot]
	} else {
		c.slot = c.store.cols.next[c.slot]
	}

	return c
}

// Prev steps backwards within the list the cursor was obtained from.
func (c Cursor) Prev() Cursor {
	if !c.Valid() {
		return c
	}
	if c.orient == ByRow {
		c.slot = c.store.rows.prev[c.slot]
	} else {
		c.slot = c.store.cols.prev[c.slot]
	}

	return c
}

// Slot returns the arena slot under the cursor, or int(NoElement).
func (c Cursor) Slot() int {
	if !c.Valid() {
		return int(NoElement)
	}

	return int(c.slot)
}

// Row returns the owning row, or -1 on an invalid cursor.
func (c Cursor) Row() int {
	if !c.Valid() {
		return -1
	}

	return int(c.store.tri[c.slot].Row)
}

// Col returns the owning column, or -1 on an invalid cursor.
func (c Cursor) Col() int {
	if !c.Valid() {
		return -1
	}

	return int(c.store.tri[c.slot].Col)
}

// Value returns the numeric value slot, 0 on an invalid cursor. For
// string-valued elements this is not the resolved binding — resolve
// StringID through the owning pool instead.
func (c Cursor) Value() float64 {
	if !c.Valid() {
		return 0
	}

	return c.store.tri[c.slot].Value
}

// StringID returns the interned string reference, NoString for numeric
// cells and on an invalid cursor.
func (c Cursor) StringID() int32 {
	if !c.Valid() {
		return NoString
	}

	return c.store.tri[c.slot].StringID
}
