// Package sparse: the Store — a growable triple arena with hole-tolerant
// removal, an on-demand coordinate index and the two list orientations.
package sparse

// Store owns the element arena. Slots handed out by Append/Upsert stay
// stable across growth and removal; only Compact renumbers.
//
// The zero Store is not ready for use; construct with NewStore.
type Store struct {
	tri  []Triple
	rows linkSet
	cols linkSet

	// index maps (row, col) to the owning slot. It stays nil on the pure
	// bulk-append path and is materialized by the first random access.
	index map[coord]int32

	// live counts non-hole slots; len(s.tri)-live is the hole count.
	live int
}

// NewStore returns an empty store with capacity for hintElements triples.
// A non-positive hint allocates nothing up front.
func NewStore(hintElements int) *Store {
	s := &Store{}
	if hintElements > 0 {
		s.tri = make([]Triple, 0, hintElements)
		s.rows.next = make([]int32, 0, hintElements)
		s.rows.prev = make([]int32, 0, hintElements)
		s.cols.next = make([]int32, 0, hintElements)
		s.cols.prev = make([]int32, 0, hintElements)
	}

	return s
}

// Len returns the number of live elements (holes excluded).
func (s *Store) Len() int { return s.live }

// Slots returns the arena length including holes. Slot values returned by
// Append/Upsert are always < Slots().
func (s *Store) Slots() int { return len(s.tri) }

// Cap returns the current arena capacity.
func (s *Store) Cap() int { return cap(s.tri) }

// Rows returns the number of row lines the store has seen so far.
func (s *Store) Rows() int { return len(s.rows.head) }

// Cols returns the number of column lines the store has seen so far.
func (s *Store) Cols() int { return len(s.cols.head) }

// Indexed reports whether the coordinate index has been materialized —
// i.e. whether the store has left the pure bulk-append path.
func (s *Store) Indexed() bool { return s.index != nil }

// Reserve grows the arena so that at least n slots fit without another
// allocation. Growth at least doubles the current capacity or satisfies n
// exactly, whichever is larger; existing entries are copied over.
func (s *Store) Reserve(n int) {
	if n <= cap(s.tri) {
		return
	}
	newCap := 2 * cap(s.tri)
	if newCap < n {
		newCap = n
	}
	grown := make([]Triple, len(s.tri), newCap)
	copy(grown, s.tri)
	s.tri = grown
}

// EnsureRows guarantees row lines [0, n) exist (empty when new).
func (s *Store) EnsureRows(n int) { s.rows.ensureLines(n) }

// EnsureCols guarantees column lines [0, n) exist (empty when new).
func (s *Store) EnsureCols(n int) { s.cols.ensureLines(n) }

// Append stores a new triple without consulting the coordinate index and
// splices it onto the tail of its row list and column list. This is the
// fast bulk path: the caller guarantees (r, c) is not already present.
// Returns the new slot.
func (s *Store) Append(r, c int, v float64, stringID int32) int32 {
	if r < 0 || c < 0 {
		panic(panicNegativeIndex)
	}
	s.rows.ensureLines(r + 1)
	s.cols.ensureLines(c + 1)
	if len(s.tri) == cap(s.tri) {
		s.Reserve(len(s.tri) + 1)
	}

	slot := int32(len(s.tri))
	s.tri = append(s.tri, Triple{Row: int32(r), Col: int32(c), Value: v, StringID: stringID})
	s.rows.addSlot()
	s.cols.addSlot()
	s.rows.pushTail(int32(r), slot)
	s.cols.pushTail(int32(c), slot)
	if s.index != nil {
		s.index[coord{int32(r), int32(c)}] = slot
	}
	s.live++

	return slot
}

// Upsert overwrites the value in place when (r, c) already exists (no
// structural change) and appends a fresh element otherwise. The boolean
// result reports whether a new element was created.
func (s *Store) Upsert(r, c int, v float64, stringID int32) (int32, bool) {
	if r < 0 || c < 0 {
		panic(panicNegativeIndex)
	}
	s.ensureIndex()
	if slot, ok := s.index[coord{int32(r), int32(c)}]; ok {
		s.SetValue(slot, v, stringID)

		return slot, false
	}

	return s.Append(r, c, v, stringID), true
}

// Slot returns the arena slot holding (r, c), or NoElement.
func (s *Store) Slot(r, c int) int32 {
	if r < 0 || c < 0 {
		return NoElement
	}
	s.ensureIndex()
	if slot, ok := s.index[coord{int32(r), int32(c)}]; ok {
		return slot
	}

	return NoElement
}

// Lookup returns the triple stored at (r, c) and whether it exists.
func (s *Store) Lookup(r, c int) (Triple, bool) {
	slot := s.Slot(r, c)
	if slot == NoElement {
		return Triple{}, false
	}

	return s.tri[slot], true
}

// Tri returns the triple stored in slot. Panics on an out-of-range slot.
func (s *Store) Tri(slot int32) Triple {
	if slot < 0 || int(slot) >= len(s.tri) {
		panic(panicBadSlot)
	}

	return s.tri[slot]
}

// ValuePtr borrows a pointer to the numeric value of slot. The borrow is
// valid only until the next mutation: any Append/Upsert may relocate the
// arena and any Remove/Compact may retire the slot.
func (s *Store) ValuePtr(slot int32) *float64 {
	if slot < 0 || int(slot) >= len(s.tri) {
		panic(panicBadSlot)
	}

	return &s.tri[slot].Value
}

// SetValue overwrites the value slot of an existing element in place.
func (s *Store) SetValue(slot int32, v float64, stringID int32) {
	if slot < 0 || int(slot) >= len(s.tri) {
		panic(panicBadSlot)
	}
	s.tri[slot].Value = v
	s.tri[slot].StringID = stringID
}

// Remove unlinks (r, c) from both lists, drops its coordinate-index entry
// and turns its slot into a hole. Slots are not reclaimed until Compact.
// Returns false when the element does not exist.
func (s *Store) Remove(r, c int) bool {
	slot := s.Slot(r, c)
	if slot == NoElement {
		return false
	}
	t := s.tri[slot]
	s.rows.unlink(t.Row, slot)
	s.cols.unlink(t.Col, slot)
	delete(s.index, coord{t.Row, t.Col})
	s.tri[slot] = Triple{Row: NoElement, Col: NoElement, StringID: NoString}
	s.live--

	return true
}

// RemoveLine removes every element of one row (ByRow) or one column
// (ByCol) and returns how many were removed. A line beyond the store's
// extent is silently empty.
func (s *Store) RemoveLine(o Orientation, line int) int {
	own, other := &s.rows, &s.cols
	if o == ByCol {
		own, other = &s.cols, &s.rows
	}
	if line < 0 || line >= len(own.head) {
		return 0
	}

	removed := 0
	for slot := own.head[int32(line)]; slot != NoElement; {
		next := own.next[slot]
		t := s.tri[slot]
		if o == ByRow {
			other.unlink(t.Col, slot)
		} else {
			other.unlink(t.Row, slot)
		}
		if s.index != nil {
			delete(s.index, coord{t.Row, t.Col})
		}
		own.next[slot] = NoElement
		own.prev[slot] = NoElement
		s.tri[slot] = Triple{Row: NoElement, Col: NoElement, StringID: NoString}
		s.live--
		removed++
		slot = next
	}
	own.head[line] = NoElement
	own.tail[line] = NoElement

	return removed
}

// Clone returns a deep copy; no storage is shared with the receiver.
func (s *Store) Clone() *Store {
	cp := &Store{
		tri:  make([]Triple, len(s.tri), cap(s.tri)),
		rows: s.rows.clone(),
		cols: s.cols.clone(),
		live: s.live,
	}
	copy(cp.tri, s.tri)
	if s.index != nil {
		cp.index = make(map[coord]int32, len(s.index))
		for k, v := range s.index {
			cp.index[k] = v
		}
	}

	return cp
}

// ensureIndex materializes the coordinate index from the live slots. This
// is the one-time cost of leaving the pure bulk path.
func (s *Store) ensureIndex() {
	if s.index != nil {
		return
	}
	s.index = make(map[coord]int32, s.live)
	for slot, t := range s.tri {
		if t.IsHole() {
			continue
		}
		s.index[coord{t.Row, t.Col}] = int32(slot)
	}
}
