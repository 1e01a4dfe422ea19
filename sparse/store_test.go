// Package sparse_test contains unit tests for the triple arena: append,
// upsert, lookup, removal and the laziness of the coordinate index.
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/lpbuild/sparse"
	"github.com/stretchr/testify/require"
)

// TestAppendThenLookup verifies the basic append → lookup round trip.
func TestAppendThenLookup(t *testing.T) {
	s := sparse.NewStore(0)

	slot := s.Append(1, 2, 3.5, sparse.NoString) // blind append on the bulk path
	require.Equal(t, int32(0), slot)             // first slot is 0
	require.Equal(t, 1, s.Len())                 // one live element

	tr, ok := s.Lookup(1, 2) // random access materializes the index
	require.True(t, ok)
	require.Equal(t, 3.5, tr.Value)
	require.Equal(t, sparse.NoString, tr.StringID)
}

// TestIndexIsLazy ensures the coordinate index only exists after the
// first random access.
func TestIndexIsLazy(t *testing.T) {
	s := sparse.NewStore(0)
	s.Append(0, 0, 1, sparse.NoString)
	s.Append(0, 1, 2, sparse.NoString)
	require.False(t, s.Indexed()) // pure bulk path: no index yet

	_, _ = s.Lookup(0, 0)
	require.True(t, s.Indexed()) // first lookup built it
}

// TestUpsertOverwritesInPlace checks that upserting an existing pair
// changes the value without any structural change.
func TestUpsertOverwritesInPlace(t *testing.T) {
	s := sparse.NewStore(0)

	slot1, created := s.Upsert(3, 4, 1.0, sparse.NoString)
	require.True(t, created)

	slot2, created := s.Upsert(3, 4, 2.0, sparse.NoString)
	require.False(t, created)        // overwrite, not insert
	require.Equal(t, slot1, slot2)   // same physical slot
	require.Equal(t, 1, s.Len())     // element count unchanged
	require.Equal(t, 1, s.Slots())   // no hole, no growth
	tr, _ := s.Lookup(3, 4)          // read back
	require.Equal(t, 2.0, tr.Value)  // second value wins
}

// TestTraversalIsInsertionOrder verifies that row and column lists
// enumerate elements in append order, not index order.
func TestTraversalIsInsertionOrder(t *testing.T) {
	s := sparse.NewStore(0)
	s.Append(0, 5, 50, sparse.NoString) // columns deliberately out of order
	s.Append(0, 1, 10, sparse.NoString)
	s.Append(0, 3, 30, sparse.NoString)

	var cols []int
	for cur := s.First(sparse.ByRow, 0); cur.Valid(); cur = cur.Next() {
		cols = append(cols, cur.Col())
	}
	require.Equal(t, []int{5, 1, 3}, cols) // append order preserved

	// The boundary yields an invalid cursor, not a wrap-around.
	require.False(t, s.Last(sparse.ByRow, 0).Next().Valid())
}

// TestBothOrientations checks that one element is reachable through its
// row list and its column list simultaneously.
func TestBothOrientations(t *testing.T) {
	s := sparse.NewStore(0)
	s.Append(0, 7, 1, sparse.NoString)
	s.Append(1, 7, 2, sparse.NoString)
	s.Append(2, 7, 3, sparse.NoString)

	var rows []int
	for cur := s.First(sparse.ByCol, 7); cur.Valid(); cur = cur.Next() {
		rows = append(rows, cur.Row())
	}
	require.Equal(t, []int{0, 1, 2}, rows)

	// Backwards from the tail.
	rows = rows[:0]
	for cur := s.Last(sparse.ByCol, 7); cur.Valid(); cur = cur.Prev() {
		rows = append(rows, cur.Row())
	}
	require.Equal(t, []int{2, 1, 0}, rows)
}

// TestRemoveMiddleKeepsNeighbours removes an interior element and checks
// that both lists are repaired around the hole.
func TestRemoveMiddleKeepsNeighbours(t *testing.T) {
	s := sparse.NewStore(0)
	s.Append(0, 0, 1, sparse.NoString)
	s.Append(0, 1, 2, sparse.NoString)
	s.Append(0, 2, 3, sparse.NoString)

	require.True(t, s.Remove(0, 1))  // interior removal
	require.False(t, s.Remove(0, 1)) // already gone
	require.Equal(t, 2, s.Len())     // live count dropped
	require.Equal(t, 3, s.Slots())   // slot kept as a hole

	var cols []int
	for cur := s.First(sparse.ByRow, 0); cur.Valid(); cur = cur.Next() {
		cols = append(cols, cur.Col())
	}
	require.Equal(t, []int{0, 2}, cols) // neighbours spliced together

	_, ok := s.Lookup(0, 1)
	require.False(t, ok) // index entry gone too
}

// TestRemoveEndpointsUpdatesHeadTail removes head and tail elements and
// verifies the line endpoints move.
func TestRemoveEndpointsUpdatesHeadTail(t *testing.T) {
	s := sparse.NewStore(0)
	s.Append(2, 0, 1, sparse.NoString)
	s.Append(2, 1, 2, sparse.NoString)
	s.Append(2, 2, 3, sparse.NoString)

	require.True(t, s.Remove(2, 0)) // head
	require.Equal(t, 1, s.First(sparse.ByRow, 2).Col())

	require.True(t, s.Remove(2, 2)) // tail
	require.Equal(t, 1, s.Last(sparse.ByRow, 2).Col())

	require.True(t, s.Remove(2, 1)) // last one standing
	require.False(t, s.First(sparse.ByRow, 2).Valid())
	require.False(t, s.Last(sparse.ByRow, 2).Valid())
}

// TestRemoveLine clears a whole column and leaves the crossing rows intact.
func TestRemoveLine(t *testing.T) {
	s := sparse.NewStore(0)
	s.Append(0, 0, 1, sparse.NoString)
	s.Append(0, 1, 2, sparse.NoString)
	s.Append(1, 1, 3, sparse.NoString)

	require.Equal(t, 2, s.RemoveLine(sparse.ByCol, 1)) // two elements in column 1
	require.Equal(t, 1, s.Len())
	require.False(t, s.First(sparse.ByCol, 1).Valid())

	// Row 0 kept its remaining element.
	require.Equal(t, 0, s.First(sparse.ByRow, 0).Col())

	// A line beyond the extent is silently empty.
	require.Equal(t, 0, s.RemoveLine(sparse.ByRow, 99))
}

// TestReserveGrowthPolicy verifies capacity at least doubles and never
// renumbers existing slots.
func TestReserveGrowthPolicy(t *testing.T) {
	s := sparse.NewStore(2)
	s.Append(0, 0, 1, sparse.NoString)
	s.Append(0, 1, 2, sparse.NoString)
	require.Equal(t, 2, s.Cap())

	s.Append(0, 2, 3, sparse.NoString) // forces growth
	require.GreaterOrEqual(t, s.Cap(), 4)

	// Slots issued before the growth still resolve.
	require.Equal(t, 1.0, s.Tri(0).Value)
	require.Equal(t, int32(0), s.Slot(0, 0))
}

// TestEnsureLines materializes empty lines ahead of any element.
func TestEnsureLines(t *testing.T) {
	s := sparse.NewStore(0)
	s.EnsureRows(3)
	s.EnsureCols(2)

	require.Equal(t, 3, s.Rows())
	require.Equal(t, 2, s.Cols())
	require.False(t, s.First(sparse.ByRow, 2).Valid()) // empty, not missing
	require.Equal(t, 0, s.Len())

	s.EnsureRows(1) // never shrinks
	require.Equal(t, 3, s.Rows())
}

// TestSetValueOverwritesSlot rewrites a held slot in place.
func TestSetValueOverwritesSlot(t *testing.T) {
	s := sparse.NewStore(0)
	slot := s.Append(0, 0, 1, sparse.NoString)

	s.SetValue(slot, 4.5, sparse.NoString)
	tr, _ := s.Lookup(0, 0)
	require.Equal(t, 4.5, tr.Value)
	require.Equal(t, 1, s.Len()) // no structural change
}

// TestValuePtrWritesThrough checks the raw borrow updates the cell.
func TestValuePtrWritesThrough(t *testing.T) {
	s := sparse.NewStore(0)
	slot := s.Append(0, 0, 1, sparse.NoString)

	*s.ValuePtr(slot) = 9.5 // in-place tweak
	tr, _ := s.Lookup(0, 0)
	require.Equal(t, 9.5, tr.Value)
}

// TestCloneIndependence ensures Clone shares no storage.
func TestCloneIndependence(t *testing.T) {
	s := sparse.NewStore(0)
	s.Append(0, 0, 1, sparse.NoString)
	_, _ = s.Lookup(0, 0) // materialize the index so it is cloned too

	cp := s.Clone()
	cp.Upsert(0, 0, 42, sparse.NoString)
	cp.Append(1, 1, 7, sparse.NoString)

	tr, _ := s.Lookup(0, 0)
	require.Equal(t, 1.0, tr.Value) // original untouched
	require.Equal(t, 1, s.Len())
	require.Equal(t, 2, cp.Len())
}
