// Package sparse: compaction. Compact is the only operation that renumbers
// slots; everything else leaves live indices stable.
package sparse

// Compact removes holes from the arena, renumbers element coordinates
// through rowMap/colMap (old index → new index, NoElement to drop the
// element; nil means identity) and rebuilds both linked lists and — when it
// was materialized — the coordinate index. nRows/nCols give the line counts
// of the renumbered store.
//
// Arena order is preserved for surviving elements, so per-line traversal
// order (insertion order) survives compaction.
//
// Returns the number of elements dropped, holes excluded.
func (s *Store) Compact(rowMap, colMap []int32, nRows, nCols int) int {
	kept := make([]Triple, 0, s.live)
	dropped := 0
	for _, t := range s.tri {
		if t.IsHole() {
			continue
		}
		r, c := t.Row, t.Col
		if rowMap != nil {
			r = rowMap[r]
		}
		if colMap != nil {
			c = colMap[c]
		}
		if r == NoElement || c == NoElement {
			dropped++

			continue
		}
		t.Row, t.Col = r, c
		kept = append(kept, t)
	}

	s.tri = kept
	s.live = len(kept)
	s.rows.reset(len(kept), nRows)
	s.cols.reset(len(kept), nCols)
	for slot, t := range kept {
		s.rows.pushTail(t.Row, int32(slot))
		s.cols.pushTail(t.Col, int32(slot))
	}
	if s.index != nil {
		s.index = nil
		s.ensureIndex()
	}

	return dropped
}
