// Package sparse: the doubly linked list layer. One linkSet instance
// threads elements by row, a second independent instance threads the same
// physical elements by column. All pointers are integer slots into the
// arena, so reallocation of the backing arrays never invalidates a list.
package sparse

// linkSet holds per-slot next/prev pointers and per-line head/tail
// pointers, where a "line" is a row index for the row orientation and a
// column index for the column orientation.
type linkSet struct {
	next []int32 // next[slot] — following element in the same line
	prev []int32 // prev[slot] — preceding element in the same line
	head []int32 // head[line] — first element, NoElement when empty
	tail []int32 // tail[line] — last element, NoElement when empty
}

// ensureLines extends head/tail so that lines [0, n) exist, each new line
// starting empty. Existing lines are untouched.
func (l *linkSet) ensureLines(n int) {
	for len(l.head) < n {
		l.head = append(l.head, NoElement)
		l.tail = append(l.tail, NoElement)
	}
}

// addSlot registers storage for one more arena slot, initially unlinked.
// Must be called in lockstep with arena growth.
func (l *linkSet) addSlot() {
	l.next = append(l.next, NoElement)
	l.prev = append(l.prev, NoElement)
}

// pushTail splices slot onto the tail of line. Append-at-tail is what
// makes traversal order equal insertion order.
func (l *linkSet) pushTail(line int32, slot int32) {
	l.prev[slot] = l.tail[line]
	l.next[slot] = NoElement
	if l.tail[line] != NoElement {
		l.next[l.tail[line]] = slot
	} else {
		l.head[line] = slot
	}
	l.tail[line] = slot
}

// unlink removes slot from line, repairing neighbours and, when the slot
// was an endpoint, the line's head/tail.
func (l *linkSet) unlink(line int32, slot int32) {
	p, n := l.prev[slot], l.next[slot]
	if p != NoElement {
		l.next[p] = n
	} else {
		l.head[line] = n
	}
	if n != NoElement {
		l.prev[n] = p
	} else {
		l.tail[line] = p
	}
	l.next[slot] = NoElement
	l.prev[slot] = NoElement
}

// reset clears every slot pointer and re-sizes the line arrays to n empty
// lines. Used by Compact before relinking in arena order.
func (l *linkSet) reset(slots, lines int) {
	l.next = make([]int32, slots)
	l.prev = make([]int32, slots)
	for i := range l.next {
		l.next[i] = NoElement
		l.prev[i] = NoElement
	}
	l.head = make([]int32, lines)
	l.tail = make([]int32, lines)
	for i := range l.head {
		l.head[i] = NoElement
		l.tail[i] = NoElement
	}
}

// clone returns a deep copy sharing no storage with the receiver.
func (l *linkSet) clone() linkSet {
	cp := linkSet{
		next: make([]int32, len(l.next)),
		prev: make([]int32, len(l.prev)),
		head: make([]int32, len(l.head)),
		tail: make([]int32, len(l.tail)),
	}
	copy(cp.next, l.next)
	copy(cp.prev, l.prev)
	copy(cp.head, l.head)
	copy(cp.tail, l.tail)

	return cp
}
