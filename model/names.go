// Package model: the name table — one independent instance per dimension —
// mapping entity names to indices for O(1) lookup-by-name.
package model

// nameTable stores per-index names and the reverse map. An empty name is
// "unnamed" and never enters the reverse map. When two indices are given
// the same name, the last writer owns the lookup entry.
type nameTable struct {
	names []string
	index map[string]int
}

// ensure extends the table so indices [0, n) exist, new ones unnamed.
func (t *nameTable) ensure(n int) {
	for len(t.names) < n {
		t.names = append(t.names, "")
	}
}

// rename sets the name of index i, releasing i's previous lookup entry.
func (t *nameTable) rename(i int, name string) {
	t.ensure(i + 1)
	if old := t.names[i]; old != "" && t.index[old] == i {
		delete(t.index, old)
	}
	t.names[i] = name
	if name != "" {
		if t.index == nil {
			t.index = make(map[string]int)
		}
		t.index[name] = i
	}
}

// name returns the name of index i, "" when unnamed or out of range.
func (t *nameTable) name(i int) string {
	if i < 0 || i >= len(t.names) {
		return ""
	}

	return t.names[i]
}

// lookup returns the index owning name, NoIndex when absent.
func (t *nameTable) lookup(name string) int {
	if name == "" {
		return NoIndex
	}
	if i, ok := t.index[name]; ok {
		return i
	}

	return NoIndex
}

// compact renumbers the table through remap (old → new, -1 drops the
// entry) down to n surviving indices and rebuilds the reverse map.
func (t *nameTable) compact(remap []int32, n int) {
	names := make([]string, n)
	for old, name := range t.names {
		if remap[old] >= 0 {
			names[remap[old]] = name
		}
	}
	t.names = names
	t.index = nil
	for i, name := range names {
		if name == "" {
			continue
		}
		if t.index == nil {
			t.index = make(map[string]int)
		}
		t.index[name] = i
	}
}

// truncate drops indices >= n, releasing their lookup entries.
func (t *nameTable) truncate(n int) {
	for i := n; i < len(t.names); i++ {
		if name := t.names[i]; name != "" && t.index[name] == i {
			delete(t.index, name)
		}
	}
	if n < len(t.names) {
		t.names = t.names[:n]
	}
}

// clone returns a deep copy.
func (t *nameTable) clone() nameTable {
	cp := nameTable{names: make([]string, len(t.names))}
	copy(cp.names, t.names)
	if t.index != nil {
		cp.index = make(map[string]int, len(t.index))
		for k, v := range t.index {
			cp.index[k] = v
		}
	}

	return cp
}
