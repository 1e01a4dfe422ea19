// Package model: the string pool — interning for symbolic (string-valued)
// entries. Content is unique within the pool and ids are stable for the
// model's lifetime; rebinding changes only the associated number.
package model

import "github.com/katalvlaran/lpbuild/sparse"

type poolEntry struct {
	content string
	value   float64
}

// stringPool interns string values and binds each to a number. The zero
// pool is ready for use.
type stringPool struct {
	entries []poolEntry // id == position; append-only
	ids     map[string]int
}

// associate interns s (first occurrence creates a fresh id) and binds it
// to v, overwriting any previous binding. Returns the stable id.
func (p *stringPool) associate(s string, v float64) int {
	if id, ok := p.ids[s]; ok {
		p.entries[id].value = v

		return id
	}
	id := len(p.entries)
	p.entries = append(p.entries, poolEntry{content: s, value: v})
	if p.ids == nil {
		p.ids = make(map[string]int)
	}
	p.ids[s] = id

	return id
}

// ensure interns s with a zero binding when unseen; existing bindings are
// left alone. Used by setters that reference a string before it is bound.
func (p *stringPool) ensure(s string) int {
	if id, ok := p.ids[s]; ok {
		return id
	}

	return p.associate(s, 0)
}

// lookup returns the id of s without interning, NoIndex when absent.
func (p *stringPool) lookup(s string) int {
	if id, ok := p.ids[s]; ok {
		return id
	}

	return NoIndex
}

// value returns the number bound to id.
func (p *stringPool) value(id int) (float64, bool) {
	if id < 0 || id >= len(p.entries) {
		return 0, false
	}

	return p.entries[id].value, true
}

// content returns the interned text of id, "" when out of range.
func (p *stringPool) content(id int) string {
	if id < 0 || id >= len(p.entries) {
		return ""
	}

	return p.entries[id].content
}

func (p *stringPool) len() int { return len(p.entries) }

// resolve maps a triple's string reference to its bound number, falling
// back to the triple's own value slot for numeric cells.
func (p *stringPool) resolve(value float64, stringID int32) float64 {
	if stringID == sparse.NoString {
		return value
	}
	if v, ok := p.value(int(stringID)); ok {
		return v
	}

	return 0
}

// clone returns a deep copy.
func (p *stringPool) clone() stringPool {
	cp := stringPool{entries: make([]poolEntry, len(p.entries))}
	copy(cp.entries, p.entries)
	if p.ids != nil {
		cp.ids = make(map[string]int, len(p.ids))
		for k, v := range p.ids {
			cp.ids[k] = v
		}
	}

	return cp
}
