package buffer

import (
	"fmt"

	"github.com/dshills/inkwell/internal/style"
)

// StyleKey is an opaque handle to an interned style. The zero value
// means "no style". Keys carry a generation so a handle outliving its
// entry is detected rather than resolving to a recycled slot.
type StyleKey struct {
	index      uint32
	generation uint32
}

// IsZero reports whether the key references no style.
func (k StyleKey) IsZero() bool {
	return k == StyleKey{}
}

// slot is one arena entry. Freed slots keep their bumped generation so
// stale keys mismatch, and are recycled through the free list.
type slot struct {
	style      style.Style
	refs       int
	generation uint32
	live       bool
}

// StyleTable interns styles behind stable keys with reference counting.
// An entry is created at refcount 1 on first intern, shared on repeat
// interns, and reclaimed when its refcount returns to zero. The table
// is owned exclusively by the grid that uses it.
type StyleTable struct {
	slots []slot
	free  []uint32
	keys  map[style.Style]StyleKey
}

// NewStyleTable creates an empty style table.
func NewStyleTable() *StyleTable {
	return &StyleTable{
		keys: make(map[style.Style]StyleKey),
	}
}

// Intern returns the key for the style, reusing the live entry for an
// equal style (incrementing its refcount) or creating a new entry at
// refcount 1.
func (t *StyleTable) Intern(s style.Style) StyleKey {
	if key, ok := t.keys[s]; ok {
		t.slots[key.index].refs++
		return key
	}

	var index uint32
	if n := len(t.free); n > 0 {
		index = t.free[n-1]
		t.free = t.free[:n-1]
		t.slots[index] = slot{
			style:      s,
			refs:       1,
			generation: t.slots[index].generation,
			live:       true,
		}
	} else {
		index = uint32(len(t.slots))
		t.slots = append(t.slots, slot{style: s, refs: 1, generation: 1, live: true})
	}

	key := StyleKey{index: index, generation: t.slots[index].generation}
	t.keys[s] = key
	return key
}

// Retain increments the refcount of an existing entry.
func (t *StyleTable) Retain(k StyleKey) error {
	sl := t.lookup(k)
	if sl == nil {
		return fmt.Errorf("retain: %w", ErrUnknownKey)
	}
	sl.refs++
	return nil
}

// Release decrements the refcount of an entry, reclaiming it when the
// count reaches zero.
func (t *StyleTable) Release(k StyleKey) error {
	sl := t.lookup(k)
	if sl == nil {
		return fmt.Errorf("release: %w", ErrUnknownKey)
	}
	sl.refs--
	if sl.refs <= 0 {
		delete(t.keys, sl.style)
		sl.live = false
		sl.generation++
		t.free = append(t.free, k.index)
	}
	return nil
}

// Resolve returns the style for a key. Failure is a defect condition:
// it means a cell held a key whose entry was reclaimed.
func (t *StyleTable) Resolve(k StyleKey) (style.Style, error) {
	sl := t.lookup(k)
	if sl == nil {
		return style.Style{}, fmt.Errorf("resolve: %w", ErrUnknownKey)
	}
	return sl.style, nil
}

// Refs returns the refcount for a key, or 0 if the entry is dead.
func (t *StyleTable) Refs(k StyleKey) int {
	sl := t.lookup(k)
	if sl == nil {
		return 0
	}
	return sl.refs
}

// Len returns the number of live entries.
func (t *StyleTable) Len() int {
	return len(t.keys)
}

func (t *StyleTable) lookup(k StyleKey) *slot {
	if k.IsZero() || int(k.index) >= len(t.slots) {
		return nil
	}
	sl := &t.slots[k.index]
	if !sl.live || sl.generation != k.generation {
		return nil
	}
	return sl
}
