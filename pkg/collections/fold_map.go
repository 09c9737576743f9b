package collections

// FoldMap is an insertion-ordered map whose keys compare case-insensitively
// (ASCII).  The original case of the most recent key is kept for display.
type FoldMap[V any] struct {
	order   []string // folded keys, insertion order
	entries map[string]foldEntry[V]
}

type foldEntry[V any] struct {
	key   string
	value V
}

// NewFoldMap constructs an empty FoldMap.
func NewFoldMap[V any]() *FoldMap[V] {
	return &FoldMap[V]{
		entries: make(map[string]foldEntry[V]),
	}
}

// Put stores value under key.  An existing entry whose key folds to the same
// string is removed first, so the new entry takes the last position.  The
// return value reports whether an entry was replaced.
func (m *FoldMap[V]) Put(key string, value V) bool {
	folded := Fold(key)
	_, replaced := m.entries[folded]
	if replaced {
		m.removeOrder(folded)
	}
	m.order = append(m.order, folded)
	m.entries[folded] = foldEntry[V]{key: key, value: value}
	return replaced
}

// Get looks up key case-insensitively.
func (m *FoldMap[V]) Get(key string) (V, bool) {
	e, ok := m.entries[Fold(key)]
	return e.value, ok
}

// Key returns the stored (original case) form of key.
func (m *FoldMap[V]) Key(key string) (string, bool) {
	e, ok := m.entries[Fold(key)]
	return e.key, ok
}

// Delete removes key and reports whether it was present.
func (m *FoldMap[V]) Delete(key string) bool {
	folded := Fold(key)
	if _, ok := m.entries[folded]; !ok {
		return false
	}
	delete(m.entries, folded)
	m.removeOrder(folded)
	return true
}

// Len returns the number of entries.
func (m *FoldMap[V]) Len() int {
	return len(m.order)
}

// Keys returns the original-case keys in insertion order.
func (m *FoldMap[V]) Keys() []string {
	keys := make([]string, len(m.order))
	for i, folded := range m.order {
		keys[i] = m.entries[folded].key
	}
	return keys
}

// Values returns the values in insertion order.
func (m *FoldMap[V]) Values() []V {
	values := make([]V, len(m.order))
	for i, folded := range m.order {
		values[i] = m.entries[folded].value
	}
	return values
}

func (m *FoldMap[V]) removeOrder(folded string) {
	if i := SliceIndexFunc(m.order, func(k string) bool { return k == folded }); i >= 0 {
		m.order = SliceRemoveIndex(m.order, i)
	}
}
