package unicase

// Map is a case-insensitive hash map keyed by [Text]. Entries are
// bucketed on [Text.Hash] and resolved with [Text.Equal], so keys that
// fold equal address the same entry regardless of their casing. The zero
// value is ready to use. Not safe for concurrent use.
type Map[P Policy, V any] struct {
	buckets map[uint64][]mapEntry[P, V]
	n       int
}

type mapEntry[P Policy, V any] struct {
	key Text[P]
	val V
}

// Set stores v under k. If an equal key is already present its value is
// replaced and the casing of the first inserted key is kept.
func (m *Map[P, V]) Set(k Text[P], v V) {
	if m.buckets == nil {
		m.buckets = make(map[uint64][]mapEntry[P, V])
	}
	h := k.Hash()
	b := m.buckets[h]
	for i := range b {
		if b[i].key.Equal(k) {
			b[i].val = v
			return
		}
	}
	m.buckets[h] = append(b, mapEntry[P, V]{key: k, val: v})
	m.n++
}

// Get returns the value stored under k and whether it was present.
func (m *Map[P, V]) Get(k Text[P]) (V, bool) {
	if m.buckets != nil {
		for _, e := range m.buckets[k.Hash()] {
			if e.key.Equal(k) {
				return e.val, true
			}
		}
	}
	var zero V
	return zero, false
}

// Delete removes the entry stored under k, reporting whether it was
// present.
func (m *Map[P, V]) Delete(k Text[P]) bool {
	if m.buckets == nil {
		return false
	}
	h := k.Hash()
	b := m.buckets[h]
	for i := range b {
		if b[i].key.Equal(k) {
			b[i] = b[len(b)-1]
			if len(b) == 1 {
				delete(m.buckets, h)
			} else {
				m.buckets[h] = b[:len(b)-1]
			}
			m.n--
			return true
		}
	}
	return false
}

// Len returns the number of entries in the map.
func (m *Map[P, V]) Len() int { return m.n }

// Range calls fn for each entry in the map until fn returns false.
// Iteration order is unspecified.
func (m *Map[P, V]) Range(fn func(k Text[P], v V) bool) {
	for _, b := range m.buckets {
		for _, e := range b {
			if !fn(e.key, e.val) {
				return
			}
		}
	}
}
