// Package header implements an order-preserving, hash-bucketed multimap
// (Map[K,V]) and a ByteString-keyed specialization (Headers) used to
// represent HTTP header fields: multiple values per name, insertion-order
// iteration, case-insensitive name lookup without allocation.
package header

// entry is one (name, value) pair. Buckets chain via nextInBucket
// (separate chaining); the whole map additionally threads every entry
// through an intrusive doubly-linked order ring anchored at Map.head, so
// iteration reflects exact insertion order regardless of hash layout.
type entry[K any, V any] struct {
	hash                      uint32
	key                       K
	value                     V
	nextInBucket              *entry[K, V]
	prevInOrder, nextInOrder  *entry[K, V]
}

// Map is a multi-value, order-preserving, hash-bucketed map. It is not
// internally synchronized (spec.md §5): a single logical mutator owns each
// instance.
//
// Invariants (I1-I5 in spec.md §3), maintained by every exported method:
//
//	I1: len(buckets) is a power of two in [2, 128]; mask = len(buckets)-1.
//	I2: size equals the number of entries reachable from head.nextInOrder.
//	I3: every entry e in buckets[i] satisfies e.hash & mask == i.
//	I4: every entry's prevInOrder/nextInOrder links are mutually consistent.
//	I5: no stored value is absent (enforced at the ByteString-valued
//	    Headers boundary, where absence cannot occur for a value type).
type Map[K any, V any] struct {
	buckets     []*entry[K, V]
	mask        uint32
	head        entry[K, V]
	size        int
	keyHasher   Hasher[K]
	valueHasher Hasher[V]
	validator   Validator[K]
}

const (
	minBuckets = 2
	maxBuckets = 128
)

func clampPow2(hint int) int {
	if hint < minBuckets {
		hint = minBuckets
	}
	if hint > maxBuckets {
		hint = maxBuckets
	}
	p := minBuckets
	for p < hint {
		p <<= 1
	}
	if p > maxBuckets {
		p = maxBuckets
	}
	return p
}

// NewMap constructs an empty Map. sizeHint is clamped to [2, 128] and
// rounded up to the next power of two (spec.md §4.3 "Bucket sizing"); the
// 128 cap keeps hash_mask representable in a single byte.
func NewMap[K any, V any](sizeHint int, keyHasher Hasher[K], valueHasher Hasher[V], validator Validator[K]) *Map[K, V] {
	n := clampPow2(sizeHint)
	m := &Map[K, V]{
		buckets:     make([]*entry[K, V], n),
		mask:        uint32(n - 1),
		keyHasher:   keyHasher,
		valueHasher: valueHasher,
		validator:   validator,
	}
	m.head.nextInOrder = &m.head
	m.head.prevInOrder = &m.head
	return m
}

func (m *Map[K, V]) addHashed(h uint32, key K, value V) {
	e := &entry[K, V]{hash: h, key: key, value: value}
	idx := h & m.mask
	e.nextInBucket = m.buckets[idx]
	m.buckets[idx] = e

	last := m.head.prevInOrder
	e.prevInOrder = last
	e.nextInOrder = &m.head
	last.nextInOrder = e
	m.head.prevInOrder = e

	m.size++
}

// Add validates name, computes its hash once, and inserts (name, value) in
// O(1).
func (m *Map[K, V]) Add(name K, value V) error {
	if err := m.validator.Validate(name); err != nil {
		return err
	}
	m.addHashed(m.keyHasher.HashOf(name), name, value)
	return nil
}

// AddAll adds every value in values under name, hashing name once.
func (m *Map[K, V]) AddAll(name K, values []V) error {
	if err := m.validator.Validate(name); err != nil {
		return err
	}
	h := m.keyHasher.HashOf(name)
	for _, v := range values {
		m.addHashed(h, name, v)
	}
	return nil
}

// sameStrategy reports whether m and other share reference-identical
// hashers and validator, enabling AddMap's fast path.
func sameStrategy[K any, V any](m, other *Map[K, V]) bool {
	return anyEqual(m.keyHasher, other.keyHasher) &&
		anyEqual(m.valueHasher, other.valueHasher) &&
		anyEqual(m.validator, other.validator)
}

// anyEqual compares two interface values for reference/value identity; the
// concrete Hasher/Validator implementations in this package are stateless
// singletons, so this is effectively a reference-identity check.
func anyEqual(a, b any) bool {
	return a == b
}

// AddMap copies every (name, value) pair from other, in insertion order.
// When other shares this map's hashing/validation strategy, entries are
// copied directly without re-validating or re-hashing. Self-add is
// rejected.
func (m *Map[K, V]) AddMap(other *Map[K, V]) error {
	if m == other {
		return ErrSelfAdd
	}
	fast := sameStrategy(m, other)
	for e := other.head.nextInOrder; e != &other.head; e = e.nextInOrder {
		if fast {
			m.addHashed(e.hash, e.key, e.value)
			continue
		}
		if err := m.Add(e.key, e.value); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the most recently added value for name: the lookup walks the
// bucket chain, which is LIFO relative to insertion (spec.md §4.3).
func (m *Map[K, V]) Get(name K) (V, bool) {
	h := m.keyHasher.HashOf(name)
	idx := h & m.mask
	for e := m.buckets[idx]; e != nil; e = e.nextInBucket {
		if e.hash == h && m.keyHasher.Equal(e.key, name) {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// GetAll returns every value stored under name, in insertion order. The
// bucket chain yields hits in LIFO order; GetAll reverses them back to
// insertion order.
func (m *Map[K, V]) GetAll(name K) []V {
	h := m.keyHasher.HashOf(name)
	idx := h & m.mask
	var rev []V
	for e := m.buckets[idx]; e != nil; e = e.nextInBucket {
		if e.hash == h && m.keyHasher.Equal(e.key, name) {
			rev = append(rev, e.value)
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// Contains reports whether any value is stored under name.
func (m *Map[K, V]) Contains(name K) bool {
	_, ok := m.Get(name)
	return ok
}

// ContainsValue reports whether (name, value) is present, per the given
// value hasher's Equal.
func (m *Map[K, V]) ContainsValue(name K, value V, hasher Hasher[V]) bool {
	h := m.keyHasher.HashOf(name)
	idx := h & m.mask
	for e := m.buckets[idx]; e != nil; e = e.nextInBucket {
		if e.hash == h && m.keyHasher.Equal(e.key, name) && hasher.Equal(e.value, value) {
			return true
		}
	}
	return false
}

// Set removes every existing value under name, then adds one.
func (m *Map[K, V]) Set(name K, value V) error {
	if err := m.validator.Validate(name); err != nil {
		return err
	}
	m.Remove(name)
	m.addHashed(m.keyHasher.HashOf(name), name, value)
	return nil
}

// SetAll removes every existing value under name, then adds each of
// values in order.
func (m *Map[K, V]) SetAll(name K, values []V) error {
	if err := m.validator.Validate(name); err != nil {
		return err
	}
	m.Remove(name)
	h := m.keyHasher.HashOf(name)
	for _, v := range values {
		m.addHashed(h, name, v)
	}
	return nil
}

// SetMap clears m, then copies every entry from other.
func (m *Map[K, V]) SetMap(other *Map[K, V]) error {
	m.Clear()
	return m.AddMap(other)
}

// SetAllFromMap removes, from m, every name that also appears in other,
// then copies other's entries in. Names present in m but absent from
// other survive untouched.
func (m *Map[K, V]) SetAllFromMap(other *Map[K, V]) error {
	for _, name := range other.Names() {
		m.Remove(name)
	}
	return m.AddMap(other)
}

// Remove deletes every entry stored under name, unlinking each from both
// its bucket chain and the order ring. Returns whether anything was
// removed.
func (m *Map[K, V]) Remove(name K) bool {
	h := m.keyHasher.HashOf(name)
	idx := h & m.mask
	removed := false
	var prev *entry[K, V]
	e := m.buckets[idx]
	for e != nil {
		next := e.nextInBucket
		if e.hash == h && m.keyHasher.Equal(e.key, name) {
			if prev == nil {
				m.buckets[idx] = next
			} else {
				prev.nextInBucket = next
			}
			e.prevInOrder.nextInOrder = e.nextInOrder
			e.nextInOrder.prevInOrder = e.prevInOrder
			m.size--
			removed = true
		} else {
			prev = e
		}
		e = next
	}
	return removed
}

// GetAndRemove returns the value Get would have returned, then removes
// every entry under name.
func (m *Map[K, V]) GetAndRemove(name K) (V, bool) {
	v, ok := m.Get(name)
	if ok {
		m.Remove(name)
	}
	return v, ok
}

// Clear empties the map: buckets are nulled, the order ring is reset to
// its self-linked sentinel state, and size becomes 0.
func (m *Map[K, V]) Clear() {
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.head.nextInOrder = &m.head
	m.head.prevInOrder = &m.head
	m.size = 0
}

// Size returns the total number of (name, value) pairs.
func (m *Map[K, V]) Size() int { return m.size }

// IsEmpty reports whether Size() == 0.
func (m *Map[K, V]) IsEmpty() bool { return m.size == 0 }

// Names returns every distinct name, in the order each first appeared.
func (m *Map[K, V]) Names() []K {
	seen := make(map[uint32][]K, m.size)
	var out []K
	for e := m.head.nextInOrder; e != &m.head; e = e.nextInOrder {
		bucket := seen[e.hash]
		dup := false
		for _, k := range bucket {
			if m.keyHasher.Equal(k, e.key) {
				dup = true
				break
			}
		}
		if !dup {
			seen[e.hash] = append(bucket, e.key)
			out = append(out, e.key)
		}
	}
	return out
}

// Each visits every (name, value) pair in exact insertion order, stopping
// early if visit returns false.
func (m *Map[K, V]) Each(visit func(name K, value V) bool) {
	for e := m.head.nextInOrder; e != &m.head; e = e.nextInOrder {
		if !visit(e.key, e.value) {
			return
		}
	}
}

// Equal reports whether a and b have identical size and, for every name,
// equal ordered per-name value lists under a's value hashing strategy.
func Equal[K any, V any](a, b *Map[K, V]) bool {
	if a.size != b.size {
		return false
	}
	for _, name := range a.Names() {
		va := a.GetAll(name)
		if !b.Contains(name) {
			return false
		}
		vb := b.GetAll(name)
		if len(va) != len(vb) {
			return false
		}
		for i := range va {
			if !a.valueHasher.Equal(va[i], vb[i]) {
				return false
			}
		}
	}
	return true
}

// HashOf computes the map-level hash: seed 0xC2B2AE35, combined as
// 31*h+name_hash per name then 31*h+value_hash per value in that name's
// GetAll order.
func HashOf[K any, V any](m *Map[K, V]) uint32 {
	h := uint32(0xC2B2AE35)
	for _, name := range m.Names() {
		h = 31*h + m.keyHasher.HashOf(name)
		for _, v := range m.GetAll(name) {
			h = 31*h + m.valueHasher.HashOf(v)
		}
	}
	return h
}
