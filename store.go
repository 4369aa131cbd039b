package envfile

import "sort"

// Pair is one raw key-value pair used for ordered construction.
type Pair struct {
	Key   string
	Value string
}

// Entry is one typed key-value pair used for ordered construction.
type Entry struct {
	Key   string
	Value Value
}

// Store is an insertion-ordered mapping from keys to Values.
//
// Invariants: keys are never empty, and no key maps to an empty string
// Value. Construction enforces both; mutation through Set preserves them
// for parsed and typed values (booleans, integers and floats cannot be
// empty).
type Store struct {
	keys   []string
	values map[string]Value
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{values: make(map[string]Value)}
}

// FromPairs builds a store from raw pairs in order, inferring each value's
// type. It fails on the first pair with an empty key or empty value text.
func FromPairs(pairs []Pair) (*Store, error) {
	s := NewStore()
	for _, p := range pairs {
		if p.Key == "" || p.Value == "" {
			return nil, &EmptyPairError{Key: p.Key, Value: p.Value}
		}
		v := Infer(p.Value)
		s.Set(p.Key, &v, true)
	}
	return s, nil
}

// FromEntries builds a store from typed entries in order. It fails on the
// first entry with an empty key or an empty string payload.
func FromEntries(entries []Entry) (*Store, error) {
	s := NewStore()
	for _, e := range entries {
		if e.Key == "" || e.Value.isEmpty() {
			return nil, &EmptyPairError{Key: e.Key, Value: e.Value.String()}
		}
		v := e.Value
		s.Set(e.Key, &v, true)
	}
	return s, nil
}

// FromMap builds a store from an unordered map, in sorted key order for
// determinism. Use FromPairs when insertion order matters.
func FromMap(m map[string]string) (*Store, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]Pair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, Pair{Key: k, Value: m[k]})
	}
	return FromPairs(pairs)
}

// Len returns the number of entries.
func (s *Store) Len() int { return len(s.keys) }

// Keys returns the keys in insertion order. The slice is a copy.
func (s *Store) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Get returns the value for key, if present.
func (s *Store) Get(key string) (Value, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set inserts, overwrites or removes an entry. When the key already exists
// and force is false, Set is a no-op. A nil value with force removes the
// key. Overwriting keeps the key's original position in iteration order;
// new keys append. Set never fails, including for missing keys.
func (s *Store) Set(key string, value *Value, force bool) {
	_, exists := s.values[key]
	if exists && !force {
		return
	}
	if value == nil {
		if !force || !exists {
			return
		}
		delete(s.values, key)
		for i, k := range s.keys {
			if k == key {
				s.keys = append(s.keys[:i], s.keys[i+1:]...)
				break
			}
		}
		return
	}
	if !exists {
		s.keys = append(s.keys, key)
	}
	s.values[key] = *value
}

// Equal reports whether two stores hold the same entries in the same order.
func (s *Store) Equal(other *Store) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i, k := range s.keys {
		if other.keys[i] != k {
			return false
		}
		if !s.values[k].Equal(other.values[k]) {
			return false
		}
	}
	return true
}
