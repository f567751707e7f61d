package property

import (
	"iter"
	"maps"
)

// Store maps string keys to typed values. Keys are unique and the last
// write wins. Iteration order is unspecified.
//
// Store performs no locking; callers that share one across goroutines must
// synchronize access themselves.
type Store struct {
	inner map[string]Value
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{inner: make(map[string]Value)}
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (Value, bool) {
	v, ok := s.inner[key]
	return v, ok
}

// Set inserts or overwrites the value under key and returns the store for
// chaining. A nil value is stored as None.
func (s *Store) Set(key string, value Value) *Store {
	if s.inner == nil {
		s.inner = make(map[string]Value)
	}
	s.inner[key] = normalize(value)
	return s
}

// Remove deletes key and returns the value it held, if any.
func (s *Store) Remove(key string) (Value, bool) {
	v, ok := s.inner[key]
	if ok {
		delete(s.inner, key)
	}
	return v, ok
}

// Clear removes every entry.
func (s *Store) Clear() {
	clear(s.inner)
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.inner)
}

// Keys yields every key. The store must not be mutated while iterating.
func (s *Store) Keys() iter.Seq[string] {
	return maps.Keys(s.inner)
}

// Values yields every value. The store must not be mutated while iterating.
func (s *Store) Values() iter.Seq[Value] {
	return maps.Values(s.inner)
}

// All yields every key/value pair.
func (s *Store) All() iter.Seq2[string, Value] {
	return maps.All(s.inner)
}

// Find returns the first pair, in iteration order, for which pred is true.
func (s *Store) Find(pred func(key string, value Value) bool) (string, Value, bool) {
	for k, v := range s.inner {
		if pred(k, v) {
			return k, v, true
		}
	}
	return "", nil, false
}

// Filter yields the pairs for which pred is true. Each call to the returned
// sequence restarts the scan.
func (s *Store) Filter(pred func(key string, value Value) bool) iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for k, v := range s.inner {
			if pred(k, v) && !yield(k, v) {
				return
			}
		}
	}
}

// FilterMap yields fn's result for every pair where fn reports true. It lets
// callers build replacement values from existing pairs without holding a
// mutable view of the store; apply them with Set once iteration is done.
func (s *Store) FilterMap(fn func(key string, value Value) (Value, bool)) iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for k, v := range s.inner {
			out, ok := fn(k, v)
			if ok && !yield(out) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the store.
func (s *Store) Clone() *Store {
	out := &Store{inner: make(map[string]Value, len(s.inner))}
	for k, v := range s.inner {
		out.inner[k] = Clone(v)
	}
	return out
}
