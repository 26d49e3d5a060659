// Copyright 2026 The hstore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package hstore

import (
	"fmt"
	"iter"
	"maps"
)

// Hstore is a PostgreSQL hstore value: an unordered mapping from text
// keys to text values. It is a named map type, so plain map operations
// (indexing, range, len) work directly; the methods add the surface the
// codec and the query layer rely on.
//
// An Hstore never maps a key to SQL NULL: null-valued wire entries are
// dropped during decode.
//
// Hstore performs no internal locking. Callers sharing one value across
// goroutines must synchronize externally or work on copies.
type Hstore map[string]string

// New returns an empty Hstore.
func New() Hstore { return make(Hstore) }

// WithCapacity returns an empty Hstore sized for n entries.
func WithCapacity(n int) Hstore { return make(Hstore, n) }

// FromMap returns an Hstore holding a copy of m's entries. Use a plain
// conversion, Hstore(m), to wrap m without copying.
func FromMap(m map[string]string) Hstore {
	h := make(Hstore, len(m))
	for k, v := range m {
		h[k] = v
	}
	return h
}

// Collect builds an Hstore from a sequence of key/value pairs. When the
// same key occurs more than once, the last occurrence wins.
func Collect(seq iter.Seq2[string, string]) Hstore {
	h := make(Hstore)
	for k, v := range seq {
		h[k] = v
	}
	return h
}

// Insert sets key to value, returning the previous value if the key was
// already present.
func (h Hstore) Insert(key, value string) (prev string, replaced bool) {
	prev, replaced = h[key]
	h[key] = value
	return prev, replaced
}

// Get returns the value stored under key.
func (h Hstore) Get(key string) (string, bool) {
	v, ok := h[key]
	return v, ok
}

// MustGet returns the value stored under key, panicking if it is
// absent. It is the "proven present" fast path; use Get when absence is
// a normal outcome.
func (h Hstore) MustGet(key string) string {
	v, ok := h[key]
	if !ok {
		panic(fmt.Sprintf("hstore: no entry for key %q", key))
	}
	return v
}

// Remove deletes key, returning the value it held.
func (h Hstore) Remove(key string) (string, bool) {
	v, ok := h[key]
	if ok {
		delete(h, key)
	}
	return v, ok
}

// ContainsKey reports whether key is present.
func (h Hstore) ContainsKey(key string) bool {
	_, ok := h[key]
	return ok
}

// Len returns the number of entries.
func (h Hstore) Len() int { return len(h) }

// IsEmpty reports whether h holds no entries.
func (h Hstore) IsEmpty() bool { return len(h) == 0 }

// Clear removes all entries.
func (h Hstore) Clear() { clear(h) }

// Update applies f to the value stored under key, reporting whether the
// key was present. Go map values are not addressable, so this stands in
// for taking a mutable reference to a single value.
func (h Hstore) Update(key string, f func(string) string) bool {
	v, ok := h[key]
	if !ok {
		return false
	}
	h[key] = f(v)
	return true
}

// GetOrInsert returns the value stored under key, first inserting value
// if the key is absent. loaded reports whether the key was already
// present.
func (h Hstore) GetOrInsert(key, value string) (actual string, loaded bool) {
	if v, ok := h[key]; ok {
		return v, true
	}
	h[key] = value
	return value, false
}

// Keys returns an iterator over the keys in arbitrary order. Each call
// starts a fresh pass over the current contents.
func (h Hstore) Keys() iter.Seq[string] { return maps.Keys(h) }

// Values returns an iterator over the values in arbitrary order.
func (h Hstore) Values() iter.Seq[string] { return maps.Values(h) }

// All returns an iterator over the key/value pairs in arbitrary order.
func (h Hstore) All() iter.Seq2[string, string] { return maps.All(h) }

// Drain returns an iterator that removes each entry as it is yielded.
// Consuming it fully leaves the container empty; stopping early leaves
// the unvisited entries in place.
func (h Hstore) Drain() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for k, v := range h {
			delete(h, k)
			if !yield(k, v) {
				return
			}
		}
	}
}

// Retain keeps only the entries for which keep returns true. keep may
// rewrite the value through the pointer; a kept entry ends up with the
// rewritten value.
func (h Hstore) Retain(keep func(key string, value *string) bool) {
	for k, v := range h {
		if keep(k, &v) {
			h[k] = v
		} else {
			delete(h, k)
		}
	}
}

// Extend merges m's entries into h, overwriting on duplicate keys. m
// may be a plain map or another Hstore.
func (h Hstore) Extend(m map[string]string) {
	for k, v := range m {
		h[k] = v
	}
}

// Clone returns an independent copy of h. Hstore is a reference type
// like any Go map; Clone is how value semantics are obtained.
func (h Hstore) Clone() Hstore { return maps.Clone(h) }

// Equal reports whether h and other hold exactly the same entries.
func (h Hstore) Equal(other Hstore) bool { return maps.Equal(h, other) }
