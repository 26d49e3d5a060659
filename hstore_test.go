// Copyright 2026 The hstore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package hstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertReturnsPrevious(t *testing.T) {
	h := New()
	prev, replaced := h.Insert("k", "v1")
	require.False(t, replaced)
	require.Empty(t, prev)

	prev, replaced = h.Insert("k", "v2")
	require.True(t, replaced)
	require.Equal(t, "v1", prev)

	v, ok := h.Get("k")
	require.True(t, ok)
	require.Equal(t, "v2", v)
}

func TestMustGetPanicsOnAbsentKey(t *testing.T) {
	h := Hstore{"present": "yes"}
	require.Equal(t, "yes", h.MustGet("present"))
	require.Panics(t, func() { h.MustGet("absent") })
}

func TestRemove(t *testing.T) {
	h := Hstore{"a": "1"}
	v, ok := h.Remove("a")
	require.True(t, ok)
	require.Equal(t, "1", v)

	_, ok = h.Remove("a")
	require.False(t, ok)
	require.True(t, h.IsEmpty())
}

func TestCollectLastDuplicateWins(t *testing.T) {
	pairs := [][2]string{{"x", "1"}, {"y", "2"}, {"x", "3"}}
	h := Collect(func(yield func(string, string) bool) {
		for _, p := range pairs {
			if !yield(p[0], p[1]) {
				return
			}
		}
	})
	require.Equal(t, Hstore{"x": "3", "y": "2"}, h)
}

func TestExtendOverwrites(t *testing.T) {
	h := Hstore{"a": "1", "b": "2"}
	h.Extend(Hstore{"b": "20", "c": "30"})
	require.Equal(t, Hstore{"a": "1", "b": "20", "c": "30"}, h)
}

func TestDrainEmptiesContainer(t *testing.T) {
	h := Hstore{"a": "1", "b": "2", "c": "3"}
	got := make(map[string]string)
	for k, v := range h.Drain() {
		got[k] = v
	}
	require.Equal(t, map[string]string{"a": "1", "b": "2", "c": "3"}, got)
	require.True(t, h.IsEmpty())
}

func TestDrainStoppedEarlyKeepsRemainder(t *testing.T) {
	h := Hstore{"a": "1", "b": "2", "c": "3"}
	for range h.Drain() {
		break
	}
	require.Equal(t, 2, h.Len())
}

func TestRetainMayMutateValue(t *testing.T) {
	h := Hstore{"keep": "old", "drop": "x"}
	h.Retain(func(key string, value *string) bool {
		*value = "new"
		return key == "keep"
	})
	require.Equal(t, Hstore{"keep": "new"}, h)
}

func TestUpdate(t *testing.T) {
	h := Hstore{"n": "1"}
	require.True(t, h.Update("n", func(v string) string { return v + "0" }))
	require.Equal(t, "10", h.MustGet("n"))
	require.False(t, h.Update("missing", func(v string) string { return v }))
}

func TestGetOrInsert(t *testing.T) {
	h := New()
	v, loaded := h.GetOrInsert("k", "v1")
	require.False(t, loaded)
	require.Equal(t, "v1", v)

	v, loaded = h.GetOrInsert("k", "v2")
	require.True(t, loaded)
	require.Equal(t, "v1", v)
}

func TestCloneIsIndependent(t *testing.T) {
	h := Hstore{"a": "1"}
	c := h.Clone()
	c.Insert("a", "2")
	c.Insert("b", "3")
	assert.Equal(t, Hstore{"a": "1"}, h)
	assert.True(t, h.Equal(Hstore{"a": "1"}))
	assert.False(t, h.Equal(c))
}

func TestFromMapCopies(t *testing.T) {
	src := map[string]string{"a": "1"}
	h := FromMap(src)
	src["a"] = "2"
	require.Equal(t, "1", h.MustGet("a"))
}

func TestClearAndContainsKey(t *testing.T) {
	h := WithCapacity(2)
	h.Insert("a", "1")
	require.True(t, h.ContainsKey("a"))
	h.Clear()
	require.False(t, h.ContainsKey("a"))
	require.Zero(t, h.Len())
}

func TestIteratorsAreRestartable(t *testing.T) {
	h := Hstore{"a": "1", "b": "2"}
	for range 2 {
		var keys []string
		for k := range h.Keys() {
			keys = append(keys, k)
		}
		require.ElementsMatch(t, []string{"a", "b"}, keys)

		var values []string
		for v := range h.Values() {
			values = append(values, v)
		}
		require.ElementsMatch(t, []string{"1", "2"}, values)

		got := make(map[string]string)
		for k, v := range h.All() {
			got[k] = v
		}
		require.Equal(t, map[string]string{"a": "1", "b": "2"}, got)
	}
}
