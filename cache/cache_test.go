package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_PutGetRoundTrip(t *testing.T) {
	c := New(Options{Capacity: 4})
	k := NewKey(`let x = 1; x`)
	c.Put(k, "AST-stand-in")
	v, ok := c.Get(k)
	require.True(t, ok)
	assert.Equal(t, "AST-stand-in", v)
}

func TestCache_MissOnUnknownKey(t *testing.T) {
	c := New(Options{Capacity: 4})
	_, ok := c.Get(NewKey(`nonexistent`))
	assert.False(t, ok)
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New(Options{Capacity: 2})
	a, b, d := NewKey("a"), NewKey("b"), NewKey("d")
	c.Put(a, 1)
	c.Put(b, 2)
	// touch a so b becomes the LRU entry
	_, _ = c.Get(a)
	c.Put(d, 3)

	_, ok := c.Get(b)
	assert.False(t, ok, "b should have been evicted as least-recently-used")
	_, ok = c.Get(a)
	assert.True(t, ok)
	_, ok = c.Get(d)
	assert.True(t, ok)
}

func TestCache_PutOverwritesAndRefreshesRecency(t *testing.T) {
	c := New(Options{Capacity: 2})
	a, b := NewKey("a"), NewKey("b")
	c.Put(a, 1)
	c.Put(b, 2)
	c.Put(a, 99)

	v, ok := c.Get(a)
	require.True(t, ok)
	assert.Equal(t, 99, v)
	assert.Equal(t, 2, c.Stats().Size)
}

func TestCache_StatsTracksHitsAndMisses(t *testing.T) {
	c := New(Options{Capacity: 4})
	k := NewKey("src")
	c.Put(k, 1)
	_, _ = c.Get(k)
	_, _ = c.Get(k)
	_, _ = c.Get(NewKey("missing"))

	st := c.Stats()
	assert.Equal(t, 2, st.Hits)
	assert.Equal(t, 1, st.Misses)
	assert.InDelta(t, 66.66, st.HitRate, 0.1)
}

func TestCache_EvictOlderThanSweepsStaleEntries(t *testing.T) {
	c := New(Options{Capacity: 4})
	k := NewKey("old")
	c.Put(k, 1)
	c.EvictOlderThan(-time.Second) // everything is "older" than a negative age

	_, ok := c.Get(k)
	assert.False(t, ok)
}

func TestCache_ClearResetsEverything(t *testing.T) {
	c := New(Options{Capacity: 4})
	c.Put(NewKey("a"), 1)
	_, _ = c.Get(NewKey("a"))
	c.Clear()

	st := c.Stats()
	assert.Equal(t, 0, st.Size)
	assert.Equal(t, 0, st.Hits)
	assert.Equal(t, 0, st.Misses)
}

func TestCache_DefaultCapacityWhenUnset(t *testing.T) {
	c := New(Options{})
	assert.Equal(t, 1000, c.Stats().Capacity)
}
