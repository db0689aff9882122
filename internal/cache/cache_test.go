package cache_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/espressobank/extrato/internal/cache"
)

func TestGetSet(t *testing.T) {
	c := cache.New[string](4, time.Minute)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("a", "alpha")

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "alpha", got)
}

func TestSet_OverwritesExisting(t *testing.T) {
	c := cache.New[int](4, time.Minute)

	c.Set("k", 1)
	c.Set("k", 2)

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 2, got)
	assert.Equal(t, 1, c.Size())
}

func TestEviction(t *testing.T) {
	c := cache.New[int](2, time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Set("c", 3)

	_, ok = c.Get("b")
	assert.False(t, ok)

	_, ok = c.Get("a")
	assert.True(t, ok)

	_, ok = c.Get("c")
	assert.True(t, ok)

	assert.Equal(t, 2, c.Size())
}

func TestExpiry(t *testing.T) {
	c := cache.New[int](4, 10*time.Millisecond)

	c.Set("k", 7)

	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Size())
}

func TestDelete(t *testing.T) {
	c := cache.New[int](4, time.Minute)

	c.Set("k", 7)
	c.Delete("k")
	c.Delete("never-existed")

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestGetOrFetch(t *testing.T) {
	c := cache.New[int](4, time.Minute)

	calls := 0
	produce := func() (int, error) {
		calls++
		return 42, nil
	}

	got, err := c.GetOrFetch("k", produce)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	got, err = c.GetOrFetch("k", produce)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	assert.Equal(t, 1, calls)
}

func TestGetOrFetch_ErrorNotCached(t *testing.T) {
	c := cache.New[int](4, time.Minute)

	boom := errors.New("upstream down")
	calls := 0

	_, err := c.GetOrFetch("k", func() (int, error) {
		calls++
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := c.GetOrFetch("k", func() (int, error) {
		calls++
		return 9, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 9, got)
	assert.Equal(t, 2, calls)
}
