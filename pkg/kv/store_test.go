package kv

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_GetSet(t *testing.T) {
	s := New[string, int]()

	s.Set("foo", 42)
	val, ok := s.Get("foo")
	assert.True(t, ok)
	assert.Equal(t, 42, val)

	_, ok = s.Get("bar")
	assert.False(t, ok)
}

func TestStore_Delete(t *testing.T) {
	s := New[string, string]()
	s.Set("key", "value")

	s.Delete("key")

	_, ok := s.Get("key")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	s := New[string, string]()
	s.Set("a", "1")

	snap := s.Snapshot()
	snap["a"] = "changed"
	snap["b"] = "2"

	val, _ := s.Get("a")
	assert.Equal(t, "1", val)
	assert.Equal(t, 1, s.Len())
}

func TestStore_Concurrent(t *testing.T) {
	s := New[int, int]()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Set(n, n*2)
			_, _ = s.Get(n)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
