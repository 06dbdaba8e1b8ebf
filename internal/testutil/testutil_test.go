package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextIDIsUnique(t *testing.T) {
	const n = 100
	ids := make(chan uint64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- NextID()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestNewRequest(t *testing.T) {
	r := NewRequest("/api/users", "application/json")
	assert.Equal(t, "application/json", r.Header.Get("Accept"))
	assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
	assert.Equal(t, "/api/users", r.URL.Path)

	r2 := NewRequest("/", "")
	assert.Empty(t, r2.Header.Values("Accept"))
	assert.NotEqual(t, r.Header.Get("X-Request-ID"), r2.Header.Get("X-Request-ID"))
}
