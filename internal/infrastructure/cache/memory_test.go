package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)
	defer store.Close()

	require.NoError(t, store.Set(ctx, "flash:abc", "Meeting deleted", time.Minute))

	value, ok, err := store.Get(ctx, "flash:abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Meeting deleted", value)

	require.NoError(t, store.Delete(ctx, "flash:abc"))
	_, ok, err = store.Get(ctx, "flash:abc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreExpiration(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)
	defer store.Close()

	now := time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Set(ctx, "k", "v", time.Minute))

	now = now.Add(2 * time.Minute)
	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, store.Len())

	store.sweep()
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStorePopOnce(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)
	defer store.Close()

	require.NoError(t, store.Set(ctx, "flash:abc", "Action deleted", time.Minute))

	var hits atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, ok, err := store.Pop(ctx, "flash:abc")
			assert.NoError(t, err)
			if ok {
				assert.Equal(t, "Action deleted", value)
				hits.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStorePopExpired(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)
	defer store.Close()

	now := time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	require.NoError(t, store.Set(ctx, "k", "v", time.Minute))

	now = now.Add(2 * time.Minute)
	_, ok, err := store.Pop(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}
