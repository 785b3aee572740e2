package revocation

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_AddContains(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	ok, err := store.Contains(ctx, "t1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Add(ctx, "t1", time.Minute))
	require.NoError(t, store.Add(ctx, "t1", time.Minute)) // idempotent

	ok, err = store.Contains(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Contains(ctx, "t2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		token := fmt.Sprintf("token-%d", i)
		go func() {
			defer wg.Done()
			_ = store.Add(ctx, token, time.Minute)
		}()
		go func() {
			defer wg.Done()
			_, _ = store.Contains(ctx, token)
		}()
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		ok, err := store.Contains(ctx, fmt.Sprintf("token-%d", i))
		require.NoError(t, err)
		assert.True(t, ok)
	}
}
