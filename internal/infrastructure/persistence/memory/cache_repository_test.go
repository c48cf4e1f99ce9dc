package memory

import (
	"context"
	"testing"
	"time"

	"github.com/hearthhq/hearth/internal/ports/outbound"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestCacheRepository(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	cache := NewCacheRepository(time.Hour)
	defer cache.Close()

	_, err := cache.Get(ctx, "missing")
	assert.ErrorIs(t, err, outbound.ErrCacheMiss)

	require.NoError(t, cache.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, cache.Set(ctx, "b", []byte("2"), 0))

	got, err := cache.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got)

	require.NoError(t, cache.Delete(ctx, "a", "b", "never-set"))
	_, err = cache.Get(ctx, "b")
	assert.ErrorIs(t, err, outbound.ErrCacheMiss)
	assert.NoError(t, cache.Ping(ctx))
}

func TestCacheRepositoryExpiry(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	cache := NewCacheRepository(10 * time.Millisecond)

	require.NoError(t, cache.Set(ctx, "short", []byte("x"), time.Millisecond))
	require.NoError(t, cache.Set(ctx, "long", []byte("y"), time.Hour))

	assert.Eventually(t, func() bool {
		cache.mutex.RLock()
		defer cache.mutex.RUnlock()
		_, present := cache.data["short"]
		return !present
	}, time.Second, 5*time.Millisecond, "Sweeper drops expired items")

	_, err := cache.Get(ctx, "long")
	assert.NoError(t, err)

	require.NoError(t, cache.Close())
	require.NoError(t, cache.Close(), "Close is idempotent")
}
