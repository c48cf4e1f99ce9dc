package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hearthhq/hearth/internal/ports/outbound"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// newTestCache connects to HEARTH_TEST_REDIS_ADDR and skips without it
func newTestCache(t *testing.T) *CacheRepository {
	t.Helper()

	addr := os.Getenv("HEARTH_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("HEARTH_TEST_REDIS_ADDR not set")
	}

	client := NewClient(Options{Addrs: []string{addr}, DialTimeout: time.Second})
	prefix := "hearth-test:" + uuid.NewString() + ":"
	cache := NewCacheRepository(client, prefix, zaptest.NewLogger(t))
	if err := cache.Ping(context.Background()); err != nil {
		_ = cache.Close()
		t.Skipf("redis at %s unavailable: %v", addr, err)
	}
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func TestCacheRepository(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	_, err := cache.Get(ctx, "tags")
	assert.ErrorIs(t, err, outbound.ErrCacheMiss)

	require.NoError(t, cache.Set(ctx, "tags", []byte(`[{"tag":"quick","count":2}]`), time.Minute))
	got, err := cache.Get(ctx, "tags")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"tag":"quick","count":2}]`, string(got))

	require.NoError(t, cache.Delete(ctx, "tags"))
	_, err = cache.Get(ctx, "tags")
	assert.ErrorIs(t, err, outbound.ErrCacheMiss)

	assert.NoError(t, cache.Delete(ctx))
}

func TestCacheRepositoryTTL(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "short", []byte("x"), 50*time.Millisecond))
	assert.Eventually(t, func() bool {
		_, err := cache.Get(ctx, "short")
		return err == outbound.ErrCacheMiss
	}, 2*time.Second, 20*time.Millisecond)
}

func TestKeyPrefix(t *testing.T) {
	r := &CacheRepository{prefix: "hearth:"}
	assert.Equal(t, "hearth:recipes:tags", r.key("recipes:tags"))
}

func TestCacheRepositoryUnreachable(t *testing.T) {
	client := NewClient(Options{Addrs: []string{"127.0.0.1:1"}, DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	cache := NewCacheRepository(client, "hearth:", zaptest.NewLogger(t))
	defer cache.Close()

	ctx := context.Background()
	_, err := cache.Get(ctx, "tags")
	require.Error(t, err)
	assert.NotErrorIs(t, err, outbound.ErrCacheMiss)
	assert.Error(t, cache.Set(ctx, "tags", []byte("x"), time.Minute))
	assert.Error(t, cache.Ping(ctx))
}
