package monitoring

import (
	"context"
	"errors"
	"time"

	"github.com/hearthhq/hearth/internal/ports/outbound"
)

// InstrumentedCache counts hits, misses and failures of a cache
type InstrumentedCache struct {
	next    outbound.CacheRepository
	metrics *MetricsCollector
}

var _ outbound.CacheRepository = (*InstrumentedCache)(nil)

// NewInstrumentedCache wraps next
func NewInstrumentedCache(next outbound.CacheRepository, metrics *MetricsCollector) *InstrumentedCache {
	return &InstrumentedCache{next: next, metrics: metrics}
}

// Get reads through and records hit, miss or error
func (c *InstrumentedCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.next.Get(ctx, key)
	switch {
	case err == nil:
		c.metrics.CacheOperation("get", "hit")
	case errors.Is(err, outbound.ErrCacheMiss):
		c.metrics.CacheOperation("get", "miss")
	default:
		c.metrics.CacheOperation("get", "error")
	}
	return data, err
}

// Set writes through
func (c *InstrumentedCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.next.Set(ctx, key, value, ttl)
	c.metrics.CacheOperation("set", status(err))
	return err
}

// Delete removes through
func (c *InstrumentedCache) Delete(ctx context.Context, keys ...string) error {
	err := c.next.Delete(ctx, keys...)
	c.metrics.CacheOperation("delete", status(err))
	return err
}

// Ping checks the wrapped cache
func (c *InstrumentedCache) Ping(ctx context.Context) error {
	return c.next.Ping(ctx)
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
