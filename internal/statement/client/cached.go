package client

import (
	"context"
	"fmt"
	"time"

	"github.com/espressobank/extrato/internal/cache"
	"github.com/espressobank/extrato/internal/statement"
)

const (
	cacheSize = 64
	cacheTTL  = 5 * time.Minute
)

// Cached wraps a Fetcher with a TTL'd result cache keyed by the full
// filter tuple. Within the staleness window repeated queries for the same
// window are served locally; errors (cancellation) are never cached.
type Cached struct {
	inner   Fetcher
	results *cache.LRU[statement.Payload]
}

// NewCached fronts inner with the default result cache.
func NewCached(inner Fetcher) *Cached {
	return &Cached{
		inner:   inner,
		results: cache.New[statement.Payload](cacheSize, cacheTTL),
	}
}

func (c *Cached) Fetch(ctx context.Context, filters statement.Filters) (statement.Payload, error) {
	filters = filters.WithDefaults()

	return c.results.GetOrFetch(cacheKey(filters), func() (statement.Payload, error) {
		return c.inner.Fetch(ctx, filters)
	})
}

func cacheKey(f statement.Filters) string {
	return fmt.Sprintf("%s|%s|%s|%d|%d", f.StartDate, f.EndDate, f.ProductType, f.Page, f.Limit)
}
