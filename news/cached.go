package news

import (
	"context"
	"strings"
	"time"

	"cricketscrapper/cache"
)

// CachedSearcher memoizes another Searcher in Redis for ttl.
type CachedSearcher struct {
	next  Searcher
	store *cache.Store
	ttl   time.Duration
}

func NewCachedSearcher(next Searcher, store *cache.Store, ttl time.Duration) *CachedSearcher {
	return &CachedSearcher{next: next, store: store, ttl: ttl}
}

func (c *CachedSearcher) Search(ctx context.Context, q Query) ([]Article, error) {
	return cache.Memoize(ctx, c.store, CacheKey(q), c.ttl, func() ([]Article, error) {
		return c.next.Search(ctx, q)
	})
}

// CacheKey identifies a query in the cache.
func CacheKey(q Query) string {
	return "news:" + q.Region.Ceid + ":" + string(q.Timeframe) + ":" + strings.ToLower(strings.TrimSpace(q.Term))
}
