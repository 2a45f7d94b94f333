// Package cache memoizes cost summaries for the lifetime of one run
package cache

import (
	"time"

	"github.com/jdlms/aws-costs/internal/types"
	gocache "github.com/patrickmn/go-cache"
)

// ExpiryDefault bounds how long a fetched period is reused
const ExpiryDefault = 30 * time.Minute

// SummaryCache stores summaries keyed by billing period. The trend months
// overlap the current and previous month, so each period only needs one
// Cost Explorer request per run.
type SummaryCache struct {
	store *gocache.Cache
}

// New creates an empty cache
func New(expiry time.Duration) *SummaryCache {
	return &SummaryCache{store: gocache.New(expiry, 2*expiry)}
}

// Key builds the cache key for a [start, end) period
func Key(start, end string) string {
	return start + "/" + end
}

// Get returns the cached summary for key
func (c *SummaryCache) Get(key string) (types.CostSummary, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return types.CostSummary{}, false
	}
	summary, ok := v.(types.CostSummary)
	return summary, ok
}

// Set stores a summary under key
func (c *SummaryCache) Set(key string, summary types.CostSummary) {
	c.store.SetDefault(key, summary)
}

// Len reports how many periods are cached
func (c *SummaryCache) Len() int {
	return c.store.ItemCount()
}
