// Package cache holds the process-wide indicator cache: a single entry with a
// TTL, single-flight refresh and stale-on-error fallback.
package cache

import (
	"context"
	"sync"
	"time"

	"RendaFixa/internal/domain/models"
	"RendaFixa/internal/domain/repository"
	xlogger "RendaFixa/pkg/logger"
)

// RefreshFunc produces a fresh bundle, typically IndicatorAggregator.Refresh.
type RefreshFunc func(ctx context.Context) (models.IndicatorBundle, error)

type entry struct {
	bundle    models.IndicatorBundle
	fetchedAt time.Time
}

// IndicatorCache serves the last successfully aggregated bundle. Readers never
// observe a partial entry: the entry pointer is swapped whole under the lock.
type IndicatorCache struct {
	mu        sync.RWMutex // guards entry
	refreshMu sync.Mutex   // serializes refreshes (single flight)
	entry     *entry

	ttl     time.Duration
	refresh RefreshFunc
	now     func() time.Time
	metrics repository.Metrics
	logger  *xlogger.Logger
}

func New(refresh RefreshFunc, ttl time.Duration, metrics repository.Metrics, logger *xlogger.Logger) *IndicatorCache {
	return &IndicatorCache{
		ttl:     ttl,
		refresh: refresh,
		now:     time.Now,
		metrics: metrics,
		logger:  logger,
	}
}

// Get returns the cached bundle while it is fresh, refreshing otherwise. When
// a refresh fails and any prior bundle exists (even expired) that bundle is
// returned with stale=true; with no prior bundle the refresh error propagates.
// Concurrent callers during a refresh block and share its result.
func (c *IndicatorCache) Get(ctx context.Context) (models.IndicatorBundle, bool, error) {
	if b, ok := c.freshBundle(); ok {
		c.event("hit")
		return b, false, nil
	}

	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	// Another caller may have completed a refresh while we waited.
	if b, ok := c.freshBundle(); ok {
		c.event("hit")
		return b, false, nil
	}

	c.event("miss")
	bundle, err := c.refresh(ctx)
	if err != nil {
		c.event("refresh_error")

		c.mu.RLock()
		prev := c.entry
		c.mu.RUnlock()
		if prev != nil {
			c.event("stale")
			if c.logger != nil {
				c.logger.Warn("serving stale indicators after failed refresh",
					xlogger.Error(err),
					xlogger.Duration("age", c.now().Sub(prev.fetchedAt)),
				)
			}
			return prev.bundle, true, nil
		}
		return models.IndicatorBundle{}, false, err
	}

	c.mu.Lock()
	c.entry = &entry{bundle: bundle, fetchedAt: c.now()}
	c.mu.Unlock()

	return bundle, false, nil
}

// Invalidate discards the current entry. It does not refresh; the next Get
// does.
func (c *IndicatorCache) Invalidate() {
	c.mu.Lock()
	c.entry = nil
	c.mu.Unlock()
	c.event("invalidate")
}

func (c *IndicatorCache) freshBundle() (models.IndicatorBundle, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.entry != nil && c.now().Sub(c.entry.fetchedAt) < c.ttl {
		return c.entry.bundle, true
	}
	return models.IndicatorBundle{}, false
}

func (c *IndicatorCache) event(name string) {
	if c.metrics != nil {
		c.metrics.RecordCacheEvent(name)
	}
}
