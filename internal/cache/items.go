package cache

import (
	"context"
	"sync"
	"time"

	"github.com/frenzeldk/shopify-tools/internal/domain/model"
	"github.com/frenzeldk/shopify-tools/internal/logging"
)

// ItemSource is the fetch side of the cache, satisfied by the Shipmondo
// client.
type ItemSource interface {
	FetchAllItems(ctx context.Context) (map[string]model.ShipmondoItem, error)
}

// ItemCache holds the last successfully fetched warehouse item snapshot.
// Refresh is single-flight: a refresh requested while one is running is
// a no-op, and readers keep seeing the previous snapshot until the new
// one lands.
type ItemCache struct {
	source ItemSource
	logger logging.LoggerService

	mu         sync.Mutex
	items      map[string]model.ShipmondoItem
	lastUpdate time.Time
	refreshing bool
}

func NewItemCache(source ItemSource, logger logging.LoggerService) *ItemCache {
	return &ItemCache{
		source: source,
		logger: logger,
		items:  make(map[string]model.ShipmondoItem),
	}
}

// Refresh fetches a fresh snapshot unless one is already being fetched.
// Returns whether this call performed the refresh.
func (c *ItemCache) Refresh(ctx context.Context) (bool, error) {
	c.mu.Lock()
	if c.refreshing {
		c.mu.Unlock()
		if c.logger != nil {
			c.logger.Log("item cache refresh already running, skipping")
		}
		return false, nil
	}
	c.refreshing = true
	c.mu.Unlock()

	items, err := c.source.FetchAllItems(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshing = false
	if err != nil {
		return true, err
	}
	c.items = items
	c.lastUpdate = time.Now()
	return true, nil
}

// Items returns the current snapshot. The map is copied so callers can
// iterate without holding the cache lock.
func (c *ItemCache) Items() map[string]model.ShipmondoItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]model.ShipmondoItem, len(c.items))
	for sku, item := range c.items {
		out[sku] = item
	}
	return out
}

// Get looks up one item by SKU in the current snapshot.
func (c *ItemCache) Get(sku string) (model.ShipmondoItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[sku]
	return item, ok
}

// SetBin updates the cached bin of one item after a successful write,
// keeping the snapshot consistent without a full refresh.
func (c *ItemCache) SetBin(sku, bin string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if item, ok := c.items[sku]; ok {
		item.Bin = bin
		c.items[sku] = item
	}
}

// LastUpdate reports when the snapshot was last replaced; zero when no
// refresh has succeeded yet.
func (c *ItemCache) LastUpdate() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastUpdate
}

// Refreshing reports whether a refresh is in flight.
func (c *ItemCache) Refreshing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshing
}
