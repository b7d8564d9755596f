package cache

import (
	"context"
	"sync"
	"time"

	"github.com/amirasaad/tripool/pkg/cache"
	"github.com/amirasaad/tripool/pkg/clock"
	"github.com/amirasaad/tripool/pkg/domain"
)

// MemoryCache implements cache.UserCache using in-memory storage
type MemoryCache struct {
	cache      map[string]*cacheEntry
	clock      clock.Clock
	lastUpdate time.Time
	mu         sync.RWMutex
	done       chan struct{}
	closeOnce  sync.Once
}

// NewMemoryCache creates a new in-memory cache whose entries expire against
// clk.
func NewMemoryCache(clk clock.Clock) *MemoryCache {
	c := &MemoryCache{
		cache: make(map[string]*cacheEntry),
		clock: clk,
		done:  make(chan struct{}),
	}

	// Start cleanup goroutine
	go c.cleanup(5 * time.Minute)

	return c
}

// Get retrieves a user from cache
func (c *MemoryCache) Get(_ context.Context, key string) (*domain.User, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.cache[key]
	if !exists {
		return nil, nil
	}

	if c.clock.Now().After(entry.expiresAt) {
		return nil, nil
	}

	u := *entry.user
	return &u, nil
}

// Set stores a user in cache with TTL
func (c *MemoryCache) Set(_ context.Context, key string, u *domain.User, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cp := *u
	c.cache[key] = &cacheEntry{
		user:      &cp,
		expiresAt: c.clock.Now().Add(ttl),
	}

	return nil
}

// Delete removes a user from cache
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.cache, key)
	return nil
}

// Clear drops every entry and the last update timestamp
func (c *MemoryCache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache = make(map[string]*cacheEntry)
	c.lastUpdate = time.Time{}
	return nil
}

// GetLastUpdate returns the last refresh timestamp
func (c *MemoryCache) GetLastUpdate(_ context.Context) (time.Time, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastUpdate, nil
}

// SetLastUpdate sets the last refresh timestamp
func (c *MemoryCache) SetLastUpdate(_ context.Context, t time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastUpdate = t
	return nil
}

// Close stops the cleanup goroutine.
func (c *MemoryCache) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}

// cleanup removes expired entries from cache
func (c *MemoryCache) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.mu.Lock()
			now := c.clock.Now()
			for key, entry := range c.cache {
				if now.After(entry.expiresAt) {
					delete(c.cache, key)
				}
			}
			c.mu.Unlock()
		}
	}
}

type cacheEntry struct {
	user      *domain.User
	expiresAt time.Time
}

var _ cache.UserCache = (*MemoryCache)(nil)
