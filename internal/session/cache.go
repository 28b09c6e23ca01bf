package session

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"loomworks.app/api-server/core/config"
	"loomworks.app/api-server/internal/model"
	"loomworks.app/api-server/internal/store"
)

type cacheEntry struct {
	session  model.Session
	cachedAt time.Time
}

// Cache is a short-TTL in-memory layer in front of the durable session
// store. It exists to absorb per-request lookups; the store remains the
// source of truth and the cache is free to drop anything at any time.
//
// Reads go through to the store on miss, writes go through to the store
// first and refresh the cached copy after. A failure in the cache layer
// must never produce an answer the store would not give.
type Cache struct {
	sessions store.SessionStore
	cfg      config.SessionConfig
	now      func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry

	startOnce sync.Once
	stopOnce  sync.Once
	stopCh    chan struct{}
	stoppedCh chan struct{}
}

func NewCache(sessions store.SessionStore, cfg config.SessionConfig) *Cache {
	return &Cache{
		sessions:  sessions,
		cfg:       cfg,
		now:       time.Now,
		entries:   make(map[string]cacheEntry),
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Get returns the session for id, consulting the cache first. A fresh
// cached copy is returned without touching the store; a stale copy is
// evicted and the store is consulted. Store semantics pass through
// unchanged, so an expired session resolves to store.ErrNotFound here
// exactly as it would on a direct read.
func (c *Cache) Get(ctx context.Context, id string) (*model.Session, error) {
	c.mu.Lock()
	if entry, ok := c.entries[id]; ok {
		if c.now().Sub(entry.cachedAt) < c.cfg.CacheTTL {
			sess := entry.session
			c.mu.Unlock()
			return &sess, nil
		}
		delete(c.entries, id)
	}
	c.mu.Unlock()

	sess, err := c.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Put(id, sess)
	return sess, nil
}

// Put caches the session under id with a fresh TTL. Crossing the
// high-water mark triggers an inline prune pass.
func (c *Cache) Put(id string, sess *model.Session) {
	c.mu.Lock()
	c.entries[id] = cacheEntry{session: *sess, cachedAt: c.now()}
	over := len(c.entries) > c.cfg.CacheHighWater
	c.mu.Unlock()

	if over {
		c.Prune()
	}
}

// Touch slides the session's expiry in the durable store and refreshes
// the cached copy.
func (c *Cache) Touch(ctx context.Context, sess *model.Session) error {
	if err := c.sessions.Touch(ctx, sess); err != nil {
		c.Invalidate(sess.ID)
		return err
	}
	c.Put(sess.ID, sess)
	return nil
}

// Invalidate drops the cached entry for id, if any.
func (c *Cache) Invalidate(id string) {
	c.mu.Lock()
	delete(c.entries, id)
	c.mu.Unlock()
}

// InvalidateUser drops every cached session belonging to userID. Used
// for bulk revocation so a revoked session cannot outlive the purge by
// a cache TTL.
func (c *Cache) InvalidateUser(userID int64) {
	c.mu.Lock()
	for id, entry := range c.entries {
		if entry.session.UserID == userID {
			delete(c.entries, id)
		}
	}
	c.mu.Unlock()
}

// Prune runs the two-phase eviction pass: drop entries whose TTL has
// lapsed, then, if the cache is still above the low-water mark, evict
// oldest-first down to it.
func (c *Cache) Prune() {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for id, entry := range c.entries {
		if now.Sub(entry.cachedAt) >= c.cfg.CacheTTL {
			delete(c.entries, id)
		}
	}

	excess := len(c.entries) - c.cfg.CacheLowWater
	if excess <= 0 {
		return
	}

	type aged struct {
		id       string
		cachedAt time.Time
	}
	byAge := make([]aged, 0, len(c.entries))
	for id, entry := range c.entries {
		byAge = append(byAge, aged{id: id, cachedAt: entry.cachedAt})
	}
	sort.Slice(byAge, func(i, j int) bool {
		return byAge[i].cachedAt.Before(byAge[j].cachedAt)
	})
	for _, candidate := range byAge[:excess] {
		delete(c.entries, candidate.id)
	}
}

// Len reports the current number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Start launches the periodic prune loop. Safe to call once; subsequent
// calls are no-ops.
func (c *Cache) Start(ctx context.Context) {
	c.startOnce.Do(func() {
		go c.run(ctx)
	})
}

func (c *Cache) run(ctx context.Context) {
	defer close(c.stoppedCh)

	ticker := time.NewTicker(c.cfg.CachePruneInterval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "session cache prune loop started",
		"interval", c.cfg.CachePruneInterval,
		"high_water", c.cfg.CacheHighWater,
		"low_water", c.cfg.CacheLowWater)

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.stopCh:
			slog.InfoContext(ctx, "session cache prune loop stopping")
			return
		case <-ticker.C:
			before := c.Len()
			c.Prune()
			if evicted := before - c.Len(); evicted > 0 {
				slog.DebugContext(ctx, "session cache pruned", "evicted", evicted, "remaining", c.Len())
			}
		}
	}
}

// Stop signals the prune loop to stop and waits for it to exit.
func (c *Cache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
		<-c.stoppedCh
	})
}
