package service

import (
	"hash/fnv"
	"sync"
	"time"

	"github.com/guttosm/storefront-cart/internal/metrics"
)

// SessionCacheConfig sizes the in-memory session table.
type SessionCacheConfig struct {
	// Capacity is the total number of sessions kept across all shards.
	Capacity int
	// IdleTTL drops a session that has not been touched for this long.
	IdleTTL time.Duration
	// Shards is rounded up to a power of two.
	Shards int
	// CleanupInterval is how often expired sessions are swept.
	CleanupInterval time.Duration
}

// DefaultSessionCacheConfig returns defaults for a single instance.
func DefaultSessionCacheConfig() SessionCacheConfig {
	return SessionCacheConfig{
		Capacity:        10000,
		IdleTTL:         30 * time.Minute,
		Shards:          16,
		CleanupInterval: time.Minute,
	}
}

// CacheStats provides session cache counters.
type CacheStats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Size      int   `json:"size"`
	Capacity  int   `json:"capacity"`
}

// sessionCache spreads sessions over LRU+TTL shards to reduce lock contention.
type sessionCache struct {
	shards []*lruShard
	mask   uint32
	stopCh chan struct{}
	once   sync.Once
	now    func() time.Time
}

func newSessionCache(cfg SessionCacheConfig) *sessionCache {
	def := DefaultSessionCacheConfig()
	if cfg.Capacity <= 0 {
		cfg.Capacity = def.Capacity
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = def.IdleTTL
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = def.CleanupInterval
	}
	n := 1
	for n < cfg.Shards {
		n *= 2
	}
	perShard := cfg.Capacity / n
	if perShard < 1 {
		perShard = 1
	}

	c := &sessionCache{
		shards: make([]*lruShard, n),
		mask:   uint32(n - 1),
		stopCh: make(chan struct{}),
		now:    time.Now,
	}
	for i := range c.shards {
		c.shards[i] = &lruShard{
			capacity: perShard,
			ttl:      cfg.IdleTTL,
			items:    make(map[string]*cacheEntry, perShard),
		}
	}
	go c.cleanupLoop(cfg.CleanupInterval)
	return c
}

func (c *sessionCache) shard(key string) *lruShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return c.shards[h.Sum32()&c.mask]
}

// Get returns a live session and refreshes its idle deadline.
func (c *sessionCache) Get(key string) (*session, bool) {
	sess, result := c.shard(key).get(key, c.now())
	metrics.RecordSessionCacheOperation("get", result)
	return sess, sess != nil
}

// SetIfAbsent stores sess unless a live session already exists for key, in which
// case the existing one is returned.
func (c *sessionCache) SetIfAbsent(key string, sess *session) *session {
	stored, evicted := c.shard(key).setIfAbsent(key, sess, c.now())
	if evicted {
		metrics.RecordSessionCacheOperation("evict", "capacity")
	}
	metrics.UpdateSessionCacheSize(c.Size())
	return stored
}

// Invalidate drops a session.
func (c *sessionCache) Invalidate(key string) {
	c.shard(key).invalidate(key)
	metrics.UpdateSessionCacheSize(c.Size())
}

// Size returns the number of cached sessions.
func (c *sessionCache) Size() int {
	total := 0
	for _, s := range c.shards {
		s.mu.Lock()
		total += len(s.items)
		s.mu.Unlock()
	}
	return total
}

// Stats aggregates shard counters.
func (c *sessionCache) Stats() CacheStats {
	var total CacheStats
	for _, s := range c.shards {
		s.mu.Lock()
		total.Hits += s.hits
		total.Misses += s.misses
		total.Evictions += s.evictions
		total.Size += len(s.items)
		total.Capacity += s.capacity
		s.mu.Unlock()
	}
	return total
}

// Stop ends the cleanup goroutine.
func (c *sessionCache) Stop() {
	c.once.Do(func() { close(c.stopCh) })
}

func (c *sessionCache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.sweep()
		case <-c.stopCh:
			return
		}
	}
}

func (c *sessionCache) sweep() {
	now := c.now()
	removed := 0
	for _, s := range c.shards {
		removed += s.sweep(now)
	}
	if removed > 0 {
		metrics.UpdateSessionCacheSize(c.Size())
	}
}

type cacheEntry struct {
	key       string
	value     *session
	expiresAt time.Time
	prev      *cacheEntry
	next      *cacheEntry
}

// lruShard is a doubly linked LRU list with per-entry idle expiry.
type lruShard struct {
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	items     map[string]*cacheEntry
	head      *cacheEntry
	tail      *cacheEntry
	hits      int64
	misses    int64
	evictions int64
}

func (s *lruShard) get(key string, now time.Time) (*session, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.items[key]
	if !ok {
		s.misses++
		return nil, "miss"
	}
	if now.After(entry.expiresAt) {
		s.removeEntry(entry)
		s.misses++
		return nil, "expired"
	}
	entry.expiresAt = now.Add(s.ttl)
	s.moveToFront(entry)
	s.hits++
	return entry.value, "hit"
}

func (s *lruShard) setIfAbsent(key string, value *session, now time.Time) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.items[key]; ok && !now.After(entry.expiresAt) {
		entry.expiresAt = now.Add(s.ttl)
		s.moveToFront(entry)
		return entry.value, false
	} else if ok {
		s.removeEntry(entry)
	}

	entry := &cacheEntry{key: key, value: value, expiresAt: now.Add(s.ttl)}
	s.items[key] = entry
	s.addToFront(entry)

	if len(s.items) > s.capacity {
		s.removeEntry(s.tail)
		s.evictions++
		return value, true
	}
	return value, false
}

func (s *lruShard) invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.items[key]; ok {
		s.removeEntry(entry)
	}
}

func (s *lruShard) sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for e := s.tail; e != nil; {
		prev := e.prev
		if now.After(e.expiresAt) {
			s.removeEntry(e)
			removed++
		}
		e = prev
	}
	return removed
}

func (s *lruShard) removeEntry(entry *cacheEntry) {
	delete(s.items, entry.key)
	s.unlink(entry)
}

func (s *lruShard) moveToFront(entry *cacheEntry) {
	if entry == s.head {
		return
	}
	s.unlink(entry)
	s.addToFront(entry)
}

func (s *lruShard) addToFront(entry *cacheEntry) {
	entry.prev = nil
	entry.next = s.head
	if s.head != nil {
		s.head.prev = entry
	}
	s.head = entry
	if s.tail == nil {
		s.tail = entry
	}
}

func (s *lruShard) unlink(entry *cacheEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		s.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		s.tail = entry.prev
	}
	entry.prev, entry.next = nil, nil
}
