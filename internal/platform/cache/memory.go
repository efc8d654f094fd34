package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/belrates/currency-service/internal/core/ports"
)

type entry struct {
	value     any
	expiresAt time.Time // zero means no expiry
}

// Stats receives hit/miss observations, grouped by the key's prefix (the
// segment before the first ':', or the whole key for unprefixed keys).
type Stats interface {
	CacheHit(prefix string)
	CacheMiss(prefix string)
}

// Memory is an in-process, concurrency-safe implementation of ports.Cache.
// Values are type-erased; each key pattern is written and read with a single
// shape by caller discipline. A default TTL can be set at construction so the
// service layer can later bound staleness without changing its call sites;
// zero keeps entries until an explicit Remove or Clear.
type Memory struct {
	mu         sync.RWMutex
	entries    map[string]entry
	defaultTTL time.Duration
	stats      Stats
}

// MemoryOption configures optional Memory behaviour.
type MemoryOption func(*Memory)

// WithStats makes every Get report a hit or a miss to s.
func WithStats(s Stats) MemoryOption {
	return func(c *Memory) {
		c.stats = s
	}
}

// NewMemory creates an empty cache. defaultTTL applies to every Put; pass
// zero for no expiry.
func NewMemory(defaultTTL time.Duration, opts ...MemoryOption) *Memory {
	c := &Memory{
		entries:    make(map[string]entry),
		defaultTTL: defaultTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ ports.Cache = (*Memory)(nil)

func (c *Memory) Put(key string, value any) {
	c.PutTTL(key, value, c.defaultTTL)
}

func (c *Memory) PutTTL(key string, value any, ttl time.Duration) {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
}

func (c *Memory) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || (!e.expiresAt.IsZero() && time.Now().After(e.expiresAt)) {
		c.recordMiss(key)
		return nil, false
	}
	c.recordHit(key)
	return e.value, true
}

func (c *Memory) recordHit(key string) {
	if c.stats != nil {
		c.stats.CacheHit(keyPrefix(key))
	}
}

func (c *Memory) recordMiss(key string) {
	if c.stats != nil {
		c.stats.CacheMiss(keyPrefix(key))
	}
}

func keyPrefix(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i]
	}
	return key
}

func (c *Memory) Remove(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

func (c *Memory) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}

// SweepExpired removes entries whose TTL has elapsed and reports how many
// were dropped. Expired entries are already invisible to Get; sweeping only
// reclaims memory.
func (c *Memory) SweepExpired() int {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for key, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// TypedGet reads key from c and asserts the stored value to T. A missing key,
// an expired entry, or a value of a different shape all report a miss, so a
// broken key-to-shape contract degrades to a cache miss instead of a panic.
func TypedGet[T any](c ports.Cache, key string) (T, bool) {
	var zero T
	v, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
