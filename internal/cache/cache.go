// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/singleflight"
)

// Entry represents a cached item with expiration
type Entry struct {
	Data      interface{}
	ExpiresAt time.Time
}

// Cache provides a thread-safe in-memory result cache with TTL support and
// a single-flight guarantee: concurrent callers asking for the same missing
// key share one computation instead of stampeding the engines.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
	ttl     time.Duration
	stats   Stats
	flight  singleflight.Group

	stopSweep chan struct{}
	stopOnce  sync.Once
}

// Stats tracks cache performance metrics
type Stats struct {
	mu          sync.RWMutex
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// Snapshot is a lock-free copy of Stats suitable for serialization.
type Snapshot struct {
	Hits        int64     `json:"hits"`
	Misses      int64     `json:"misses"`
	Evictions   int64     `json:"evictions"`
	TotalKeys   int64     `json:"total_keys"`
	HitRate     float64   `json:"hit_rate"`
	LastCleanup time.Time `json:"last_cleanup"`
}

// New creates a cache with the given default TTL.
//
// A sweepInterval > 0 starts a background goroutine that removes expired
// entries on that period; stop it with Close. Expiry is also checked lazily
// on every Get, so the sweep is purely a memory reclamation aid and a
// sweepInterval of 0 disables it without affecting correctness.
//
// Thread Safety:
//   - Safe for concurrent access from multiple goroutines
//   - Uses sync.RWMutex for entry access, singleflight for computations
//
// Example:
//
//	c := cache.New(5*time.Minute, 10*time.Minute)
//	defer c.Close()
func New(ttl, sweepInterval time.Duration) *Cache {
	c := &Cache{
		entries: make(map[string]Entry),
		ttl:     ttl,
		stats: Stats{
			LastCleanup: time.Now(),
		},
		stopSweep: make(chan struct{}),
	}

	if sweepInterval > 0 {
		go c.sweepLoop(sweepInterval)
	}

	return c
}

// Close stops the background sweep goroutine, if any. Safe to call more
// than once; the cache remains usable afterwards.
func (c *Cache) Close() {
	c.stopOnce.Do(func() { close(c.stopSweep) })
}

// GetOrCompute returns the cached value for key, computing it at most once
// per key under concurrency. On a hit the stored value is returned without
// invoking compute. On a miss, concurrent callers for the same key block on
// a single in-flight compute call and share its result. Errors from compute
// are returned to every waiter and never cached, so the next caller retries.
//
// A ttl <= 0 falls back to the cache's default TTL.
func (c *Cache) GetOrCompute(key string, ttl time.Duration, compute func() (interface{}, error)) (interface{}, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err, _ := c.flight.Do(key, func() (interface{}, error) {
		// A previous flight may have populated the entry between our
		// miss and acquiring the flight.
		if v, ok := c.lookup(key); ok {
			return v, nil
		}
		v, err := compute()
		if err != nil {
			return nil, err
		}
		c.SetWithTTL(key, v, ttl)
		return v, nil
	})
	return v, err
}

// Get retrieves a value by key, treating expired entries as misses and
// evicting them on the spot.
//
// Statistics:
//   - Increments Hits on a valid entry
//   - Increments Misses on absence or expiry
//   - Increments Evictions when an expired entry is removed
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.recordMiss()
		return nil, false
	}

	if time.Now().After(entry.ExpiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		c.recordMiss()
		c.recordEviction()
		return nil, false
	}

	c.recordHit()
	return entry.Data, true
}

// lookup is Get without statistics, used inside a flight so that waiters
// sharing a computed result are not double-counted.
func (c *Cache) lookup(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists || time.Now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Data, true
}

// Set stores a value with the default TTL.
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL. A ttl <= 0 falls back to
// the default.
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.ttl
	}

	c.mu.Lock()
	c.entries[key] = Entry{
		Data:      value,
		ExpiresAt: time.Now().Add(ttl),
	}
	total := int64(len(c.entries))
	c.mu.Unlock()

	c.stats.mu.Lock()
	c.stats.TotalKeys = total
	c.stats.mu.Unlock()
}

// Delete removes a specific cache entry by key. No-op for absent keys.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()

	c.recordEviction()
}

// Clear removes all entries in one atomic map swap. It is safe to call
// concurrently with in-flight computations: a flight that completes after
// the clear repopulates its own entry, which the next access treats as a
// fresh hit under that entry's TTL.
func (c *Cache) Clear() {
	c.mu.Lock()
	evictions := int64(len(c.entries))
	c.entries = make(map[string]Entry)
	c.mu.Unlock()

	c.stats.mu.Lock()
	c.stats.Evictions += evictions
	c.stats.TotalKeys = 0
	c.stats.mu.Unlock()
}

// GetStats returns a point-in-time copy of the cache statistics including
// the derived hit rate.
func (c *Cache) GetStats() Snapshot {
	c.mu.RLock()
	total := int64(len(c.entries))
	c.mu.RUnlock()

	c.stats.mu.RLock()
	defer c.stats.mu.RUnlock()

	s := Snapshot{
		Hits:        c.stats.Hits,
		Misses:      c.stats.Misses,
		Evictions:   c.stats.Evictions,
		TotalKeys:   total,
		LastCleanup: c.stats.LastCleanup,
	}
	if lookups := s.Hits + s.Misses; lookups > 0 {
		s.HitRate = float64(s.Hits) / float64(lookups) * 100.0
	}
	return s
}

// HitRate returns the cache hit rate as a percentage
func (c *Cache) HitRate() float64 {
	return c.GetStats().HitRate
}

// sweepLoop periodically removes expired entries until Close.
func (c *Cache) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.sweep()
		case <-c.stopSweep:
			return
		}
	}
}

// sweep removes all expired entries
func (c *Cache) sweep() {
	now := time.Now()
	c.mu.Lock()

	evictions := int64(0)
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			evictions++
		}
	}
	total := int64(len(c.entries))
	c.mu.Unlock()

	c.stats.mu.Lock()
	c.stats.Evictions += evictions
	c.stats.TotalKeys = total
	c.stats.LastCleanup = now
	c.stats.mu.Unlock()
}

// recordHit increments the hit counter
func (c *Cache) recordHit() {
	c.stats.mu.Lock()
	c.stats.Hits++
	c.stats.mu.Unlock()
}

// recordMiss increments the miss counter
func (c *Cache) recordMiss() {
	c.stats.mu.Lock()
	c.stats.Misses++
	c.stats.mu.Unlock()
}

// recordEviction increments the eviction counter
func (c *Cache) recordEviction() {
	c.stats.mu.Lock()
	c.stats.Evictions++
	c.stats.mu.Unlock()
}

// GenerateKey creates a cache key from an operation name and its normalized
// parameters. Callers must normalize before keying (sort start sets, round
// weights) so that semantically identical queries collide on the same key.
func GenerateKey(operation string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		// Fallback to simple string key
		return fmt.Sprintf("%s:%v", operation, params)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", operation, hash[:16])
}
