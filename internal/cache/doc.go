// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

/*
Package cache provides a thread-safe in-memory result cache with TTL
expiry and a single-flight guarantee for expensive computations.

Path searches and recommendation rankings are pure functions of the
immutable course graph and the query parameters, which makes their results
ideal cache material: the only reason an entry goes stale is its TTL.

# Overview

The cache provides:
  - Thread-safe concurrent access (sync.RWMutex)
  - Time-to-live (TTL) expiration, checked lazily on Get
  - Optional periodic sweep to reclaim memory for cold keys
  - Single-flight computation: concurrent misses on one key share a
    single compute call (golang.org/x/sync/singleflight)
  - Hit/miss/eviction statistics with a derived hit rate

# Usage

The primary entry point is GetOrCompute:

	c := cache.New(5*time.Minute, 10*time.Minute)
	defer c.Close()

	key := cache.GenerateKey("path", normalizedQuery)
	v, err := c.GetOrCompute(key, 0, func() (interface{}, error) {
	    return engine.FindPath(ctx, query)
	})

Errors from the compute function are never cached; the next caller for the
same key retries the computation.

# Key Normalization

GenerateKey hashes the JSON encoding of its parameters, so callers must
normalize first: sort start and completed course sets, round weights to a
fixed precision, and resolve defaulted algorithm and strategy names. Two
queries that differ only in argument order then collide on the same key.

# Invalidation

Two strategies:

 1. TTL expiry, checked lazily during Get and optionally by the sweep.
 2. Explicit Clear(), exposed on the administrative API surface. Clear is
    safe concurrently with in-flight computations; a flight finishing
    after the clear repopulates only its own key.

# Limitations

Intentional for this workload:
  - No maximum size limit (the query space is small in practice)
  - No LRU eviction (TTL plus Clear is sufficient)
  - No persistence or distribution (single instance, in-memory)
*/
package cache
