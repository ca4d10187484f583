// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

package api

import (
	"time"

	"github.com/neoastra303/learning-path-advisor-pro/internal/cache"
	"github.com/neoastra303/learning-path-advisor-pro/internal/config"
	"github.com/neoastra303/learning-path-advisor-pro/internal/decision"
	"github.com/neoastra303/learning-path-advisor-pro/internal/graph"
	"github.com/neoastra303/learning-path-advisor-pro/internal/metrics"
	"github.com/neoastra303/learning-path-advisor-pro/internal/pathfind"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - helpers.go: Shared helper functions
//   - handlers_path.go: Path search endpoint
//   - handlers_recommend.go: Recommendation and eligibility endpoints
//   - handlers_catalog.go: Catalog browsing endpoints
//   - handlers_health.go: Health endpoint
//   - handlers_system.go: Cache administration endpoints
type Handler struct {
	graph     *graph.Graph
	pathfind  *pathfind.Engine
	decision  *decision.Engine
	cache     *cache.Cache
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a new API handler with all required dependencies.
//
// Dependencies:
//   - g: the validated course dependency graph
//   - pf: path search engine over g
//   - dec: next-course recommendation engine over g
//   - resultCache: single-flight TTL cache for engine results
//   - cfg: application configuration
//
// Example:
//
//	handler := api.NewHandler(g, pf, dec, resultCache, cfg)
//	router := api.NewRouter(handler, api.NewChiMiddleware(nil))
//	http.ListenAndServe(":8080", router.Setup())
func NewHandler(g *graph.Graph, pf *pathfind.Engine, dec *decision.Engine, resultCache *cache.Cache, cfg *config.Config) *Handler {
	return &Handler{
		graph:     g,
		pathfind:  pf,
		decision:  dec,
		cache:     resultCache,
		config:    cfg,
		startTime: time.Now(),
	}
}

// recordCacheOutcome updates the Prometheus cache metrics after a
// GetOrCompute round trip. Singleflight waiters count as hits: they did
// not run the engine.
func (h *Handler) recordCacheOutcome(cacheType string, computed bool) {
	if computed {
		metrics.CacheMisses.WithLabelValues(cacheType).Inc()
	} else {
		metrics.CacheHits.WithLabelValues(cacheType).Inc()
	}
	metrics.CacheSize.WithLabelValues("results").Set(float64(h.cache.GetStats().TotalKeys))
}
