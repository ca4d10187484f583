// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

package api

import (
	"net/http"
	"runtime"
	"time"

	"github.com/neoastra303/learning-path-advisor-pro/internal/models"
)

// Version is the application version, overridable at build time with
// -ldflags "-X .../internal/api.Version=v1.2.3".
var Version = "dev"

// healthStatus is the payload for the health endpoint.
type healthStatus struct {
	Status        string        `json:"status"`
	Version       string        `json:"version"`
	GoVersion     string        `json:"go_version"`
	UptimeSeconds float64       `json:"uptime_seconds"`
	CatalogSize   int           `json:"catalog_size"`
	Categories    int           `json:"categories"`
	Cache         cacheSnapshot `json:"cache"`
}

type cacheSnapshot struct {
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	Keys    int64   `json:"keys"`
	HitRate float64 `json:"hit_rate"`
}

// Health handles GET /api/v1/health.
//
// The advisor has no external dependencies at runtime (the catalog is
// loaded at startup), so a serving process is a healthy process.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	stats := h.cache.GetStats()

	health := healthStatus{
		Status:        "healthy",
		Version:       Version,
		GoVersion:     runtime.Version(),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		CatalogSize:   h.graph.Len(),
		Categories:    len(h.graph.Categories()),
		Cache: cacheSnapshot{
			Hits:    stats.Hits,
			Misses:  stats.Misses,
			Keys:    stats.TotalKeys,
			HitRate: stats.HitRate,
		},
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
