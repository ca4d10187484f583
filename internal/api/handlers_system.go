// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

package api

import (
	"net/http"
	"time"

	"github.com/neoastra303/learning-path-advisor-pro/internal/logging"
	"github.com/neoastra303/learning-path-advisor-pro/internal/metrics"
	"github.com/neoastra303/learning-path-advisor-pro/internal/models"
)

// CacheStats handles GET /api/v1/system/cache/stats.
func (h *Handler) CacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   h.cache.GetStats(),
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// CacheClear handles POST /api/v1/system/cache/clear.
//
// Operators use this after replacing the catalog file so stale paths and
// recommendations are not served for the remainder of the TTL.
func (h *Handler) CacheClear(w http.ResponseWriter, r *http.Request) {
	evicted := h.cache.GetStats().TotalKeys
	h.cache.Clear()
	metrics.CacheEvictions.WithLabelValues("results").Add(float64(evicted))
	metrics.CacheSize.WithLabelValues("results").Set(0)
	logging.Info().Str("request_id", sanitizeLogValue(r.Header.Get("X-Request-ID"))).Msg("Result cache cleared")

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"cleared": true,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
