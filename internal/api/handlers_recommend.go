// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/neoastra303/learning-path-advisor-pro/internal/cache"
	"github.com/neoastra303/learning-path-advisor-pro/internal/decision"
	"github.com/neoastra303/learning-path-advisor-pro/internal/graph"
	"github.com/neoastra303/learning-path-advisor-pro/internal/metrics"
	"github.com/neoastra303/learning-path-advisor-pro/internal/models"
)

// defaultRiskTolerance applies when the request omits risk_tolerance.
const defaultRiskTolerance = 0.5

// recommendKey is the normalized cache key payload for a recommendation.
type recommendKey struct {
	Completed     []string `json:"completed"`
	Strategy      string   `json:"strategy"`
	RiskTolerance float64  `json:"risk_tolerance"`
	Limit         int      `json:"limit"`
}

// Recommend handles POST /api/v1/recommend.
//
// It scores every eligible course under the requested decision strategy
// and returns the ranked options with risk classifications.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if apiErr := decodeJSONBody(w, r, &req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	strategy, err := decision.ParseStrategy(req.Strategy)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	riskTolerance := defaultRiskTolerance
	if req.RiskTolerance != nil {
		riskTolerance = *req.RiskTolerance
	}
	completed := normalizedSet(req.CompletedCourses)

	key := cache.GenerateKey("recommend", recommendKey{
		Completed:     completed,
		Strategy:      string(strategy),
		RiskTolerance: riskTolerance,
		Limit:         req.Limit,
	})

	// The compute result is shared with concurrent callers on the same
	// key, so detach it from this request's cancellation.
	computeCtx := context.WithoutCancel(r.Context())

	computed := false
	start := time.Now()
	value, err := h.cache.GetOrCompute(key, 0, func() (interface{}, error) {
		computed = true
		result, err := h.decision.Recommend(computeCtx, completed, strategy, riskTolerance)
		if err != nil {
			return nil, err
		}
		if req.Limit > 0 && len(result.Options) > req.Limit {
			result.Options = result.Options[:req.Limit]
		}
		return result, nil
	})
	elapsed := time.Since(start)
	h.recordCacheOutcome("recommend", computed)

	if computed {
		metrics.RecordRecommendation(string(strategy), elapsed)
	}

	if err != nil {
		respondEngineError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   value,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: elapsed.Milliseconds(),
			Cached:      !computed,
		},
	})
}

// CoursesAvailable handles POST /api/v1/courses/available.
//
// It returns the courses whose prerequisites are fully satisfied by the
// supplied completed set, excluding courses already completed.
func (h *Handler) CoursesAvailable(w http.ResponseWriter, r *http.Request) {
	var req AvailableRequest
	if apiErr := decodeJSONBody(w, r, &req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	completed := normalizedSet(req.CompletedCourses)
	for _, name := range completed {
		if !h.graph.Exists(name) {
			respondEngineError(w, &graph.NotFoundError{Name: name})
			return
		}
	}

	eligible := h.graph.Eligible(graph.NewSet(completed))
	courses := make([]graph.Course, 0, len(eligible))
	for _, name := range eligible {
		c, err := h.graph.Course(name)
		if err != nil {
			respondEngineError(w, err)
			return
		}
		courses = append(courses, c)
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"courses": courses,
			"count":   len(courses),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
