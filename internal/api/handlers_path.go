// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/neoastra303/learning-path-advisor-pro/internal/cache"
	"github.com/neoastra303/learning-path-advisor-pro/internal/cost"
	"github.com/neoastra303/learning-path-advisor-pro/internal/metrics"
	"github.com/neoastra303/learning-path-advisor-pro/internal/models"
	"github.com/neoastra303/learning-path-advisor-pro/internal/pathfind"
)

// pathKey is the normalized cache key payload for a path search. Start
// courses are sorted and deduplicated and weights rounded so equivalent
// requests share a cache entry.
type pathKey struct {
	Start        []string     `json:"start"`
	Goal         string       `json:"goal"`
	Algorithm    string       `json:"algorithm"`
	Weights      cost.Weights `json:"weights"`
	Alternatives int          `json:"alternatives"`
}

// PathSearch handles POST /api/v1/path.
//
// It resolves the effective weights from the learning style plus any
// explicit overrides, runs the requested search algorithm and returns
// the optimal path with per-step costs. Results are cached.
func (h *Handler) PathSearch(w http.ResponseWriter, r *http.Request) {
	var req PathRequest
	if apiErr := decodeJSONBody(w, r, &req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	style, err := cost.ParseStyle(req.LearningStyle)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	algorithm, err := pathfind.ParseAlgorithm(req.Algorithm)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	weights := cost.Merge(style, req.Weights)
	if algorithm != pathfind.AlgorithmBFS {
		if err := weights.Validate(); err != nil {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
			return
		}
	}

	query := pathfind.Query{
		Start:         normalizedSet(req.StartCourses),
		Goal:          req.GoalCourse,
		Weights:       weights,
		Algorithm:     algorithm,
		KAlternatives: req.Alternatives,
	}

	key := cache.GenerateKey("path", pathKey{
		Start:        query.Start,
		Goal:         query.Goal,
		Algorithm:    string(algorithm),
		Weights:      weights.Rounded(),
		Alternatives: query.KAlternatives,
	})

	// The compute result is shared with concurrent callers on the same
	// key, so detach it from this request's cancellation.
	computeCtx := context.WithoutCancel(r.Context())

	computed := false
	start := time.Now()
	value, err := h.cache.GetOrCompute(key, 0, func() (interface{}, error) {
		computed = true
		return h.pathfind.FindPath(computeCtx, query)
	})
	elapsed := time.Since(start)
	h.recordCacheOutcome("path", computed)

	if computed {
		outcome := "found"
		var noPath *pathfind.NoPathError
		switch {
		case err == nil:
		case errors.As(err, &noPath):
			outcome = "no_path"
		default:
			outcome = "error"
		}
		pathLen := 0
		if result, ok := value.(*pathfind.Result); ok && result != nil {
			pathLen = len(result.Path.Courses)
		}
		metrics.RecordPathSearch(string(algorithm), elapsed, pathLen, outcome)
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
