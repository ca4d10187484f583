// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

// Package api provides HTTP handlers for the Learning Path Advisor application.
//
// errors.go - Engine error to HTTP status mapping
//
// This file translates errors returned by the graph, pathfind and
// decision engines into the error codes documented on models.APIError.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/neoastra303/learning-path-advisor-pro/internal/cost"
	"github.com/neoastra303/learning-path-advisor-pro/internal/decision"
	"github.com/neoastra303/learning-path-advisor-pro/internal/graph"
	"github.com/neoastra303/learning-path-advisor-pro/internal/pathfind"
)

// respondEngineError maps an engine error to its HTTP status and error code.
//
// Mapping:
//   - graph.NotFoundError    -> 404 COURSE_NOT_FOUND
//   - pathfind.NoPathError   -> 422 NO_PATH
//   - invalid query inputs   -> 400 VALIDATION_ERROR
//   - context cancellation   -> 408 REQUEST_TIMEOUT
//   - anything else          -> 500 INTERNAL_ERROR
func respondEngineError(w http.ResponseWriter, err error) {
	var notFound *graph.NotFoundError
	if errors.As(err, &notFound) {
		respondErrorDetails(w, http.StatusNotFound, "COURSE_NOT_FOUND", err.Error(),
			map[string]interface{}{"course": notFound.Name}, nil)
		return
	}

	var noPath *pathfind.NoPathError
	if errors.As(err, &noPath) {
		respondErrorDetails(w, http.StatusUnprocessableEntity, "NO_PATH", err.Error(),
			map[string]interface{}{"goal": noPath.Goal}, nil)
		return
	}

	switch {
	case errors.Is(err, pathfind.ErrEmptyStart),
		errors.Is(err, decision.ErrRiskTolerance),
		errors.Is(err, cost.ErrDegenerateWeights):
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusRequestTimeout, "REQUEST_TIMEOUT", "request cancelled or timed out", err)
	default:
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", err)
	}
}
