// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

// Package api provides HTTP request validation structs with go-playground/validator tags.
// These structs are used to validate incoming API request parameters before processing.
//
// The validation tags follow the go-playground/validator v10 syntax:
//   - required: field must be present and non-zero
//   - min,max: numeric or string length bounds
//   - oneof: value must be one of the specified options
//   - gte,lte: numeric range bounds
//   - dive: apply subsequent tags to slice elements
//   - omitempty: skip validation if field is empty/zero
//
// Example usage:
//
//	var req PathRequest
//	if apiErr := decodeJSONBody(w, r, &req); apiErr != nil {
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//	if apiErr := validateRequest(&req); apiErr != nil {
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
package api

import (
	"sort"

	"github.com/neoastra303/learning-path-advisor-pro/internal/cost"
)

// PathRequest is the request body for POST /api/v1/path.
//
// Fields:
//   - StartCourses: completed courses the path may build on (at least one)
//   - GoalCourse: the course to reach
//   - LearningStyle: weight profile name (default "balanced")
//   - Weights: per-criterion overrides applied on top of the style profile
//   - Algorithm: search algorithm (default "dijkstra")
//   - Alternatives: number of alternative paths to compute (0 disables)
type PathRequest struct {
	StartCourses  []string        `json:"start_courses" validate:"required,min=1,dive,min=1"`
	GoalCourse    string          `json:"goal_course" validate:"required,min=1"`
	LearningStyle string          `json:"learning_style" validate:"omitempty,oneof=fastest easiest balanced challenging"`
	Weights       *cost.Overrides `json:"cost_weights"`
	Algorithm     string          `json:"algorithm" validate:"omitempty,oneof=dijkstra astar bfs"`
	Alternatives  int             `json:"k_alternatives" validate:"min=0,max=10"`
}

// RecommendRequest is the request body for POST /api/v1/recommend.
//
// RiskTolerance is a pointer so an absent field can be distinguished
// from an explicit zero; absent defaults to 0.5.
type RecommendRequest struct {
	CompletedCourses []string `json:"completed_courses" validate:"omitempty,dive,min=1"`
	Strategy         string   `json:"strategy" validate:"omitempty,oneof=meu minimax evk"`
	RiskTolerance    *float64 `json:"risk_tolerance" validate:"omitempty,gte=0,lte=1"`
	Limit            int      `json:"limit" validate:"min=0,max=100"`
}

// AvailableRequest is the request body for POST /api/v1/courses/available.
type AvailableRequest struct {
	CompletedCourses []string `json:"completed_courses" validate:"omitempty,dive,min=1"`
}

// normalizedSet returns a sorted, deduplicated copy of names for use in
// cache keys. Two requests with the same courses in different order must
// hit the same cache entry.
func normalizedSet(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
