// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/neoastra303/learning-path-advisor-pro/internal/graph"
	"github.com/neoastra303/learning-path-advisor-pro/internal/models"
)

// Courses handles GET /api/v1/courses.
//
// Lists all catalog courses, optionally filtered by ?category=.
func (h *Handler) Courses(w http.ResponseWriter, r *http.Request) {
	names := h.graph.Names()
	if category := r.URL.Query().Get("category"); category != "" {
		names = h.graph.ByCategory(category)
	}

	courses := make([]graph.Course, 0, len(names))
	for _, name := range names {
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

// courseDetail augments a catalog course with graph-derived context.
type courseDetail struct {
	graph.Course
	Unlocks     []string `json:"unlocks"`
	PrereqDepth int      `json:"prereq_depth"`

	// Populated only when the request carries ?completed=.
	Eligible       *bool    `json:"eligible,omitempty"`
	MissingPrereqs []string `json:"missing_prerequisites,omitempty"`
}

// CourseDetail handles GET /api/v1/courses/{name}.
//
// Returns the course with the courses it unlocks and its prerequisite
// depth. With ?completed=a,b it additionally reports eligibility and any
// missing prerequisites relative to that completed set.
func (h *Handler) CourseDetail(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	c, err := h.graph.Course(name)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	detail := courseDetail{
		Course:      c,
		Unlocks:     h.graph.Successors(name),
		PrereqDepth: h.graph.PrereqDepth(name),
	}

	if raw := r.URL.Query().Get("completed"); raw != "" {
		completed := graph.NewSet(parseCommaSeparated(raw))
		missing, err := h.graph.MissingPrerequisites(name, completed)
		if err != nil {
			respondEngineError(w, err)
			return
		}
		eligible := len(missing) == 0
		detail.Eligible = &eligible
		detail.MissingPrereqs = missing
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   detail,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// Categories handles GET /api/v1/categories.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	categories := h.graph.Categories()

	counts := make([]map[string]interface{}, 0, len(categories))
	for _, category := range categories {
		counts = append(counts, map[string]interface{}{
			"name":         category,
			"course_count": len(h.graph.ByCategory(category)),
		})
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"categories": counts,
			"count":      len(counts),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// CategoryCourses handles GET /api/v1/categories/{category}/courses.
func (h *Handler) CategoryCourses(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	names := h.graph.ByCategory(category)
	if len(names) == 0 {
		respondError(w, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("category %q not found", category), nil)
		return
	}

	courses := make([]graph.Course, 0, len(names))
	for _, name := range names {
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
			"category": category,
			"courses":  courses,
			"count":    len(courses),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
