// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/neoastra303/learning-path-advisor-pro/internal/middleware"
)

// Router sets up HTTP routes using the Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router over the given handler and middleware factory.
func NewRouter(handler *Handler, cm *ChiMiddleware) *Router {
	if cm == nil {
		cm = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: cm,
	}
}

// Setup configures all HTTP routes and returns the root handler.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	// Applied to ALL routes in order
	r.Use(middleware.RequestID)        // Add X-Request-ID header with logging context
	r.Use(chimiddleware.RealIP)        // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)     // Recover from panics
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	if timeout := router.chiMiddleware.config.RequestTimeout; timeout > 0 {
		r.Use(chimiddleware.Timeout(timeout))
	}

	// ========================
	// Health Endpoint
	// ========================
	// Permissive rate limiting so monitoring can poll frequently
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Get("/", router.handler.Health)
	})

	// ========================
	// Engine Endpoints
	// ========================
	// Path search and recommendations run the engines; standard limits
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)

		r.Post("/path", router.handler.PathSearch)
		r.Post("/recommend", router.handler.Recommend)
		r.Post("/courses/available", router.handler.CoursesAvailable)

		// Catalog browsing
		r.Get("/courses", router.handler.Courses)
		r.Get("/courses/{name}", router.handler.CourseDetail)
		r.Get("/categories", router.handler.Categories)
		r.Get("/categories/{category}/courses", router.handler.CategoryCourses)
	})

	// ========================
	// System Endpoints
	// ========================
	// Cache visibility and invalidation for operators
	r.Route("/api/v1/system", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/cache/stats", router.handler.CacheStats)
		r.Post("/cache/clear", router.handler.CacheClear)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	return r
}
