// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

/*
Package middleware provides HTTP middleware components for the application.

Key Components:

  - Request ID: UUID-based request tracking propagated through context,
    response headers, and structured logs
  - Prometheus Metrics: request count, latency histogram, and in-flight
    gauge per endpoint

Both components are standard net/http middleware (func(http.Handler)
http.Handler) and compose with the chi router's built-in middleware:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)

Ordering matters only in that RequestID should run before anything that
logs, so the ID is present in the context.
*/
package middleware
