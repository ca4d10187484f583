// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

/*
Package metrics provides Prometheus metrics collection and export.

The package instruments the application with the Prometheus client
library, exposing metrics for monitoring performance, errors, and system
health.

# Overview

Metrics cover:
  - API request latency, throughput, and in-flight count
  - Path search duration and outcome per algorithm
  - Recommendation duration and throughput per strategy
  - Result cache hits, misses, size, and evictions
  - Application version, uptime, and catalog size

# Metrics Endpoint

Metrics are exposed at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Naming

Metric names follow Prometheus conventions: *_total counters, *_seconds
histograms, plain gauges for current values. Algorithm and strategy
labels use the API's lowercase names (dijkstra, astar, bfs; meu,
minimax, evk) so dashboards match request payloads.

# Usage

Record helpers keep call sites terse:

	start := time.Now()
	res, err := engine.FindPath(ctx, q)
	metrics.RecordPathSearch(string(q.Algorithm), time.Since(start), len(res.Path.Courses), outcome(err))

All metrics are registered via promauto at package init; importing the
package is sufficient.
*/
package metrics
