// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

// Package pathfind runs multi-criteria shortest-path search over the course
// graph to produce an ordered learning path from a set of completed courses
// to a goal course.
//
// # Search
//
// A query with several start courses is reduced to single-source search by
// introducing one virtual source node connected with zero-cost edges to
// every start course. Three algorithms are supported:
//
//   - dijkstra: non-negative-weight shortest path using the cost model,
//     with deterministic tie-breaking by (cost, course difficulty,
//     lexicographic identifier)
//   - astar: the same search with an admissible heuristic derived from the
//     inverse-normalized-utility gap toward the goal; degenerates to
//     dijkstra when the relevant weights are zero
//   - bfs: hop-count search ignoring the cost model, useful as a fast
//     existence check or when only chain length matters
//
// After the optimal path is found, up to k alternative simple paths are
// generated by re-running the search with one edge of the optimal path
// removed at a time; alternatives are deduplicated by course sequence and
// must be strictly worse in cost than the optimum.
//
// # Concurrency
//
// The engine holds no mutable state: every call is a pure function of
// (graph, query) and may run in parallel with any other call. Long searches
// honor context cancellation, returning promptly at the next loop iteration.
package pathfind
