// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

// Package graph provides the immutable course dependency graph.
//
// A Graph is constructed exactly once at process start from the full course
// catalog and is shared read-only by every query afterwards. Construction
// validates two structural invariants and fails with a *ConstructionError if
// either is violated:
//
//   - every prerequisite identifier resolves to a known course
//   - the prerequisite relation is acyclic (no course is, transitively,
//     its own prerequisite)
//
// Cycle detection uses a three-color depth-first traversal; when an
// in-progress node is re-entered the identifiers closing the cycle are
// reported in the error.
//
// The Graph also derives, at build time, everything the cost model and the
// search engines need at query time: a successor (reverse adjacency) index,
// the transitive prerequisite depth of each course, the maximum course
// duration in the catalog, and a graph diameter estimate (the longest
// prerequisite chain).
//
// # Thread Safety
//
// A Graph is immutable after Build returns and is safe for unsynchronized
// concurrent reads from any number of goroutines.
package graph
