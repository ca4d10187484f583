// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

package pathfind

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/neoastra303/learning-path-advisor-pro/internal/cost"
	"github.com/neoastra303/learning-path-advisor-pro/internal/graph"
)

// Algorithm selects the search strategy.
type Algorithm string

// Supported search algorithms.
const (
	AlgorithmDijkstra Algorithm = "dijkstra"
	AlgorithmAStar    Algorithm = "astar"
	AlgorithmBFS      Algorithm = "bfs"
)

// ParseAlgorithm validates an algorithm name. The empty string resolves to
// AlgorithmDijkstra.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case "":
		return AlgorithmDijkstra, nil
	case AlgorithmDijkstra, AlgorithmAStar, AlgorithmBFS:
		return Algorithm(s), nil
	default:
		return "", fmt.Errorf("unknown algorithm %q", s)
	}
}

// Query describes one path search.
type Query struct {
	Start         []string
	Goal          string
	Weights       cost.Weights
	Algorithm     Algorithm
	KAlternatives int
}

// Step is one course on a path with its edge cost under the query weights.
type Step struct {
	Course string  `json:"course"`
	Cost   float64 `json:"cost"`
}

// Path is an ordered course sequence from the start set to the goal,
// excluding courses already completed. It is created fresh per query and
// never mutated afterwards.
type Path struct {
	Courses   []string `json:"courses"`
	Steps     []Step   `json:"steps"`
	TotalCost float64  `json:"total_cost"`

	// Aggregates over the courses on the path.
	TotalTimeHours float64 `json:"total_time_hours"`
	AvgDifficulty  float64 `json:"avg_difficulty"`
	TotalUtility   int     `json:"total_utility"`
}

// Result is the outcome of a path query.
type Result struct {
	Path         Path      `json:"path"`
	Algorithm    Algorithm `json:"algorithm"`
	Alternatives []Path    `json:"alternatives,omitempty"`
}

// NoPathError reports an unreachable goal, carrying the attempted start set
// and goal for diagnostics.
type NoPathError struct {
	Start []string
	Goal  string
}

func (e *NoPathError) Error() string {
	return fmt.Sprintf("no path from %v to %q", e.Start, e.Goal)
}

// ErrEmptyStart is returned when the query has no start courses.
var ErrEmptyStart = errors.New("start set must not be empty")

// virtualStart is the synthetic single source for multi-start queries. The
// NUL byte keeps it from colliding with any catalog identifier.
const virtualStart = "\x00start"

// Engine runs path searches over an immutable graph. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	g      *graph.Graph
	model  *cost.Model
	logger zerolog.Logger
}

// NewEngine creates a path engine bound to the graph and cost model.
func NewEngine(g *graph.Graph, model *cost.Model, logger zerolog.Logger) *Engine {
	return &Engine{
		g:      g,
		model:  model,
		logger: logger.With().Str("component", "pathfind").Logger(),
	}
}

// edge identifies a directed edge for temporary exclusion during
// k-alternatives search.
type edge struct {
	from, to string
}

// FindPath validates the query and runs the selected search. It returns a
// *graph.NotFoundError when the goal or a start course is unknown, a
// *NoPathError when the goal is unreachable, and the context error when the
// search is cancelled.
func (e *Engine) FindPath(ctx context.Context, q Query) (*Result, error) {
	if len(q.Start) == 0 {
		return nil, ErrEmptyStart
	}
	if !e.g.Exists(q.Goal) {
		return nil, &graph.NotFoundError{Name: q.Goal}
	}
	for _, s := range q.Start {
		if !e.g.Exists(s) {
			return nil, &graph.NotFoundError{Name: s}
		}
	}
	if q.Algorithm == "" {
		q.Algorithm = AlgorithmDijkstra
	}
	if q.Algorithm != AlgorithmBFS {
		if err := q.Weights.Validate(); err != nil {
			return nil, err
		}
	}

	seq, err := e.search(ctx, q, nil)
	if err != nil {
		return nil, err
	}

	started := graph.NewSet(q.Start)
	result := &Result{
		Path:      e.buildPath(seq, q, started),
		Algorithm: q.Algorithm,
	}

	if q.KAlternatives > 0 {
		alts, err := e.alternatives(ctx, q, seq, started, result.Path.TotalCost)
		if err != nil {
			return nil, err
		}
		result.Alternatives = alts
	}

	e.logger.Debug().
		Str("goal", q.Goal).
		Str("algorithm", string(q.Algorithm)).
		Int("path_len", len(result.Path.Courses)).
		Int("alternatives", len(result.Alternatives)).
		Msg("path search complete")
	return result, nil
}

// search runs one shortest-path pass and returns the full node sequence
// from the virtual source (excluded) to the goal, inclusive. Edges in
// excluded are skipped, which drives the k-alternatives variant.
func (e *Engine) search(ctx context.Context, q Query, excluded map[edge]struct{}) ([]string, error) {
	if q.Algorithm == AlgorithmBFS {
		return e.searchBFS(ctx, q, excluded)
	}
	return e.searchWeighted(ctx, q, excluded)
}

// searchWeighted implements Dijkstra and A*. The only difference between
// the two is the heuristic added to the frontier priority; with a zero
// heuristic A* is exactly Dijkstra.
func (e *Engine) searchWeighted(ctx context.Context, q Query, excluded map[edge]struct{}) ([]string, error) {
	h := func(string) float64 { return 0 }
	if q.Algorithm == AlgorithmAStar {
		h = e.heuristic(q)
	}

	dist := map[string]float64{virtualStart: 0}
	prev := make(map[string]string)
	visited := make(map[string]struct{})

	frontier := &nodeHeap{}
	frontier.push(searchNode{name: virtualStart, dist: 0, prio: 0})

	starts := sortedCopy(q.Start)

	for frontier.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cur := frontier.pop()
		if _, seen := visited[cur.name]; seen {
			continue
		}
		visited[cur.name] = struct{}{}

		if cur.name == q.Goal {
			return reconstruct(prev, q.Goal), nil
		}

		for _, next := range e.neighbors(cur.name, starts) {
			if _, seen := visited[next]; seen {
				continue
			}
			if _, skip := excluded[edge{cur.name, next}]; skip {
				continue
			}

			// Virtual edges into the start set cost nothing: completed
			// courses never contribute to the path total.
			w := 0.0
			if cur.name != virtualStart {
				c, err := e.g.Course(next)
				if err != nil {
					return nil, err
				}
				w = e.model.EdgeCost(c, q.Weights)
			}

			nd := cur.dist + w
			if old, ok := dist[next]; ok && nd >= old {
				continue
			}
			dist[next] = nd
			prev[next] = cur.name

			difficulty := 0
			if c, err := e.g.Course(next); err == nil {
				difficulty = c.Difficulty
			}
			frontier.push(searchNode{
				name:       next,
				dist:       nd,
				prio:       nd + h(next),
				difficulty: difficulty,
			})
		}
	}

	return nil, &NoPathError{Start: starts, Goal: q.Goal}
}

// searchBFS finds the shortest prerequisite chain by hop count, ignoring
// the cost model entirely.
func (e *Engine) searchBFS(ctx context.Context, q Query, excluded map[edge]struct{}) ([]string, error) {
	prev := make(map[string]string)
	visited := map[string]struct{}{virtualStart: {}}
	queue := []string{virtualStart}
	starts := sortedCopy(q.Start)

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cur := queue[0]
		queue = queue[1:]

		if cur == q.Goal {
			return reconstruct(prev, q.Goal), nil
		}

		for _, next := range e.neighbors(cur, starts) {
			if _, seen := visited[next]; seen {
				continue
			}
			if _, skip := excluded[edge{cur, next}]; skip {
				continue
			}
			visited[next] = struct{}{}
			prev[next] = cur
			queue = append(queue, next)
		}
	}

	return nil, &NoPathError{Start: starts, Goal: q.Goal}
}

// neighbors returns the outgoing neighbors of a node in deterministic
// order: the sorted start courses for the virtual source, the sorted
// successor index otherwise.
func (e *Engine) neighbors(name string, starts []string) []string {
	if name == virtualStart {
		return starts
	}
	return e.g.Successors(name)
}

// heuristic builds the A* estimate of remaining cost: the
// inverse-normalized-utility gap toward the goal scaled by the minimum of
// the time and difficulty weights. Zero weights in those dimensions make
// the heuristic vanish and the search fall back to Dijkstra behavior.
func (e *Engine) heuristic(q Query) func(string) float64 {
	minW := q.Weights.Time
	if q.Weights.Difficulty < minW {
		minW = q.Weights.Difficulty
	}
	if minW <= 0 {
		return func(string) float64 { return 0 }
	}

	goal, err := e.g.Course(q.Goal)
	if err != nil {
		return func(string) float64 { return 0 }
	}
	goalInv := 1 - cost.NormUtility(goal.Utility)

	return func(name string) float64 {
		c, err := e.g.Course(name)
		if err != nil {
			return 0
		}
		gap := goalInv - (1 - cost.NormUtility(c.Utility))
		if gap < 0 {
			return 0
		}
		return minW * gap
	}
}

// reconstruct walks the predecessor map back from the goal and returns the
// node sequence starting at the virtual source's first real successor.
func reconstruct(prev map[string]string, goal string) []string {
	var rev []string
	for cur := goal; cur != virtualStart; cur = prev[cur] {
		rev = append(rev, cur)
		if _, ok := prev[cur]; !ok {
			break
		}
	}
	seq := make([]string, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		seq = append(seq, rev[i])
	}
	return seq
}

// buildPath converts a raw node sequence into a Path, dropping courses the
// learner already completed. Step costs come from the cost model, or count
// one hop each under BFS, so the total always equals the sum of the steps.
func (e *Engine) buildPath(seq []string, q Query, started map[string]struct{}) Path {
	p := Path{}
	difficultySum := 0
	for _, name := range seq {
		if _, ok := started[name]; ok {
			continue
		}
		c, err := e.g.Course(name)
		if err != nil {
			continue
		}
		stepCost := 1.0
		if q.Algorithm != AlgorithmBFS {
			stepCost = e.model.EdgeCost(c, q.Weights)
		}
		p.Courses = append(p.Courses, name)
		p.Steps = append(p.Steps, Step{Course: name, Cost: stepCost})
		p.TotalCost += stepCost
		p.TotalTimeHours += c.TimeHours
		p.TotalUtility += c.Utility
		difficultySum += c.Difficulty
	}
	if len(p.Courses) > 0 {
		p.AvgDifficulty = float64(difficultySum) / float64(len(p.Courses))
	}
	return p
}

// alternatives generates up to k additional simple paths by re-running the
// search with one edge of the optimal sequence removed at a time. Results
// are deduplicated by course sequence, must be strictly worse in cost than
// the optimum, and are ordered by (cost, sequence) for determinism.
func (e *Engine) alternatives(ctx context.Context, q Query, best []string, started map[string]struct{}, bestCost float64) ([]Path, error) {
	full := append([]string{virtualStart}, best...)
	seen := map[string]struct{}{strings.Join(best, "\x00"): {}}
	var candidates []Path

	for i := 0; i < len(full)-1; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		excl := map[edge]struct{}{{full[i], full[i+1]}: {}}
		seq, err := e.search(ctx, q, excl)
		if err != nil {
			var noPath *NoPathError
			if errors.As(err, &noPath) {
				continue
			}
			return nil, err
		}

		key := strings.Join(seq, "\x00")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		p := e.buildPath(seq, q, started)
		if p.TotalCost <= bestCost+1e-9 {
			continue
		}
		candidates = append(candidates, p)
	}

	sort.Slice(candidates, func(a, b int) bool {
		if candidates[a].TotalCost != candidates[b].TotalCost {
			return candidates[a].TotalCost < candidates[b].TotalCost
		}
		return strings.Join(candidates[a].Courses, "\x00") < strings.Join(candidates[b].Courses, "\x00")
	})

	if len(candidates) > q.KAlternatives {
		candidates = candidates[:q.KAlternatives]
	}
	return candidates, nil
}

// sortedCopy returns a sorted copy of the identifiers.
func sortedCopy(names []string) []string {
	out := append([]string{}, names...)
	sort.Strings(out)
	return out
}
