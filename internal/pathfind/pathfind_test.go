// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

package pathfind

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/neoastra303/learning-path-advisor-pro/internal/cost"
	"github.com/neoastra303/learning-path-advisor-pro/internal/graph"
)

func mustGraph(t *testing.T, courses []graph.Course) *graph.Graph {
	t.Helper()
	g, err := graph.Build(courses)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return g
}

func newTestEngine(t *testing.T, courses []graph.Course) (*Engine, *graph.Graph) {
	t.Helper()
	g := mustGraph(t, courses)
	return NewEngine(g, cost.NewModel(g), zerolog.Nop()), g
}

// chainCourses is the linear catalog A -> B -> C used across tests.
func chainCourses() []graph.Course {
	return []graph.Course{
		{Name: "A", Category: "core", Difficulty: 2, TimeHours: 10, Utility: 5},
		{Name: "B", Category: "core", Difficulty: 5, TimeHours: 20, Utility: 7, Prerequisites: []string{"A"}},
		{Name: "C", Category: "core", Difficulty: 8, TimeHours: 30, Utility: 9, Prerequisites: []string{"B"}},
	}
}

// diamondCourses offers two routes from A to D, one cheaper than the other.
func diamondCourses() []graph.Course {
	return []graph.Course{
		{Name: "A", Category: "core", Difficulty: 1, TimeHours: 5, Utility: 5},
		{Name: "B", Category: "core", Difficulty: 2, TimeHours: 10, Utility: 8, Prerequisites: []string{"A"}},
		{Name: "C", Category: "core", Difficulty: 9, TimeHours: 60, Utility: 3, Prerequisites: []string{"A"}},
		{Name: "D", Category: "core", Difficulty: 5, TimeHours: 20, Utility: 9, Prerequisites: []string{"B", "C"}},
	}
}

func TestFindPathChain(t *testing.T) {
	e, g := newTestEngine(t, chainCourses())
	w := cost.StyleWeights(cost.StyleBalanced)

	res, err := e.FindPath(context.Background(), Query{
		Start:   []string{"A"},
		Goal:    "C",
		Weights: w,
	})
	if err != nil {
		t.Fatalf("FindPath() error = %v", err)
	}

	want := []string{"B", "C"}
	if !reflect.DeepEqual(res.Path.Courses, want) {
		t.Fatalf("Courses = %v, want %v", res.Path.Courses, want)
	}
	if res.Algorithm != AlgorithmDijkstra {
		t.Errorf("Algorithm = %q, want %q", res.Algorithm, AlgorithmDijkstra)
	}

	model := cost.NewModel(g)
	b, _ := g.Course("B")
	c, _ := g.Course("C")
	wantCost := model.EdgeCost(b, w) + model.EdgeCost(c, w)
	if math.Abs(res.Path.TotalCost-wantCost) > 1e-9 {
		t.Errorf("TotalCost = %v, want %v", res.Path.TotalCost, wantCost)
	}

	var sum float64
	for _, s := range res.Path.Steps {
		sum += s.Cost
	}
	if math.Abs(sum-res.Path.TotalCost) > 1e-9 {
		t.Errorf("step sum %v != TotalCost %v", sum, res.Path.TotalCost)
	}

	// Aggregates cover B (20h, d5, u7) and C (30h, d8, u9).
	if res.Path.TotalTimeHours != 50 {
		t.Errorf("TotalTimeHours = %v, want 50", res.Path.TotalTimeHours)
	}
	if math.Abs(res.Path.AvgDifficulty-6.5) > 1e-9 {
		t.Errorf("AvgDifficulty = %v, want 6.5", res.Path.AvgDifficulty)
	}
	if res.Path.TotalUtility != 16 {
		t.Errorf("TotalUtility = %v, want 16", res.Path.TotalUtility)
	}
}

func TestFindPathPrerequisiteOrder(t *testing.T) {
	e, g := newTestEngine(t, diamondCourses())

	res, err := e.FindPath(context.Background(), Query{
		Start:   []string{"A"},
		Goal:    "D",
		Weights: cost.StyleWeights(cost.StyleFastest),
	})
	if err != nil {
		t.Fatalf("FindPath() error = %v", err)
	}

	// Each step must be a direct dependent of the previous course on the
	// path (or of a start course for the first step).
	prevSet := graph.NewSet([]string{"A"})
	for _, name := range res.Path.Courses {
		c, err := g.Course(name)
		if err != nil {
			t.Fatalf("Course(%q) error = %v", name, err)
		}
		linked := false
		for _, p := range c.Prerequisites {
			if _, ok := prevSet[p]; ok {
				linked = true
				break
			}
		}
		if !linked {
			t.Errorf("course %q does not follow any of its prerequisites %v", name, c.Prerequisites)
		}
		prevSet = map[string]struct{}{name: {}}
	}
}

func TestFindPathDeterministic(t *testing.T) {
	// Two routes of identical cost: identical twins of B.
	courses := []graph.Course{
		{Name: "A", Category: "core", Difficulty: 1, TimeHours: 5, Utility: 5},
		{Name: "B1", Category: "core", Difficulty: 3, TimeHours: 10, Utility: 6, Prerequisites: []string{"A"}},
		{Name: "B2", Category: "core", Difficulty: 3, TimeHours: 10, Utility: 6, Prerequisites: []string{"A"}},
		{Name: "D", Category: "core", Difficulty: 5, TimeHours: 20, Utility: 9, Prerequisites: []string{"B1", "B2"}},
	}
	e, _ := newTestEngine(t, courses)
	q := Query{Start: []string{"A"}, Goal: "D", Weights: cost.StyleWeights(cost.StyleBalanced)}

	first, err := e.FindPath(context.Background(), q)
	if err != nil {
		t.Fatalf("FindPath() error = %v", err)
	}
	// Lexicographic tie-break picks B1 over B2.
	want := []string{"B1", "D"}
	if !reflect.DeepEqual(first.Path.Courses, want) {
		t.Fatalf("Courses = %v, want %v", first.Path.Courses, want)
	}
	for i := 0; i < 20; i++ {
		res, err := e.FindPath(context.Background(), q)
		if err != nil {
			t.Fatalf("FindPath() error = %v", err)
		}
		if !reflect.DeepEqual(res.Path.Courses, first.Path.Courses) {
			t.Fatalf("run %d: Courses = %v, want %v", i, res.Path.Courses, first.Path.Courses)
		}
	}
}

func TestFindPathNoPath(t *testing.T) {
	courses := append(chainCourses(),
		graph.Course{Name: "Island", Category: "misc", Difficulty: 3, TimeHours: 8, Utility: 4})
	e, _ := newTestEngine(t, courses)

	for _, alg := range []Algorithm{AlgorithmDijkstra, AlgorithmAStar, AlgorithmBFS} {
		t.Run(string(alg), func(t *testing.T) {
			_, err := e.FindPath(context.Background(), Query{
				Start:     []string{"Island"},
				Goal:      "C",
				Weights:   cost.StyleWeights(cost.StyleBalanced),
				Algorithm: alg,
			})
			var noPath *NoPathError
			if !errors.As(err, &noPath) {
				t.Fatalf("error = %v, want *NoPathError", err)
			}
			if noPath.Goal != "C" {
				t.Errorf("NoPathError.Goal = %q, want %q", noPath.Goal, "C")
			}
		})
	}
}

func TestFindPathValidation(t *testing.T) {
	e, _ := newTestEngine(t, chainCourses())
	ctx := context.Background()
	w := cost.StyleWeights(cost.StyleBalanced)

	if _, err := e.FindPath(ctx, Query{Goal: "C", Weights: w}); !errors.Is(err, ErrEmptyStart) {
		t.Errorf("empty start: error = %v, want ErrEmptyStart", err)
	}

	var notFound *graph.NotFoundError
	if _, err := e.FindPath(ctx, Query{Start: []string{"A"}, Goal: "Nope", Weights: w}); !errors.As(err, &notFound) {
		t.Errorf("unknown goal: error = %v, want *graph.NotFoundError", err)
	}
	if _, err := e.FindPath(ctx, Query{Start: []string{"Nope"}, Goal: "C", Weights: w}); !errors.As(err, &notFound) {
		t.Errorf("unknown start: error = %v, want *graph.NotFoundError", err)
	}

	if _, err := e.FindPath(ctx, Query{Start: []string{"A"}, Goal: "C"}); err == nil {
		t.Error("zero weights under dijkstra: error = nil, want degenerate weights error")
	}
	if _, err := e.FindPath(ctx, Query{Start: []string{"A"}, Goal: "C", Algorithm: AlgorithmBFS}); err != nil {
		t.Errorf("zero weights under bfs: error = %v, want nil", err)
	}
}

func TestFindPathGoalAlreadyCompleted(t *testing.T) {
	e, _ := newTestEngine(t, chainCourses())

	res, err := e.FindPath(context.Background(), Query{
		Start:   []string{"A", "B"},
		Goal:    "B",
		Weights: cost.StyleWeights(cost.StyleBalanced),
	})
	if err != nil {
		t.Fatalf("FindPath() error = %v", err)
	}
	if len(res.Path.Courses) != 0 || res.Path.TotalCost != 0 {
		t.Errorf("Path = %+v, want empty path with zero cost", res.Path)
	}
}

func TestFindPathBFSHopCount(t *testing.T) {
	courses := append(chainCourses(),
		graph.Course{Name: "D", Category: "core", Difficulty: 6, TimeHours: 15, Utility: 8, Prerequisites: []string{"C"}})
	e, _ := newTestEngine(t, courses)

	res, err := e.FindPath(context.Background(), Query{
		Start:     []string{"A"},
		Goal:      "D",
		Algorithm: AlgorithmBFS,
	})
	if err != nil {
		t.Fatalf("FindPath() error = %v", err)
	}
	want := []string{"B", "C", "D"}
	if !reflect.DeepEqual(res.Path.Courses, want) {
		t.Fatalf("Courses = %v, want %v", res.Path.Courses, want)
	}
	if res.Path.TotalCost != 3 {
		t.Errorf("TotalCost = %v, want 3 (one per hop)", res.Path.TotalCost)
	}
	for _, s := range res.Path.Steps {
		if s.Cost != 1 {
			t.Errorf("step %q cost = %v, want 1", s.Course, s.Cost)
		}
	}
}

func TestFindPathAStarMatchesDijkstra(t *testing.T) {
	e, _ := newTestEngine(t, diamondCourses())

	for _, style := range []cost.Style{cost.StyleFastest, cost.StyleEasiest, cost.StyleBalanced, cost.StyleChallenging} {
		t.Run(string(style), func(t *testing.T) {
			w := cost.StyleWeights(style)
			d, err := e.FindPath(context.Background(), Query{Start: []string{"A"}, Goal: "D", Weights: w, Algorithm: AlgorithmDijkstra})
			if err != nil {
				t.Fatalf("dijkstra error = %v", err)
			}
			a, err := e.FindPath(context.Background(), Query{Start: []string{"A"}, Goal: "D", Weights: w, Algorithm: AlgorithmAStar})
			if err != nil {
				t.Fatalf("astar error = %v", err)
			}
			if math.Abs(d.Path.TotalCost-a.Path.TotalCost) > 1e-9 {
				t.Errorf("astar cost %v != dijkstra cost %v", a.Path.TotalCost, d.Path.TotalCost)
			}
			if !reflect.DeepEqual(d.Path.Courses, a.Path.Courses) {
				t.Errorf("astar path %v != dijkstra path %v", a.Path.Courses, d.Path.Courses)
			}
		})
	}
}

func TestFindPathAlternatives(t *testing.T) {
	e, _ := newTestEngine(t, diamondCourses())

	res, err := e.FindPath(context.Background(), Query{
		Start:         []string{"A"},
		Goal:          "D",
		Weights:       cost.StyleWeights(cost.StyleFastest),
		KAlternatives: 3,
	})
	if err != nil {
		t.Fatalf("FindPath() error = %v", err)
	}

	// Fastest weights prefer the quick B route; the detour through C is
	// the only alternative.
	if got, want := res.Path.Courses, []string{"B", "D"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Courses = %v, want %v", got, want)
	}
	if len(res.Alternatives) != 1 {
		t.Fatalf("Alternatives = %v, want exactly one", res.Alternatives)
	}
	alt := res.Alternatives[0]
	if got, want := alt.Courses, []string{"C", "D"}; !reflect.DeepEqual(got, want) {
		t.Errorf("alternative = %v, want %v", got, want)
	}
	if alt.TotalCost <= res.Path.TotalCost {
		t.Errorf("alternative cost %v not strictly worse than %v", alt.TotalCost, res.Path.TotalCost)
	}
}

func TestFindPathAlternativesNoneAvailable(t *testing.T) {
	e, _ := newTestEngine(t, chainCourses())

	res, err := e.FindPath(context.Background(), Query{
		Start:         []string{"A"},
		Goal:          "C",
		Weights:       cost.StyleWeights(cost.StyleBalanced),
		KAlternatives: 5,
	})
	if err != nil {
		t.Fatalf("FindPath() error = %v", err)
	}
	if len(res.Alternatives) != 0 {
		t.Errorf("Alternatives = %v, want none on a single-route graph", res.Alternatives)
	}
}

func TestFindPathCancelled(t *testing.T) {
	e, _ := newTestEngine(t, chainCourses())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, alg := range []Algorithm{AlgorithmDijkstra, AlgorithmAStar, AlgorithmBFS} {
		t.Run(string(alg), func(t *testing.T) {
			_, err := e.FindPath(ctx, Query{
				Start:     []string{"A"},
				Goal:      "C",
				Weights:   cost.StyleWeights(cost.StyleBalanced),
				Algorithm: alg,
			})
			if !errors.Is(err, context.Canceled) {
				t.Errorf("error = %v, want context.Canceled", err)
			}
		})
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    Algorithm
		wantErr bool
	}{
		{"", AlgorithmDijkstra, false},
		{"dijkstra", AlgorithmDijkstra, false},
		{"astar", AlgorithmAStar, false},
		{"bfs", AlgorithmBFS, false},
		{"DIJKSTRA", "", true},
		{"dfs", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAlgorithm(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseAlgorithm(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
