// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

package cost

import (
	"errors"
	"math"
	"testing"

	"github.com/neoastra303/learning-path-advisor-pro/internal/graph"
)

func testGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.Build([]graph.Course{
		{Name: "A", Category: "Test", Difficulty: 2, TimeHours: 10, Utility: 5},
		{Name: "B", Category: "Test", Difficulty: 5, TimeHours: 20, Utility: 7, Prerequisites: []string{"A"}},
		{Name: "C", Category: "Test", Difficulty: 8, TimeHours: 30, Utility: 9, Prerequisites: []string{"B"}},
	})
	if err != nil {
		t.Fatalf("graph.Build failed: %v", err)
	}
	return g
}

func TestWeightsValidate(t *testing.T) {
	tests := []struct {
		name    string
		w       Weights
		wantErr bool
	}{
		{"balanced", Weights{Time: 0.25, Difficulty: 0.25, Utility: 0.25, Prereq: 0.25}, false},
		{"single dimension", Weights{Time: 1}, false},
		{"all zero", Weights{}, true},
		{"negative", Weights{Time: -0.1, Difficulty: 0.5}, true},
		{"nan", Weights{Time: math.NaN()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.w.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	if err := (Weights{}).Validate(); !errors.Is(err, ErrDegenerateWeights) {
		t.Errorf("all-zero Validate() = %v, want ErrDegenerateWeights", err)
	}
}

func TestWeightsNormalized(t *testing.T) {
	w := Weights{Time: 2, Difficulty: 1, Utility: 1, Prereq: 0}.Normalized()
	if math.Abs(w.Sum()-1) > 1e-9 {
		t.Errorf("normalized Sum() = %v, want 1", w.Sum())
	}
	if math.Abs(w.Time-0.5) > 1e-9 {
		t.Errorf("Time = %v, want 0.5", w.Time)
	}

	// Degenerate weights pass through unchanged.
	if z := (Weights{}).Normalized(); z != (Weights{}) {
		t.Errorf("zero Normalized() = %+v, want zero", z)
	}
}

func TestParseStyle(t *testing.T) {
	for _, s := range []string{"fastest", "easiest", "balanced", "challenging"} {
		if _, err := ParseStyle(s); err != nil {
			t.Errorf("ParseStyle(%s) failed: %v", s, err)
		}
	}

	if st, err := ParseStyle(""); err != nil || st != StyleBalanced {
		t.Errorf("ParseStyle(\"\") = %v, %v; want balanced", st, err)
	}
	if _, err := ParseStyle("bogus"); err == nil {
		t.Error("ParseStyle(bogus) succeeded, want error")
	}
}

func TestStyleWeightsDistinct(t *testing.T) {
	seen := make(map[Weights]Style)
	for _, s := range []Style{StyleFastest, StyleEasiest, StyleBalanced, StyleChallenging} {
		w := StyleWeights(s)
		if err := w.Validate(); err != nil {
			t.Errorf("StyleWeights(%s) invalid: %v", s, err)
		}
		if math.Abs(w.Sum()-1) > 1e-9 {
			t.Errorf("StyleWeights(%s).Sum() = %v, want 1", s, w.Sum())
		}
		if prev, dup := seen[w]; dup {
			t.Errorf("styles %s and %s share the same profile", prev, s)
		}
		seen[w] = s
	}

	if f := StyleWeights(StyleFastest); f.Time <= f.Difficulty || f.Time <= f.Utility {
		t.Errorf("fastest profile does not favor time: %+v", f)
	}
	if e := StyleWeights(StyleEasiest); e.Difficulty <= e.Time {
		t.Errorf("easiest profile does not favor difficulty: %+v", e)
	}
	if c := StyleWeights(StyleChallenging); c.Utility <= c.Difficulty {
		t.Errorf("challenging profile does not favor utility: %+v", c)
	}
}

func TestMerge(t *testing.T) {
	one := 1.0
	zero := 0.0

	// No overrides: style default.
	if got := Merge(StyleBalanced, nil); got != StyleWeights(StyleBalanced) {
		t.Errorf("Merge(balanced, nil) = %+v", got)
	}

	// Pin a single dimension and renormalize.
	got := Merge(StyleBalanced, &Overrides{Time: &one})
	if got.Time <= got.Difficulty {
		t.Errorf("pinned time should dominate: %+v", got)
	}
	if math.Abs(got.Sum()-1) > 1e-9 {
		t.Errorf("merged Sum() = %v, want 1", got.Sum())
	}

	// Explicit zero is honored, not treated as unset.
	got = Merge(StyleFastest, &Overrides{Time: &zero})
	if got.Time != 0 {
		t.Errorf("explicit zero time override ignored: %+v", got)
	}
}

func TestEdgeCostBounds(t *testing.T) {
	g := testGraph(t)
	m := NewModel(g)

	for _, style := range []Style{StyleFastest, StyleEasiest, StyleBalanced, StyleChallenging} {
		w := StyleWeights(style)
		for _, name := range g.Names() {
			c, _ := g.Course(name)
			cost := m.EdgeCost(c, w)
			if cost < 0 || cost > w.Sum() {
				t.Errorf("EdgeCost(%s, %s) = %v, out of [0, %v]", name, style, cost, w.Sum())
			}
		}
	}
}

func TestEdgeCostOrdering(t *testing.T) {
	g := testGraph(t)
	m := NewModel(g)

	a, _ := g.Course("A")
	c, _ := g.Course("C")

	// Pure time weighting: the 30h course must cost more than the 10h one.
	timeOnly := Weights{Time: 1}
	if m.EdgeCost(a, timeOnly) >= m.EdgeCost(c, timeOnly) {
		t.Error("time-only cost should grow with time_hours")
	}

	// Pure inverted utility: the utility-9 course must cost less than utility-5.
	utilOnly := Weights{Utility: 1}
	if m.EdgeCost(c, utilOnly) >= m.EdgeCost(a, utilOnly) {
		t.Error("utility-only cost should fall as utility rises")
	}

	// Pure prereq depth: deeper chains cost more.
	prereqOnly := Weights{Prereq: 1}
	if m.EdgeCost(a, prereqOnly) >= m.EdgeCost(c, prereqOnly) {
		t.Error("prereq-only cost should grow with prerequisite depth")
	}
}

func TestNormScales(t *testing.T) {
	if NormDifficulty(1) != 0 || NormDifficulty(10) != 1 {
		t.Errorf("NormDifficulty endpoints = %v, %v", NormDifficulty(1), NormDifficulty(10))
	}
	if NormUtility(1) != 0 || NormUtility(10) != 1 {
		t.Errorf("NormUtility endpoints = %v, %v", NormUtility(1), NormUtility(10))
	}
}

func TestRounded(t *testing.T) {
	w := Weights{Time: 0.123456789, Difficulty: 0.25, Utility: 0.1, Prereq: 0.2}
	r := w.Rounded()
	if r.Time != 0.1235 {
		t.Errorf("Rounded().Time = %v, want 0.1235", r.Time)
	}
	if r.Difficulty != 0.25 {
		t.Errorf("Rounded().Difficulty = %v, want 0.25", r.Difficulty)
	}
}
