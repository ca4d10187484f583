// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

// Package cost converts a course into a scalar edge cost under a
// configurable weighting of time, difficulty, inverse utility, and
// prerequisite depth.
//
// All four terms are normalized into [0,1] before weighting so the weight
// values stay comparable: time is divided by the catalog's maximum
// time_hours, difficulty and utility (both 1-10) are rescaled to [0,1], and
// the prerequisite term is the course's transitive prerequisite depth over
// the graph diameter. The utility term is inverted (1 - normalized utility)
// so that more valuable courses cost less on a shortest-path minimization.
//
// Weight profiles are selected by a named learning style or supplied
// explicitly; explicit weights merge over the style defaults field by field.
package cost

import (
	"errors"
	"fmt"
	"math"

	"github.com/neoastra303/learning-path-advisor-pro/internal/graph"
)

// Weights holds the four non-negative cost dimensions. At least one weight
// must be positive or the cost function degenerates into ties everywhere.
type Weights struct {
	Time       float64 `json:"time"`
	Difficulty float64 `json:"difficulty"`
	Utility    float64 `json:"utility"`
	Prereq     float64 `json:"prereq"`
}

// ErrDegenerateWeights is returned when every weight is zero.
var ErrDegenerateWeights = errors.New("at least one cost weight must be positive")

// Validate checks that all weights are non-negative and at least one is
// positive.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"time":       w.Time,
		"difficulty": w.Difficulty,
		"utility":    w.Utility,
		"prereq":     w.Prereq,
	} {
		if v < 0 {
			return fmt.Errorf("cost weight %q must be non-negative, got %v", name, v)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("cost weight %q must be finite, got %v", name, v)
		}
	}
	if w.Sum() == 0 {
		return ErrDegenerateWeights
	}
	return nil
}

// Sum returns the total weight mass.
func (w Weights) Sum() float64 {
	return w.Time + w.Difficulty + w.Utility + w.Prereq
}

// Normalized returns the weights rescaled to sum to 1. Degenerate weights
// are returned unchanged.
func (w Weights) Normalized() Weights {
	total := w.Sum()
	if total == 0 {
		return w
	}
	return Weights{
		Time:       w.Time / total,
		Difficulty: w.Difficulty / total,
		Utility:    w.Utility / total,
		Prereq:     w.Prereq / total,
	}
}

// keyPrecision is the rounding applied before weights enter a cache key, so
// that float noise does not split semantically identical queries.
const keyPrecision = 1e4

// Rounded returns the weights rounded to the cache-key precision.
func (w Weights) Rounded() Weights {
	round := func(v float64) float64 {
		return math.Round(v*keyPrecision) / keyPrecision
	}
	return Weights{
		Time:       round(w.Time),
		Difficulty: round(w.Difficulty),
		Utility:    round(w.Utility),
		Prereq:     round(w.Prereq),
	}
}

// Style names a default weight profile.
type Style string

// Named learning styles.
const (
	StyleFastest     Style = "fastest"
	StyleEasiest     Style = "easiest"
	StyleBalanced    Style = "balanced"
	StyleChallenging Style = "challenging"
)

// styleProfiles holds the default weight mass per learning style. The
// challenging profile puts its mass on the inverted-utility term: high
// utility correlates with high difficulty in the catalog, so minimizing
// inverse utility steers the search toward harder, more valuable courses.
var styleProfiles = map[Style]Weights{
	StyleFastest:     {Time: 0.7, Difficulty: 0.2, Utility: 0.1, Prereq: 0},
	StyleEasiest:     {Time: 0.2, Difficulty: 0.6, Utility: 0.2, Prereq: 0},
	StyleBalanced:    {Time: 0.25, Difficulty: 0.25, Utility: 0.25, Prereq: 0.25},
	StyleChallenging: {Time: 0.2, Difficulty: 0.2, Utility: 0.5, Prereq: 0.1},
}

// ParseStyle validates a learning style name. The empty string resolves to
// StyleBalanced.
func ParseStyle(s string) (Style, error) {
	if s == "" {
		return StyleBalanced, nil
	}
	st := Style(s)
	if _, ok := styleProfiles[st]; !ok {
		return "", fmt.Errorf("unknown learning style %q", s)
	}
	return st, nil
}

// StyleWeights returns the default (already normalized) weight profile for
// the style.
func StyleWeights(style Style) Weights {
	w, ok := styleProfiles[style]
	if !ok {
		w = styleProfiles[StyleBalanced]
	}
	return w.Normalized()
}

// Overrides carries explicit weight overrides from a request. Nil fields
// fall back to the style default, so a caller can pin a single dimension
// (including an explicit zero) without restating the whole profile.
type Overrides struct {
	Time       *float64 `json:"time"`
	Difficulty *float64 `json:"difficulty"`
	Utility    *float64 `json:"utility"`
	Prereq     *float64 `json:"prereq"`
}

// Merge resolves the effective weights for a style plus optional explicit
// overrides, normalized to sum to 1.
func Merge(style Style, o *Overrides) Weights {
	w := StyleWeights(style)
	if o == nil {
		return w
	}
	if o.Time != nil {
		w.Time = *o.Time
	}
	if o.Difficulty != nil {
		w.Difficulty = *o.Difficulty
	}
	if o.Utility != nil {
		w.Utility = *o.Utility
	}
	if o.Prereq != nil {
		w.Prereq = *o.Prereq
	}
	return w.Normalized()
}

// NormDifficulty rescales a 1-10 difficulty to [0,1].
func NormDifficulty(d int) float64 {
	return float64(d-1) / 9
}

// NormUtility rescales a 1-10 utility to [0,1].
func NormUtility(u int) float64 {
	return float64(u-1) / 9
}

// Model computes edge costs against a fixed graph. It is a pure function of
// (course, weights) and safe for concurrent use.
type Model struct {
	g *graph.Graph
}

// NewModel creates a cost model bound to the graph.
func NewModel(g *graph.Graph) *Model {
	return &Model{g: g}
}

// EdgeCost returns the cost of the edge into the course under the weights:
// the weighted sum of the four normalized terms. Each term lies in [0,1],
// so the cost is bounded by the weight sum and never negative.
func (m *Model) EdgeCost(c graph.Course, w Weights) float64 {
	timeTerm := 0.0
	if maxT := m.g.MaxTimeHours(); maxT > 0 {
		timeTerm = c.TimeHours / maxT
	}
	difficultyTerm := NormDifficulty(c.Difficulty)
	utilityTerm := 1 - NormUtility(c.Utility)
	prereqTerm := float64(m.g.PrereqDepth(c.Name)) / float64(m.g.Diameter())

	return w.Time*timeTerm +
		w.Difficulty*difficultyTerm +
		w.Utility*utilityTerm +
		w.Prereq*prereqTerm
}
