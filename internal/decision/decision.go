// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

// Package decision ranks the next courses a learner can take. Eligibility
// comes from the course graph, the score from one of three strategies, and
// every option carries a risk class derived from its difficulty. Results
// are deterministic: ties resolve by lower difficulty, then by name.
package decision

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/neoastra303/learning-path-advisor-pro/internal/cost"
	"github.com/neoastra303/learning-path-advisor-pro/internal/graph"
)

// Strategy selects the scoring function.
type Strategy string

// Supported recommendation strategies.
const (
	// StrategyMEU discounts utility additively by tolerance-scaled
	// difficulty: score = utility - riskTolerance * dNorm.
	StrategyMEU Strategy = "meu"
	// StrategyMinimax always charges the full difficulty penalty,
	// ignoring tolerance: score = utility - dNorm.
	StrategyMinimax Strategy = "minimax"
	// StrategyEVK discounts multiplicatively, so high-utility courses
	// absorb risk better: score = utility * (1 - riskTolerance * dNorm).
	StrategyEVK Strategy = "evk"
)

// ParseStrategy validates a strategy name. The empty string resolves to
// StrategyMEU.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "":
		return StrategyMEU, nil
	case StrategyMEU, StrategyMinimax, StrategyEVK:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("unknown strategy %q", s)
	}
}

// RiskLevel classifies a course by difficulty.
type RiskLevel string

// Risk classes: difficulty 7 and above is high, 4 through 6 medium,
// everything below low.
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ClassifyRisk maps a difficulty rating to its risk class.
func ClassifyRisk(difficulty int) RiskLevel {
	switch {
	case difficulty >= 7:
		return RiskHigh
	case difficulty >= 4:
		return RiskMedium
	default:
		return RiskLow
	}
}

// Option is one scored candidate course.
type Option struct {
	Course     string    `json:"course"`
	Category   string    `json:"category"`
	Score      float64   `json:"score"`
	Utility    int       `json:"utility"`
	Difficulty int       `json:"difficulty"`
	TimeHours  float64   `json:"time_hours"`
	Risk       RiskLevel `json:"risk"`
}

// Result is a full ranked recommendation. Options are ordered best first;
// the top recommendation is Options[0] when any exist.
type Result struct {
	Strategy      Strategy `json:"strategy"`
	RiskTolerance float64  `json:"risk_tolerance"`
	Options       []Option `json:"options"`
}

// Top returns the best option, or false when nothing is eligible.
func (r *Result) Top() (Option, bool) {
	if len(r.Options) == 0 {
		return Option{}, false
	}
	return r.Options[0], true
}

// ErrRiskTolerance is returned when riskTolerance falls outside [0, 1].
var ErrRiskTolerance = fmt.Errorf("risk tolerance must be in [0, 1]")

// Engine produces recommendations over an immutable graph. It is
// stateless and safe for concurrent use.
type Engine struct {
	g      *graph.Graph
	logger zerolog.Logger
}

// NewEngine creates a recommendation engine bound to the graph.
func NewEngine(g *graph.Graph, logger zerolog.Logger) *Engine {
	return &Engine{
		g:      g,
		logger: logger.With().Str("component", "decision").Logger(),
	}
}

// Recommend scores every eligible next course under the strategy and
// returns the full ranked list. Unknown completed courses yield a
// *graph.NotFoundError. An empty eligible set yields an empty, non-nil
// result.
func (e *Engine) Recommend(ctx context.Context, completed []string, strategy Strategy, riskTolerance float64) (*Result, error) {
	if !(riskTolerance >= 0 && riskTolerance <= 1) {
		return nil, ErrRiskTolerance
	}
	if strategy == "" {
		strategy = StrategyMEU
	}
	for _, name := range completed {
		if !e.g.Exists(name) {
			return nil, &graph.NotFoundError{Name: name}
		}
	}

	res := &Result{Strategy: strategy, RiskTolerance: riskTolerance, Options: []Option{}}
	done := graph.NewSet(completed)

	for _, name := range e.g.Eligible(done) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c, err := e.g.Course(name)
		if err != nil {
			return nil, err
		}
		score, err := score(strategy, c, riskTolerance)
		if err != nil {
			return nil, err
		}
		res.Options = append(res.Options, Option{
			Course:     c.Name,
			Category:   c.Category,
			Score:      score,
			Utility:    c.Utility,
			Difficulty: c.Difficulty,
			TimeHours:  c.TimeHours,
			Risk:       ClassifyRisk(c.Difficulty),
		})
	}

	sort.SliceStable(res.Options, func(i, j int) bool {
		a, b := res.Options[i], res.Options[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Difficulty != b.Difficulty {
			return a.Difficulty < b.Difficulty
		}
		return a.Course < b.Course
	})

	e.logger.Debug().
		Str("strategy", string(strategy)).
		Float64("risk_tolerance", riskTolerance).
		Int("completed", len(completed)).
		Int("options", len(res.Options)).
		Msg("recommendation computed")
	return res, nil
}

func score(strategy Strategy, c graph.Course, rt float64) (float64, error) {
	u := float64(c.Utility)
	dNorm := cost.NormDifficulty(c.Difficulty)
	switch strategy {
	case StrategyMEU:
		return u - rt*dNorm, nil
	case StrategyMinimax:
		return u - dNorm, nil
	case StrategyEVK:
		return u * (1 - rt*dNorm), nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", strategy)
	}
}
