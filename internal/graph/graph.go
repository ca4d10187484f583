// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

package graph

import (
	"fmt"
	"sort"
	"strings"
)

// Course is a single unit of study. Courses are immutable once loaded;
// the JSON tags match the catalog file format.
type Course struct {
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Difficulty    int      `json:"difficulty"`
	TimeHours     float64  `json:"time_hours"`
	Utility       int      `json:"utility"`
	Prerequisites []string `json:"prerequisites"`
}

// Graph is the immutable course dependency graph. Edges run from a
// prerequisite to each course that requires it, so forward traversal
// follows the order in which a learner can take courses.
type Graph struct {
	courses    map[string]Course
	successors map[string][]string // prerequisite -> dependents, sorted
	depth      map[string]int      // longest transitive prerequisite chain
	names      []string            // sorted course identifiers
	maxTime    float64
	diameter   int
}

// ConstructionError reports a structural violation found while building the
// graph. Exactly one of the three shapes is populated: an invalid course
// attribute (Course + Reason), an unresolved prerequisite (Course + Prereq),
// or a prerequisite cycle (Cycle).
type ConstructionError struct {
	Course string
	Prereq string
	Reason string
	Cycle  []string
}

func (e *ConstructionError) Error() string {
	switch {
	case len(e.Cycle) > 0:
		return fmt.Sprintf("prerequisite cycle: %s", strings.Join(e.Cycle, " -> "))
	case e.Prereq != "":
		return fmt.Sprintf("course %q requires unknown prerequisite %q", e.Course, e.Prereq)
	default:
		return fmt.Sprintf("course %q: %s", e.Course, e.Reason)
	}
}

// NotFoundError reports a course identifier absent from the graph.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("course not found: %q", e.Name)
}

// Build validates the course list and constructs an immutable Graph.
// It returns a *ConstructionError on duplicate identifiers, out-of-range
// attributes, unresolved prerequisites, or a prerequisite cycle. The graph
// is never partially usable: any violation fails the whole construction.
func Build(courses []Course) (*Graph, error) {
	g := &Graph{
		courses:    make(map[string]Course, len(courses)),
		successors: make(map[string][]string, len(courses)),
		depth:      make(map[string]int, len(courses)),
	}

	for _, c := range courses {
		if c.Name == "" {
			return nil, &ConstructionError{Course: c.Name, Reason: "empty course name"}
		}
		if _, dup := g.courses[c.Name]; dup {
			return nil, &ConstructionError{Course: c.Name, Reason: "duplicate course name"}
		}
		if c.Difficulty < 1 || c.Difficulty > 10 {
			return nil, &ConstructionError{Course: c.Name, Reason: fmt.Sprintf("difficulty %d out of range 1-10", c.Difficulty)}
		}
		if c.Utility < 1 || c.Utility > 10 {
			return nil, &ConstructionError{Course: c.Name, Reason: fmt.Sprintf("utility %d out of range 1-10", c.Utility)}
		}
		if c.TimeHours <= 0 {
			return nil, &ConstructionError{Course: c.Name, Reason: fmt.Sprintf("time_hours %v must be positive", c.TimeHours)}
		}
		g.courses[c.Name] = c
		g.names = append(g.names, c.Name)
		if c.TimeHours > g.maxTime {
			g.maxTime = c.TimeHours
		}
	}
	sort.Strings(g.names)

	for _, name := range g.names {
		for _, p := range g.courses[name].Prerequisites {
			if _, ok := g.courses[p]; !ok {
				return nil, &ConstructionError{Course: name, Prereq: p}
			}
			g.successors[p] = append(g.successors[p], name)
		}
	}
	for p := range g.successors {
		sort.Strings(g.successors[p])
	}

	if cycle := g.findCycle(); cycle != nil {
		return nil, &ConstructionError{Cycle: cycle}
	}

	g.computeDepths()
	return g, nil
}

// dfs colors for cycle detection.
const (
	unvisited = iota
	inProgress
	done
)

// findCycle runs a three-color DFS over the prerequisite relation and
// returns the identifiers forming a cycle, or nil if the graph is acyclic.
func (g *Graph) findCycle() []string {
	state := make(map[string]int, len(g.courses))
	var stack []string

	var visit func(name string) []string
	visit = func(name string) []string {
		state[name] = inProgress
		stack = append(stack, name)
		for _, p := range g.courses[name].Prerequisites {
			switch state[p] {
			case inProgress:
				// Close the cycle: slice the stack from the first
				// occurrence of p and append p again.
				for i, s := range stack {
					if s == p {
						cycle := append([]string{}, stack[i:]...)
						return append(cycle, p)
					}
				}
			case unvisited:
				if cycle := visit(p); cycle != nil {
					return cycle
				}
			}
		}
		stack = stack[:len(stack)-1]
		state[name] = done
		return nil
	}

	for _, name := range g.names {
		if state[name] == unvisited {
			if cycle := visit(name); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}

// computeDepths fills the transitive prerequisite depth of every course and
// the diameter estimate. Depth is the longest chain of prerequisites below a
// course: 0 for foundation courses, 1 + max(depth of prereqs) otherwise.
// Must be called after cycle detection; recursion terminates on a DAG.
func (g *Graph) computeDepths() {
	var depthOf func(name string) int
	depthOf = func(name string) int {
		if d, ok := g.depth[name]; ok {
			return d
		}
		d := 0
		for _, p := range g.courses[name].Prerequisites {
			if pd := depthOf(p) + 1; pd > d {
				d = pd
			}
		}
		g.depth[name] = d
		return d
	}

	for _, name := range g.names {
		if d := depthOf(name); d > g.diameter {
			g.diameter = d
		}
	}
	if g.diameter < 1 {
		g.diameter = 1
	}
}

// Course returns the course with the given identifier, or a *NotFoundError.
func (g *Graph) Course(name string) (Course, error) {
	c, ok := g.courses[name]
	if !ok {
		return Course{}, &NotFoundError{Name: name}
	}
	return c, nil
}

// Exists reports whether the identifier names a known course.
func (g *Graph) Exists(name string) bool {
	_, ok := g.courses[name]
	return ok
}

// Len returns the number of courses in the graph.
func (g *Graph) Len() int {
	return len(g.courses)
}

// Names returns all course identifiers in sorted order. The returned slice
// must not be modified.
func (g *Graph) Names() []string {
	return g.names
}

// Successors returns the courses that list name as a prerequisite, sorted.
// The returned slice must not be modified.
func (g *Graph) Successors(name string) []string {
	return g.successors[name]
}

// Eligible returns, in sorted order, the courses whose full prerequisite set
// is contained in completed, excluding courses already completed.
func (g *Graph) Eligible(completed map[string]struct{}) []string {
	var out []string
	for _, name := range g.names {
		if _, took := completed[name]; took {
			continue
		}
		met := true
		for _, p := range g.courses[name].Prerequisites {
			if _, ok := completed[p]; !ok {
				met = false
				break
			}
		}
		if met {
			out = append(out, name)
		}
	}
	return out
}

// MissingPrerequisites returns the direct prerequisites of name that are not
// in completed, in catalog order. Returns a *NotFoundError for unknown names.
func (g *Graph) MissingPrerequisites(name string, completed map[string]struct{}) ([]string, error) {
	c, ok := g.courses[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	var missing []string
	for _, p := range c.Prerequisites {
		if _, ok := completed[p]; !ok {
			missing = append(missing, p)
		}
	}
	return missing, nil
}

// Categories returns the distinct course categories, sorted.
func (g *Graph) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, name := range g.names {
		cat := g.courses[name].Category
		if _, ok := seen[cat]; !ok {
			seen[cat] = struct{}{}
			out = append(out, cat)
		}
	}
	sort.Strings(out)
	return out
}

// ByCategory returns the identifiers of all courses in the category
// (case-insensitive), sorted.
func (g *Graph) ByCategory(category string) []string {
	var out []string
	for _, name := range g.names {
		if strings.EqualFold(g.courses[name].Category, category) {
			out = append(out, name)
		}
	}
	return out
}

// PrereqDepth returns the longest transitive prerequisite chain below the
// course, or 0 for unknown identifiers.
func (g *Graph) PrereqDepth(name string) int {
	return g.depth[name]
}

// MaxTimeHours returns the largest time_hours value in the catalog.
func (g *Graph) MaxTimeHours() float64 {
	return g.maxTime
}

// Diameter returns the longest prerequisite chain in the graph, at least 1.
func (g *Graph) Diameter() int {
	return g.diameter
}

// NewSet builds a membership set from a list of identifiers.
func NewSet(names []string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}
