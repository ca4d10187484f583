// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

package pathfind

import "container/heap"

// searchNode is one frontier entry. dist is the accumulated path cost,
// prio adds the heuristic under A*, and difficulty breaks cost ties before
// the final lexicographic tie-break on the name.
type searchNode struct {
	name       string
	dist       float64
	prio       float64
	difficulty int
}

// nodeHeap orders the frontier by (prio, difficulty, name) so that equal
// searches always pop in the same order.
type nodeHeap []searchNode

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].prio != h[j].prio {
		return h[i].prio < h[j].prio
	}
	if h[i].difficulty != h[j].difficulty {
		return h[i].difficulty < h[j].difficulty
	}
	return h[i].name < h[j].name
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(searchNode)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func (h *nodeHeap) push(n searchNode) { heap.Push(h, n) }

func (h *nodeHeap) pop() searchNode { return heap.Pop(h).(searchNode) }
