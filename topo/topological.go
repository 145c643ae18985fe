// SPDX-License-Identifier: MIT

package topo

import (
	"container/heap"
	"errors"
	"fmt"
)

var (
	// ErrCycleDetected indicates that not every node could be ordered
	// because the predecessor relation is cyclic.
	ErrCycleDetected = errors.New("topo: cycle detected")

	// ErrNodeOutOfRange indicates a predecessor id outside 0..n-1.
	ErrNodeOutOfRange = errors.New("topo: predecessor id out of range")
)

// Sort orders node ids 0..n-1 so that every id follows its predecessors.
// preds(id) must return the ids that id depends on; it is called once per id.
//
// Returns:
//
//   - order: the topological order (empty, non-nil slice for n == 0).
//   - err:   ErrNodeOutOfRange or ErrCycleDetected, wrapped with context.
func Sort(n int, preds func(id int) []int) ([]int, error) {
	// 1) In-degrees and successor lists from the predecessor view
	inDegree := make([]int, n)
	successors := make([][]int, n)
	for v := 0; v < n; v++ {
		for _, p := range preds(v) {
			if p < 0 || p >= n {
				return nil, fmt.Errorf("%w: node %d lists %d (n=%d)", ErrNodeOutOfRange, v, p, n)
			}
			inDegree[v]++
			successors[p] = append(successors[p], v)
		}
	}

	// 2) Seed the ready queue with every root
	ready := make(idHeap, 0, n)
	for v := 0; v < n; v++ {
		if inDegree[v] == 0 {
			ready = append(ready, v)
		}
	}
	heap.Init(&ready)

	// 3) Pop lowest ready id, release its successors
	order := make([]int, 0, n)
	for ready.Len() > 0 {
		v := heap.Pop(&ready).(int)
		order = append(order, v)
		for _, s := range successors[v] {
			inDegree[s]--
			if inDegree[s] == 0 {
				heap.Push(&ready, s)
			}
		}
	}

	// 4) Anything left has an in-degree stuck above zero: a cycle
	if len(order) != n {
		return nil, fmt.Errorf("%w: %d of %d nodes ordered", ErrCycleDetected, len(order), n)
	}

	return order, nil
}

// idHeap is a min-heap of node ids.
type idHeap []int

func (h idHeap) Len() int           { return len(h) }
func (h idHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h idHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *idHeap) Push(x interface{}) { *h = append(*h, x.(int)) }

func (h *idHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]

	return v
}
