// SPDX-License-Identifier: MIT

package longestpath

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nooverlap/precedence"
	"github.com/katalvlaran/nooverlap/topo"
)

var (
	// ErrNilGraph indicates that a nil *precedence.Graph was passed in.
	ErrNilGraph = errors.New("longestpath: graph is nil")

	// ErrOrderMismatch indicates an order that is not a topological
	// permutation of the graph's node ids.
	ErrOrderMismatch = errors.New("longestpath: order is not a topological order of the graph")
)

// Result is the optimal chain.
type Result struct {
	// Path holds 0-based item indices in chain order (earliest first).
	Path []int

	// Total is the summed weight of the items on Path.
	Total uint64
}

// Solve computes the heaviest chain of g.
// Errors from the topological sort (topo.ErrCycleDetected) are wrapped and
// returned; callers decide how to degrade.
func Solve(g *precedence.Graph) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}

	switch g.Items() {
	case 0:
		return Result{Path: []int{}}, nil
	case 1:
		// a lone interval never conflicts with anything
		return Result{Path: []int{0}, Total: uint64(g.Node(1).Weight)}, nil
	}

	order, err := topo.Sort(g.Len(), g.Predecessors)
	if err != nil {
		return Result{}, fmt.Errorf("longestpath: %w", err)
	}

	return Along(g, order)
}

// Along runs the DP over a caller-supplied topological order and rebuilds
// the path. The order is validated on the fly: every id 0..Len()-1 must
// appear exactly once, after all of its predecessors.
// Solver scratch fields in g are overwritten.
func Along(g *precedence.Graph, order []int) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if len(order) != g.Len() {
		return Result{}, fmt.Errorf("%w: %d ids for %d nodes", ErrOrderMismatch, len(order), g.Len())
	}

	g.Reset()
	done := make([]bool, g.Len())
	for _, v := range order {
		if v < 0 || v >= g.Len() || done[v] {
			return Result{}, fmt.Errorf("%w: unexpected id %d", ErrOrderMismatch, v)
		}
		if err := relax(g, v, done); err != nil {
			return Result{}, err
		}
		done[v] = true
	}

	return reconstruct(g), nil
}

// relax finalizes node v from its already-final predecessors.
func relax(g *precedence.Graph, v int, done []bool) error {
	node := g.Node(v)
	if v == precedence.Source {
		node.Distance = 0
		node.Via = precedence.NoNode

		return nil
	}

	best := precedence.NoNode
	var bestDist uint64
	for _, p := range node.Predecessors {
		if !done[p] {
			return fmt.Errorf("%w: node %d visited before predecessor %d", ErrOrderMismatch, v, p)
		}
		d := g.Node(p).Distance
		if best == precedence.NoNode || d > bestDist || (d == bestDist && p < best) {
			best, bestDist = p, d
		}
	}

	node.Distance = bestDist + uint64(node.Weight)
	node.Via = best

	return nil
}

// reconstruct walks Via links from the sink and returns the item chain.
func reconstruct(g *precedence.Graph) Result {
	path := make([]int, 0, g.Items())
	for id := g.Node(g.Sink()).Via; id != precedence.NoNode && id != precedence.Source; id = g.Node(id).Via {
		path = append(path, precedence.ItemIndex(id))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result{Path: path, Total: g.Node(g.Sink()).Distance}
}
