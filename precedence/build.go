// SPDX-License-Identifier: MIT

package precedence

import "github.com/katalvlaran/nooverlap/order"

// Build constructs the precedence DAG for items.
//
// Steps:
//  1. Slot 0 is the source: weight 0, no predecessors.
//  2. For every item i, evaluate items[j].Compare(items[i]) for all j ≠ i and
//     link j+1 → i+1 exactly when the result is Before. The source is always
//     linked first. Scanning j ascending keeps the slice sorted for free.
//  3. Slot n+1 is the sink: predecessors 1..n, unfiltered.
//
// Build never fails: Incomparable and After pairs simply add no edge.
// An empty input yields the two sentinels and no edges.
//
// Complexity: O(n²) comparisons.
func Build[T order.Item[T]](items []T) *Graph {
	n := len(items)
	g := &Graph{
		nodes: make([]Node, n+2),
		items: n,
	}

	// 1) source
	g.nodes[Source] = Node{Via: NoNode}

	// 2) one node per item
	for i := 0; i < n; i++ {
		preds := []int{Source}
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			if items[j].Compare(items[i]) == order.Before {
				preds = append(preds, NodeID(j))
			}
		}
		g.nodes[NodeID(i)] = Node{
			Weight:       items[i].Weight(),
			Predecessors: preds,
			Via:          NoNode,
		}
	}

	// 3) sink collects every item node
	sinkPreds := make([]int, n)
	for i := range sinkPreds {
		sinkPreds[i] = NodeID(i)
	}
	g.nodes[g.Sink()] = Node{Predecessors: sinkPreds, Via: NoNode}

	return g
}
