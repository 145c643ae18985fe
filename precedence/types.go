// SPDX-License-Identifier: MIT

package precedence

// Source is the node id of the virtual source in every Graph.
const Source = 0

// NoNode marks an unset backpointer.
const NoNode = -1

// Node is one arena slot. Distance and Via are scratch fields filled in by
// the longest-path solver; Build leaves them at 0 and NoNode.
type Node struct {
	// Weight is the item weight (0 for source and sink).
	Weight uint32

	// Predecessors lists the ids this node depends on, strictly ascending.
	Predecessors []int

	// Distance is the best accumulated weight of any source→node path.
	Distance uint64

	// Via is the predecessor on the best path, or NoNode.
	Via int
}

// Graph owns the node arena for one query.
type Graph struct {
	nodes []Node
	items int
}

// Len returns the number of nodes including both sentinels (n+2).
func (g *Graph) Len() int { return len(g.nodes) }

// Items returns the number of item nodes (n).
func (g *Graph) Items() int { return g.items }

// Sink returns the id of the virtual sink (n+1).
func (g *Graph) Sink() int { return g.items + 1 }

// Node returns the node with the given id. Out-of-range ids panic like any
// slice index; callers iterate 0..Len()-1.
func (g *Graph) Node(id int) *Node { return &g.nodes[id] }

// Predecessors returns the ascending predecessor ids of node id.
// The slice is owned by the graph and must not be modified.
func (g *Graph) Predecessors(id int) []int { return g.nodes[id].Predecessors }

// IsSentinel reports whether id is the source or the sink.
func (g *Graph) IsSentinel(id int) bool {
	return id == Source || id == g.Sink()
}

// Edges returns the total number of predecessor links, sink links included.
func (g *Graph) Edges() int {
	total := 0
	for i := range g.nodes {
		total += len(g.nodes[i].Predecessors)
	}

	return total
}

// Reset clears the solver scratch fields so the graph can be solved again.
func (g *Graph) Reset() {
	for i := range g.nodes {
		g.nodes[i].Distance = 0
		g.nodes[i].Via = NoNode
	}
}

// ItemIndex maps an item node id back to its 0-based item index.
func ItemIndex(id int) int { return id - 1 }

// NodeID maps a 0-based item index to its node id.
func NodeID(index int) int { return index + 1 }
