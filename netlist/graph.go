package netlist

import "fmt"

// Graph is a directed graph of Nodes and pin-labeled Edges, built once
// by Build and read-only afterward. Per spec.md §5, a frozen Graph is
// safe to share by reference across delay-computation workers without
// locking.
type Graph struct {
	nodes   []Node
	outEdge map[NodeID][]edge
	fanout  map[NodeID][]FanoutEntry
	frozen  bool
}

// newGraph returns an empty, mutable Graph.
func newGraph() *Graph {
	return &Graph{
		outEdge: make(map[NodeID][]edge),
	}
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Node returns the node at id. Callers that built the graph via Build
// only ever see valid IDs, so this indexes directly rather than
// returning an error.
func (g *Graph) Node(id NodeID) Node {
	return g.nodes[id]
}

// Successors returns the outgoing edges of id as (NodeID, receiver
// pin) pairs, in the deterministic order they were added during Build.
func (g *Graph) Successors(id NodeID) []FanoutEntry {
	return g.fanout[id]
}

// Freeze finalizes the graph: it computes the FanoutIndex (spec.md
// §4.3) once and marks the graph immutable. Build always calls Freeze
// before returning; it is exported so adapters that build a Graph
// incrementally outside Build can finalize explicitly.
func (g *Graph) Freeze() {
	if g.frozen {
		return
	}
	g.fanout = make(map[NodeID][]FanoutEntry, len(g.nodes))
	for id := range g.nodes {
		nid := NodeID(id)
		for _, e := range g.outEdge[nid] {
			g.fanout[nid] = append(g.fanout[nid], FanoutEntry{Successor: e.To, ReceiverPin: e.ReceiverPin})
		}
	}
	g.frozen = true
}

// addNode appends a new node and returns its ID.
func (g *Graph) addNode(kind NodeKind, name, cell string) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{ID: id, Kind: kind, Name: name, Cell: cell})

	return id
}

// addEdge records a directed edge from→to labeled with receiverPin.
func (g *Graph) addEdge(from, to NodeID, receiverPin string) error {
	if g.frozen {
		return fmt.Errorf("addEdge(%d,%d): %w", from, to, ErrGraphFrozen)
	}
	g.outEdge[from] = append(g.outEdge[from], edge{From: from, To: to, ReceiverPin: receiverPin})

	return nil
}
