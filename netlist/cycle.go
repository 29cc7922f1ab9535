package netlist

// White/Gray/Black track per-node DFS state: unvisited, on the current
// recursion stack, and fully explored, the same three-color scheme
// used by the teacher's dfs.DetectCycles.
const (
	white = 0
	gray  = 1
	black = 2
)

// CheckAcyclic verifies the graph has no combinational cycle, per
// spec.md §3.2's invariant that the graph has no cycle between
// sequential endpoints (latches are not modeled). Unlike a general
// cycle enumerator, this only needs a yes/no answer and the first
// offending cycle for diagnostics, so it stops at the first back edge
// found rather than collecting every simple cycle in the graph.
func (g *Graph) CheckAcyclic() (bool, []NodeID) {
	state := make([]int, len(g.nodes))
	var stack []NodeID

	var visit func(NodeID) []NodeID
	visit = func(id NodeID) []NodeID {
		state[id] = gray
		stack = append(stack, id)

		for _, succ := range g.Successors(id) {
			switch state[succ.Successor] {
			case white:
				if cyc := visit(succ.Successor); cyc != nil {
					return cyc
				}
			case gray:
				return cycleFrom(stack, succ.Successor)
			case black:
				// already fully explored, no cycle through here
			}
		}

		stack = stack[:len(stack)-1]
		state[id] = black

		return nil
	}

	for id := range g.nodes {
		if state[id] == white {
			if cyc := visit(NodeID(id)); cyc != nil {
				return false, cyc
			}
		}
	}

	return true, nil
}

// cycleFrom extracts the cycle suffix of stack starting at target.
func cycleFrom(stack []NodeID, target NodeID) []NodeID {
	for i, id := range stack {
		if id == target {
			cyc := make([]NodeID, len(stack)-i)
			copy(cyc, stack[i:])
			return cyc
		}
	}

	return stack
}
