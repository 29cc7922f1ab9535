// Package pathenum enumerates the timing paths of a netlist.Graph:
// reg-reg (RR), in-reg (IR), and reg-out (RO) paths, by bounded BFS
// from each class's startpoints, per spec.md §4.4.
//
// The walker here generalizes the teacher's bfs.walker (single-source
// shortest-distance BFS) to multi-source bounded path enumeration: the
// frontier carries the path travelled so far rather than just a
// parent pointer, and a neighbor matching the endpoint pattern
// terminates that branch instead of being queued for further
// expansion.
package pathenum

import "github.com/katalvlaran/gosta/netlist"

// Class identifies one of the three timing path classes spec.md §4.4
// defines.
type Class int

const (
	// RR is a reg-reg path: sequential output to sequential input.
	RR Class = iota
	// IR is an in-reg path: primary input to sequential input.
	IR
	// RO is a reg-out path: sequential output to primary output.
	RO
)

// String renders a Class for logs and reports.
func (c Class) String() string {
	switch c {
	case RR:
		return "RR"
	case IR:
		return "IR"
	case RO:
		return "RO"
	default:
		return "unknown"
	}
}

// Result is one enumerated path together with its class and
// PathAttributes (the receiver-pin label for each stage).
type Result struct {
	Class      Class
	Path       netlist.Path
	Attributes netlist.PathAttributes
}
