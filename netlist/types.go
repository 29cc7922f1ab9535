package netlist

// NodeKind is the closed set of roles a Node plays in the netlist.
type NodeKind int

const (
	// PrimaryInput is a top-level input port of the design.
	PrimaryInput NodeKind = iota
	// PrimaryOutput is a top-level output port of the design.
	PrimaryOutput
	// Instance is a library cell instance.
	Instance
)

// String renders a NodeKind for logs and reports.
func (k NodeKind) String() string {
	switch k {
	case PrimaryInput:
		return "primary_input"
	case PrimaryOutput:
		return "primary_output"
	case Instance:
		return "instance"
	default:
		return "unknown"
	}
}

// NodeID indexes into a Graph's node slice. The zero value is a valid
// ID (node 0); callers that need an explicit "no node" sentinel use a
// separate bool or a pointer, never a magic NodeID value.
type NodeID int

// Node is either a primary port (Kind is PrimaryInput/PrimaryOutput,
// Name is the port's net name) or a cell instance (Kind is Instance,
// Name is the instance name, Cell is the referenced library cell name).
type Node struct {
	ID   NodeID
	Kind NodeKind
	Name string
	Cell string // library cell name; empty for primary ports
}

// edge is the Graph's internal directed-edge record.
type edge struct {
	From        NodeID
	To          NodeID
	ReceiverPin string // input pin on To; empty when To is a primary output
}

// Path is a finite sequence of node IDs from a startpoint to an
// endpoint. Two paths are equal iff their NodeID sequences are equal,
// which is the cheap equality spec.md's design notes call for.
type Path []NodeID

// PathAttributes parallels a Path of length k+1 with k entries: for
// each consecutive pair (path[i], path[i+1]), the receiver-pin label
// on that edge (empty when the receiver is a primary output).
type PathAttributes []string

// FanoutEntry is one successor of a driver node: the successor's
// NodeID and the receiver pin name on that edge (empty for a primary
// output successor).
type FanoutEntry struct {
	Successor   NodeID
	ReceiverPin string
}
