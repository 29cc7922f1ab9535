package netlist

import (
	"fmt"

	"github.com/katalvlaran/gosta/library"
)

// PortBinding binds one pin of an instance to a net name.
type PortBinding struct {
	Pin string
	Net string
}

// InstanceDecl is one module instance from the structural netlist
// front-end: its name, the library cell it instantiates, and its port
// bindings in declaration order.
type InstanceDecl struct {
	Name     string
	CellName string
	Ports    []PortBinding
}

// BuildInput is the structural description Build consumes: the
// front-end's instance list plus the design's primary input and
// output net names.
type BuildInput struct {
	Instances      []InstanceDecl
	PrimaryInputs  []string
	PrimaryOutputs []string
}

// netBinding is one pin reference to a net, resolved to its node and
// pin direction.
type netBinding struct {
	node      NodeID
	pin       string
	direction library.Direction
}

// Build constructs a Graph per spec.md §4.3:
//
//  1. every primary input net gets a primary_input node; every
//     instance pin bound to it gets an edge from that node labeled
//     with the receiver pin, except a DirectionClock pin, which gets
//     no edge at all (see note below);
//  2. every primary output net gets a primary_output node; its driver
//     (the instance with an output-direction pin on that net, if any)
//     gets an unlabeled edge to the output node;
//  3. every other net's single output-direction pin drives an edge,
//     labeled with the receiver pin, to every input-direction pin
//     bound to the same net.
//
// A net's DirectionClock receivers never get an edge: clock
// distribution is represented as a single ideal network-delay
// constant in the reporter (spec.md §4.6), not propagated node to
// node, so wiring it into the data graph would only hand the path
// enumerator spurious IR startpoints with no constraint arc to check.
//
// Returns ErrUnresolvedCell / ErrUnresolvedPin for netlist references
// the Library cannot resolve, or ErrMultipleDrivers for a net bound
// to more than one output-direction pin. The returned Graph is frozen
// (its FanoutIndex is already built).
func Build(lib *library.Library, in BuildInput) (*Graph, error) {
	g := newGraph()

	isPrimaryInput := make(map[string]bool, len(in.PrimaryInputs))
	for _, net := range in.PrimaryInputs {
		isPrimaryInput[net] = true
	}
	isPrimaryOutput := make(map[string]bool, len(in.PrimaryOutputs))
	for _, net := range in.PrimaryOutputs {
		isPrimaryOutput[net] = true
	}

	// Stage 1: resolve and create instance nodes, in declaration order.
	instanceID := make(map[string]NodeID, len(in.Instances))
	for _, inst := range in.Instances {
		cell, err := lib.GetCell(inst.CellName)
		if err != nil {
			return nil, fmt.Errorf("netlist.Build: instance %q: %w", inst.Name, ErrUnresolvedCell)
		}
		for _, pb := range inst.Ports {
			if _, ok := cell.Pins[pb.Pin]; !ok {
				return nil, fmt.Errorf("netlist.Build: instance %q pin %q: %w", inst.Name, pb.Pin, ErrUnresolvedPin)
			}
		}
		instanceID[inst.Name] = g.addNode(Instance, inst.Name, inst.CellName)
	}

	// Stage 2: create primary port nodes, in the order each list was given.
	inputNodeID := make(map[string]NodeID, len(in.PrimaryInputs))
	for _, net := range in.PrimaryInputs {
		inputNodeID[net] = g.addNode(PrimaryInput, net, "")
	}
	outputNodeID := make(map[string]NodeID, len(in.PrimaryOutputs))
	for _, net := range in.PrimaryOutputs {
		outputNodeID[net] = g.addNode(PrimaryOutput, net, "")
	}

	// Stage 3: gather bindings per net, preserving first-seen net order
	// so edge emission is deterministic for identical input.
	netOrder := make([]string, 0, len(in.Instances)*2)
	netBindings := make(map[string][]netBinding)
	for _, inst := range in.Instances {
		cell, _ := lib.GetCell(inst.CellName)
		nodeID := instanceID[inst.Name]
		for _, pb := range inst.Ports {
			pin := cell.Pins[pb.Pin]
			if _, seen := netBindings[pb.Net]; !seen {
				netOrder = append(netOrder, pb.Net)
			}
			netBindings[pb.Net] = append(netBindings[pb.Net], netBinding{node: nodeID, pin: pb.Pin, direction: pin.Direction})
		}
	}
	// Nets that are primary ports but bind to no instance pin still need
	// their place in netOrder so the loop below visits them.
	for _, net := range in.PrimaryInputs {
		if _, seen := netBindings[net]; !seen {
			netOrder = append(netOrder, net)
			netBindings[net] = nil
		}
	}
	for _, net := range in.PrimaryOutputs {
		if _, seen := netBindings[net]; !seen {
			netOrder = append(netOrder, net)
			netBindings[net] = nil
		}
	}

	// Stage 4: for each net, resolve its driver and wire receivers.
	for _, net := range netOrder {
		bindings := netBindings[net]

		var outputs []netBinding
		var receivers []netBinding
		for _, b := range bindings {
			switch b.direction {
			case library.DirectionOutput:
				outputs = append(outputs, b)
			case library.DirectionClock:
				// Clock distribution is not part of the data graph: the
				// report's clock-network delay is a single configured
				// constant (spec.md §4.6), not something propagated
				// instance-to-instance, so a clock pin never becomes a
				// path-enumeration receiver.
			default:
				receivers = append(receivers, b)
			}
		}
		if len(outputs) > 1 {
			return nil, fmt.Errorf("netlist.Build: net %q: %w", net, ErrMultipleDrivers)
		}

		var driver NodeID
		hasDriver := false
		switch {
		case isPrimaryInput[net]:
			driver, hasDriver = inputNodeID[net], true
		case len(outputs) == 1:
			driver, hasDriver = outputs[0].node, true
		}

		if hasDriver {
			for _, r := range receivers {
				if err := g.addEdge(driver, r.node, r.pin); err != nil {
					return nil, err
				}
			}
		}

		if isPrimaryOutput[net] && hasDriver {
			if err := g.addEdge(driver, outputNodeID[net], ""); err != nil {
				return nil, err
			}
		}
	}

	g.Freeze()

	return g, nil
}
