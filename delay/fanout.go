package delay

import (
	"fmt"

	"github.com/katalvlaran/gosta/library"
	"github.com/katalvlaran/gosta/netlist"
)

// LoadAt sums pin_capacitance(successor_cell, receiver_pin) over every
// fanout successor of driver — not only the successor on the current
// path — per spec.md §4.5.1 and invariant 5 (fanout-load additivity).
// A successor that is a primary output contributes defaultOutputLoad
// instead of a pin lookup.
func LoadAt(lib *library.Library, g *netlist.Graph, driver netlist.NodeID, defaultOutputLoad float64) (float64, error) {
	var total float64
	for _, fe := range g.Successors(driver) {
		succ := g.Node(fe.Successor)
		if succ.Kind != netlist.Instance {
			total += defaultOutputLoad
			continue
		}

		c, err := lib.PinCapacitance(succ.Cell, fe.ReceiverPin)
		if err != nil {
			return 0, fmt.Errorf("delay: LoadAt(driver=%d): %w", driver, err)
		}
		total += c
	}

	return total, nil
}
