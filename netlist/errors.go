// Package netlist builds and queries the directed graph of instances
// and primary ports that the rest of gosta's pipeline walks: pin-
// annotated Edges between Nodes, plus a FanoutIndex for load lookups.
//
// Nodes are addressed by a flat integer NodeID into the Graph's own
// node slice rather than by pointer, per spec.md's design note on
// graph representation — this gives Path (a []NodeID) cheap equality
// and keeps the PathEnumerator's deduplication a plain map lookup.
//
// Errors:
//
//	ErrMultipleDrivers - a net has more than one output-direction pin.
//	ErrUnresolvedCell   - an instance references a cell absent from the Library.
//	ErrUnresolvedPin    - a port binding names a pin absent from its cell.
//	ErrCombinationalCycle - the built graph contains a cycle outside sequential boundaries.
//	ErrGraphFrozen      - a mutating call was made after Freeze.
package netlist

import "errors"

var (
	// ErrMultipleDrivers indicates a net was bound to more than one output-direction pin.
	ErrMultipleDrivers = errors.New("netlist: net has multiple drivers")

	// ErrUnresolvedCell indicates an instance names a cell absent from the Library.
	ErrUnresolvedCell = errors.New("netlist: unresolved cell")

	// ErrUnresolvedPin indicates a port binding names a pin absent from its cell.
	ErrUnresolvedPin = errors.New("netlist: unresolved pin")

	// ErrCombinationalCycle indicates the netlist contains a cycle that
	// does not pass through a sequential boundary (latches are not modeled).
	ErrCombinationalCycle = errors.New("netlist: combinational cycle detected")

	// ErrGraphFrozen indicates a builder method was called after Freeze.
	ErrGraphFrozen = errors.New("netlist: graph is frozen")
)
