// Package sta is the single orchestrator that wires gosta's front-ends
// (liberty, verilog, sdc, classify) into the core pipeline
// (netlist -> pathenum -> delay -> report) and produces a complete run
// result: one text report block per path plus the CSV summary rows,
// per spec.md §6.
//
// Run mirrors the teacher's BuildGraph(gopts, bopts, cons...) shape: it
// validates inputs, applies each construction stage in order, and
// wraps every stage's error with the stage name.
//
// Errors:
//
//	ErrInputNotFound - a required input path does not exist.
package sta

import "errors"

// ErrInputNotFound indicates a required input file does not exist,
// per spec.md §7's InputNotFound error kind.
var ErrInputNotFound = errors.New("sta: input not found")
