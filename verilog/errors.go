// Package verilog implements the structural-netlist front-end of
// spec.md §6: Preprocess normalizes raw Verilog source (bit-selects,
// hierarchical dots, escaped identifiers), and Parse reads a single
// gate-level module into the instance/port-binding/primary-I/O shape
// netlist.Build consumes.
//
// Only named port connections (.PIN(net)) are supported; gosta's
// pipeline never needs positional instantiation, and named bindings
// are what every synthesis tool emits for gate-level netlists.
//
// Errors:
//
//	ErrNoModule         - the source has no module declaration.
//	ErrMalformedInstance - an instance statement could not be parsed.
package verilog

import "errors"

var (
	// ErrNoModule indicates the source has no "module ... ;" header.
	ErrNoModule = errors.New("verilog: no module declaration found")

	// ErrMalformedInstance indicates an instance statement did not
	// match the "CellName instName (.pin(net), ...);" shape.
	ErrMalformedInstance = errors.New("verilog: malformed instance statement")
)
