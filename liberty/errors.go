// Package liberty implements a minimal recursive-descent parser for
// the Liberty standard-cell characterization format, producing the
// library.Library data model of spec.md §3.1.
//
// Only the subset spec.md §4.1/§4.2 needs is parsed: cell/pin groups,
// direction/capacitance/clock simple attributes, and timing groups
// carrying related_pin/timing_sense/timing_type plus the six
// characterized lookup-table groups (cell_rise, cell_fall,
// rise_transition, fall_transition, rise_constraint, fall_constraint).
// Anything else in a real Liberty file (operating conditions, leakage
// power, wire-load models) is read as opaque attributes and ignored.
//
// Errors:
//
//	ErrSyntax            - the token stream did not match the grammar.
//	ErrMissingAttribute  - a required group attribute was absent.
package liberty

import "errors"

var (
	// ErrSyntax indicates malformed Liberty source: an unexpected
	// token, unmatched brace, or unterminated string.
	ErrSyntax = errors.New("liberty: syntax error")

	// ErrMissingAttribute indicates a cell, pin, or timing group is
	// missing an attribute the data model requires (e.g. a pin with
	// no direction, or a table group with no index_1).
	ErrMissingAttribute = errors.New("liberty: missing required attribute")
)
