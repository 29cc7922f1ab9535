// Package sdc parses the constraints-file subset spec.md §6 requires:
// clock_transition, clock_uncertainty -setup/-hold, set_input_delay /
// set_output_delay, set_load, and set_timing_derate. Parsing is
// line-oriented regexp matching over the raw Tcl text, mirroring
// original_source/boltsta/readers/scd_reader.py's sdc_parser rather
// than a full Tcl evaluator — gosta consumes a small, fixed vocabulary
// of commands and never needs general Tcl control flow.
//
// Errors:
//
//	ErrMissingClockTransition - the file never set clock_transition.
package sdc

import "errors"

// ErrMissingClockTransition indicates the constraints file never
// specified a clock transition time, which the clock-to-Q computation
// at every sequential startpoint requires.
var ErrMissingClockTransition = errors.New("sdc: missing clock_transition")
