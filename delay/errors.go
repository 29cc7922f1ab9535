// Package delay implements gosta's DelayEngine: combinational stage
// delay, clock-to-Q delay, and setup/hold constraint time, each
// resolved by 2-D table interpolation over a library.Library, plus the
// per-path delay map and the worker pool that computes it across many
// paths concurrently.
//
// Per spec.md §7, the delay engine performs no local recovery: a
// missing arc or table fails the run rather than being skipped. Only
// the path enumerator (package pathenum) recovers locally.
package delay

import "errors"

// ErrInvalidInput is returned when a negative transition time or load
// capacitance is supplied to a stage computation.
var ErrInvalidInput = errors.New("delay: invalid input")

// ErrNoOutputPin is returned when a clock-to-Q lookup exhausts every
// configured candidate output-pin name without finding one that exists
// on the cell and carries an arc related to its clock pin.
var ErrNoOutputPin = errors.New("delay: no matching output pin")
