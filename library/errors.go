// Package library implements the standard-cell timing data model: Cell,
// Pin, TimingArc, and the closed enumerations TimingType, TimingSense,
// and TableKind, plus a Library that indexes cells by name for the
// lookups the delay engine needs.
//
// Errors:
//
//	ErrDuplicateCell - a cell name was added twice to the same Library.
//	ErrCellNotFound   - GetCell/GetPin/GetArc referenced an unknown cell.
//	ErrPinNotFound    - GetPin/PinCapacitance referenced an unknown pin.
//	ErrArcNotFound    - GetArc found no arc matching the given selector.
//	ErrLibraryFrozen  - a mutating call was made after Freeze.
package library

import "errors"

var (
	// ErrDuplicateCell indicates AddCell was called twice with the same name.
	ErrDuplicateCell = errors.New("library: duplicate cell")

	// ErrCellNotFound indicates a reference to a cell absent from the Library.
	ErrCellNotFound = errors.New("library: cell not found")

	// ErrPinNotFound indicates a reference to a pin absent from its cell.
	ErrPinNotFound = errors.New("library: pin not found")

	// ErrArcNotFound indicates no timing arc matched the requested selector.
	ErrArcNotFound = errors.New("library: arc not found")

	// ErrLibraryFrozen indicates a builder method was called after Freeze.
	ErrLibraryFrozen = errors.New("library: library is frozen")
)
