// Package lut provides a 2-D indexed lookup table and the bilinear
// interpolation used throughout gosta's delay model (NLDM-style
// characterization tables: input transition time × output load
// capacitance, or related-pin transition × constrained-pin transition
// for constraint tables).
//
// This file declares the package's sentinel errors. Every algorithm
// in this package returns one of these rather than panicking; tests
// branch on them with errors.Is.
package lut

import "errors"

// ErrInvalidTable is returned when a Table is constructed with an
// empty axis, a shape mismatch between the axes and the value grid,
// or a non-increasing axis.
var ErrInvalidTable = errors.New("lut: invalid table")

// ErrIndexOutOfBounds is returned by At when a row or column index is
// outside the table's bounds.
var ErrIndexOutOfBounds = errors.New("lut: index out of bounds")
