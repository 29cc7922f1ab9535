package lut

import "fmt"

// tableErrorf wraps an underlying error with Table method context, in
// the same style as matrix.Dense's denseErrorf.
func tableErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Table.%s(%d,%d): %w", method, i, j, err)
}

// Table is a 2-D axis-indexed table of float64 values: index_1 (rows)
// and index_2 (columns), both strictly increasing and non-empty, and
// a values grid of shape (len(Index1), len(Index2)) stored as a flat
// row-major slice.
//
// A Table with a single-element axis is a valid, degenerate 1-D table;
// Interpolate collapses to linear interpolation on the remaining axis.
// A Table with both axes single-element collapses to a constant.
type Table struct {
	index1 []float64 // row axis: input transition time, or related-pin transition
	index2 []float64 // column axis: output load capacitance, or constrained-pin transition
	values []float64 // flat r*c grid, row-major
}

// NewTable builds a Table from the given axes and row-major values.
//
// Stage 1 (Validate): both axes non-empty and strictly increasing;
// Stage 2 (Validate): len(values) == len(index1)*len(index2);
// Stage 3 (Finalize): copy inputs so later caller mutation cannot
// corrupt the table (tables are shared read-only across workers).
func NewTable(index1, index2, values []float64) (*Table, error) {
	if len(index1) == 0 || len(index2) == 0 {
		return nil, fmt.Errorf("%w: empty axis", ErrInvalidTable)
	}
	if !strictlyIncreasing(index1) {
		return nil, fmt.Errorf("%w: index_1 not strictly increasing", ErrInvalidTable)
	}
	if !strictlyIncreasing(index2) {
		return nil, fmt.Errorf("%w: index_2 not strictly increasing", ErrInvalidTable)
	}
	if len(values) != len(index1)*len(index2) {
		return nil, fmt.Errorf("%w: values has %d entries, want %d", ErrInvalidTable, len(values), len(index1)*len(index2))
	}

	i1 := make([]float64, len(index1))
	copy(i1, index1)
	i2 := make([]float64, len(index2))
	copy(i2, index2)
	vals := make([]float64, len(values))
	copy(vals, values)

	return &Table{index1: i1, index2: i2, values: vals}, nil
}

func strictlyIncreasing(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return false
		}
	}
	return true
}

// Rows returns the number of index_1 samples.
func (t *Table) Rows() int { return len(t.index1) }

// Cols returns the number of index_2 samples.
func (t *Table) Cols() int { return len(t.index2) }

// Index1 returns a copy of the row axis (input transition / related-pin transition).
func (t *Table) Index1() []float64 {
	out := make([]float64, len(t.index1))
	copy(out, t.index1)
	return out
}

// Index2 returns a copy of the column axis (output load / constrained-pin transition).
func (t *Table) Index2() []float64 {
	out := make([]float64, len(t.index2))
	copy(out, t.index2)
	return out
}

// At returns the raw grid value at (row, col), with no interpolation.
func (t *Table) At(row, col int) (float64, error) {
	if row < 0 || row >= len(t.index1) || col < 0 || col >= len(t.index2) {
		return 0, tableErrorf("At", row, col, ErrIndexOutOfBounds)
	}
	return t.values[row*len(t.index2)+col], nil
}
