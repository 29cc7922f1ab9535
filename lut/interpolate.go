package lut

// Interpolate evaluates the table at (x, y) using the 2-D bilinear
// interpolation formula standard for STA NLDM tables (Stage 2:
// bracket each axis; Stage 3: weight the four corners).
//
// Axis values outside the table's range are extrapolated using the
// same linear form with the nearest bracketing pair and weights
// allowed to fall outside [0,1] — this matches common STA practice
// and is documented rather than clamped (see spec design notes).
//
// Degenerate tables (a single sample on one or both axes) collapse to
// 1-D linear interpolation, or to the single stored value.
func (t *Table) Interpolate(x, y float64) (float64, error) {
	rows, cols := len(t.index1), len(t.index2)

	switch {
	case rows == 1 && cols == 1:
		// Both axes degenerate: the table holds exactly one value.
		return t.values[0], nil
	case rows == 1:
		// Collapse to 1-D interpolation along index_2.
		return interp1D(t.index2, t.values, y)
	case cols == 1:
		// Collapse to 1-D interpolation along index_1.
		return interp1D(t.index1, t.values, x)
	default:
		return t.bilinear(x, y)
	}
}

// bilinear performs the full 2-D interpolation over the four corners
// bracketing (x, y).
//
// Stage 1 (bracket): locate the two index_1 rows (r1,r2) and two
// index_2 columns (c1,c2) nearest the target on each axis.
// Stage 2 (weight): alpha/beta are the fractional position of the
// target between the bracketing pair; may fall outside [0,1] when
// extrapolating.
// Stage 3 (combine): weighted sum of the four corner values.
func (t *Table) bilinear(x, y float64) (float64, error) {
	r1, r2 := bracket(t.index1, x)
	c1, c2 := bracket(t.index2, y)

	x1, x2 := t.index1[r1], t.index1[r2]
	y1, y2 := t.index2[c1], t.index2[c2]

	alpha := (x - x1) / (x2 - x1)
	beta := (y - y1) / (y2 - y1)

	t11, err := t.At(r1, c1)
	if err != nil {
		return 0, err
	}
	t12, err := t.At(r1, c2)
	if err != nil {
		return 0, err
	}
	t21, err := t.At(r2, c1)
	if err != nil {
		return 0, err
	}
	t22, err := t.At(r2, c2)
	if err != nil {
		return 0, err
	}

	value := (1-alpha)*(1-beta)*t11 +
		(1-alpha)*beta*t12 +
		alpha*(1-beta)*t21 +
		alpha*beta*t22

	return value, nil
}

// interp1D performs linear interpolation (or extrapolation) of vals
// indexed by axis, at target.
func interp1D(axis, vals []float64, target float64) (float64, error) {
	if len(axis) == 1 {
		return vals[0], nil
	}

	i1, i2 := bracket(axis, target)
	x1, x2 := axis[i1], axis[i2]
	v1, v2 := vals[i1], vals[i2]

	alpha := (target - x1) / (x2 - x1)

	return v1 + alpha*(v2-v1), nil
}

// bracket returns the pair of adjacent indices into axis that bracket
// target: the two nearest samples if target falls outside the axis's
// range (extrapolation), or the enclosing pair otherwise. axis is
// assumed strictly increasing and non-empty.
func bracket(axis []float64, target float64) (lo, hi int) {
	n := len(axis)
	if n == 1 {
		return 0, 0
	}
	if target <= axis[0] {
		return 0, 1
	}
	if target >= axis[n-1] {
		return n - 2, n - 1
	}
	for i := 0; i < n-1; i++ {
		if axis[i] <= target && target <= axis[i+1] {
			return i, i + 1
		}
	}
	return n - 2, n - 1
}
