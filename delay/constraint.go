package delay

import (
	"fmt"

	"github.com/katalvlaran/gosta/library"
)

// Constraint computes a sequential setup/hold constraint time, per
// spec.md §4.5.4: select the constraint arc on the input pin whose
// checking kind matches, then interpolate the rise_constraint or
// fall_constraint table (chosen by the arc's own edge) using
// (τ_related, τ_constrained) as axes.
func Constraint(lib *library.Library, cell, inputPin, relatedPin string, kind CheckKind, tauRelated, tauConstrained float64) (float64, error) {
	if tauRelated < 0 || tauConstrained < 0 {
		return 0, fmt.Errorf("delay: Constraint(cell=%q,pin=%q): %w", cell, inputPin, ErrInvalidInput)
	}

	arcKind := library.ArcSetup
	if kind == CheckHold {
		arcKind = library.ArcHold
	}

	arc, err := lib.GetArc(cell, inputPin, relatedPin, arcKind)
	if err != nil {
		return 0, fmt.Errorf("delay: Constraint(cell=%q,pin=%q): %w", cell, inputPin, err)
	}

	tableKind := library.RiseConstraint
	if arc.TimingType == library.SetupFalling || arc.TimingType == library.HoldFalling {
		tableKind = library.FallConstraint
	}

	table, ok := arc.Table(tableKind)
	if !ok {
		return 0, fmt.Errorf("delay: Constraint(cell=%q,pin=%q): %w", cell, inputPin, library.ErrArcNotFound)
	}

	value, err := table.Interpolate(tauRelated, tauConstrained)
	if err != nil {
		return 0, fmt.Errorf("delay: Constraint(cell=%q,pin=%q): %w", cell, inputPin, err)
	}

	return round6(value), nil
}
