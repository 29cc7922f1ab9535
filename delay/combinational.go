package delay

import (
	"fmt"

	"github.com/katalvlaran/gosta/library"
)

// Combinational computes one combinational stage's delay, per spec.md
// §4.5.2 (Stage 1: look up the arc; Stage 2: apply unateness; Stage 3:
// interpolate the matching cell/transition table pair).
//
// relatedPin is the receiver pin the signal enters the cell on; it
// selects the arc via library.GetArc's (owning pin, related pin)
// addressing, where the owning pin is the cell's sole output, resolved
// via OutputPin.
func Combinational(lib *library.Library, cell, relatedPin string, tauIn float64, dIn library.Transition, load float64) (StageResult, error) {
	if tauIn < 0 || load < 0 {
		return StageResult{}, fmt.Errorf("delay: Combinational(cell=%q,related=%q): %w", cell, relatedPin, ErrInvalidInput)
	}

	outPin, err := lib.OutputPin(cell)
	if err != nil {
		return StageResult{}, fmt.Errorf("delay: Combinational(cell=%q): %w", cell, err)
	}

	arc, err := lib.GetArc(cell, outPin, relatedPin, library.ArcCombinational)
	if err != nil {
		return StageResult{}, fmt.Errorf("delay: Combinational(cell=%q,related=%q): %w", cell, relatedPin, err)
	}

	dOut := library.OutputTransition(dIn, arc.TimingSense)

	cellKind, transKind := library.CellRise, library.RiseTransition
	if dOut == library.Fall {
		cellKind, transKind = library.CellFall, library.FallTransition
	}

	cellTable, ok := arc.Table(cellKind)
	if !ok {
		return StageResult{}, fmt.Errorf("delay: Combinational(cell=%q,related=%q): %w", cell, relatedPin, library.ErrArcNotFound)
	}
	transTable, ok := arc.Table(transKind)
	if !ok {
		return StageResult{}, fmt.Errorf("delay: Combinational(cell=%q,related=%q): %w", cell, relatedPin, library.ErrArcNotFound)
	}

	cellDelay, err := cellTable.Interpolate(tauIn, load)
	if err != nil {
		return StageResult{}, fmt.Errorf("delay: Combinational(cell=%q,related=%q): %w", cell, relatedPin, err)
	}
	outTrans, err := transTable.Interpolate(tauIn, load)
	if err != nil {
		return StageResult{}, fmt.Errorf("delay: Combinational(cell=%q,related=%q): %w", cell, relatedPin, err)
	}

	return StageResult{OutputTransition: outTrans, CellDelay: round6(cellDelay), Direction: dOut}, nil
}
