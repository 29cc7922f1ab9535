package delay

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gosta/library"
)

// ClockToQ computes the clock-to-Q delay of a sequential cell, per
// spec.md §4.5.3: try each candidate output-pin name in order (the
// default list is "Q" then its inverted variant "QN"), select the
// output pin's arc whose related pin is the cell's clock pin, and
// interpolate the table pair matching that arc's own edge direction.
//
// Returns the chosen output pin name alongside the StageResult so
// callers can log which candidate matched.
func ClockToQ(lib *library.Library, cell string, outputPinNames []string, tauClk, load float64) (StageResult, string, error) {
	if tauClk < 0 || load < 0 {
		return StageResult{}, "", fmt.Errorf("delay: ClockToQ(cell=%q): %w", cell, ErrInvalidInput)
	}

	clockPin, err := lib.ClockPin(cell)
	if err != nil {
		return StageResult{}, "", fmt.Errorf("delay: ClockToQ(cell=%q): %w", cell, err)
	}

	var lastErr error
	for _, pinName := range outputPinNames {
		if _, err := lib.GetPin(cell, pinName); err != nil {
			lastErr = err
			continue
		}

		arc, err := lib.GetArc(cell, pinName, clockPin, library.ArcCombinational)
		if err != nil {
			lastErr = err
			continue
		}

		cellKind, transKind, dir := library.CellRise, library.RiseTransition, library.Rise
		if arc.TimingType == library.FallingEdge {
			cellKind, transKind, dir = library.CellFall, library.FallTransition, library.Fall
		}

		cellTable, ok := arc.Table(cellKind)
		if !ok {
			return StageResult{}, "", fmt.Errorf("delay: ClockToQ(cell=%q,pin=%q): %w", cell, pinName, library.ErrArcNotFound)
		}
		transTable, ok := arc.Table(transKind)
		if !ok {
			return StageResult{}, "", fmt.Errorf("delay: ClockToQ(cell=%q,pin=%q): %w", cell, pinName, library.ErrArcNotFound)
		}

		clk2q, err := cellTable.Interpolate(tauClk, load)
		if err != nil {
			return StageResult{}, "", fmt.Errorf("delay: ClockToQ(cell=%q,pin=%q): %w", cell, pinName, err)
		}
		outTrans, err := transTable.Interpolate(tauClk, load)
		if err != nil {
			return StageResult{}, "", fmt.Errorf("delay: ClockToQ(cell=%q,pin=%q): %w", cell, pinName, err)
		}

		return StageResult{OutputTransition: outTrans, CellDelay: round6(clk2q), Direction: dir}, pinName, nil
	}

	if lastErr == nil {
		lastErr = errors.New("no candidates configured")
	}

	return StageResult{}, "", fmt.Errorf("delay: ClockToQ(cell=%q): %w: %v", cell, ErrNoOutputPin, lastErr)
}
