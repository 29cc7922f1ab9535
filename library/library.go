package library

import "fmt"

// Library is a named-cell standard-cell characterization, built once
// by a front-end (liberty.Parse) and read-only for the remainder of an
// analysis run. Per spec.md §5, Library is safe to share by reference
// across delay-computation workers without locking once Freeze has
// been called; Freeze is the only safeguard against a caller
// accidentally mutating a shared Library mid-run.
type Library struct {
	cells  map[string]*Cell
	frozen bool
}

// NewLibrary returns an empty, mutable Library ready for a front-end
// to populate via AddCell.
func NewLibrary() *Library {
	return &Library{cells: make(map[string]*Cell)}
}

// AddCell registers cell under its own name. Returns ErrDuplicateCell
// if the name is already present, or ErrLibraryFrozen after Freeze.
func (l *Library) AddCell(cell *Cell) error {
	if l.frozen {
		return fmt.Errorf("AddCell(%q): %w", cell.Name, ErrLibraryFrozen)
	}
	if _, exists := l.cells[cell.Name]; exists {
		return fmt.Errorf("AddCell(%q): %w", cell.Name, ErrDuplicateCell)
	}
	l.cells[cell.Name] = cell

	return nil
}

// Freeze marks the Library as built; subsequent AddCell calls fail.
// Freeze itself performs no locking — by the time it is called,
// construction is complete and every goroutine that reads the Library
// thereafter only reads.
func (l *Library) Freeze() {
	l.frozen = true
}

// GetCell returns the named cell, or ErrCellNotFound.
func (l *Library) GetCell(name string) (*Cell, error) {
	c, ok := l.cells[name]
	if !ok {
		return nil, fmt.Errorf("GetCell(%q): %w", name, ErrCellNotFound)
	}

	return c, nil
}

// GetPin returns the named pin on the named cell, or ErrCellNotFound /
// ErrPinNotFound.
func (l *Library) GetPin(cellName, pinName string) (*Pin, error) {
	cell, err := l.GetCell(cellName)
	if err != nil {
		return nil, err
	}
	pin, ok := cell.Pins[pinName]
	if !ok {
		return nil, fmt.Errorf("GetPin(%q,%q): %w", cellName, pinName, ErrPinNotFound)
	}

	return pin, nil
}

// PinCapacitance returns the named pin's load capacitance.
func (l *Library) PinCapacitance(cellName, pinName string) (float64, error) {
	pin, err := l.GetPin(cellName, pinName)
	if err != nil {
		return 0, err
	}

	return pin.Capacitance, nil
}

// OutputPin returns the name of cellName's output-direction pin.
// Combinational and sequential cells in this model carry exactly one
// output, so the first match wins; for a cell with more than one
// output pin, which one is returned is not defined (map iteration
// order).
func (l *Library) OutputPin(cellName string) (string, error) {
	cell, err := l.GetCell(cellName)
	if err != nil {
		return "", err
	}
	for _, pin := range cell.Pins {
		if pin.Direction == DirectionOutput {
			return pin.Name, nil
		}
	}

	return "", fmt.Errorf("OutputPin(%q): %w", cellName, ErrPinNotFound)
}

// ClockPin returns the name of cellName's clock-direction pin.
func (l *Library) ClockPin(cellName string) (string, error) {
	cell, err := l.GetCell(cellName)
	if err != nil {
		return "", err
	}
	for _, pin := range cell.Pins {
		if pin.Direction == DirectionClock {
			return pin.Name, nil
		}
	}

	return "", fmt.Errorf("ClockPin(%q): %w", cellName, ErrPinNotFound)
}

// ArcKind selects which family of TimingArc GetArc should match.
type ArcKind int

const (
	// ArcCombinational selects rising_edge/falling_edge arcs.
	ArcCombinational ArcKind = iota
	// ArcSetup selects setup_rising/setup_falling arcs.
	ArcSetup
	// ArcHold selects hold_rising/hold_falling arcs.
	ArcHold
)

// GetArc selects the TimingArc on (cellName, pinName) whose
// RelatedPin matches relatedPin and whose TimingType belongs to the
// requested kind family. Arcs are addressed by the pair (owning pin,
// related pin) — the output pin for delay arcs, the constrained input
// pin for setup/hold arcs; TimingType alone distinguishes rise/fall and
// setup/hold within that pair, per spec.md §4.2 and design note (c)
// (arc selection is by (checking kind, edge), never by string pattern
// on TimingType names).
func (l *Library) GetArc(cellName, pinName, relatedPin string, kind ArcKind) (*TimingArc, error) {
	pin, err := l.GetPin(cellName, pinName)
	if err != nil {
		return nil, err
	}

	for _, arc := range pin.TimingArcs {
		if arc.RelatedPin != relatedPin {
			continue
		}
		if arcKindOf(arc.TimingType) == kind {
			return arc, nil
		}
	}

	return nil, fmt.Errorf("GetArc(%q,%q,related=%q,kind=%d): %w", cellName, pinName, relatedPin, kind, ErrArcNotFound)
}

// arcKindOf classifies a TimingType into its ArcKind family.
func arcKindOf(tt TimingType) ArcKind {
	switch tt {
	case RisingEdge, FallingEdge:
		return ArcCombinational
	case SetupRising, SetupFalling:
		return ArcSetup
	case HoldRising, HoldFalling:
		return ArcHold
	default:
		return ArcCombinational
	}
}

// OutputTransition applies the unateness rule of spec.md §4.2: given
// the input transition direction and the arc's timing sense, returns
// the transition direction the arc's output pin takes.
//
//   - negative_unate inverts: rise input → fall output, fall → rise.
//   - positive_unate or non_unate preserve the input direction.
func OutputTransition(in Transition, sense TimingSense) Transition {
	if sense == NegativeUnate {
		return in.Invert()
	}

	return in
}
