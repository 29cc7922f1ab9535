package library

import "github.com/katalvlaran/gosta/lut"

// Direction is the closed set of pin directions a Liberty pin group
// may declare.
type Direction int

const (
	// DirectionInput marks a pin driven by the instance's fanin.
	DirectionInput Direction = iota
	// DirectionOutput marks a pin driving the instance's fanout.
	DirectionOutput
	// DirectionClock marks the clock pin of a sequential cell.
	DirectionClock
)

// String renders a Direction for logs and error messages.
func (d Direction) String() string {
	switch d {
	case DirectionInput:
		return "input"
	case DirectionOutput:
		return "output"
	case DirectionClock:
		return "clock"
	default:
		return "unknown"
	}
}

// Transition is a signal's edge direction at a pin.
type Transition int

const (
	// Rise is a low-to-high transition.
	Rise Transition = iota
	// Fall is a high-to-low transition.
	Fall
)

// Invert returns the opposite transition.
func (t Transition) Invert() Transition {
	if t == Rise {
		return Fall
	}
	return Rise
}

// String renders a Transition for logs and error messages.
func (t Transition) String() string {
	if t == Rise {
		return "rise"
	}
	return "fall"
}

// TimingType is the closed set of arc kinds a TimingArc may carry,
// distinguishing combinational edges from sequential setup/hold checks.
type TimingType int

const (
	RisingEdge TimingType = iota
	FallingEdge
	SetupRising
	SetupFalling
	HoldRising
	HoldFalling
)

// TimingSense is the closed set of unateness classifications for a
// combinational arc; see OutputTransition for the rule it drives.
type TimingSense int

const (
	PositiveUnate TimingSense = iota
	NegativeUnate
	NonUnate
)

// TableKind addresses one of the six characterized lookup tables a
// combinational or sequential arc may carry.
type TableKind int

const (
	CellRise TableKind = iota
	CellFall
	RiseTransition
	FallTransition
	RiseConstraint
	FallConstraint
)

// Pin is a named terminal of a Cell: its direction, load capacitance
// (meaningful for input/clock pins, the load an upstream driver sees),
// and the TimingArcs describing how the pin responds to its related
// pins: delay arcs on output pins, setup/hold arcs on constrained
// input pins.
type Pin struct {
	Name         string
	Direction    Direction
	Capacitance  float64
	TimingArcs   []*TimingArc
}

// TimingArc is a timing relationship from a related (source) pin to
// the pin that owns this arc: a combinational arc (rising_edge /
// falling_edge, carrying a TimingSense) or a sequential setup/hold
// check (setup_rising / setup_falling / hold_rising / hold_falling).
type TimingArc struct {
	RelatedPin  string
	TimingType  TimingType
	TimingSense TimingSense
	Tables      map[TableKind]*lut.Table
}

// Table fetches one of the arc's characterized tables, or reports
// ErrArcNotFound-shaped absence via the ok flag (callers that need a
// table error wrap this with the arc's address).
func (a *TimingArc) Table(kind TableKind) (*lut.Table, bool) {
	t, ok := a.Tables[kind]
	return t, ok
}

// Cell is a named standard cell owning a set of pins, keyed by name.
type Cell struct {
	Name string
	Pins map[string]*Pin
}
