package delay

import (
	"math"

	"github.com/katalvlaran/gosta/library"
	"github.com/katalvlaran/gosta/netlist"
)

// StageResult is the outcome of one combinational or clock-to-Q
// computation: the output transition time an downstream stage should
// use as its input, the stage's own incremental delay, and the
// direction the output took.
type StageResult struct {
	OutputTransition float64
	CellDelay        float64
	Direction        library.Transition
}

// CheckKind selects which sequential constraint family to evaluate.
type CheckKind int

const (
	// CheckSetup selects setup_rising/setup_falling arcs.
	CheckSetup CheckKind = iota
	// CheckHold selects hold_rising/hold_falling arcs. Built for
	// completeness (library.ArcHold, rise/fall constraint tables are
	// fully wired) but never surfaced in TimingReporter, per spec.md
	// §1's non-goal that the main report is setup-only.
	CheckHold
)

// Config carries the run-wide parameters the delay engine needs that
// are not already captured by the Library or NetlistGraph: the clock
// and primary-input transition assumptions, the clock-to-Q output pin
// search order, and the worker-pool concurrency limit.
type Config struct {
	// ClockPinNames lists candidate output-pin names to try for
	// clock-to-Q, in order; spec.md §4.5.3's default is Q, falling
	// back to the inverted variant QN when Q is absent on the cell.
	ClockPinNames []string

	// ClockTransition is τ_clk: the clock-pin transition time used for
	// clock-to-Q computation at sequential startpoints.
	ClockTransition float64

	// RelatedPinTransition is τ_related: the configured related-pin
	// (clock) transition time used by the setup/hold check at
	// sequential endpoints. Independent of ClockTransition — per
	// spec.md §4.5.5 and the original's sta.py entry point, which
	// passes clock_transition as the startpoint's input_transition_time
	// and a separate literal as related_pin_time.
	RelatedPinTransition float64

	// InputTransition is the transition time assumed at a primary
	// input startpoint (an in-reg path has no upstream cell to derive
	// one from).
	InputTransition float64

	// InputDirection is the transition direction assumed at a primary
	// input startpoint.
	InputDirection library.Transition

	// DefaultOutputLoad is the load capacitance contributed by a
	// fanout successor that is a primary output, per spec.md §4.5.1.
	DefaultOutputLoad float64

	// WorkerLimit bounds the errgroup's concurrent goroutines; zero
	// means the errgroup default (unlimited).
	WorkerLimit int
}

// DefaultConfig returns the supplemented default assumptions described
// in the run manifest: a 0.15/0.15 clock and input transition, a 0.14
// related-pin transition for the setup/hold check (matching the
// original's literal `0.14` in sta.py:22), Q then QN for clock-to-Q,
// zero load on unmodeled primary-output fanout, and an 8-way worker
// pool.
func DefaultConfig() Config {
	return Config{
		ClockPinNames:        []string{"Q", "QN"},
		ClockTransition:      0.15,
		RelatedPinTransition: 0.14,
		InputTransition:      0.15,
		InputDirection:       library.Rise,
		DefaultOutputLoad:    0,
		WorkerLimit:          8,
	}
}

// PathInput is one path handed to the engine: a node sequence and its
// parallel receiver-pin attributes, as produced by pathenum.Result.
// delay does not import pathenum directly, to keep the dependency
// direction pointing from orchestration down to the engine rather than
// sideways between sibling packages.
type PathInput struct {
	Path       netlist.Path
	Attributes netlist.PathAttributes
}

// PathDelay is the per-path outcome of ComputePath: the incremental
// delay at each computed stage (clock-to-Q or combinational, six-digit
// rounded per spec.md §4.5.5), the cumulative data arrival time, and —
// when the endpoint is sequential — the setup constraint time against
// which the reporter computes required time and slack.
type PathDelay struct {
	Path       netlist.Path
	Attributes netlist.PathAttributes

	// StageDelays holds the rounded incremental delay of each computed
	// stage, and StageNodes the node each entry belongs to (StageNodes[0]
	// is the startpoint itself when it carried a clock-to-Q stage, or the
	// first intermediate instance otherwise) — the reporter uses this
	// pairing to render "<name>/Clk2Q" for the startpoint and
	// "<instance>/<cell>" for every other stage.
	StageDelays []float64
	StageNodes  []netlist.NodeID
	StartedSeq  bool
	Arrival     float64

	HasSetupCheck   bool
	SetupConstraint float64
}

// round6 stores each per-stage delay rounded to six fractional digits,
// per spec.md §4.5.5.
func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
