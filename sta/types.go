package sta

import (
	"github.com/katalvlaran/gosta/delay"
	"github.com/katalvlaran/gosta/library"
	"github.com/katalvlaran/gosta/report"
)

// Config is the full set of inputs a Run needs: the three required
// front-end documents, a sequential-cell naming source (FFNamesPath or
// ClassifyOverridePath), and the clock-report parameters spec.md §4.6
// prints but the SDC subset of §6 never carries (clock_rise_edge,
// clock_network_delay, and clock_period are run parameters in the
// original, not constraint-file entries; see DESIGN.md's Open Question
// decision 7).
type Config struct {
	LibraryPath string
	DesignPath  string
	SDCPath     string

	// FFNamesPath is the ff_names.txt substring list (spec.md §6).
	// Ignored when ClassifyOverridePath is set.
	FFNamesPath string

	ClockRiseEdge     float64
	ClockNetworkDelay float64
	ClockPeriod       float64

	InputTransition      float64
	InputDirection       library.Transition
	ClockPinNames        []string
	RelatedPinTransition float64
	DefaultOutputLoad    float64
	WorkerLimit          int

	// ClassifyOverridePath, when set, points to a YAML file of
	// sequential-cell substring patterns (classify.LoadYAMLOverride)
	// used instead of FFNamesPath.
	ClassifyOverridePath string
}

// DefaultConfig returns the clock-report and delay-engine defaults the
// original implementation hard-codes (clock_rise_edge=0.0,
// clock_network_delay=0.0, clock_period=10.0), leaving the input-path
// fields empty for the caller to fill in.
func DefaultConfig() Config {
	dcfg := delay.DefaultConfig()

	return Config{
		ClockRiseEdge:        0.0,
		ClockNetworkDelay:    0.0,
		ClockPeriod:          10.0,
		InputTransition:      dcfg.InputTransition,
		InputDirection:       dcfg.InputDirection,
		ClockPinNames:        dcfg.ClockPinNames,
		RelatedPinTransition: dcfg.RelatedPinTransition,
		DefaultOutputLoad:    dcfg.DefaultOutputLoad,
		WorkerLimit:          dcfg.WorkerLimit,
	}
}

// PathReport is one path's rendered text block paired with its CSV
// summary row, both keyed by the same sequential path ID ("path1",
// "path2", ...) assigned after the deterministic sort spec.md §5
// requires.
type PathReport struct {
	ID   string
	Text string
	Row  report.CSVRow
}

// Result is the complete output of a Run: every path's report block,
// in the deterministic order spec.md §5 mandates, plus the classifier
// patterns and resolved clock transition actually used, for the run
// manifest.
type Result struct {
	Paths []PathReport

	SequentialPatterns []string
	ClockTransition    float64
}

// CSVRows extracts the CSV summary rows from Result.Paths, in order.
func (r *Result) CSVRows() []report.CSVRow {
	rows := make([]report.CSVRow, len(r.Paths))
	for i, p := range r.Paths {
		rows[i] = p.Row
	}

	return rows
}
