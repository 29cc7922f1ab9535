package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/gosta/delay"
	"github.com/katalvlaran/gosta/netlist"
)

// Reporter renders delay.PathDelay results against a fixed NetlistGraph
// (for node names) and a per-run Config.
type Reporter struct {
	graph *netlist.Graph
	cfg   Config
}

// NewReporter builds a Reporter over g, using cfg's clock parameters
// for every path's required-time calculation.
func NewReporter(g *netlist.Graph, cfg Config) *Reporter {
	return &Reporter{graph: g, cfg: cfg}
}

// f4 formats a value to four fractional digits, matching the report's
// display precision (stage delays are stored at six-digit precision;
// the report itself displays four, per the original's table format).
func f4(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

// RenderText writes one {Point, Incr, Path} block for pd to w, per
// spec.md §4.6's fixed row sequence. Returns ErrEmptyPath if pd has no
// computed stages.
func (r *Reporter) RenderText(w io.Writer, pd *delay.PathDelay) error {
	if len(pd.StageDelays) == 0 {
		return ErrEmptyPath
	}

	startpoint := r.graph.Node(pd.Path[0]).Name
	endpoint := r.graph.Node(pd.Path[len(pd.Path)-1]).Name

	fmt.Fprintf(w, "Startpoint: %s\n", startpoint)
	fmt.Fprintf(w, "Endpoint: %s\n", endpoint)
	fmt.Fprintln(w, "Path Group: core_clock")
	fmt.Fprintln(w, "Path Type: max")
	fmt.Fprintln(w)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Point", "Incr", "Path"})

	cumulative := 0.0
	t.AppendRow(table.Row{"clock CLKM (rise edge)", f4(r.cfg.ClockRiseEdge), f4(r.cfg.ClockRiseEdge)})
	t.AppendRow(table.Row{"clock network delay (ideal)", f4(r.cfg.ClockNetworkDelay), f4(r.cfg.ClockNetworkDelay)})

	for i, d := range pd.StageDelays {
		cumulative += d
		var label string
		if i == 0 && pd.StartedSeq {
			label = fmt.Sprintf("%s/Clk2Q", startpoint)
		} else {
			n := r.graph.Node(pd.StageNodes[i])
			label = fmt.Sprintf("%s/%s", n.Name, n.Cell)
		}
		t.AppendRow(table.Row{label, f4(d), f4(cumulative)})
	}

	arrival := round4(cumulative)
	t.AppendRow(table.Row{"data arrival time", "", f4(arrival)})

	required := r.cfg.ClockPeriod
	t.AppendRow(table.Row{"clock period (rise edge)", f4(r.cfg.ClockPeriod), f4(required)})

	required -= r.cfg.ClockNetworkDelay
	t.AppendRow(table.Row{"clock network delay (ideal)", f4(r.cfg.ClockNetworkDelay), f4(required)})

	required -= r.cfg.ClockUncertainty
	t.AppendRow(table.Row{"clock uncertainty", f4(-r.cfg.ClockUncertainty), f4(required)})

	if pd.HasSetupCheck {
		required -= pd.SetupConstraint
		t.AppendRow(table.Row{"setup_time", f4(-pd.SetupConstraint), f4(required)})
	}

	t.AppendSeparator()
	t.AppendRow(table.Row{"data required time", "", f4(required)})
	// Negated per spec.md §9(b)'s textual convention; slack below is
	// computed from the non-negated cumulative.
	t.AppendRow(table.Row{"data arrival time", "", f4(-arrival)})
	t.AppendSeparator()

	slack := round4(required - arrival)
	status := StatusMet
	if slack < 0 {
		status = StatusViolate
	}
	t.AppendRow(table.Row{fmt.Sprintf("slack (%s)", status), "", f4(slack)})

	t.Render()
	fmt.Fprintln(w)

	return nil
}

func round4(v float64) float64 {
	return float64(int64(v*1e4+sign(v)*0.5)) / 1e4
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
