package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/katalvlaran/gosta/delay"
	"github.com/katalvlaran/gosta/netlist"
)

// Summarize reduces pd to the single CSVRow final_report_sta.csv
// carries for that path, per spec.md §6 and §9(b): required time is
// built up from the clock period less network delay, clock
// uncertainty, and (when the endpoint is sequential) the setup
// constraint; slack is required minus the non-negated arrival time,
// both taken at the report's four-digit precision.
func (r *Reporter) Summarize(pathID string, pd *delay.PathDelay) (CSVRow, error) {
	if len(pd.StageDelays) == 0 {
		return CSVRow{}, ErrEmptyPath
	}

	startpoint := r.graph.Node(pd.Path[0]).Name
	endpoint := r.graph.Node(pd.Path[len(pd.Path)-1]).Name

	required := r.cfg.ClockPeriod - r.cfg.ClockNetworkDelay - r.cfg.ClockUncertainty
	if pd.HasSetupCheck {
		required -= pd.SetupConstraint
	}
	required = round4(required)

	arrival := round4(pd.Arrival)
	slack := round4(required - arrival)
	status := StatusMet
	if slack < 0 {
		status = StatusViolate
	}

	return CSVRow{
		PathID:     pathID,
		Startpoint: startpoint,
		Endpoint:   endpoint,
		Arrival:    arrival,
		Required:   required,
		Slack:      slack,
		Status:     status,
	}, nil
}

// WriteCSV writes rows to w as final_report_sta.csv, per spec.md §6.
func WriteCSV(w io.Writer, rows []CSVRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"path_id", "startpoint", "endpoint", "arrival", "required", "slack", "status"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("report: WriteCSV: header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.PathID,
			row.Startpoint,
			row.Endpoint,
			f4(row.Arrival),
			f4(row.Required),
			f4(row.Slack),
			row.Status,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("report: WriteCSV: row %s: %w", row.PathID, err)
		}
	}

	return cw.Error()
}

// pathNodeNames returns p's node names in path order for diagnostics, e.g. log
// lines that need a human-readable path identity.
func pathNodeNames(g *netlist.Graph, p netlist.Path) []string {
	names := make([]string, len(p))
	for i, id := range p {
		names[i] = g.Node(id).Name
	}

	return names
}
