// Package report implements gosta's TimingReporter: the per-path
// {Point, Incr, Path} text table of spec.md §4.6, and the CSV summary
// of spec.md §6.
//
// Row sequence, sign conventions, and the negated "data arrival time"
// summary-row convention are grounded on
// original_source/boltsta/utils/utils.py's generate_timing_report:
// slack is computed from the non-negated cumulative arrival time per
// spec.md §9(b), even though the summary row displays it negated.
package report

import "errors"

// ErrEmptyPath is returned when a path has no computed delay stages;
// such paths are skipped rather than reported, matching the original's
// own empty-path guard.
var ErrEmptyPath = errors.New("report: path has no delay stages")
