package sdc

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	reClockTransition = regexp.MustCompile(`set_clock_transition\s+([\d.]+)`)
	reUncertaintySetup = regexp.MustCompile(`set_clock_uncertainty\s+-setup\s+([\d.]+)`)
	reUncertaintyHold  = regexp.MustCompile(`set_clock_uncertainty\s+-hold\s+([\d.]+)`)
	rePortDelay        = regexp.MustCompile(`set_(input|output)_delay\s+-(max|min)\s+([\d.]+)\s+-clock\s+\[get_clocks\s+\{[\w_]+\}\]\s+-add_delay\s+\[get_ports\s+\{([\w_\[\]\*]+)\}\]`)
	reOutputLoad       = regexp.MustCompile(`set_load\s+([\d.]+)\s+\[all_outputs\]`)
	reDerateEarly      = regexp.MustCompile(`set_timing_derate\s+-early\s+([\d.]+)`)
	reDerateLate       = regexp.MustCompile(`set_timing_derate\s+-late\s+([\d.]+)`)
)

// Parse reads an SDC-subset file from r and returns its Constraints,
// per spec.md §6. Every command is matched per line, mirroring the
// original's regexp-over-line-text approach; unrecognized lines
// (variable sets, clock definitions, comments) are ignored.
//
// Returns ErrMissingClockTransition if the file never sets one.
func Parse(r io.Reader) (Constraints, error) {
	var c Constraints
	sawClockTransition := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if m := reClockTransition.FindStringSubmatch(line); m != nil {
			v, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				return Constraints{}, fmt.Errorf("sdc: parse clock_transition: %w", err)
			}
			c.ClockTransition = v
			sawClockTransition = true
			continue
		}

		if m := reUncertaintySetup.FindStringSubmatch(line); m != nil {
			v, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				return Constraints{}, fmt.Errorf("sdc: parse clock_uncertainty -setup: %w", err)
			}
			c.ClockSetupUncertainty = v
			c.HasSetupUncertainty = true
			continue
		}

		if m := reUncertaintyHold.FindStringSubmatch(line); m != nil {
			v, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				return Constraints{}, fmt.Errorf("sdc: parse clock_uncertainty -hold: %w", err)
			}
			c.ClockHoldUncertainty = v
			c.HasHoldUncertainty = true
			continue
		}

		if m := rePortDelay.FindStringSubmatch(line); m != nil {
			v, err := strconv.ParseFloat(m[3], 64)
			if err != nil {
				return Constraints{}, fmt.Errorf("sdc: parse %s_delay: %w", m[1], err)
			}
			kind := InputDelay
			if m[1] == "output" {
				kind = OutputDelay
			}
			c.PortDelays = append(c.PortDelays, PortDelay{
				Kind:  kind,
				Port:  m[4],
				Max:   m[2] == "max",
				Value: v,
			})
			continue
		}

		if m := reOutputLoad.FindStringSubmatch(line); m != nil {
			v, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				return Constraints{}, fmt.Errorf("sdc: parse set_load: %w", err)
			}
			c.OutputLoad = v
			c.HasOutputLoad = true
			continue
		}

		if m := reDerateEarly.FindStringSubmatch(line); m != nil {
			v, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				return Constraints{}, fmt.Errorf("sdc: parse timing_derate -early: %w", err)
			}
			c.Derates = append(c.Derates, Derate{Corner: DerateEarly, Factor: v})
			continue
		}

		if m := reDerateLate.FindStringSubmatch(line); m != nil {
			v, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				return Constraints{}, fmt.Errorf("sdc: parse timing_derate -late: %w", err)
			}
			c.Derates = append(c.Derates, Derate{Corner: DerateLate, Factor: v})
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return Constraints{}, fmt.Errorf("sdc: scan: %w", err)
	}

	if !sawClockTransition {
		return Constraints{}, ErrMissingClockTransition
	}

	return c, nil
}
