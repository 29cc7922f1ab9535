package liberty_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gosta/library"
	"github.com/katalvlaran/gosta/liberty"
)

const sampleLib = `
library (sample_lib) {
  cell (AND2) {
    pin (A) {
      direction : input;
      capacitance : 0.01;
    }
    pin (Y) {
      direction : output;
      timing () {
        related_pin : "A";
        timing_sense : positive_unate;
        cell_rise (delay_template) {
          index_1 ("0.01,0.2");
          index_2 ("0.0005,0.05");
          values ("0.05,0.08", "0.09,0.15");
        }
        cell_fall (delay_template) {
          index_1 ("0.01,0.2");
          index_2 ("0.0005,0.05");
          values ("0.06,0.09", "0.10,0.16");
        }
        rise_transition (delay_template) {
          index_1 ("0.01,0.2");
          index_2 ("0.0005,0.05");
          values ("0.02,0.03", "0.04,0.06");
        }
        fall_transition (delay_template) {
          index_1 ("0.01,0.2");
          index_2 ("0.0005,0.05");
          values ("0.02,0.03", "0.04,0.06");
        }
      }
    }
  }
  cell (DFRTP) {
    pin (CLK) {
      direction : input;
      clock : true;
    }
    pin (D) {
      direction : input;
      timing () {
        related_pin : "CLK";
        timing_type : setup_rising;
        rise_constraint (constraint_template) {
          index_1 ("0.01,0.2");
          index_2 ("0.0005,0.05");
          values ("0.01,0.02", "0.2,0.4");
        }
      }
    }
    pin (Q) {
      direction : output;
      capacitance : 0.01;
      timing () {
        related_pin : "CLK";
        timing_type : rising_edge;
        cell_rise (delay_template) {
          index_1 ("0.01,0.2");
          index_2 ("0.0005,0.05");
          values ("0.05,0.08", "0.10,0.18");
        }
        rise_transition (delay_template) {
          index_1 ("0.01,0.2");
          index_2 ("0.0005,0.05");
          values ("0.02,0.03", "0.04,0.05");
        }
      }
    }
  }
}
`

func TestParseAndBuild(t *testing.T) {
	t.Parallel()

	root, err := liberty.Parse(sampleLib)
	require.NoError(t, err)

	lib, err := liberty.Build(root)
	require.NoError(t, err)

	and2, err := lib.GetCell("AND2")
	require.NoError(t, err)
	require.Equal(t, library.DirectionInput, and2.Pins["A"].Direction)
	require.Equal(t, library.DirectionOutput, and2.Pins["Y"].Direction)
	require.Len(t, and2.Pins["Y"].TimingArcs, 1)
	require.Equal(t, library.PositiveUnate, and2.Pins["Y"].TimingArcs[0].TimingSense)

	riseTable, ok := and2.Pins["Y"].TimingArcs[0].Table(library.CellRise)
	require.True(t, ok)
	v, err := riseTable.Interpolate(0.01, 0.0005)
	require.NoError(t, err)
	require.InDelta(t, 0.05, v, 1e-9)

	dfrtp, err := lib.GetCell("DFRTP")
	require.NoError(t, err)
	require.Equal(t, library.DirectionClock, dfrtp.Pins["CLK"].Direction)

	clockPin, err := lib.ClockPin("DFRTP")
	require.NoError(t, err)
	require.Equal(t, "CLK", clockPin)

	outputPin, err := lib.OutputPin("DFRTP")
	require.NoError(t, err)
	require.Equal(t, "Q", outputPin)

	setupArc, err := lib.GetArc("DFRTP", "D", "CLK", library.ArcSetup)
	require.NoError(t, err)
	require.Equal(t, library.SetupRising, setupArc.TimingType)
}

func TestParse_SyntaxError(t *testing.T) {
	t.Parallel()

	_, err := liberty.Parse(`cell (AND2) { pin (A) direction : input; } }`)
	require.ErrorIs(t, err, liberty.ErrSyntax)
}
