package sta_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gosta/sta"
)

const testLibrary = `
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
      capacitance : 0.01;
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

const testDesign = `
module top (in_a, clk, out_q);
input in_a;
input clk;
output out_q;
wire n1, n2;

DFRTP FF1 ( .CLK(clk), .D(in_a), .Q(n1) );
AND2 U1 ( .A(n1), .Y(n2) );
DFRTP FF2 ( .CLK(clk), .D(n2), .Q(out_q) );
endmodule
`

const testSDC = `
set_clock_transition 0.15
set_clock_uncertainty -setup 0.05
`

func writeFixtures(t *testing.T) (libPath, designPath, sdcPath, ffPath string) {
	t.Helper()
	dir := t.TempDir()

	libPath = filepath.Join(dir, "sample.lib")
	designPath = filepath.Join(dir, "top.v")
	sdcPath = filepath.Join(dir, "top.sdc")
	ffPath = filepath.Join(dir, "ff_names.txt")

	require.NoError(t, os.WriteFile(libPath, []byte(testLibrary), 0o644))
	require.NoError(t, os.WriteFile(designPath, []byte(testDesign), 0o644))
	require.NoError(t, os.WriteFile(sdcPath, []byte(testSDC), 0o644))
	require.NoError(t, os.WriteFile(ffPath, []byte("DFRTP\n"), 0o644))

	return libPath, designPath, sdcPath, ffPath
}

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	libPath, designPath, sdcPath, ffPath := writeFixtures(t)

	cfg := sta.DefaultConfig()
	cfg.LibraryPath = libPath
	cfg.DesignPath = designPath
	cfg.SDCPath = sdcPath
	cfg.FFNamesPath = ffPath
	cfg.ClockPeriod = 10.0
	cfg.DefaultOutputLoad = 0.0005

	result, err := sta.Run(context.Background(), cfg)
	require.NoError(t, err)
	require.NotEmpty(t, result.Paths)
	require.InDelta(t, 0.15, result.ClockTransition, 1e-9)
	require.Equal(t, []string{"DFRTP"}, result.SequentialPatterns)

	for _, p := range result.Paths {
		require.NotEmpty(t, p.Text)
		require.Contains(t, p.Text, "Startpoint:")
		require.Contains(t, p.Text, "slack (")
		require.Equal(t, p.ID, p.Row.PathID)
	}

	// IDs must be unique.
	seen := make(map[string]bool, len(result.Paths))
	for _, p := range result.Paths {
		require.False(t, seen[p.ID])
		seen[p.ID] = true
	}
}

func TestRun_MissingLibrary(t *testing.T) {
	t.Parallel()

	_, designPath, sdcPath, ffPath := writeFixtures(t)

	cfg := sta.DefaultConfig()
	cfg.LibraryPath = filepath.Join(t.TempDir(), "does_not_exist.lib")
	cfg.DesignPath = designPath
	cfg.SDCPath = sdcPath
	cfg.FFNamesPath = ffPath

	_, err := sta.Run(context.Background(), cfg)
	require.ErrorIs(t, err, sta.ErrInputNotFound)
}

func TestRun_DeterministicAcrossRuns(t *testing.T) {
	t.Parallel()

	libPath, designPath, sdcPath, ffPath := writeFixtures(t)

	cfg := sta.DefaultConfig()
	cfg.LibraryPath = libPath
	cfg.DesignPath = designPath
	cfg.SDCPath = sdcPath
	cfg.FFNamesPath = ffPath
	cfg.ClockPeriod = 10.0
	cfg.DefaultOutputLoad = 0.0005

	first, err := sta.Run(context.Background(), cfg)
	require.NoError(t, err)
	second, err := sta.Run(context.Background(), cfg)
	require.NoError(t, err)

	require.Equal(t, len(first.Paths), len(second.Paths))
	for i := range first.Paths {
		require.Equal(t, first.Paths[i].ID, second.Paths[i].ID)
		require.Equal(t, first.Paths[i].Text, second.Paths[i].Text)
		require.Equal(t, first.Paths[i].Row, second.Paths[i].Row)
	}
}
