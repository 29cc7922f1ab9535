package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const cliLibrary = `
library (sample_lib) {
  cell (BUF1) {
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

const cliDesign = `
module top (in_a, clk, out_q);
input in_a;
input clk;
output out_q;
wire n1, n2;

DFRTP FF1 ( .CLK(clk), .D(in_a), .Q(n1) );
BUF1 U1 ( .A(n1), .Y(n2) );
DFRTP FF2 ( .CLK(clk), .D(n2), .Q(out_q) );
endmodule
`

const cliSDC = `
set_clock_transition 0.15
set_clock_uncertainty -setup 0.05
`

func writeCLIFixtures(t *testing.T) (libPath, designPath, sdcPath, ffPath string) {
	t.Helper()
	dir := t.TempDir()

	libPath = filepath.Join(dir, "sample.lib")
	designPath = filepath.Join(dir, "top.v")
	sdcPath = filepath.Join(dir, "top.sdc")
	ffPath = filepath.Join(dir, "ff_names.txt")

	require.NoError(t, os.WriteFile(libPath, []byte(cliLibrary), 0o644))
	require.NoError(t, os.WriteFile(designPath, []byte(cliDesign), 0o644))
	require.NoError(t, os.WriteFile(sdcPath, []byte(cliSDC), 0o644))
	require.NoError(t, os.WriteFile(ffPath, []byte("DFRTP\n"), 0o644))

	return libPath, designPath, sdcPath, ffPath
}

func TestRun_MissingRequiredFlag(t *testing.T) {
	t.Parallel()

	_, designPath, sdcPath, ffPath := writeCLIFixtures(t)

	code := run([]string{
		"--design", designPath,
		"--sdc", sdcPath,
		"--ff_names", ffPath,
	})
	require.Equal(t, 1, code)
}

func TestRun_NonexistentLibraryPath(t *testing.T) {
	t.Parallel()

	_, designPath, sdcPath, ffPath := writeCLIFixtures(t)

	code := run([]string{
		"--library", filepath.Join(t.TempDir(), "missing.lib"),
		"--design", designPath,
		"--sdc", sdcPath,
		"--ff_names", ffPath,
	})
	require.Equal(t, 1, code)
}

func TestRun_WritesReportArtifacts(t *testing.T) {
	t.Parallel()

	libPath, designPath, sdcPath, ffPath := writeCLIFixtures(t)
	runDir := filepath.Join(t.TempDir(), "out")

	code := run([]string{
		"--library", libPath,
		"--design", designPath,
		"--sdc", sdcPath,
		"--ff_names", ffPath,
		"--run_dir", runDir,
		"--clock_period", "10",
		"--default_output_load", "0.0005",
	})
	require.Equal(t, 0, code)

	csvData, err := os.ReadFile(filepath.Join(runDir, "final_report_sta.csv"))
	require.NoError(t, err)
	require.Contains(t, string(csvData), "path_id,startpoint,endpoint,arrival,required,slack,status")

	manifestData, err := os.ReadFile(filepath.Join(runDir, "run_manifest.yaml"))
	require.NoError(t, err)
	require.Contains(t, string(manifestData), "clock_period: 10")
	require.Contains(t, string(manifestData), "library_path:")

	entries, err := os.ReadDir(runDir)
	require.NoError(t, err)

	var logFound bool
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".log" {
			logFound = true
			data, err := os.ReadFile(filepath.Join(runDir, e.Name()))
			require.NoError(t, err)
			require.Contains(t, string(data), "Startpoint:")
			require.Contains(t, string(data), "paths:")
		}
	}
	require.True(t, logFound, "expected a timestamped .log file in %s", runDir)
}

func TestRun_ClassifyOverride(t *testing.T) {
	t.Parallel()

	libPath, designPath, sdcPath, _ := writeCLIFixtures(t)
	overridePath := filepath.Join(t.TempDir(), "classify_override.yaml")
	require.NoError(t, os.WriteFile(overridePath, []byte("sequential_patterns: [\"DFRTP\"]\n"), 0o644))
	runDir := filepath.Join(t.TempDir(), "out")

	code := run([]string{
		"--library", libPath,
		"--design", designPath,
		"--sdc", sdcPath,
		"--classify_override", overridePath,
		"--run_dir", runDir,
	})
	require.Equal(t, 0, code)

	csvData, err := os.ReadFile(filepath.Join(runDir, "final_report_sta.csv"))
	require.NoError(t, err)
	require.Contains(t, string(csvData), "path_id,startpoint,endpoint,arrival,required,slack,status")

	manifestData, err := os.ReadFile(filepath.Join(runDir, "run_manifest.yaml"))
	require.NoError(t, err)
	require.Contains(t, string(manifestData), "classify_override_path:")
	require.NotContains(t, string(manifestData), "ff_names_path:")
}

func TestRun_MissingClassificationSource(t *testing.T) {
	t.Parallel()

	libPath, designPath, sdcPath, _ := writeCLIFixtures(t)

	code := run([]string{
		"--library", libPath,
		"--design", designPath,
		"--sdc", sdcPath,
	})
	require.Equal(t, 1, code)
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	code := run([]string{"--help"})
	require.Equal(t, 0, code)
}
