// Command gosta runs a static timing analysis over a liberty library,
// a structural Verilog netlist, and an SDC-subset constraints file,
// and writes a CSV summary plus a human-readable report into a run
// directory, per spec.md §6.
//
// Usage:
//
//	gosta --library lib.lib --design top.v --sdc top.sdc --ff_names ff_names.txt
//	gosta --library lib.lib --design top.v --sdc top.sdc --classify_override patterns.yaml
//
// GOSTA_DEBUG=1 (or --debug) turns on diagnostic logging to stderr.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gosta/internal/gostalog"
	"github.com/katalvlaran/gosta/report"
	"github.com/katalvlaran/gosta/sta"
)

const timestampLayout = "2006_01_02_15_04_05"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run implements main's logic and returns the process exit code,
// keeping main itself trivial and testable.
func run(args []string) int {
	fs := flag.NewFlagSet("gosta", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	libraryPath := fs.String("library", "", "path to the liberty standard-cell library (required)")
	designPath := fs.String("design", "", "path to the structural Verilog netlist (required)")
	sdcPath := fs.String("sdc", "", "path to the SDC-subset constraints file (required)")
	ffNamesPath := fs.String("ff_names", "", "path to ff_names.txt, one sequential-cell substring per line (required unless --classify_override is set)")
	classifyOverridePath := fs.String("classify_override", "", "path to a YAML file of sequential-cell substring patterns, used instead of --ff_names")
	runDir := fs.String("run_dir", "", "directory to write the report into (default: sta_run_<timestamp>)")
	clockPeriod := fs.Float64("clock_period", 10.0, "clock period used for required-time calculation")
	clockRiseEdge := fs.Float64("clock_rise_edge", 0.0, "clock rise-edge offset printed in the report")
	clockNetworkDelay := fs.Float64("clock_network_delay", 0.0, "ideal clock network delay")
	inputTransition := fs.Float64("input_transition", 0.0, "assumed transition time at a primary-input startpoint")
	relatedPinTransition := fs.Float64("related_pin_transition", 0.0, "configured related-pin (clock) transition time used by the setup/hold check")
	defaultOutputLoad := fs.Float64("default_output_load", 0.0, "load capacitance contributed by a primary-output fanout")
	workerLimit := fs.Int("workers", 0, "max concurrent path computations (0 = delay package default)")
	debug := fs.Bool("debug", false, "enable diagnostic logging to stderr")
	help := fs.Bool("help", false, "show usage")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *help {
		fmt.Fprintln(os.Stderr, "Usage: gosta --library <path> --design <path> --sdc <path> {--ff_names <path> | --classify_override <path>} [options]")
		fs.PrintDefaults()
		return 0
	}

	if *debug {
		gostalog.SetVerbose(true)
	}

	if *ffNamesPath == "" && *classifyOverridePath == "" {
		fmt.Fprintln(os.Stderr, "gosta: one of --ff_names or --classify_override is required")
		return 1
	}

	required := map[string]string{
		"--library": *libraryPath,
		"--design":  *designPath,
		"--sdc":     *sdcPath,
	}
	for _, name := range []string{"--library", "--design", "--sdc"} {
		p := required[name]
		if p == "" {
			fmt.Fprintf(os.Stderr, "gosta: missing required flag %s\n", name)
			return 1
		}
		if _, err := os.Stat(p); err != nil {
			fmt.Fprintf(os.Stderr, "gosta: %s: %v\n", name, err)
			return 1
		}
	}
	for name, p := range map[string]string{"--ff_names": *ffNamesPath, "--classify_override": *classifyOverridePath} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			fmt.Fprintf(os.Stderr, "gosta: %s: %v\n", name, err)
			return 1
		}
	}

	now := time.Now()
	timestamp := now.Format(timestampLayout)
	dir := *runDir
	if dir == "" {
		dir = "sta_run_" + timestamp
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "gosta: creating run directory: %v\n", err)
		return 1
	}

	cfg := sta.DefaultConfig()
	cfg.LibraryPath = *libraryPath
	cfg.DesignPath = *designPath
	cfg.SDCPath = *sdcPath
	cfg.FFNamesPath = *ffNamesPath
	cfg.ClassifyOverridePath = *classifyOverridePath
	cfg.ClockPeriod = *clockPeriod
	cfg.ClockRiseEdge = *clockRiseEdge
	cfg.ClockNetworkDelay = *clockNetworkDelay
	if *inputTransition > 0 {
		cfg.InputTransition = *inputTransition
	}
	if *relatedPinTransition > 0 {
		cfg.RelatedPinTransition = *relatedPinTransition
	}
	if *defaultOutputLoad > 0 {
		cfg.DefaultOutputLoad = *defaultOutputLoad
	}
	if *workerLimit > 0 {
		cfg.WorkerLimit = *workerLimit
	}

	result, err := sta.Run(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gosta: %v\n", err)
		return 1
	}

	if err := writeCSV(dir, result); err != nil {
		fmt.Fprintf(os.Stderr, "gosta: %v\n", err)
		return 1
	}
	if err := writeLog(dir, timestamp, result); err != nil {
		fmt.Fprintf(os.Stderr, "gosta: %v\n", err)
		return 1
	}
	if err := writeManifest(dir, cfg, result); err != nil {
		fmt.Fprintf(os.Stderr, "gosta: %v\n", err)
		return 1
	}

	fmt.Println(dir)

	return 0
}

func writeCSV(dir string, result *sta.Result) error {
	f, err := os.Create(filepath.Join(dir, "final_report_sta.csv"))
	if err != nil {
		return fmt.Errorf("creating final_report_sta.csv: %w", err)
	}
	defer f.Close()

	if err := report.WriteCSV(f, result.CSVRows()); err != nil {
		return fmt.Errorf("writing final_report_sta.csv: %w", err)
	}

	return nil
}

// writeLog writes the run's human-readable report: every path's
// rendered text block, blank-line separated in the deterministic order
// sta.Run already sorted them in, followed by a short run trailer. Per
// DESIGN.md's Open Question decision 8, this file is both the report
// and the log spec.md §6 names — there is no separate report artifact.
func writeLog(dir, timestamp string, result *sta.Result) error {
	f, err := os.Create(filepath.Join(dir, timestamp+".log"))
	if err != nil {
		return fmt.Errorf("creating %s.log: %w", timestamp, err)
	}
	defer f.Close()

	var b strings.Builder
	for _, p := range result.Paths {
		b.WriteString(p.Text)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "paths: %d\n", len(result.Paths))
	fmt.Fprintf(&b, "sequential patterns: %v\n", result.SequentialPatterns)
	fmt.Fprintf(&b, "clock transition: %.4f\n", result.ClockTransition)

	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("writing %s.log: %w", timestamp, err)
	}

	return nil
}

// runManifest is the YAML document written alongside a run's report,
// recording exactly which inputs and resolved constraints produced it.
type runManifest struct {
	LibraryPath          string   `yaml:"library_path"`
	DesignPath           string   `yaml:"design_path"`
	SDCPath              string   `yaml:"sdc_path"`
	FFNamesPath          string   `yaml:"ff_names_path,omitempty"`
	ClassifyOverridePath string   `yaml:"classify_override_path,omitempty"`
	ClockPeriod          float64  `yaml:"clock_period"`
	ClockRiseEdge        float64  `yaml:"clock_rise_edge"`
	ClockNetworkDelay    float64  `yaml:"clock_network_delay"`
	ClockTransition      float64  `yaml:"clock_transition"`
	RelatedPinTransition float64  `yaml:"related_pin_transition"`
	SequentialPatterns   []string `yaml:"sequential_patterns"`
	PathCount            int      `yaml:"path_count"`
}

func writeManifest(dir string, cfg sta.Config, result *sta.Result) error {
	m := runManifest{
		LibraryPath:          cfg.LibraryPath,
		DesignPath:           cfg.DesignPath,
		SDCPath:              cfg.SDCPath,
		FFNamesPath:          cfg.FFNamesPath,
		ClassifyOverridePath: cfg.ClassifyOverridePath,
		ClockPeriod:          cfg.ClockPeriod,
		ClockRiseEdge:        cfg.ClockRiseEdge,
		ClockNetworkDelay:    cfg.ClockNetworkDelay,
		ClockTransition:      result.ClockTransition,
		RelatedPinTransition: cfg.RelatedPinTransition,
		SequentialPatterns:   result.SequentialPatterns,
		PathCount:            len(result.Paths),
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling run_manifest.yaml: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "run_manifest.yaml"), data, 0o644); err != nil {
		return fmt.Errorf("writing run_manifest.yaml: %w", err)
	}

	return nil
}
