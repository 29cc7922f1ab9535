package sta

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/katalvlaran/gosta/classify"
	"github.com/katalvlaran/gosta/delay"
	"github.com/katalvlaran/gosta/internal/gostalog"
	"github.com/katalvlaran/gosta/liberty"
	"github.com/katalvlaran/gosta/library"
	"github.com/katalvlaran/gosta/netlist"
	"github.com/katalvlaran/gosta/pathenum"
	"github.com/katalvlaran/gosta/report"
	"github.com/katalvlaran/gosta/sdc"
	"github.com/katalvlaran/gosta/verilog"
)

// Run builds the library, netlist, and classifier from cfg's input
// paths, enumerates every timing path, computes its delay map, and
// renders the full set of report blocks and CSV rows, in the
// deterministic order spec.md §5 requires.
//
// Run validates every input path up front, so a missing file is
// reported once as ErrInputNotFound rather than surfacing as a
// generic open error from deep inside a front-end.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	for _, p := range []string{cfg.LibraryPath, cfg.DesignPath, cfg.SDCPath, cfg.FFNamesPath, cfg.ClassifyOverridePath} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("sta.Run: %s: %w", p, ErrInputNotFound)
		}
	}

	lib, err := loadLibrary(cfg.LibraryPath)
	if err != nil {
		return nil, fmt.Errorf("sta.Run: library: %w", err)
	}

	graph, err := loadNetlist(cfg.DesignPath, lib)
	if err != nil {
		return nil, fmt.Errorf("sta.Run: netlist: %w", err)
	}

	cons, err := loadConstraints(cfg.SDCPath)
	if err != nil {
		return nil, fmt.Errorf("sta.Run: constraints: %w", err)
	}

	classifier, err := loadClassifier(cfg)
	if err != nil {
		return nil, fmt.Errorf("sta.Run: sequential-cell names: %w", err)
	}

	patterns := classifier.Patterns()
	gostalog.Log("sta.Run: netlist=%d nodes, sequential patterns=%v", graph.NodeCount(), patterns)

	enumResults, err := pathenum.NewEnumerator(graph, classifier).EnumerateAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("sta.Run: enumeration: %w", err)
	}
	sortResults(graph, enumResults)

	dcfg := delay.Config{
		ClockPinNames:        cfg.ClockPinNames,
		ClockTransition:      cons.ClockTransition,
		RelatedPinTransition: cfg.RelatedPinTransition,
		InputTransition:      cfg.InputTransition,
		InputDirection:       cfg.InputDirection,
		DefaultOutputLoad:    cfg.DefaultOutputLoad,
		WorkerLimit:          cfg.WorkerLimit,
	}
	engine := delay.NewEngine(lib, graph, classifier, dcfg)

	inputs := make([]delay.PathInput, len(enumResults))
	for i, r := range enumResults {
		inputs[i] = delay.PathInput{Path: r.Path, Attributes: r.Attributes}
	}

	delays, err := engine.ComputeAll(ctx, inputs)
	if err != nil {
		return nil, fmt.Errorf("sta.Run: delay computation: %w", err)
	}

	rcfg := report.Config{
		ClockRiseEdge:     cfg.ClockRiseEdge,
		ClockNetworkDelay: cfg.ClockNetworkDelay,
		ClockUncertainty:  cons.ClockSetupUncertainty,
		ClockPeriod:       cfg.ClockPeriod,
	}
	reporter := report.NewReporter(graph, rcfg)

	paths := make([]PathReport, 0, len(enumResults))
	for _, r := range enumResults {
		pd, ok := delays[delay.PathKey(r.Path)]
		if !ok || len(pd.StageDelays) == 0 {
			// A path with no computed stage (a primary input wired
			// straight into a sequential endpoint) is not reported.
			continue
		}

		id := "path" + strconv.Itoa(len(paths)+1)

		var buf bytes.Buffer
		if err := reporter.RenderText(&buf, pd); err != nil {
			return nil, fmt.Errorf("sta.Run: render %s: %w", id, err)
		}

		row, err := reporter.Summarize(id, pd)
		if err != nil {
			return nil, fmt.Errorf("sta.Run: summarize %s: %w", id, err)
		}

		paths = append(paths, PathReport{ID: id, Text: buf.String(), Row: row})
	}

	return &Result{
		Paths:              paths,
		SequentialPatterns: patterns,
		ClockTransition:    cons.ClockTransition,
	}, nil
}

func loadLibrary(path string) (*library.Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	root, err := liberty.Parse(string(data))
	if err != nil {
		return nil, err
	}

	return liberty.Build(root)
}

func loadNetlist(path string, lib *library.Library) (*netlist.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	src := verilog.Preprocess(string(data))
	in, err := verilog.Parse(src)
	if err != nil {
		return nil, err
	}

	return netlist.Build(lib, in)
}

// loadClassifier builds the sequential-cell classifier from
// cfg.ClassifyOverridePath when set, falling back to cfg.FFNamesPath
// otherwise — the two are alternative sources for the same substring
// list (spec.md §6 vs. SPEC_FULL.md §B's YAML override).
func loadClassifier(cfg Config) (*classify.SubstringClassifier, error) {
	if cfg.ClassifyOverridePath != "" {
		return classify.LoadYAMLOverride(cfg.ClassifyOverridePath)
	}

	patterns, err := classify.LoadFFNames(cfg.FFNamesPath)
	if err != nil {
		return nil, err
	}

	return classify.NewSubstringClassifier(patterns), nil
}

func loadConstraints(path string) (sdc.Constraints, error) {
	f, err := os.Open(path)
	if err != nil {
		return sdc.Constraints{}, err
	}
	defer f.Close()

	return sdc.Parse(f)
}

// sortResults orders enumeration results by (class, startpoint name,
// endpoint name, full node sequence), per spec.md §5's determinism
// requirement, in place.
func sortResults(g *netlist.Graph, results []pathenum.Result) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Class != b.Class {
			return a.Class < b.Class
		}
		startA, startB := g.Node(a.Path[0]).Name, g.Node(b.Path[0]).Name
		if startA != startB {
			return startA < startB
		}
		endA, endB := g.Node(a.Path[len(a.Path)-1]).Name, g.Node(b.Path[len(b.Path)-1]).Name
		if endA != endB {
			return endA < endB
		}

		return sequenceLess(a.Path, b.Path)
	})
}

func sequenceLess(a, b netlist.Path) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}
