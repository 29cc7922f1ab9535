package delay

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gosta/classify"
	"github.com/katalvlaran/gosta/library"
	"github.com/katalvlaran/gosta/netlist"
)

// Engine computes per-path delay maps over a fixed Library and
// NetlistGraph. Both are read-only after construction, so an Engine is
// safe to share across the worker pool ComputeAll spins up, per
// spec.md §5's shared-resource policy.
type Engine struct {
	lib        *library.Library
	graph      *netlist.Graph
	classifier classify.Classifier
	cfg        Config
}

// NewEngine builds an Engine over lib and g, classifying startpoints
// and endpoints with classifier.
func NewEngine(lib *library.Library, g *netlist.Graph, classifier classify.Classifier, cfg Config) *Engine {
	return &Engine{lib: lib, graph: g, classifier: classifier, cfg: cfg}
}

func (e *Engine) isSequential(id netlist.NodeID) bool {
	n := e.graph.Node(id)
	return n.Kind == netlist.Instance && e.classifier.IsSequential(n.Cell)
}

// ComputePath computes the delay map for a single path, per spec.md
// §4.5.5.
//
// Stage 0 (startpoint): if the startpoint is a sequential instance,
// its clock-to-Q delay seeds the running transition; otherwise (a
// primary input) the configured input transition seeds it directly,
// contributing no incremental delay of its own.
// Intermediate stages: each interior instance's combinational delay,
// fed by the receiver pin recorded in Attributes and the load at that
// instance from the FanoutIndex.
// Final stage: if the endpoint is sequential, the setup constraint
// time at its constrained input pin, checked against the configured
// related-pin transition (Config.RelatedPinTransition), not the
// clock-to-Q clock transition used at Stage 0.
func (e *Engine) ComputePath(in PathInput) (*PathDelay, error) {
	path, attrs := in.Path, in.Attributes
	if len(path) == 0 {
		return nil, fmt.Errorf("delay: ComputePath: %w: empty path", ErrInvalidInput)
	}
	last := len(path) - 1

	startSeq := e.isSequential(path[0])
	endSeq := last > 0 && e.isSequential(path[last])

	pd := &PathDelay{Path: path, Attributes: attrs, StartedSeq: startSeq}

	var tau float64
	var dir library.Transition

	// Stage 0.
	if startSeq {
		cell := e.graph.Node(path[0]).Cell
		load, err := LoadAt(e.lib, e.graph, path[0], e.cfg.DefaultOutputLoad)
		if err != nil {
			return nil, err
		}
		res, _, err := ClockToQ(e.lib, cell, e.cfg.ClockPinNames, e.cfg.ClockTransition, load)
		if err != nil {
			return nil, err
		}
		tau, dir = res.OutputTransition, res.Direction
		pd.StageDelays = append(pd.StageDelays, res.CellDelay)
		pd.StageNodes = append(pd.StageNodes, path[0])
	} else {
		tau, dir = e.cfg.InputTransition, e.cfg.InputDirection
	}

	// Intermediate stages: nodes path[1..last-1].
	for i := 1; i < last; i++ {
		cell := e.graph.Node(path[i]).Cell
		load, err := LoadAt(e.lib, e.graph, path[i], e.cfg.DefaultOutputLoad)
		if err != nil {
			return nil, err
		}
		res, err := Combinational(e.lib, cell, attrs[i-1], tau, dir, load)
		if err != nil {
			return nil, err
		}
		tau, dir = res.OutputTransition, res.Direction
		pd.StageDelays = append(pd.StageDelays, res.CellDelay)
		pd.StageNodes = append(pd.StageNodes, path[i])
	}

	for _, d := range pd.StageDelays {
		pd.Arrival += d
	}
	pd.Arrival = round6(pd.Arrival)

	// Final stage.
	if endSeq {
		cell := e.graph.Node(path[last]).Cell
		clockPin, err := e.lib.ClockPin(cell)
		if err != nil {
			return nil, fmt.Errorf("delay: ComputePath(endpoint=%d): %w", path[last], err)
		}
		setup, err := Constraint(e.lib, cell, attrs[last-1], clockPin, CheckSetup, e.cfg.RelatedPinTransition, tau)
		if err != nil {
			return nil, err
		}
		pd.HasSetupCheck = true
		pd.SetupConstraint = setup
	}

	return pd, nil
}

// PathKey returns a cheap, collision-free key for a node-ID sequence,
// matching pathenum's own key format so the two packages' maps stay
// addressable by the same string.
func PathKey(p netlist.Path) string {
	var b strings.Builder
	for i, id := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(id)))
	}

	return b.String()
}

// ComputeAll computes delay maps for every path in paths concurrently,
// per spec.md §5: paths share the read-only Library and NetlistGraph
// without locking, work is distributed over a bounded worker pool, the
// first error cancels the remaining tasks, and results are aggregated
// into a path-keyed map by writing to disjoint slice slots (a
// reduction, not a shared-map write) before the final single-threaded
// merge.
func (e *Engine) ComputeAll(ctx context.Context, paths []PathInput) (map[string]*PathDelay, error) {
	results := make([]*PathDelay, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	if e.cfg.WorkerLimit > 0 {
		g.SetLimit(e.cfg.WorkerLimit)
	}

	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			pd, err := e.ComputePath(p)
			if err != nil {
				return err
			}
			results[i] = pd

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]*PathDelay, len(results))
	for _, pd := range results {
		out[PathKey(pd.Path)] = pd
	}

	return out, nil
}
