package pathenum

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gosta/classify"
	"github.com/katalvlaran/gosta/internal/gostalog"
	"github.com/katalvlaran/gosta/netlist"
)

// Enumerator finds startpoints/endpoints in a netlist.Graph and
// enumerates the acyclic paths between them by bounded BFS.
type Enumerator struct {
	graph      *netlist.Graph
	classifier classify.Classifier
}

// NewEnumerator builds an Enumerator over g, using classifier to
// identify sequential instances.
func NewEnumerator(g *netlist.Graph, classifier classify.Classifier) *Enumerator {
	return &Enumerator{graph: g, classifier: classifier}
}

// frontierItem is one BFS queue entry: the path travelled so far and
// its parallel attribute sequence.
type frontierItem struct {
	path  netlist.Path
	attrs netlist.PathAttributes
}

// pathKey returns a cheap, collision-free key for a node-ID sequence,
// used for the duplicate-path suppression spec.md's design notes
// require (dedup by full sequence, never by endpoint pair alone).
func pathKey(p netlist.Path) string {
	var b strings.Builder
	for i, id := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(id)))
	}

	return b.String()
}

func (e *Enumerator) isSequential(id netlist.NodeID) bool {
	n := e.graph.Node(id)
	return n.Kind == netlist.Instance && e.classifier.IsSequential(n.Cell)
}

// EnumerateRR finds reg-reg paths: sequential output to sequential input.
func (e *Enumerator) EnumerateRR(ctx context.Context) ([]Result, error) {
	return e.enumerate(ctx, RR,
		func(id netlist.NodeID) bool { return e.isSequential(id) },
		func(id netlist.NodeID) bool { return e.isSequential(id) },
	)
}

// EnumerateIR finds in-reg paths: primary input to sequential input.
func (e *Enumerator) EnumerateIR(ctx context.Context) ([]Result, error) {
	return e.enumerate(ctx, IR,
		func(id netlist.NodeID) bool { return e.graph.Node(id).Kind == netlist.PrimaryInput },
		func(id netlist.NodeID) bool { return e.isSequential(id) },
	)
}

// EnumerateRO finds reg-out paths: sequential output to primary output.
func (e *Enumerator) EnumerateRO(ctx context.Context) ([]Result, error) {
	return e.enumerate(ctx, RO,
		func(id netlist.NodeID) bool { return e.isSequential(id) },
		func(id netlist.NodeID) bool { return e.graph.Node(id).Kind == netlist.PrimaryOutput },
	)
}

// EnumerateAll runs all three classes and concatenates their results.
func (e *Enumerator) EnumerateAll(ctx context.Context) ([]Result, error) {
	var all []Result
	for _, fn := range []func(context.Context) ([]Result, error){e.EnumerateRR, e.EnumerateIR, e.EnumerateRO} {
		res, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		all = append(all, res...)
	}

	return all, nil
}

// enumerate runs bounded BFS from every node matching isStart,
// terminating a branch the moment it reaches a node matching isEnd.
func (e *Enumerator) enumerate(ctx context.Context, class Class, isStart, isEnd func(netlist.NodeID) bool) ([]Result, error) {
	if e.graph == nil {
		return nil, ErrGraphNil
	}

	var results []Result

	for id := 0; id < e.graph.NodeCount(); id++ {
		start := netlist.NodeID(id)
		if !isStart(start) {
			continue
		}

		found, err := e.bfsFromSource(ctx, start, isEnd)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			// Local recovery per spec.md §7: a path whose first stage
			// attribute is absent carries no arc to identify and is
			// skipped rather than failing the run.
			if len(f.attrs) == 0 || f.attrs[0] == "" {
				gostalog.Log("pathenum: skipping %s path with empty startpoint attribute: %v", class, f.path)
				continue
			}
			results = append(results, Result{Class: class, Path: f.path, Attributes: f.attrs})
		}
	}

	return results, nil
}

// bfsFromSource performs the per-source BFS described in spec.md
// §4.4: the frontier holds (node, path_so_far); a neighbor matching
// isEnd emits a complete path without further extension; otherwise,
// if the neighbor is not already on the path and the extended path
// has not been seen before, it is enqueued.
func (e *Enumerator) bfsFromSource(ctx context.Context, start netlist.NodeID, isEnd func(netlist.NodeID) bool) ([]frontierItem, error) {
	var emitted []frontierItem
	seen := map[string]bool{pathKey(netlist.Path{start}): true}
	queue := []frontierItem{{path: netlist.Path{start}, attrs: netlist.PathAttributes{}}}

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("pathenum: %w", ctx.Err())
		default:
		}

		item := queue[0]
		queue = queue[1:]
		cur := item.path[len(item.path)-1]

		for _, fe := range e.graph.Successors(cur) {
			if onPath(item.path, fe.Successor) {
				continue
			}

			candidate := append(append(netlist.Path{}, item.path...), fe.Successor)
			candidateAttrs := append(append(netlist.PathAttributes{}, item.attrs...), fe.ReceiverPin)
			key := pathKey(candidate)

			if isEnd(fe.Successor) {
				if !seen[key] {
					seen[key] = true
					emitted = append(emitted, frontierItem{path: candidate, attrs: candidateAttrs})
				}
				continue
			}

			if !seen[key] {
				seen[key] = true
				queue = append(queue, frontierItem{path: candidate, attrs: candidateAttrs})
			}
		}
	}

	return emitted, nil
}

func onPath(path netlist.Path, id netlist.NodeID) bool {
	for _, p := range path {
		if p == id {
			return true
		}
	}

	return false
}
