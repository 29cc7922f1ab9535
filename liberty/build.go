package liberty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gosta/library"
	"github.com/katalvlaran/gosta/lut"
)

// Build walks a parsed Group tree and constructs a library.Library,
// per spec.md §3.1/§4.2. It recurses into every group looking for
// "cell" groups regardless of nesting depth, so a library wrapper
// group's exact name and unmodeled sibling groups (operating
// conditions, wire-load models) never need special-casing.
func Build(root *Group) (*library.Library, error) {
	lib := library.NewLibrary()

	for _, cellGroup := range findAll(root, "cell") {
		cell, err := buildCell(cellGroup)
		if err != nil {
			return nil, err
		}
		if err := lib.AddCell(cell); err != nil {
			return nil, err
		}
	}

	lib.Freeze()

	return lib, nil
}

// findAll collects every descendant group of the given type, in
// source order, not recursing further once a match is found (Liberty
// never nests a "cell" group inside another "cell" group).
func findAll(g *Group, typ string) []*Group {
	var out []*Group
	for _, c := range g.Children {
		if c.Type == typ {
			out = append(out, c)
			continue
		}
		out = append(out, findAll(c, typ)...)
	}

	return out
}

func buildCell(g *Group) (*library.Cell, error) {
	if len(g.Args) == 0 {
		return nil, fmt.Errorf("liberty: cell group with no name: %w", ErrMissingAttribute)
	}
	cell := &library.Cell{Name: g.Args[0], Pins: map[string]*library.Pin{}}

	for _, pinGroup := range g.ChildrenOf("pin") {
		pin, err := buildPin(pinGroup)
		if err != nil {
			return nil, fmt.Errorf("liberty: cell %q: %w", cell.Name, err)
		}
		cell.Pins[pin.Name] = pin
	}

	return cell, nil
}

func buildPin(g *Group) (*library.Pin, error) {
	if len(g.Args) == 0 {
		return nil, fmt.Errorf("liberty: pin group with no name: %w", ErrMissingAttribute)
	}
	pin := &library.Pin{Name: g.Args[0]}

	dirStr, ok := g.Attr("direction")
	if !ok {
		return nil, fmt.Errorf("liberty: pin %q: %w", pin.Name, ErrMissingAttribute)
	}
	switch strings.ToLower(dirStr) {
	case "input":
		pin.Direction = library.DirectionInput
	case "output":
		pin.Direction = library.DirectionOutput
	default:
		return nil, fmt.Errorf("liberty: pin %q: unknown direction %q: %w", pin.Name, dirStr, ErrSyntax)
	}
	if clk, ok := g.Attr("clock"); ok && strings.EqualFold(clk, "true") {
		pin.Direction = library.DirectionClock
	}

	if capStr, ok := g.Attr("capacitance"); ok {
		v, err := strconv.ParseFloat(capStr, 64)
		if err != nil {
			return nil, fmt.Errorf("liberty: pin %q: capacitance: %w", pin.Name, err)
		}
		pin.Capacitance = v
	}

	for _, timingGroup := range g.ChildrenOf("timing") {
		arc, err := buildArc(timingGroup)
		if err != nil {
			return nil, fmt.Errorf("liberty: pin %q: %w", pin.Name, err)
		}
		pin.TimingArcs = append(pin.TimingArcs, arc)
	}

	return pin, nil
}

var timingTypeNames = map[string]library.TimingType{
	"rising_edge":   library.RisingEdge,
	"falling_edge":  library.FallingEdge,
	"setup_rising":  library.SetupRising,
	"setup_falling": library.SetupFalling,
	"hold_rising":   library.HoldRising,
	"hold_falling":  library.HoldFalling,
}

var timingSenseNames = map[string]library.TimingSense{
	"positive_unate": library.PositiveUnate,
	"negative_unate": library.NegativeUnate,
	"non_unate":      library.NonUnate,
}

var tableGroupNames = map[string]library.TableKind{
	"cell_rise":       library.CellRise,
	"cell_fall":       library.CellFall,
	"rise_transition": library.RiseTransition,
	"fall_transition": library.FallTransition,
	"rise_constraint": library.RiseConstraint,
	"fall_constraint": library.FallConstraint,
}

func buildArc(g *Group) (*library.TimingArc, error) {
	related, ok := g.Attr("related_pin")
	if !ok {
		return nil, fmt.Errorf("liberty: timing group: %w", ErrMissingAttribute)
	}

	arc := &library.TimingArc{
		RelatedPin:  related,
		TimingType:  library.RisingEdge,
		TimingSense: library.PositiveUnate,
		Tables:      map[library.TableKind]*lut.Table{},
	}

	if tt, ok := g.Attr("timing_type"); ok {
		kind, known := timingTypeNames[strings.ToLower(tt)]
		if !known {
			return nil, fmt.Errorf("liberty: unknown timing_type %q: %w", tt, ErrSyntax)
		}
		arc.TimingType = kind
	}
	if ts, ok := g.Attr("timing_sense"); ok {
		sense, known := timingSenseNames[strings.ToLower(ts)]
		if !known {
			return nil, fmt.Errorf("liberty: unknown timing_sense %q: %w", ts, ErrSyntax)
		}
		arc.TimingSense = sense
	}

	for _, child := range g.Children {
		kind, ok := tableGroupNames[child.Type]
		if !ok {
			continue
		}
		table, err := buildTable(child)
		if err != nil {
			return nil, fmt.Errorf("liberty: table %q: %w", child.Type, err)
		}
		arc.Tables[kind] = table
	}

	return arc, nil
}

func buildTable(g *Group) (*lut.Table, error) {
	idx1Raw, ok := g.Attr("index_1")
	if !ok {
		return nil, fmt.Errorf("index_1: %w", ErrMissingAttribute)
	}
	idx2Raw, ok := g.Attr("index_2")
	if !ok {
		return nil, fmt.Errorf("index_2: %w", ErrMissingAttribute)
	}
	rows, ok := g.Attrs["values"]
	if !ok {
		return nil, fmt.Errorf("values: %w", ErrMissingAttribute)
	}

	index1, err := parseFloatList(idx1Raw)
	if err != nil {
		return nil, fmt.Errorf("index_1: %w", err)
	}
	index2, err := parseFloatList(idx2Raw)
	if err != nil {
		return nil, fmt.Errorf("index_2: %w", err)
	}

	var values []float64
	for _, row := range rows {
		rowVals, err := parseFloatList(row)
		if err != nil {
			return nil, fmt.Errorf("values row %q: %w", row, err)
		}
		values = append(values, rowVals...)
	}

	return lut.NewTable(index1, index2, values)
}

func parseFloatList(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}
