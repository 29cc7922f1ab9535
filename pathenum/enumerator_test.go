package pathenum_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/gosta/classify"
	"github.com/katalvlaran/gosta/library"
	"github.com/katalvlaran/gosta/netlist"
	"github.com/katalvlaran/gosta/pathenum"
	"github.com/stretchr/testify/require"
)

func ffAndOrLib(t *testing.T) *library.Library {
	t.Helper()

	lib := library.NewLibrary()
	require.NoError(t, lib.AddCell(&library.Cell{
		Name: "DFRTP",
		Pins: map[string]*library.Pin{
			"D": {Name: "D", Direction: library.DirectionInput},
			"CLK": {Name: "CLK", Direction: library.DirectionClock},
			"Q": {Name: "Q", Direction: library.DirectionOutput},
		},
	}))
	require.NoError(t, lib.AddCell(&library.Cell{
		Name: "AND",
		Pins: map[string]*library.Pin{
			"A": {Name: "A", Direction: library.DirectionInput},
			"Y": {Name: "Y", Direction: library.DirectionOutput},
		},
	}))
	require.NoError(t, lib.AddCell(&library.Cell{
		Name: "OR",
		Pins: map[string]*library.Pin{
			"A": {Name: "A", Direction: library.DirectionInput},
			"Y": {Name: "Y", Direction: library.DirectionOutput},
		},
	}))
	lib.Freeze()

	return lib
}

// TestEnumerateRR_SingleChain covers spec.md §8 scenario 5:
// FF1 -> AND -> OR -> FF2 enumerates exactly one RR path.
func TestEnumerateRR_SingleChain(t *testing.T) {
	t.Parallel()

	lib := ffAndOrLib(t)
	g, err := netlist.Build(lib, netlist.BuildInput{
		Instances: []netlist.InstanceDecl{
			{Name: "FF1", CellName: "DFRTP", Ports: []netlist.PortBinding{{Pin: "Q", Net: "n1"}}},
			{Name: "AND1", CellName: "AND", Ports: []netlist.PortBinding{{Pin: "A", Net: "n1"}, {Pin: "Y", Net: "n2"}}},
			{Name: "OR1", CellName: "OR", Ports: []netlist.PortBinding{{Pin: "A", Net: "n2"}, {Pin: "Y", Net: "n3"}}},
			{Name: "FF2", CellName: "DFRTP", Ports: []netlist.PortBinding{{Pin: "D", Net: "n3"}}},
		},
	})
	require.NoError(t, err)

	classifier := classify.NewSubstringClassifier([]string{"DFRTP"})
	enum := pathenum.NewEnumerator(g, classifier)

	results, err := enum.EnumerateRR(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, pathenum.RR, results[0].Class)
	require.Len(t, results[0].Path, 4)
	require.Equal(t, netlist.PathAttributes{"A", "A", "D"}, results[0].Attributes)
}

func TestEnumerateIRAndRO(t *testing.T) {
	t.Parallel()

	lib := ffAndOrLib(t)
	g, err := netlist.Build(lib, netlist.BuildInput{
		Instances: []netlist.InstanceDecl{
			{Name: "AND1", CellName: "AND", Ports: []netlist.PortBinding{{Pin: "A", Net: "pi"}, {Pin: "Y", Net: "n1"}}},
			{Name: "FF1", CellName: "DFRTP", Ports: []netlist.PortBinding{{Pin: "D", Net: "n1"}, {Pin: "Q", Net: "n2"}}},
			{Name: "OR1", CellName: "OR", Ports: []netlist.PortBinding{{Pin: "A", Net: "n2"}, {Pin: "Y", Net: "po"}}},
		},
		PrimaryInputs:  []string{"pi"},
		PrimaryOutputs: []string{"po"},
	})
	require.NoError(t, err)

	classifier := classify.NewSubstringClassifier([]string{"DFRTP"})
	enum := pathenum.NewEnumerator(g, classifier)

	ir, err := enum.EnumerateIR(context.Background())
	require.NoError(t, err)
	require.Len(t, ir, 1)
	require.Equal(t, pathenum.IR, ir[0].Class)

	ro, err := enum.EnumerateRO(context.Background())
	require.NoError(t, err)
	require.Len(t, ro, 1)
	require.Equal(t, pathenum.RO, ro[0].Class)
}

func TestEnumerate_Cancellation(t *testing.T) {
	t.Parallel()

	lib := ffAndOrLib(t)
	g, err := netlist.Build(lib, netlist.BuildInput{
		Instances: []netlist.InstanceDecl{
			{Name: "FF1", CellName: "DFRTP", Ports: []netlist.PortBinding{{Pin: "Q", Net: "n1"}}},
			{Name: "FF2", CellName: "DFRTP", Ports: []netlist.PortBinding{{Pin: "D", Net: "n1"}}},
		},
	})
	require.NoError(t, err)

	classifier := classify.NewSubstringClassifier([]string{"DFRTP"})
	enum := pathenum.NewEnumerator(g, classifier)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = enum.EnumerateRR(ctx)
	require.Error(t, err)
}
