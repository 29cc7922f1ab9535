package verilog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gosta/netlist"
	"github.com/katalvlaran/gosta/verilog"
)

func TestPreprocess_BitSelectAndHierarchy(t *testing.T) {
	t.Parallel()

	got := verilog.Preprocess(`\bus[3] .field wire bus[3].field`)
	require.Equal(t, "bus__3 .field wire bus__3___field", got)
}

func TestPreprocess_StripsBackslashes(t *testing.T) {
	t.Parallel()

	got := verilog.Preprocess(`\escaped_name `)
	require.Equal(t, "escaped_name ", got)
}

const sampleModule = `
module top (a, b, clk, y);
  input a, b, clk;
  output y;
  wire n1, n2;

  DFRTP FF1 (.CLK(clk), .D(a), .Q(n1));
  AND2 U1 (.A(n1), .B(b), .Y(n2));
  DFRTP FF2 (.CLK(clk), .D(n2), .Q(y));
endmodule
`

func TestParse(t *testing.T) {
	t.Parallel()

	in, err := verilog.Parse(sampleModule)
	require.NoError(t, err)

	require.ElementsMatch(t, []string{"a", "b", "clk"}, in.PrimaryInputs)
	require.ElementsMatch(t, []string{"y"}, in.PrimaryOutputs)
	require.Len(t, in.Instances, 3)

	require.Equal(t, "FF1", in.Instances[0].Name)
	require.Equal(t, "DFRTP", in.Instances[0].CellName)
	require.Contains(t, in.Instances[0].Ports, netlist.PortBinding{Pin: "CLK", Net: "clk"})
}

func TestParse_MissingModule(t *testing.T) {
	t.Parallel()

	_, err := verilog.Parse("DFRTP FF1 (.CLK(clk), .D(a), .Q(n1));")
	require.ErrorIs(t, err, verilog.ErrNoModule)
}

func TestParse_MalformedInstance(t *testing.T) {
	t.Parallel()

	_, err := verilog.Parse("module top (a); input a; DFRTP FF1;")
	require.ErrorIs(t, err, verilog.ErrMalformedInstance)
}
