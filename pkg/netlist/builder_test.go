package netlist_test

import (
	"testing"

	"github.com/nanocoh/kepler-formal/pkg/netlist"
	"github.com/stretchr/testify/require"
)

// buildNand builds: y = NAND(a, b).
func buildNand(t *testing.T) *netlist.Design {
	b := netlist.NewBuilder("nand_top")
	b.Port("a", netlist.Input)
	b.Port("b", netlist.Input)
	b.Port("y", netlist.Output)
	b.Instance("u1", netlist.NAND2())
	b.Connect("a", "u1.A")
	b.Connect("b", "u1.B")
	b.Connect("u1.Y", "y")
	d, err := b.Build()
	require.NoError(t, err)
	return d
}

func TestBuildClassifiesTopLevelCutPoints(t *testing.T) {
	d := buildNand(t)
	fn := netlist.FlatView(d)

	require.True(t, fn.IsPrimaryInput("a"))
	require.True(t, fn.IsPrimaryInput("b"))
	require.False(t, fn.IsPrimaryInput("y"))

	outs := fn.PrimaryOutputs()
	require.Equal(t, []string{"y"}, outs)

	cell, outTerm, ok := fn.DriverCell("y")
	require.True(t, ok)
	require.Equal(t, "Y", outTerm)
	require.Equal(t, "u1", cell.InstPath)

	tbl, ok := fn.TruthTable(cell)
	require.True(t, ok)
	require.Equal(t, uint8(2), tbl.Arity())

	inputs := fn.InputPaths(cell)
	require.Equal(t, []string{"u1.A", "u1.B"}, inputs)
	cellA, _, ok := fn.DriverCell("u1.A")
	require.False(t, ok)
	require.Nil(t, cellA)
	require.True(t, fn.IsPrimaryInput("u1.A"))
}

func TestBuildRejectsUnconnectedInput(t *testing.T) {
	b := netlist.NewBuilder("broken")
	b.Port("a", netlist.Input)
	b.Port("y", netlist.Output)
	b.Instance("u1", netlist.AND2())
	b.Connect("a", "u1.A")
	b.Connect("u1.Y", "y")
	_, err := b.Build()
	require.ErrorIs(t, err, netlist.ErrUnconnectedInput)
}

func TestBuildRejectsMultipleDrivers(t *testing.T) {
	b := netlist.NewBuilder("broken")
	b.Port("a", netlist.Input)
	b.Port("b", netlist.Input)
	b.Instance("u1", netlist.BUF())
	b.Connect("a", "u1.A")
	b.Connect("b", "u1.A") // two drivers (a and b) on the same net
	_, err := b.Build()
	require.ErrorIs(t, err, netlist.ErrNetMultipleDrivers)
}

// TestDFFBoundariesAreCutPoints covers cut-point policy cases (b): a load
// driven by Q is a primary input (a free variable at the cone boundary,
// since Q belongs to a sequential cell), and D is a primary output of the
// cone (its driving cone must be extracted on its own).
func TestDFFBoundariesAreCutPoints(t *testing.T) {
	b := netlist.NewBuilder("reg_top")
	b.Port("d_in", netlist.Input)
	b.Port("clk", netlist.Input)
	b.Port("y", netlist.Output)
	b.Instance("ff", netlist.DFF())
	b.Instance("u1", netlist.BUF())
	b.Connect("d_in", "ff.D")
	b.Connect("clk", "ff.CLK")
	b.Connect("ff.Q", "u1.A")
	b.Connect("u1.Y", "y")
	d, err := b.Build()
	require.NoError(t, err)

	fn := netlist.FlatView(d)
	ff := fn.Leaves()[0]
	require.True(t, fn.IsSequential(ff))

	require.True(t, fn.IsPrimaryInput("u1.A")) // u1.A is driven by Q: cut point
	name, ok := fn.PrimaryInputName("u1.A")
	require.True(t, ok)
	require.Equal(t, "ff.Q", name)

	outs := fn.PrimaryOutputs()
	require.Contains(t, outs, "y")
	require.Contains(t, outs, "ff.D")
}
