package poclause_test

import (
	"fmt"

	"github.com/nanocoh/kepler-formal/pkg/boolexpr"
	"github.com/nanocoh/kepler-formal/pkg/netlist"
	"github.com/nanocoh/kepler-formal/pkg/poclause"
)

// ExampleBuild enumerates the single output of a NAND2 design.
func ExampleBuild() {
	b := netlist.NewBuilder("top")
	b.Port("a", netlist.Input)
	b.Port("b", netlist.Input)
	b.Port("y", netlist.Output)
	b.Instance("u1", netlist.NAND2())
	b.Connect("a", "u1.A")
	b.Connect("b", "u1.B")
	b.Connect("u1.Y", "y")

	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	fn := netlist.FlatView(d)

	outs, err := poclause.Build(fn, boolexpr.NewTable(4), 0)
	if err != nil {
		panic(err)
	}
	fmt.Println(outs[0].Path)
	// Output: y
}
