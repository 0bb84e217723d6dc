package equiv_test

import (
	"context"
	"fmt"

	"github.com/nanocoh/kepler-formal/pkg/equiv"
	"github.com/nanocoh/kepler-formal/pkg/netlist"
)

// ExampleChecker_Check checks a NAND2 against an equivalent AND2+INV
// rendering of the same function.
func ExampleChecker_Check() {
	side0 := netlist.NewBuilder("side0").
		Port("a", netlist.Input).Port("b", netlist.Input).Port("y", netlist.Output)
	side0.Instance("u1", netlist.NAND2())
	side0.Connect("a", "u1.A").Connect("b", "u1.B").Connect("u1.Y", "y")
	d0, err := side0.Build()
	if err != nil {
		panic(err)
	}

	side1 := netlist.NewBuilder("side1").
		Port("a", netlist.Input).Port("b", netlist.Input).Port("y", netlist.Output)
	side1.Instance("u1", netlist.AND2())
	side1.Instance("u2", netlist.INV())
	side1.Connect("a", "u1.A").Connect("b", "u1.B").Connect("u1.Y", "u2.A").Connect("u2.Y", "y")
	d1, err := side1.Build()
	if err != nil {
		panic(err)
	}

	db := netlist.NewDB()
	v, err := equiv.NewChecker(0, 0, 0).Check(context.Background(), db, d0, d1)
	if err != nil {
		panic(err)
	}
	fmt.Println(v.Result)
	// Output: equivalent
}
