package diag_test

import (
	"os"

	"github.com/nanocoh/kepler-formal/pkg/boolexpr"
	"github.com/nanocoh/kepler-formal/pkg/diag"
)

// ExampleWriteDOT prints a NAND2 expression's diagnostic graph.
func ExampleWriteDOT() {
	tbl := boolexpr.NewTable(4)
	a, b := tbl.Var("a"), tbl.Var("b")
	y := tbl.Not(tbl.And(a, b))

	if err := diag.WriteDOT(os.Stdout, "y", y); err != nil {
		panic(err)
	}
	// Output:
	// digraph "y" {
	//   n0 [label="Not"];
	//   n0 -> n1;
	//   n1 [label="And"];
	//   n1 -> n2;
	//   n1 -> n3;
	//   n2 [label="a"];
	//   n3 [label="b"];
	// }
}
