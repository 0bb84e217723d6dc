package boolexpr_test

import (
	"fmt"

	"github.com/nanocoh/kepler-formal/pkg/boolexpr"
)

func ExampleTable_And() {
	tbl := boolexpr.NewTable(0)
	a := tbl.Var("a")
	b := tbl.Var("b")
	fmt.Println(tbl.And(a, b) == tbl.And(b, a))
	// Output: true
}
