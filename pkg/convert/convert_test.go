package convert_test

import (
	"testing"

	"github.com/nanocoh/kepler-formal/pkg/boolexpr"
	"github.com/nanocoh/kepler-formal/pkg/convert"
	"github.com/nanocoh/kepler-formal/pkg/ttable"
	"github.com/nanocoh/kepler-formal/pkg/tttree"
	"github.com/stretchr/testify/require"
)

func and2Table(t *testing.T) ttable.TruthTable {
	tbl, err := ttable.FromMask(2, 0b1000)
	require.NoError(t, err)
	return tbl
}

func or2Table(t *testing.T) ttable.TruthTable {
	tbl, err := ttable.FromMask(2, 0b1110)
	require.NoError(t, err)
	return tbl
}

// TestConvertAgreesWithTreeEval checks Tree -> BoolExpr agreement for
// every assignment of a 2-input AND tree.
func TestConvertAgreesWithTreeEval(t *testing.T) {
	a := tttree.NewInput(0)
	b := tttree.NewInput(1)
	node, err := tttree.NewTableNode(and2Table(t), []*tttree.Node{a, b})
	require.NoError(t, err)
	tree, err := tttree.FromRoot(node, 2)
	require.NoError(t, err)

	tbl := boolexpr.NewTable(4)
	expr, err := convert.Convert(tree, []string{"a", "b"}, tbl)
	require.NoError(t, err)

	for _, av := range []bool{true, false} {
		for _, bv := range []bool{true, false} {
			treeVal, err := tree.Eval([]bool{av, bv})
			require.NoError(t, err)
			exprVal, err := boolexpr.Eval(expr, map[string]bool{"a": av, "b": bv})
			require.NoError(t, err)
			require.Equal(t, treeVal, exprVal)
		}
	}
}

// TestConvertPrunesIrrelevantInput checks support pruning: f(a,b,c) =
// a AND b must not reference c in the emitted expression, even though
// the tree's outer node has arity 3.
func TestConvertPrunesIrrelevantInput(t *testing.T) {
	// 3-input table ignoring input 2 (c): output = bit0 & bit1.
	rows := make([]bool, 8)
	for m := 0; m < 8; m++ {
		rows[m] = m&0b011 == 0b011
	}
	wideAnd, err := ttable.FromBits(3, rows)
	require.NoError(t, err)

	a := tttree.NewInput(0)
	b := tttree.NewInput(1)
	c := tttree.NewInput(2)
	node, err := tttree.NewTableNode(wideAnd, []*tttree.Node{a, b, c})
	require.NoError(t, err)
	tree, err := tttree.FromRoot(node, 3)
	require.NoError(t, err)

	tbl := boolexpr.NewTable(4)
	expr, err := convert.Convert(tree, []string{"a", "b", "c"}, tbl)
	require.NoError(t, err)

	// Evaluating with c present vs. absent from env must agree, since c
	// must not appear as a Var in expr.
	got1, err := boolexpr.Eval(expr, map[string]bool{"a": true, "b": true, "c": true})
	require.NoError(t, err)
	got2, err := boolexpr.Eval(expr, map[string]bool{"a": true, "b": true, "c": false})
	require.NoError(t, err)
	require.True(t, got1)
	require.True(t, got2)

	got3, err := boolexpr.Eval(expr, map[string]bool{"a": true, "b": true})
	require.NoError(t, err, "expr must not reference c at all after support pruning")
	require.True(t, got3)
}

func TestConvertFoldsConstantTables(t *testing.T) {
	zero, err := ttable.FromMask(1, 0b00)
	require.NoError(t, err)
	one, err := ttable.FromMask(1, 0b11)
	require.NoError(t, err)

	for _, tc := range []struct {
		name string
		tbl  ttable.TruthTable
		want bool
	}{
		{"all-zeros", zero, false},
		{"all-ones", one, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			leaf := tttree.NewInput(0)
			node, err := tttree.NewTableNode(tc.tbl, []*tttree.Node{leaf})
			require.NoError(t, err)
			tree, err := tttree.FromRoot(node, 1)
			require.NoError(t, err)

			bt := boolexpr.NewTable(4)
			expr, err := convert.Convert(tree, []string{"x"}, bt)
			require.NoError(t, err)

			got, err := boolexpr.Eval(expr, map[string]bool{})
			require.NoError(t, err, "folded constant must not reference any variable")
			require.Equal(t, tc.want, got)
		})
	}
}

func TestConvertRejectsVarNamesArityMismatch(t *testing.T) {
	tree := tttree.NewSingleInputTree()
	bt := boolexpr.NewTable(4)
	_, err := convert.Convert(tree, []string{"a", "b"}, bt)
	require.ErrorIs(t, err, convert.ErrVarNamesArityMismatch)
}

func TestConvertSharesCommonSubexpressions(t *testing.T) {
	// Two independent ORs over the same two named inputs must intern to
	// the same BoolExpr node.
	bt := boolexpr.NewTable(4)

	buildOr := func() *tttree.TruthTableTree {
		a := tttree.NewInput(0)
		b := tttree.NewInput(1)
		node, err := tttree.NewTableNode(or2Table(t), []*tttree.Node{a, b})
		require.NoError(t, err)
		tree, err := tttree.FromRoot(node, 2)
		require.NoError(t, err)
		return tree
	}

	expr1, err := convert.Convert(buildOr(), []string{"a", "b"}, bt)
	require.NoError(t, err)
	expr2, err := convert.Convert(buildOr(), []string{"a", "b"}, bt)
	require.NoError(t, err)
	require.Same(t, expr1, expr2)
}
