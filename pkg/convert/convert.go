package convert

import (
	"github.com/nanocoh/kepler-formal/pkg/boolexpr"
	"github.com/nanocoh/kepler-formal/pkg/tttree"
)

// frame is one level of the explicit post-order work stack: the node being
// visited and how many of its children have already been pushed.
type frame struct {
	n        *tttree.Node
	childIdx int
}

// Convert translates tree into a BoolExpr rooted at the image of tree's
// root, interning every node through tbl. varNames gives the external
// variable identity for each of the tree's num_ext external inputs, in
// external-index order.
//
// The translation is iterative (an explicit stack, not recursion) so that
// a deep cone cannot overflow the Go call stack, and memoizes per tree
// Node so no node's body is computed twice.
func Convert(tree *tttree.TruthTableTree, varNames []string, tbl *boolexpr.Table) (*boolexpr.BoolExpr, error) {
	if len(varNames) != tree.Size() {
		return nil, ErrVarNamesArityMismatch
	}

	memo := make(map[*tttree.Node]*boolexpr.BoolExpr)
	stack := []frame{{n: tree.Root()}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		n := top.n

		if n.IsInput() {
			if _, ok := memo[n]; !ok {
				memo[n] = tbl.Var(varNames[n.ExtIndex()])
			}
			stack = stack[:len(stack)-1]
			continue
		}

		children := n.Children()
		if top.childIdx < len(children) {
			child := children[top.childIdx]
			top.childIdx++
			if _, ok := memo[child]; !ok {
				stack = append(stack, frame{n: child})
			}
			continue
		}

		if _, ok := memo[n]; !ok {
			memo[n] = exprForTable(n, children, memo, tbl)
		}
		stack = stack[:len(stack)-1]
	}

	return memo[tree.Root()], nil
}

// exprForTable builds expr(n) for a Table node whose children have already
// been converted and memoized, per the sum-of-minterms-over-the-support
// construction.
func exprForTable(n *tttree.Node, children []*tttree.Node, memo map[*tttree.Node]*boolexpr.BoolExpr, tbl *boolexpr.Table) *boolexpr.BoolExpr {
	table := n.Table()
	if table.AllZeros() {
		return tbl.False()
	}
	if table.AllOnes() {
		return tbl.True()
	}

	k := int(table.Arity())
	relevant := make([]int, 0, k)
	for j := 0; j < k; j++ {
		if table.Relevant(j) {
			relevant = append(relevant, j)
		}
	}

	childExprs := make([]*boolexpr.BoolExpr, k)
	for i, c := range children {
		childExprs[i] = memo[c]
	}

	sum := tbl.False()
	rows := uint32(1) << uint(k)
	for m := uint32(0); m < rows; m++ {
		if !table.Eval(m) {
			continue
		}
		term := tbl.True()
		for _, j := range relevant {
			lit := childExprs[j]
			if m&(uint32(1)<<uint(j)) == 0 {
				lit = tbl.Not(lit)
			}
			term = tbl.And(term, lit)
		}
		sum = tbl.Or(sum, term)
	}
	return sum
}
