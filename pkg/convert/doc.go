// Package convert translates a tttree.TruthTableTree into a hash-consed
// boolexpr.BoolExpr, the bridge between truth-table composition and the
// Boolean-expression DAG the miter and Tseitin encoder operate on.
//
// The converter walks the tree once in post-order, memoizing per Node so
// that a node reachable from two parents (there are none inside a single
// TruthTableTree, which is a tree, but the technique also protects against
// future callers that pass a DAG) is translated only once. Each Table node
// is pruned to its actual support before the sum-of-minterms expansion, so
// an irrelevant input never appears in the emitted expression.
package convert
