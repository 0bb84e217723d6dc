package miter

import "github.com/nanocoh/kepler-formal/pkg/boolexpr"

// Pair is one matched output's pair of per-netlist BoolExprs, keyed by the
// hierarchical path the two sides agreed on during PI/PO matching.
type Pair struct {
	Path string
	A, B *boolexpr.BoolExpr
}

// Build constructs the XOR-of-outputs miter: OR over every pair's
// XOR(A,B). An empty pairs list yields False.
func Build(tbl *boolexpr.Table, pairs []Pair) *boolexpr.BoolExpr {
	m := tbl.False()
	for _, p := range pairs {
		m = tbl.Or(m, tbl.Xor(p.A, p.B))
	}
	return m
}

// BuildSingle constructs the single-output miter XOR(a,b) used by the
// driver's per-output diagnosis pass.
func BuildSingle(tbl *boolexpr.Table, a, b *boolexpr.BoolExpr) *boolexpr.BoolExpr {
	return tbl.Xor(a, b)
}
