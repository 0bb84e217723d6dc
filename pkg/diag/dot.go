package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nanocoh/kepler-formal/pkg/boolexpr"
)

// WriteDOT writes a Graphviz digraph named graphName describing expr's
// BoolExpr DAG to w: one node per distinct *BoolExpr reached from expr,
// one edge per operand reference, each node visited once regardless of
// how many parents share it.
func WriteDOT(w io.Writer, graphName string, expr *boolexpr.BoolExpr) error {
	fmt.Fprintf(w, "digraph %s {\n", quoteID(graphName))

	ids := make(map[*boolexpr.BoolExpr]int)
	var order []*boolexpr.BoolExpr
	var walk func(n *boolexpr.BoolExpr)
	walk = func(n *boolexpr.BoolExpr) {
		if _, seen := ids[n]; seen {
			return
		}
		ids[n] = len(ids)
		order = append(order, n)
		for _, c := range operandsOf(n) {
			walk(c)
		}
	}
	walk(expr)

	for _, n := range order {
		fmt.Fprintf(w, "  n%d [label=%q];\n", ids[n], labelOf(n))
		for _, c := range operandsOf(n) {
			fmt.Fprintf(w, "  n%d -> n%d;\n", ids[n], ids[c])
		}
	}

	fmt.Fprintln(w, "}")
	return nil
}

// WriteFile writes expr's .dot diagnostic artifact to
// "<prefix>_<outputName><outputID>_<side>.dot".
func WriteFile(prefix, outputName string, outputID, side int, expr *boolexpr.BoolExpr) (path string, err error) {
	path = fmt.Sprintf("%s_%s%d_%d.dot", prefix, outputName, outputID, side)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDOT(f, fmt.Sprintf("%s%d_side%d", sanitize(outputName), outputID, side), expr); err != nil {
		return "", err
	}
	return path, nil
}

func operandsOf(n *boolexpr.BoolExpr) []*boolexpr.BoolExpr {
	switch n.Op() {
	case boolexpr.OpNot:
		return []*boolexpr.BoolExpr{n.Child()}
	case boolexpr.OpAnd, boolexpr.OpOr, boolexpr.OpXor:
		a, b := n.Operands()
		return []*boolexpr.BoolExpr{a, b}
	default:
		return nil
	}
}

func labelOf(n *boolexpr.BoolExpr) string {
	switch n.Op() {
	case boolexpr.OpVar:
		return n.Name()
	case boolexpr.OpConst:
		if n.BoolValue() {
			return "1"
		}
		return "0"
	default:
		return n.Op().String()
	}
}

func quoteID(s string) string {
	return `"` + strings.ReplaceAll(sanitize(s), `"`, `\"`) + `"`
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
