package miter

import "github.com/nanocoh/kepler-formal/pkg/boolexpr"

// encoder holds the Tseitin encoding state: the node-to-variable and
// name-to-variable maps, plus the reserved constant-true variable. It
// guarantees each BoolExpr node is encoded exactly once per SAT problem.
type encoder struct {
	eng Engine

	nodeToVar map[*boolexpr.BoolExpr]VarID
	nameToVar map[string]VarID

	constTrue VarID // asserted true once; constFalse is its negation
}

func newEncoder(eng Engine) *encoder {
	e := &encoder{
		eng:       eng,
		nodeToVar: make(map[*boolexpr.BoolExpr]VarID),
		nameToVar: make(map[string]VarID),
	}
	e.constTrue = eng.NewVar()
	eng.AddClause([]Lit{PosLit(e.constTrue)})
	return e
}

// encodeFrame is one level of the encoder's explicit post-order work
// stack; iteration keeps deep cones from overflowing the call stack.
type encodeFrame struct {
	n        *boolexpr.BoolExpr
	childIdx int
}

// varNameOf returns the stable external-variable identity of expr if it
// is an OpVar node; used only to share name_to_var across call sites that
// need a literal for a leaf without walking the whole DAG.
func varNameOf(expr *boolexpr.BoolExpr) (string, bool) {
	if expr.Op() == boolexpr.OpVar {
		return expr.Name(), true
	}
	return "", false
}

// encode walks root iteratively in post-order, allocating one fresh SAT
// variable per distinct internal node and per distinct Var name, and
// emitting the Tseitin clauses. It returns the literal representing
// root.
func (e *encoder) encode(root *boolexpr.BoolExpr) (Lit, error) {
	if root == nil {
		return Lit{}, ErrNilExpr
	}

	stack := []encodeFrame{{n: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		n := top.n

		if _, done := e.nodeToVar[n]; done {
			stack = stack[:len(stack)-1]
			continue
		}

		children := childrenOf(n)
		if top.childIdx < len(children) {
			c := children[top.childIdx]
			top.childIdx++
			if _, done := e.nodeToVar[c]; !done {
				stack = append(stack, encodeFrame{n: c})
			}
			continue
		}

		e.assignAndClause(n)
		stack = stack[:len(stack)-1]
	}

	return e.litOf(root), nil
}

// childrenOf mirrors boolexpr.Eval's own traversal helper; duplicated
// here since boolexpr does not export its internal one.
func childrenOf(n *boolexpr.BoolExpr) []*boolexpr.BoolExpr {
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

// litOf returns the literal representing n, which must already be
// assigned a variable (for OpVar/OpConst nodes, on first reference; for
// internal nodes, after assignAndClause has run).
func (e *encoder) litOf(n *boolexpr.BoolExpr) Lit {
	switch n.Op() {
	case boolexpr.OpVar:
		name, _ := varNameOf(n)
		v, ok := e.nameToVar[name]
		if !ok {
			v = e.eng.NewVar()
			e.nameToVar[name] = v
		}
		e.nodeToVar[n] = v
		return PosLit(v)
	case boolexpr.OpConst:
		if n.BoolValue() {
			return PosLit(e.constTrue)
		}
		return NegLit(e.constTrue)
	default:
		v := e.nodeToVar[n]
		return PosLit(v)
	}
}

// assignAndClause allocates a fresh variable for internal node n (if it
// is not a Var/Const leaf, which litOf handles lazily) and emits the
// clauses enforcing v <-> op(children).
func (e *encoder) assignAndClause(n *boolexpr.BoolExpr) {
	switch n.Op() {
	case boolexpr.OpVar, boolexpr.OpConst:
		e.litOf(n)
		return
	}

	v := e.eng.NewVar()
	e.nodeToVar[n] = v
	vLit := PosLit(v)

	switch n.Op() {
	case boolexpr.OpNot:
		a := e.litOf(n.Child())
		e.eng.AddClause([]Lit{vLit.Not(), a.Not()})
		e.eng.AddClause([]Lit{vLit, a})
	case boolexpr.OpAnd:
		x, y := n.Operands()
		a, b := e.litOf(x), e.litOf(y)
		e.eng.AddClause([]Lit{vLit.Not(), a})
		e.eng.AddClause([]Lit{vLit.Not(), b})
		e.eng.AddClause([]Lit{vLit, a.Not(), b.Not()})
	case boolexpr.OpOr:
		x, y := n.Operands()
		a, b := e.litOf(x), e.litOf(y)
		e.eng.AddClause([]Lit{a.Not(), vLit})
		e.eng.AddClause([]Lit{b.Not(), vLit})
		e.eng.AddClause([]Lit{vLit.Not(), a, b})
	case boolexpr.OpXor:
		x, y := n.Operands()
		a, b := e.litOf(x), e.litOf(y)
		e.eng.AddClause([]Lit{vLit.Not(), a, b})
		e.eng.AddClause([]Lit{vLit.Not(), a.Not(), b.Not()})
		e.eng.AddClause([]Lit{vLit, a.Not(), b})
		e.eng.AddClause([]Lit{vLit, a, b.Not()})
	}
}
