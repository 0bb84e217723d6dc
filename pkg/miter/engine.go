package miter

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// VarID is a SAT variable allocated by an Engine, numbered from 1 (0 is
// reserved, mirroring DIMACS convention).
type VarID uint32

// Lit is a literal over a VarID: the variable itself, or its negation.
type Lit struct {
	v   VarID
	neg bool
}

// PosLit returns the positive literal of v.
func PosLit(v VarID) Lit { return Lit{v: v} }

// NegLit returns the negated literal of v.
func NegLit(v VarID) Lit { return Lit{v: v, neg: true} }

// Not returns the negation of l.
func (l Lit) Not() Lit { return Lit{v: l.v, neg: !l.neg} }

// Engine is the SAT engine collaborator: write-only, narrow, and
// deliberately ignorant of Tseitin encoding or BoolExprs. Driver is the
// only caller.
type Engine interface {
	// NewVar allocates and returns a fresh SAT variable.
	NewVar() VarID
	// AddClause asserts the disjunction of lits.
	AddClause(lits []Lit)
	// Solve returns true iff the accumulated clauses are satisfiable.
	Solve() bool
	// SolveAssuming returns true iff the accumulated clauses are
	// satisfiable under the additional unit assumptions in lits. The
	// assumptions do not persist across calls.
	SolveAssuming(lits []Lit) bool
	// Value returns v's value in the model of the most recent
	// satisfiable Solve/SolveAssuming call. Undefined otherwise.
	Value(v VarID) bool
}

// giniEngine binds Engine to github.com/go-air/gini, driven directly
// with dimacs-coded z.Lit values rather than through logic.C: the
// BoolExpr DAG already supplies the shared-subexpression structure
// logic.C would otherwise provide.
type giniEngine struct {
	g       *gini.Gini
	nextVar uint32
}

// NewGiniEngine returns an Engine backed by a fresh gini solver instance.
func NewGiniEngine() Engine {
	return &giniEngine{g: gini.New()}
}

func (e *giniEngine) NewVar() VarID {
	e.nextVar++
	return VarID(e.nextVar)
}

func (e *giniEngine) toZ(l Lit) z.Lit {
	n := int(l.v)
	if l.neg {
		n = -n
	}
	return z.Dimacs2Lit(n)
}

func (e *giniEngine) AddClause(lits []Lit) {
	for _, l := range lits {
		e.g.Add(e.toZ(l))
	}
	e.g.Add(z.LitNull)
}

func (e *giniEngine) Solve() bool {
	return e.g.Solve() == 1
}

func (e *giniEngine) SolveAssuming(lits []Lit) bool {
	zs := make([]z.Lit, len(lits))
	for i, l := range lits {
		zs[i] = e.toZ(l)
	}
	e.g.Assume(zs...)
	return e.g.Solve() == 1
}

func (e *giniEngine) Value(v VarID) bool {
	return e.g.Value(z.Dimacs2Lit(int(v)))
}
