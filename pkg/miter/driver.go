package miter

import (
	"context"

	"github.com/nanocoh/kepler-formal/pkg/boolexpr"
)

// State is one of the SAT driver's five states:
// Idle -> Encoding -> Solving -> Diagnosing? -> Done.
type State int

const (
	StateIdle State = iota
	StateEncoding
	StateSolving
	StateDiagnosing
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateEncoding:
		return "Encoding"
	case StateSolving:
		return "Solving"
	case StateDiagnosing:
		return "Diagnosing"
	case StateDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Verdict is the driver's final answer: Equivalent is true iff the miter
// was UNSAT. FailingOutputs names, in pair order, every output path whose
// single-output miter was independently satisfiable.
// FailingPairs carries the same outputs' full Pair (including both sides'
// BoolExprs), for callers that want to emit a diagnostic artifact without
// re-deriving the expression.
type Verdict struct {
	Equivalent     bool
	FailingOutputs []string
	FailingPairs   []Pair
}

// EngineFactory constructs a fresh Engine, used by Driver to spin up an
// independent single-output problem per candidate during diagnosis;
// diagnosis re-solves a reduced problem rather than reusing the full
// miter's accumulated clauses.
type EngineFactory func() Engine

// Driver is a single-use SAT driver: one Run call encodes and solves one
// equivalence problem. The engine is treated as non-reentrant.
type Driver struct {
	eng     Engine
	factory EngineFactory
	tbl     *boolexpr.Table
	state   State
}

// NewDriver returns a Driver that encodes onto eng for the main miter
// solve, and uses factory to build a fresh Engine per single-output
// diagnosis problem. tbl is the BoolExpr intern table pairs were built
// through.
func NewDriver(eng Engine, factory EngineFactory, tbl *boolexpr.Table) *Driver {
	return &Driver{eng: eng, factory: factory, tbl: tbl, state: StateIdle}
}

// State returns the driver's current state.
func (d *Driver) State() State { return d.state }

// Run encodes the XOR-miter of pairs, solves it, and, only if SAT,
// diagnoses which individual outputs differ. ctx's deadline is honored
// between solves (a running solve itself is not interrupted). It is an
// error to call Run more than once on the same Driver.
func (d *Driver) Run(ctx context.Context, pairs []Pair) (Verdict, error) {
	if d.state != StateIdle {
		return Verdict{}, ErrAlreadyEncoded
	}

	d.state = StateEncoding
	root := Build(d.tbl, pairs)
	enc := newEncoder(d.eng)
	lit, err := enc.encode(root)
	if err != nil {
		return Verdict{}, err
	}
	d.eng.AddClause([]Lit{lit})

	d.state = StateSolving
	if err := ctx.Err(); err != nil {
		return Verdict{}, err
	}
	if !d.eng.Solve() {
		d.state = StateDone
		return Verdict{Equivalent: true}, nil
	}

	d.state = StateDiagnosing
	failingPairs, err := d.diagnose(ctx, pairs)
	if err != nil {
		return Verdict{}, err
	}
	failing := make([]string, len(failingPairs))
	for i, p := range failingPairs {
		failing[i] = p.Path
	}

	d.state = StateDone
	return Verdict{Equivalent: false, FailingOutputs: failing, FailingPairs: failingPairs}, nil
}

// diagnose re-encodes and solves one single-output miter per pair,
// localizing exactly which outputs witness the difference found by the
// full miter's SAT result.
func (d *Driver) diagnose(ctx context.Context, pairs []Pair) ([]Pair, error) {
	var failing []Pair
	for _, p := range pairs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		eng := d.factory()
		enc := newEncoder(eng)
		lit, err := enc.encode(BuildSingle(d.tbl, p.A, p.B))
		if err != nil {
			return nil, err
		}
		if eng.SolveAssuming([]Lit{lit}) {
			failing = append(failing, p)
		}
	}
	return failing, nil
}
