package miter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nanocoh/kepler-formal/pkg/boolexpr"
)

// TestEncodeSharesVariablePerName checks that two references to the same
// variable name intern to the same SAT variable: one SAT variable per
// distinct Var name.
func TestEncodeSharesVariablePerName(t *testing.T) {
	tbl := boolexpr.NewTable(4)
	a1 := tbl.Var("a")
	a2 := tbl.Var("a")
	require.Same(t, a1, a2, "hash-consing should already have unified these")

	eng := NewGiniEngine()
	enc := newEncoder(eng)

	l1, err := enc.encode(a1)
	require.NoError(t, err)
	l2, err := enc.encode(a2)
	require.NoError(t, err)
	require.Equal(t, l1, l2)
}

// TestEncodeNodeOnce checks that a node reached twice via different
// parents (DAG sharing) is encoded exactly once.
func TestEncodeNodeOnce(t *testing.T) {
	tbl := boolexpr.NewTable(4)
	a, b, c := tbl.Var("a"), tbl.Var("b"), tbl.Var("c")
	shared := tbl.And(a, b)
	top := tbl.Or(tbl.And(shared, c), shared)

	eng := NewGiniEngine()
	enc := newEncoder(eng)
	_, err := enc.encode(top)
	require.NoError(t, err)

	require.Contains(t, enc.nodeToVar, shared)
}

func TestEncodeConstants(t *testing.T) {
	tbl := boolexpr.NewTable(4)
	eng := NewGiniEngine()
	enc := newEncoder(eng)

	tLit, err := enc.encode(tbl.True())
	require.NoError(t, err)
	fLit, err := enc.encode(tbl.False())
	require.NoError(t, err)
	require.Equal(t, tLit.Not(), fLit)
}
