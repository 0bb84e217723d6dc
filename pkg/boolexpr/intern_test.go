package boolexpr_test

import (
	"sync"
	"testing"

	"github.com/nanocoh/kepler-formal/pkg/boolexpr"
	"github.com/stretchr/testify/require"
)

func TestHashConsingIdempotence(t *testing.T) {
	tbl := boolexpr.NewTable(4)
	a := tbl.Var("a")
	b := tbl.Var("b")

	ab := tbl.And(a, b)
	ba := tbl.And(b, a)
	require.Same(t, ab, ba, "And(a,b) and And(b,a) must intern to the same node")

	ob := tbl.Or(a, b)
	bo := tbl.Or(b, a)
	require.Same(t, ob, bo)

	xb := tbl.Xor(a, b)
	xb2 := tbl.Xor(b, a)
	require.Same(t, xb, xb2)

	nn := tbl.Not(tbl.Not(a))
	require.Same(t, a, nn, "Not(Not(x)) must be identically x")
}

func TestVarIsInternedByName(t *testing.T) {
	tbl := boolexpr.NewTable(4)
	require.Same(t, tbl.Var("x"), tbl.Var("x"))
}

func TestConstantsAreUnique(t *testing.T) {
	tbl := boolexpr.NewTable(4)
	require.Same(t, tbl.True(), tbl.True())
	require.Same(t, tbl.False(), tbl.False())
	require.NotSame(t, tbl.True(), tbl.False())
}

func TestConcurrentInternConverges(t *testing.T) {
	tbl := boolexpr.NewTable(8)
	a := tbl.Var("a")
	b := tbl.Var("b")

	const n = 200
	results := make([]*boolexpr.BoolExpr, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				results[i] = tbl.And(a, b)
			} else {
				results[i] = tbl.And(b, a)
			}
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		require.Same(t, results[0], results[i], "all concurrent interns of a commutative op must converge on one node")
	}
}
