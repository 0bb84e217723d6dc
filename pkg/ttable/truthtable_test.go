package ttable_test

import (
	"testing"

	"github.com/nanocoh/kepler-formal/pkg/ttable"
	"github.com/stretchr/testify/require"
)

func TestFromMaskAndEval(t *testing.T) {
	// AND2: row 0b11 (both inputs true) is the only 1.
	tbl, err := ttable.FromMask(2, 0b1000)
	require.NoError(t, err)
	require.Equal(t, uint8(2), tbl.Arity())
	require.False(t, tbl.Eval(0))
	require.False(t, tbl.Eval(1))
	require.False(t, tbl.Eval(2))
	require.True(t, tbl.Eval(3))
	require.False(t, tbl.AllZeros())
	require.False(t, tbl.AllOnes())
}

func TestFromMaskRejectsWideArity(t *testing.T) {
	_, err := ttable.FromMask(7, 0)
	require.ErrorIs(t, err, ttable.ErrBadArity)
}

func TestFromBitsRejectsRowCountMismatch(t *testing.T) {
	_, err := ttable.FromBits(2, []bool{true, false})
	require.ErrorIs(t, err, ttable.ErrRowCountMismatch)
}

func TestFromBitsWideTable(t *testing.T) {
	const k = 8
	rows := make([]bool, 1<<k)
	rows[1<<k-1] = true // all-ones row only
	tbl, err := ttable.FromBits(k, rows)
	require.NoError(t, err)
	require.Equal(t, uint8(k), tbl.Arity())
	for r := 0; r < 1<<k-1; r++ {
		require.False(t, tbl.Eval(uint32(r)), "row %d", r)
	}
	require.True(t, tbl.Eval(1<<k-1))
	require.False(t, tbl.AllZeros())
	require.False(t, tbl.AllOnes())
}

func TestAllZerosAllOnes(t *testing.T) {
	zero, err := ttable.FromMask(3, 0)
	require.NoError(t, err)
	require.True(t, zero.AllZeros())
	require.False(t, zero.AllOnes())

	one, err := ttable.FromMask(3, 0xFF)
	require.NoError(t, err)
	require.True(t, one.AllOnes())
	require.False(t, one.AllZeros())
}

func TestRelevantDetectsIgnoredInput(t *testing.T) {
	// f(a,b,c) = a AND b; ignores c. Rows where bit0=1,bit1=1 -> 1.
	rows := make([]bool, 8)
	for r := 0; r < 8; r++ {
		rows[r] = r&0b011 == 0b011
	}
	tbl, err := ttable.FromBits(3, rows)
	require.NoError(t, err)
	require.True(t, tbl.Relevant(0))
	require.True(t, tbl.Relevant(1))
	require.False(t, tbl.Relevant(2))
}
