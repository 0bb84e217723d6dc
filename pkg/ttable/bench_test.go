package ttable_test

import (
	"testing"

	"github.com/nanocoh/kepler-formal/pkg/ttable"
)

func BenchmarkMergeWideComposition(b *testing.B) {
	rows := make([]bool, 1<<4)
	for i := range rows {
		rows[i] = i%3 == 0
	}
	child, err := ttable.FromBits(4, rows)
	if err != nil {
		b.Fatal(err)
	}
	parentRows := make([]bool, 1<<4)
	parent, err := ttable.FromBits(4, parentRows)
	if err != nil {
		b.Fatal(err)
	}
	parents := []ttable.TruthTable{parent, parent, parent, parent}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ttable.Merge(child, parents); err != nil {
			b.Fatal(err)
		}
	}
}
