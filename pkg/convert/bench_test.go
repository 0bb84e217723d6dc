package convert_test

import (
	"testing"

	"github.com/nanocoh/kepler-formal/pkg/boolexpr"
	"github.com/nanocoh/kepler-formal/pkg/convert"
	"github.com/nanocoh/kepler-formal/pkg/ttable"
	"github.com/nanocoh/kepler-formal/pkg/tttree"
)

// BenchmarkConvertWideTree measures conversion cost for a tree with many
// external inputs, representative of a wide logic cone.
func BenchmarkConvertWideTree(b *testing.B) {
	and2, err := ttable.FromMask(2, 0b1000)
	if err != nil {
		b.Fatal(err)
	}

	tree := tttree.NewSingleInputTree()
	for tree.Size() < 64 {
		if err := tree.Concat(0, and2); err != nil {
			b.Fatal(err)
		}
	}
	names := make([]string, tree.Size())
	for i := range names {
		names[i] = string(rune('a' + i%26))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bt := boolexpr.NewTable(16)
		if _, err := convert.Convert(tree, names, bt); err != nil {
			b.Fatal(err)
		}
	}
}
