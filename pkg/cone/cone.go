package cone

import (
	"github.com/nanocoh/kepler-formal/pkg/netlist"
	"github.com/nanocoh/kepler-formal/pkg/ttable"
	"github.com/nanocoh/kepler-formal/pkg/tttree"
)

// Builder extracts the transitive combinational fan-in cone of a target
// terminal back to the netlist's cut points.
type Builder struct {
	fn netlist.FlatNetlist

	// Ceiling bounds the arity of any individual driver cell's truth
	// table this builder will graft onto the tree. <= 0 selects
	// ttable.MaxArity.
	Ceiling int
}

// NewBuilder returns a LogicConeBuilder reading from fn, with the default
// arity ceiling (ttable.MaxArity). Set the returned Builder's Ceiling
// field to override it.
func NewBuilder(fn netlist.FlatNetlist) *Builder {
	return &Builder{fn: fn}
}

func (b *Builder) ceiling() int {
	if b.Ceiling <= 0 {
		return ttable.MaxArity
	}
	return b.Ceiling
}

// Build extracts the cone of target: a TruthTableTree whose root computes
// target's value, and the names of the cut points the tree depends on,
// in external-index order: inputs[e] names the tree's external input e,
// the order tree.Eval and convert.Convert expect.
func (b *Builder) Build(target string) (*tttree.TruthTableTree, []string, error) {
	tree := tttree.NewSingleInputTree()
	pathOf := map[int]string{0: target}

	for {
		resolvedAll := true
		for i := 0; i < tree.NumBorder(); i++ {
			e, err := tree.BorderExtIndex(i)
			if err != nil {
				return nil, nil, err
			}
			path := pathOf[e]
			if b.fn.IsPrimaryInput(path) {
				continue
			}
			resolvedAll = false

			cell, _, ok := b.fn.DriverCell(path)
			if !ok {
				return nil, nil, ErrNoDriver
			}
			tbl, ok := b.fn.TruthTable(cell)
			if !ok {
				return nil, nil, ErrDriverNotCombinational
			}
			if int(tbl.Arity()) > b.ceiling() {
				return nil, nil, ErrCellArityTooWide
			}
			inputPaths := b.fn.InputPaths(cell)

			before := tree.Size()
			if err := tree.Concat(i, tbl); err != nil {
				return nil, nil, err
			}
			pathOf[e] = inputPaths[0]
			for j := 1; j < len(inputPaths); j++ {
				pathOf[before+j-1] = inputPaths[j]
			}
			break
		}
		if resolvedAll {
			break
		}
	}

	inputs := make([]string, tree.NumBorder())
	for i := range inputs {
		e, err := tree.BorderExtIndex(i)
		if err != nil {
			return nil, nil, err
		}
		name, ok := b.fn.PrimaryInputName(pathOf[e])
		if !ok {
			return nil, nil, ErrNoDriver
		}
		inputs[e] = name
	}
	return tree, inputs, nil
}
