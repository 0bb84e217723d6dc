package poclause

import (
	"github.com/pkg/errors"

	"github.com/nanocoh/kepler-formal/pkg/boolexpr"
	"github.com/nanocoh/kepler-formal/pkg/cone"
	"github.com/nanocoh/kepler-formal/pkg/convert"
	"github.com/nanocoh/kepler-formal/pkg/netlist"
)

// Output is one primary output's extracted function: the terminal path it
// was enumerated under, its ordered list of primary-input names (the
// variable naming the resulting BoolExpr depends on), and the BoolExpr
// itself.
type Output struct {
	Path   string
	Inputs []string
	Expr   *boolexpr.BoolExpr
}

// Build enumerates fn's primary outputs in stable hierarchical-path order
// and produces one Output per output terminal, interning every BoolExpr
// node through tbl. ceiling bounds the arity of any individual driver
// cell's truth table the cone builder will graft; <= 0 selects the cone
// package's default (ttable.MaxArity).
func Build(fn netlist.FlatNetlist, tbl *boolexpr.Table, ceiling int) ([]Output, error) {
	paths := fn.PrimaryOutputs()
	outputs := make([]Output, 0, len(paths))

	for _, path := range paths {
		out, err := buildOne(fn, tbl, path, ceiling)
		if err != nil {
			return nil, errors.Wrapf(err, "poclause: building output %q", path)
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

// BuildOne extracts and converts a single primary output, for callers
// (e.g. equiv's per-output worker pool) that need one output's function
// without paying for the full enumeration.
func BuildOne(fn netlist.FlatNetlist, tbl *boolexpr.Table, path string, ceiling int) (Output, error) {
	out, err := buildOne(fn, tbl, path, ceiling)
	if err != nil {
		return Output{}, errors.Wrapf(err, "poclause: building output %q", path)
	}
	return out, nil
}

func buildOne(fn netlist.FlatNetlist, tbl *boolexpr.Table, path string, ceiling int) (Output, error) {
	b := cone.NewBuilder(fn)
	b.Ceiling = ceiling
	tree, inputs, err := b.Build(path)
	if err != nil {
		return Output{}, err
	}

	var expr *boolexpr.BoolExpr
	if root := tree.Root(); !root.IsInput() && root.Table().AllZeros() {
		expr = tbl.False()
	} else if root := tree.Root(); !root.IsInput() && root.Table().AllOnes() {
		expr = tbl.True()
	} else {
		expr, err = convert.Convert(tree, inputs, tbl)
		if err != nil {
			return Output{}, err
		}
	}

	return Output{Path: path, Inputs: inputs, Expr: expr}, nil
}
