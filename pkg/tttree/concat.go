package tttree

import "github.com/nanocoh/kepler-formal/pkg/ttable"

// Concat grafts tbl onto the border leaf numbered borderIndex:
//
//  1. tbl becomes a new Table node of arity k = tbl.Arity().
//  2. Its child 0 is a fresh Input leaf reusing the replaced leaf's
//     external index.
//  3. Its children 1..k-1 are fresh Input leaves with new external
//     indices num_ext, num_ext+1, ..., num_ext+k-2.
//  4. The new Table node is spliced in place of the old leaf.
//  5. num_ext grows by k-1 and the border-leaf list is rebuilt.
func (t *TruthTableTree) Concat(borderIndex int, tbl ttable.TruthTable) error {
	if borderIndex < 0 || borderIndex >= len(t.border) {
		return ErrBorderIndexOutOfRange
	}
	k := int(tbl.Arity())
	if k == 0 {
		return ErrZeroArityTable
	}

	bl := t.border[borderIndex]
	e := bl.leaf.extIndex

	children := make([]*Node, k)
	children[0] = NewInput(e)
	for i := 1; i < k; i++ {
		children[i] = NewInput(t.numExt + i - 1)
	}
	newNode, err := NewTableNode(tbl, children)
	if err != nil {
		return err
	}

	if bl.parent == nil {
		t.root = newNode
	} else {
		bl.parent.children[bl.pos] = newNode
	}
	t.numExt += k - 1
	t.rebuildBorder()
	return nil
}

// ConcatFull grafts tables[i] onto the border leaf that was at position i
// in the border-leaf list as it stood before any of the grafts in this
// call began, not onto the repeatedly-shifting border leaf 0. len(tables)
// must not exceed the tree's border-leaf count at the time of the call.
func (t *TruthTableTree) ConcatFull(tables []ttable.TruthTable) error {
	if len(tables) > len(t.border) {
		return ErrConcatFullCountMismatch
	}

	originals := make([]*Node, len(tables))
	for i := range tables {
		originals[i] = t.border[i].leaf
	}

	for i, tbl := range tables {
		idx, err := t.findBorderIndex(originals[i])
		if err != nil {
			return err
		}
		if err := t.Concat(idx, tbl); err != nil {
			return err
		}
	}
	return nil
}

func (t *TruthTableTree) findBorderIndex(leaf *Node) (int, error) {
	for i, b := range t.border {
		if b.leaf == leaf {
			return i, nil
		}
	}
	return 0, ErrBorderLeafGone
}
