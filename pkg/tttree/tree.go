package tttree

// borderLeaf locates a current Input leaf within the tree: leaf is the
// node itself; parent and pos identify where to splice a replacement
// (parent == nil means leaf is the tree's root).
type borderLeaf struct {
	parent *Node
	pos    int
	leaf   *Node
}

// TruthTableTree is a composable tree of truth-table nodes with
// external-input leaves. It tracks an ordered border-leaf list (every
// current Input leaf, in post-order), recomputed after each graft.
type TruthTableTree struct {
	root   *Node
	numExt int
	border []borderLeaf
}

// NewSingleInputTree returns a tree consisting of one Input leaf naming
// external input 0, the starting point of cone construction.
func NewSingleInputTree() *TruthTableTree {
	t, _ := FromRoot(NewInput(0), 1)
	return t
}

// FromRoot builds a TruthTableTree from an already-constructed Node tree
// and its external-input count.
func FromRoot(root *Node, numExt int) (*TruthTableTree, error) {
	if root == nil {
		return nil, ErrUninitializedTree
	}
	t := &TruthTableTree{root: root, numExt: numExt}
	t.rebuildBorder()
	return t, nil
}

// Size returns num_ext, the number of external inputs the tree currently
// depends on.
func (t *TruthTableTree) Size() int { return t.numExt }

// Root returns the tree's root node.
func (t *TruthTableTree) Root() *Node { return t.root }

// NumBorder returns the number of current border leaves.
func (t *TruthTableTree) NumBorder() int { return len(t.border) }

// BorderExtIndex returns the external index of the border leaf at
// position i in the current border-leaf list.
func (t *TruthTableTree) BorderExtIndex(i int) (int, error) {
	if i < 0 || i >= len(t.border) {
		return 0, ErrBorderIndexOutOfRange
	}
	return t.border[i].leaf.extIndex, nil
}

// rebuildBorder recomputes the border-leaf list by a post-order traversal
// of the current tree.
func (t *TruthTableTree) rebuildBorder() {
	t.border = t.border[:0]
	var walk func(n, parent *Node, pos int)
	walk = func(n, parent *Node, pos int) {
		if n.kind == kindInput {
			t.border = append(t.border, borderLeaf{parent: parent, pos: pos, leaf: n})
			return
		}
		for i, c := range n.children {
			walk(c, n, i)
		}
	}
	walk(t.root, nil, 0)
}

// Eval recursively composes the tree's tables over extInputs, an
// assignment of one Boolean per external input, and returns the root's
// output. len(extInputs) must equal Size().
func (t *TruthTableTree) Eval(extInputs []bool) (bool, error) {
	if len(extInputs) != t.numExt {
		return false, ErrEvalArityMismatch
	}
	return evalNode(t.root, extInputs)
}

func evalNode(n *Node, ext []bool) (bool, error) {
	if n.kind == kindInput {
		if n.extIndex < 0 || n.extIndex >= len(ext) {
			return false, ErrExtIndexOutOfRange
		}
		return ext[n.extIndex], nil
	}

	var row uint32
	for i, c := range n.children {
		v, err := evalNode(c, ext)
		if err != nil {
			return false, err
		}
		if v {
			row |= uint32(1) << uint(i)
		}
	}
	return n.table.Eval(row), nil
}
