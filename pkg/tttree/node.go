package tttree

import "github.com/nanocoh/kepler-formal/pkg/ttable"

// kind tags the two arms of a Node.
type kind uint8

const (
	kindInput kind = iota
	kindTable
)

// Node is a tagged-variant node of a TruthTableTree: either an Input leaf
// naming an external input by index, or a Table node carrying a
// ttable.TruthTable and exactly arity(table) ordered children, where
// child i drives input i of the table.
type Node struct {
	kind     kind
	extIndex int
	table    ttable.TruthTable
	children []*Node
}

// IsInput reports whether n is an Input leaf.
func (n *Node) IsInput() bool { return n.kind == kindInput }

// ExtIndex returns the external input index of an Input leaf (undefined
// for Table nodes).
func (n *Node) ExtIndex() int { return n.extIndex }

// Table returns the truth table of a Table node (undefined for Input
// leaves).
func (n *Node) Table() ttable.TruthTable { return n.table }

// Children returns the ordered children of a Table node (nil for Input
// leaves).
func (n *Node) Children() []*Node { return n.children }

// NewInput returns a new Input leaf naming external input extIndex.
func NewInput(extIndex int) *Node {
	return &Node{kind: kindInput, extIndex: extIndex}
}

// NewTableNode returns a new Table node wrapping tbl with the given
// children. len(children) must equal tbl.Arity().
func NewTableNode(tbl ttable.TruthTable, children []*Node) (*Node, error) {
	if len(children) != int(tbl.Arity()) {
		return nil, ErrChildCountMismatch
	}
	cs := make([]*Node, len(children))
	copy(cs, children)
	return &Node{kind: kindTable, table: tbl, children: cs}, nil
}
