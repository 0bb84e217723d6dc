package tttree

import "errors"

var (
	// ErrChildCountMismatch indicates a Table node was constructed with a
	// number of children different from its table's arity.
	ErrChildCountMismatch = errors.New("tttree: child count does not match table arity")

	// ErrZeroArityTable indicates Concat was asked to graft a table with
	// arity 0; zero-input cells are cut points, never composition
	// targets, so grafting one is a caller error.
	ErrZeroArityTable = errors.New("tttree: cannot graft a zero-arity table")

	// ErrBorderIndexOutOfRange indicates Concat was given a border index
	// outside [0, current border length).
	ErrBorderIndexOutOfRange = errors.New("tttree: border index out of range")

	// ErrConcatFullCountMismatch indicates ConcatFull was given more
	// tables than there are original border leaves to graft them onto.
	ErrConcatFullCountMismatch = errors.New("tttree: more tables than original border leaves")

	// ErrBorderLeafGone indicates ConcatFull's bookkeeping could not find
	// one of the border leaves it captured before grafting began; this
	// signals a bug in the grafting sequence itself.
	ErrBorderLeafGone = errors.New("tttree: original border leaf no longer present")

	// ErrUninitializedTree indicates an operation on a TruthTableTree with
	// a nil root.
	ErrUninitializedTree = errors.New("tttree: tree has no root")

	// ErrEvalArityMismatch indicates Eval was called with a number of
	// external inputs different from the tree's Size().
	ErrEvalArityMismatch = errors.New("tttree: eval input count does not match tree size")

	// ErrExtIndexOutOfRange indicates an Input leaf's ext_index fell
	// outside the assignment passed to Eval.
	ErrExtIndexOutOfRange = errors.New("tttree: external index out of range")
)
