// Package tttree implements TruthTableTree: a composable tree of
// truth-table nodes with external-input leaves, built incrementally by
// grafting (Concat/ConcatFull) new tables onto its border leaves.
//
// A Node is a tagged variant with two arms (an Input leaf naming an
// external input, or a Table node carrying a ttable.TruthTable and one
// child per input of that table), dispatched on a tag rather than through
// dynamic polymorphism, per the design notes. Border-leaf bookkeeping is
// kept as (parent, child position) references rather than owning
// pointers, recomputed by a post-order walk after every graft.
package tttree
