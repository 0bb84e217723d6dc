// Package diag emits per-failing-output diagnostic artifacts: a Graphviz
// .dot file naming the BoolExpr DAG of one netlist side's output, written
// as "<prefix>_<output><id>_<side>.dot". SVG rendering is left to an
// external dot-compatible renderer; callers who want an image pipe the
// .dot output through one themselves.
package diag
