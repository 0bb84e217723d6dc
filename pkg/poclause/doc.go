// Package poclause implements POClauseBuilder: it enumerates a netlist's
// primary outputs in a stable, hierarchical-path order and produces one
// hash-consed BoolExpr per output by running the cone builder and the
// Tree->BoolExpr converter.
package poclause
