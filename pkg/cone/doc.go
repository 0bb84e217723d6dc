// Package cone implements LogicConeBuilder, the backward traversal from a
// target output terminal that builds a TruthTableTree describing the
// terminal's combinational function of the circuit's primary inputs.
//
// Construction starts from a single-input tree naming the target terminal
// and repeatedly grafts the driving cell's truth table onto every
// unresolved border leaf until every border leaf is a cut point recognized
// by the netlist collaborator. Border leaves are visited in their current
// order; the resulting primary-input list is indexed by the tree's
// external input indices.
package cone
