// Package netlist is the external netlist collaborator: the read-only API
// a LogicConeBuilder consumes to walk a flattened gate-level design, plus a
// small built-in cell library and an in-memory Design/FlatNetlist builder
// used to construct test fixtures and CLI demo circuits.
//
// Netlist parsing, hierarchical name resolution, and design-database
// maintenance proper are out of scope; what this package provides is the
// minimal queryable surface that the rest of the pipeline is built
// against, plus one concrete, in-memory implementation of it.
package netlist
