// Package ttable implements TruthTable, an immutable Boolean function of up
// to MaxArity inputs backed by a bit vector, and mergeTruthTables, which
// composes a child table with a list of parent tables that each drive one
// of its inputs.
//
// Tables of arity 6 or less are packed into a single uint64 mask; wider
// tables fall back to an explicit bit vector. Both representations expose
// the same Eval operation, so callers never need to know which one backs a
// given TruthTable.
package ttable
