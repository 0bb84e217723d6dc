// Package boolexpr implements a hash-consed Boolean-expression DAG: nodes
// are Var, Const, Not, And, Or, and Xor, built exclusively through a
// Table's factory methods so that pointer equality implies semantic
// equality.
//
// Eager constant folding runs before interning, and symmetric operators
// (And, Or, Xor) canonicalize their operand order by a stable per-process
// node identity before the intern lookup, so Op(a, b) and Op(b, a) always
// return the same node. A Table's intern lookup is safe for concurrent use
// by multiple goroutines building expressions for different output cones
// at once: it shards its backing map across several
// mutex-guarded buckets keyed by a hash of the candidate node's
// structural key.
//
// A Table's interned nodes are strongly referenced for the table's own
// lifetime rather than held behind weak references: callers construct one
// Table per equivalence-check run (see pkg/equiv) and discard it when the
// run completes, which bounds memory the same way process-wide weak
// references would without requiring runtime finalizers.
package boolexpr
