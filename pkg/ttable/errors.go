package ttable

import "errors"

// Sentinel errors for TruthTable construction and composition. These are
// shape/capacity errors in the terminology of the error-handling design:
// they abort the operation that produced them and are surfaced to the
// caller rather than recovered from internally.
var (
	// ErrBadArity indicates an arity outside [0, MaxArity].
	ErrBadArity = errors.New("ttable: arity out of range")

	// ErrRowCountMismatch indicates a bit vector whose length does not
	// match 2^k for the requested arity k.
	ErrRowCountMismatch = errors.New("ttable: row count does not match 2^k")

	// ErrArityMismatch indicates that mergeTruthTables was called with a
	// child table whose arity does not equal the number of parents.
	ErrArityMismatch = errors.New("ttable: child arity does not match parent count")

	// ErrArityOverflow indicates that the composed arity of
	// mergeTruthTables' result would exceed MaxArity. This is a capacity
	// error: the cone has grown too large for dense truth-table
	// composition.
	ErrArityOverflow = errors.New("ttable: composed arity exceeds MaxArity")
)
