package miter

import "errors"

var (
	// ErrEngineFailure wraps an underlying SAT engine failure with no
	// defined recovery.
	ErrEngineFailure = errors.New("miter: SAT engine failure")

	// ErrAlreadyEncoded indicates Run was called twice on the same
	// Driver; a Driver is single-use, the engine being non-reentrant.
	ErrAlreadyEncoded = errors.New("miter: driver has already encoded a problem")

	// ErrNilExpr indicates Tseitin encoding was asked to encode a nil
	// BoolExpr root.
	ErrNilExpr = errors.New("miter: nil expression")
)
