package convert

import "errors"

// ErrVarNamesArityMismatch is returned when the supplied variable-name
// vector does not have exactly one entry per external input of the tree.
var ErrVarNamesArityMismatch = errors.New("convert: var_names arity mismatch")
