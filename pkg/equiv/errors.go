package equiv

import (
	"errors"

	"github.com/nanocoh/kepler-formal/pkg/cone"
	"github.com/nanocoh/kepler-formal/pkg/convert"
	"github.com/nanocoh/kepler-formal/pkg/ttable"
	"github.com/nanocoh/kepler-formal/pkg/tttree"
)

// degradableErrs lists the shape and capacity errors that
// abort only the single output that produced them: the caller downgrades
// that output to "unknown" and continues, rather than failing the whole
// equivalence run.
var degradableErrs = []error{
	ttable.ErrArityMismatch,
	ttable.ErrArityOverflow,
	ttable.ErrBadArity,
	ttable.ErrRowCountMismatch,
	tttree.ErrChildCountMismatch,
	tttree.ErrZeroArityTable,
	tttree.ErrBorderIndexOutOfRange,
	tttree.ErrConcatFullCountMismatch,
	tttree.ErrBorderLeafGone,
	tttree.ErrUninitializedTree,
	tttree.ErrEvalArityMismatch,
	tttree.ErrExtIndexOutOfRange,
	convert.ErrVarNamesArityMismatch,
	cone.ErrNoDriver,
	cone.ErrDriverNotCombinational,
	cone.ErrCellArityTooWide,
}

// isDegradable reports whether err is a shape or capacity error, which
// contaminates only the output that produced it, rather than an
// infrastructure failure that aborts the whole run.
func isDegradable(err error) bool {
	for _, sentinel := range degradableErrs {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
