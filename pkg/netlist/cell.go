package netlist

import "github.com/nanocoh/kepler-formal/pkg/ttable"

// Direction is the signal direction of a terminal.
type Direction uint8

const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	if d == Output {
		return "output"
	}
	return "input"
}

// TerminalSpec names one terminal of a CellType, in declaration order. The
// subsequence of Input-direction specs, in order, is the order a
// combinational CellType's TruthTable expects its inputs.
type TerminalSpec struct {
	Name string
	Dir  Direction
}

// CellType is the immutable definition of a cell: its terminals, and either
// a combinational truth table (input order equal to the Input-direction
// subsequence of Terminals) or, for sequential cells, a ClockRelated
// predicate used to classify cut points.
type CellType struct {
	Name       string
	Terminals  []TerminalSpec
	Table      ttable.TruthTable
	Sequential bool

	// ClockRelated reports whether output out is clock-related to input
	// in: the query used to classify an output as a sequential boundary
	// (a cut-point primary input) and an input as a register boundary (a
	// cut-point primary output). Nil for purely combinational cell
	// types, where no terminal pair is clock-related.
	ClockRelated func(out, in string) bool
}

// InputNames returns the cell type's input terminal names in terminal
// declaration order, the order a combinational Table's input bits are
// indexed in.
func (ct *CellType) InputNames() []string {
	var names []string
	for _, ts := range ct.Terminals {
		if ts.Dir == Input {
			names = append(names, ts.Name)
		}
	}
	return names
}

// OutputNames returns the cell type's output terminal names in terminal
// declaration order.
func (ct *CellType) OutputNames() []string {
	var names []string
	for _, ts := range ct.Terminals {
		if ts.Dir == Output {
			names = append(names, ts.Name)
		}
	}
	return names
}

// CellInstance places a CellType at a hierarchical path prefix within a
// Design. A terminal's full path is InstPath + "." + terminal name.
type CellInstance struct {
	InstPath string
	Type     *CellType
}

// TerminalPath returns the full hierarchical path of one of c's terminals.
func (c *CellInstance) TerminalPath(name string) string {
	return c.InstPath + "." + name
}
