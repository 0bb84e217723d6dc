package netlist

import (
	"sort"

	"github.com/nanocoh/kepler-formal/pkg/ttable"
)

// TerminalInfo describes one terminal as returned by FlatNetlist's
// per-cell terminal iterator.
type TerminalInfo struct {
	Name string
	Dir  Direction
	Path string
}

// FlatNetlist is the flattened, read-only view of a Design that
// LogicConeBuilder and POClauseBuilder consume. All queries are
// safe for concurrent use once the Design has been built: a FlatNetlist is
// immutable after Build.
type FlatNetlist interface {
	// Leaves returns every cell instance in the design, combinational and
	// sequential, in a stable (declaration) order.
	Leaves() []*CellInstance

	// TerminalsOf returns c's terminals in declaration order.
	TerminalsOf(c *CellInstance) []TerminalInfo

	// TruthTable returns c's truth table. ok is false for sequential cells.
	TruthTable(c *CellInstance) (tbl ttable.TruthTable, ok bool)

	// IsSequential reports whether c is a sequential element.
	IsSequential(c *CellInstance) bool

	// PrimaryOutputs returns every cut-point terminal path that the
	// POClauseBuilder must enumerate: top-level output ports, plus every
	// sequential cell's data input that is clock-related to one of its
	// outputs. The order is stable: lexicographic on path.
	PrimaryOutputs() []string

	// IsPrimaryInput reports whether terminalPath, an unresolved load
	// terminal a cone traversal is trying to resolve (a cell input, or a
	// top-level port used as a cone's starting target), is driven by a
	// cut point where backward traversal must stop and treat the net as a
	// free variable: directly by a top-level input port, or by the output of a
	// sequential cell, or by the output of a cell with zero combinational
	// inputs and more than one output.
	IsPrimaryInput(terminalPath string) bool

	// PrimaryInputName returns the stable external-variable identity for a
	// load terminal classified as a primary input by IsPrimaryInput: the
	// driving top-level port name, or the driving cell's output terminal
	// path. ok is false if terminalPath is not a primary input.
	PrimaryInputName(terminalPath string) (name string, ok bool)

	// DriverCell returns the cell instance driving terminalPath's net and
	// the name of the specific output terminal that drives it. ok is false
	// if terminalPath's net is driven directly by a top-level port rather
	// than by a cell, or has no driver recorded at all.
	DriverCell(terminalPath string) (cell *CellInstance, outputTerminal string, ok bool)

	// InputPaths returns, for a combinational cell instance c, the ordered
	// terminal paths driving each of c's inputs, in the same order as
	// c.Type's truth table input order.
	InputPaths(c *CellInstance) []string
}

// flatNetlist is the in-memory reference implementation of FlatNetlist,
// produced by Builder.Build.
type flatNetlist struct {
	leaves []*CellInstance

	portDir map[string]Direction // top-level port name -> direction

	// driverOf maps a load terminal path (a cell input, or a top-level
	// output port) to the terminal path driving its net.
	driverOf map[string]string

	// owner maps a terminal path back to its owning cell instance and
	// terminal name, for cell terminals only (absent for top-level ports).
	owner map[string]ownerInfo
}

type ownerInfo struct {
	cell *CellInstance
	name string
	dir  Direction
}

func (fn *flatNetlist) Leaves() []*CellInstance { return fn.leaves }

func (fn *flatNetlist) TerminalsOf(c *CellInstance) []TerminalInfo {
	infos := make([]TerminalInfo, len(c.Type.Terminals))
	for i, ts := range c.Type.Terminals {
		infos[i] = TerminalInfo{Name: ts.Name, Dir: ts.Dir, Path: c.TerminalPath(ts.Name)}
	}
	return infos
}

func (fn *flatNetlist) TruthTable(c *CellInstance) (ttable.TruthTable, bool) {
	if c.Type.Sequential {
		return ttable.TruthTable{}, false
	}
	return c.Type.Table, true
}

func (fn *flatNetlist) IsSequential(c *CellInstance) bool { return c.Type.Sequential }

func (fn *flatNetlist) PrimaryOutputs() []string {
	var outs []string
	for name, dir := range fn.portDir {
		if dir == Output {
			outs = append(outs, name)
		}
	}
	for _, c := range fn.leaves {
		if !c.Type.Sequential || c.Type.ClockRelated == nil {
			continue
		}
		for _, in := range c.Type.InputNames() {
			for _, out := range c.Type.OutputNames() {
				if c.Type.ClockRelated(out, in) {
					outs = append(outs, c.TerminalPath(in))
					break
				}
			}
		}
	}
	sort.Strings(outs)
	return outs
}

func (fn *flatNetlist) IsPrimaryInput(terminalPath string) bool {
	_, ok := fn.PrimaryInputName(terminalPath)
	return ok
}

func (fn *flatNetlist) PrimaryInputName(terminalPath string) (string, bool) {
	if dir, ok := fn.portDir[terminalPath]; ok && dir == Input {
		return terminalPath, true
	}

	driverPath, ok := fn.driverOf[terminalPath]
	if !ok {
		return "", false
	}
	if dir, ok := fn.portDir[driverPath]; ok {
		if dir == Input {
			return driverPath, true // driven directly by a top-level input port
		}
		return "", false
	}

	info, ok := fn.owner[driverPath]
	if !ok {
		return "", false
	}
	c := info.cell
	if c.Type.Sequential && c.Type.ClockRelated != nil {
		for _, in := range c.Type.InputNames() {
			if c.Type.ClockRelated(info.name, in) {
				return driverPath, true // sequential output boundary
			}
		}
	}
	if len(c.Type.InputNames()) == 0 && len(c.Type.OutputNames()) > 1 {
		return driverPath, true // zero-input, multi-output free variable
	}
	return "", false
}

func (fn *flatNetlist) DriverCell(terminalPath string) (*CellInstance, string, bool) {
	driverPath, ok := fn.driverOf[terminalPath]
	if !ok {
		return nil, "", false
	}
	info, ok := fn.owner[driverPath]
	if !ok {
		return nil, "", false
	}
	return info.cell, info.name, true
}

func (fn *flatNetlist) InputPaths(c *CellInstance) []string {
	names := c.Type.InputNames()
	paths := make([]string, len(names))
	for i, n := range names {
		paths[i] = c.TerminalPath(n)
	}
	return paths
}
