package netlist

import "github.com/nanocoh/kepler-formal/pkg/ttable"

func mustMask(k uint8, mask uint64) ttable.TruthTable {
	tbl, err := ttable.FromMask(k, mask)
	if err != nil {
		panic(err)
	}
	return tbl
}

// NAND2 returns a 2-input NAND cell type: terminals A, B, Y.
func NAND2() *CellType {
	return &CellType{
		Name: "NAND2",
		Terminals: []TerminalSpec{
			{Name: "A", Dir: Input}, {Name: "B", Dir: Input}, {Name: "Y", Dir: Output},
		},
		Table: mustMask(2, 0b0111),
	}
}

// AND2 returns a 2-input AND cell type: terminals A, B, Y.
func AND2() *CellType {
	return &CellType{
		Name: "AND2",
		Terminals: []TerminalSpec{
			{Name: "A", Dir: Input}, {Name: "B", Dir: Input}, {Name: "Y", Dir: Output},
		},
		Table: mustMask(2, 0b1000),
	}
}

// OR2 returns a 2-input OR cell type: terminals A, B, Y.
func OR2() *CellType {
	return &CellType{
		Name: "OR2",
		Terminals: []TerminalSpec{
			{Name: "A", Dir: Input}, {Name: "B", Dir: Input}, {Name: "Y", Dir: Output},
		},
		Table: mustMask(2, 0b1110),
	}
}

// XOR2 returns a 2-input XOR cell type: terminals A, B, Y.
func XOR2() *CellType {
	return &CellType{
		Name: "XOR2",
		Terminals: []TerminalSpec{
			{Name: "A", Dir: Input}, {Name: "B", Dir: Input}, {Name: "Y", Dir: Output},
		},
		Table: mustMask(2, 0b0110),
	}
}

// INV returns a 1-input inverter cell type: terminals A, Y.
func INV() *CellType {
	return &CellType{
		Name:      "INV",
		Terminals: []TerminalSpec{{Name: "A", Dir: Input}, {Name: "Y", Dir: Output}},
		Table:     mustMask(1, 0b01),
	}
}

// BUF returns a 1-input buffer cell type: terminals A, Y.
func BUF() *CellType {
	return &CellType{
		Name:      "BUF",
		Terminals: []TerminalSpec{{Name: "A", Dir: Input}, {Name: "Y", Dir: Output}},
		Table:     mustMask(1, 0b10),
	}
}

// DFF returns a generic D flip-flop cell type: terminals D, CLK (inputs),
// Q (output). It is sequential and has no Table; Q is clock-related to D
// (a register boundary: Q is a cut point on the driving side, D is a cut
// point on the consuming side) but not to CLK.
func DFF() *CellType {
	return &CellType{
		Name: "DFF",
		Terminals: []TerminalSpec{
			{Name: "D", Dir: Input}, {Name: "CLK", Dir: Input}, {Name: "Q", Dir: Output},
		},
		Sequential: true,
		ClockRelated: func(out, in string) bool {
			return out == "Q" && in == "D"
		},
	}
}
