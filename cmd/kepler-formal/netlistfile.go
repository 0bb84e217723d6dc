package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nanocoh/kepler-formal/pkg/netlist"
)

// netlistFile is the minimal structural description the check command
// reads in place of a netlist parser: a direct JSON rendering of the
// calls a caller would otherwise make against netlist.Builder, not a
// hardware description language.
type netlistFile struct {
	Name        string         `json:"name"`
	Ports       []portSpec     `json:"ports"`
	Instances   []instanceSpec `json:"instances"`
	Connections [][2]string    `json:"connections"`
}

type portSpec struct {
	Name string `json:"name"`
	Dir  string `json:"dir"` // "input" or "output"
}

type instanceSpec struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// cellRegistry maps the JSON "type" field to the built-in cell library of
// pkg/netlist.
var cellRegistry = map[string]func() *netlist.CellType{
	"NAND2": netlist.NAND2,
	"AND2":  netlist.AND2,
	"OR2":   netlist.OR2,
	"XOR2":  netlist.XOR2,
	"INV":   netlist.INV,
	"BUF":   netlist.BUF,
	"DFF":   netlist.DFF,
}

// loadDesign reads path as a netlistFile and builds the corresponding
// netlist.Design. Builder panics (duplicate names, unknown terminal
// paths) are converted to errors, since here they come from user input
// rather than programmer error.
func loadDesign(path string) (d *netlist.Design, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				d, err = nil, fmt.Errorf("%s: %w", path, rerr)
				return
			}
			panic(r)
		}
	}()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var nf netlistFile
	if err := json.Unmarshal(data, &nf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	name := nf.Name
	if name == "" {
		name = path
	}
	b := netlist.NewBuilder(name)

	for _, p := range nf.Ports {
		dir := netlist.Input
		if p.Dir == "output" {
			dir = netlist.Output
		}
		b.Port(p.Name, dir)
	}
	for _, inst := range nf.Instances {
		factory, ok := cellRegistry[inst.Type]
		if !ok {
			return nil, fmt.Errorf("%s: unknown cell type %q for instance %q", path, inst.Type, inst.Name)
		}
		b.Instance(inst.Name, factory())
	}
	for _, c := range nf.Connections {
		b.Connect(c[0], c[1])
	}

	return b.Build()
}
