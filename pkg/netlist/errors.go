package netlist

import "errors"

var (
	// ErrNetNoDriver is returned when a connected group of terminals has no
	// driving terminal (no top-level input port, no cell output).
	ErrNetNoDriver = errors.New("netlist: net has no driver")
	// ErrNetMultipleDrivers is returned when a connected group of terminals
	// has more than one driving terminal.
	ErrNetMultipleDrivers = errors.New("netlist: net has multiple drivers")
	// ErrUnconnectedInput is returned when a cell instance's input terminal
	// is not wired to any net.
	ErrUnconnectedInput = errors.New("netlist: cell input is unconnected")
	// ErrUnknownTerminal is raised (as a panic, since Connect is part of
	// the fluent construction chain) when a path does not resolve to a
	// declared terminal.
	ErrUnknownTerminal = errors.New("netlist: unknown terminal path")
	// ErrDuplicateInstance is raised when an instance name is registered
	// twice in the same Builder.
	ErrDuplicateInstance = errors.New("netlist: duplicate instance name")
	// ErrDuplicatePort is raised when a port name is registered twice in
	// the same Builder.
	ErrDuplicatePort = errors.New("netlist: duplicate port name")
)
