package cone

import "errors"

// ErrNoDriver is returned when a terminal the builder needs to resolve is
// neither classified as a primary input nor has a recorded driver,
// which means the netlist is malformed.
var ErrNoDriver = errors.New("cone: terminal has no driver and is not a primary input")

// ErrDriverNotCombinational is returned when a terminal's driving cell has
// no truth table (e.g. a sequential cell whose output was not classified
// as a cut point).
var ErrDriverNotCombinational = errors.New("cone: driving cell has no truth table")

// ErrCellArityTooWide is returned when a driver cell's own truth table
// arity exceeds the builder's configured ceiling, a capacity error. The
// caller downgrades the affected output to "unknown" rather than
// grafting a table that wide.
var ErrCellArityTooWide = errors.New("cone: driver cell's truth table arity exceeds the configured ceiling")
