package netlist

import "fmt"

// Builder constructs a Design programmatically: declare top-level ports
// and cell instances, wire terminals together with Connect, then Build.
// It exists because netlist parsing is out of scope; tests and the
// CLI's demo circuits use it to produce fixtures directly.
type Builder struct {
	name string

	portDir   map[string]Direction
	portOrder []string

	cells     []*CellInstance
	cellNames map[string]bool

	owner map[string]ownerInfo

	parent map[string]string // union-find over every known terminal path
}

// NewBuilder starts a new Design named name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:      name,
		portDir:   make(map[string]Direction),
		cellNames: make(map[string]bool),
		owner:     make(map[string]ownerInfo),
		parent:    make(map[string]string),
	}
}

// Port declares a top-level port of the design.
func (b *Builder) Port(name string, dir Direction) *Builder {
	if _, exists := b.portDir[name]; exists {
		panic(fmt.Errorf("%w: %s", ErrDuplicatePort, name))
	}
	b.portDir[name] = dir
	b.portOrder = append(b.portOrder, name)
	b.parent[name] = name
	return b
}

// Instance places a cell of type ct at instName, registering every one of
// its terminals under the path instName + "." + terminal name.
func (b *Builder) Instance(instName string, ct *CellType) *Builder {
	if b.cellNames[instName] {
		panic(fmt.Errorf("%w: %s", ErrDuplicateInstance, instName))
	}
	b.cellNames[instName] = true
	c := &CellInstance{InstPath: instName, Type: ct}
	b.cells = append(b.cells, c)
	for _, ts := range ct.Terminals {
		path := c.TerminalPath(ts.Name)
		b.owner[path] = ownerInfo{cell: c, name: ts.Name, dir: ts.Dir}
		b.parent[path] = path
	}
	return b
}

// Connect wires two terminal paths onto the same net. Either endpoint may
// be a top-level port name or a "instance.terminal" cell path. Connect may
// be called repeatedly to merge more terminals into one net.
func (b *Builder) Connect(a, c string) *Builder {
	b.union(a, c)
	return b
}

func (b *Builder) find(x string) string {
	p, ok := b.parent[x]
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrUnknownTerminal, x))
	}
	if p == x {
		return x
	}
	root := b.find(p)
	b.parent[x] = root
	return root
}

func (b *Builder) union(a, c string) {
	ra, rc := b.find(a), b.find(c)
	if ra != rc {
		b.parent[ra] = rc
	}
}

// driverDirection reports whether terminal path p is a driver of its net:
// a top-level input port, or a cell output terminal.
func (b *Builder) driverDirection(p string) (isDriver bool, isTerminal bool) {
	if dir, ok := b.portDir[p]; ok {
		return dir == Input, true
	}
	if info, ok := b.owner[p]; ok {
		return info.dir == Output, true
	}
	return false, false
}

// Build finalizes the design: every net must have exactly one driver, and
// every cell input must be connected to some net.
func (b *Builder) Build() (*Design, error) {
	groups := make(map[string][]string)
	for p := range b.parent {
		root := b.find(p)
		groups[root] = append(groups[root], p)
	}

	driverOf := make(map[string]string)
	for _, members := range groups {
		var driver string
		driverCount := 0
		for _, m := range members {
			if isDriver, _ := b.driverDirection(m); isDriver {
				driver = m
				driverCount++
			}
		}
		if driverCount > 1 {
			return nil, ErrNetMultipleDrivers
		}
		if driverCount == 0 {
			if len(members) == 1 {
				// an isolated, unconnected terminal: legal (e.g. an unused
				// top-level input, or a net with no load yet); nothing to
				// record.
				continue
			}
			return nil, ErrNetNoDriver
		}
		for _, m := range members {
			if m != driver {
				driverOf[m] = driver
			}
		}
	}

	for _, c := range b.cells {
		for _, in := range c.Type.InputNames() {
			path := c.TerminalPath(in)
			if _, ok := driverOf[path]; !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnconnectedInput, path)
			}
		}
	}
	for name, dir := range b.portDir {
		if dir != Output {
			continue
		}
		if _, ok := driverOf[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnconnectedInput, name)
		}
	}

	fn := &flatNetlist{
		leaves:   append([]*CellInstance(nil), b.cells...),
		portDir:  cloneDirMap(b.portDir),
		driverOf: driverOf,
		owner:    cloneOwnerMap(b.owner),
	}
	return &Design{name: b.name, flat: fn}, nil
}

func cloneDirMap(m map[string]Direction) map[string]Direction {
	out := make(map[string]Direction, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneOwnerMap(m map[string]ownerInfo) map[string]ownerInfo {
	out := make(map[string]ownerInfo, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
