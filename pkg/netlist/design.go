package netlist

import "sync"

// Design is a named, built netlist: a Builder's output. It is immutable;
// FlatView returns its queryable FlatNetlist.
type Design struct {
	name string
	flat *flatNetlist
}

// Name returns the design's name.
func (d *Design) Name() string { return d.name }

// FlatView returns d's flattened, read-only view.
func FlatView(d *Design) FlatNetlist { return d.flat }

// DB is the netlist database collaborator: it holds one mutable "current
// top" design. Switching tops is not safe for concurrent callers; use
// AcquireTop to scope a top-design switch and guarantee it is restored on
// every exit path.
type DB struct {
	mu  sync.Mutex
	top *Design
}

// NewDB returns an empty netlist database with no top design set.
func NewDB() *DB { return &DB{} }

// TopDesign returns the database's current top design, or nil if none is
// set.
func (db *DB) TopDesign() *Design {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.top
}

// SetTopDesign sets the database's current top design.
func (db *DB) SetTopDesign(d *Design) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.top = d
}

// TopDesignGuard restores the netlist database's prior top design when
// released, containing the impact of a scoped top-design switch.
type TopDesignGuard struct {
	db   *DB
	prev *Design
}

// AcquireTop sets db's top design to d and returns a guard that restores
// the previous top design when Release is called.
func (db *DB) AcquireTop(d *Design) *TopDesignGuard {
	prev := db.TopDesign()
	db.SetTopDesign(d)
	return &TopDesignGuard{db: db, prev: prev}
}

// Release restores the netlist database's top design to what it was
// before the guard's AcquireTop call.
func (g *TopDesignGuard) Release() {
	g.db.SetTopDesign(g.prev)
}
