package boolexpr

import "sync"

// defaultShardCount is the number of independently-locked buckets a Table
// splits its intern map across. It does not need to be a power of two;
// we keep it one for a cheap modulo-by-mask shard selector.
const defaultShardCount = 16

// nodeKey is the structural identity an intern lookup is keyed on: the
// operator tag plus whatever distinguishes nodes of that tag. Children
// are referenced by their own already-assigned id rather than by pointer
// so that the key type stays comparable and hashable without resorting to
// unsafe.Pointer arithmetic.
type nodeKey struct {
	op   Op
	aID  uint64
	bID  uint64
	name string
	val  bool
}

func (k nodeKey) hash() uint64 {
	h := uint64(14695981039346656037) // FNV-1a offset basis
	mix := func(x uint64) {
		h ^= x
		h *= 1099511628211 // FNV-1a prime
	}
	mix(uint64(k.op))
	mix(k.aID)
	mix(k.bID)
	if k.val {
		mix(1)
	}
	for i := 0; i < len(k.name); i++ {
		mix(uint64(k.name[i]))
	}
	return h
}

type shard struct {
	mu sync.RWMutex
	m  map[nodeKey]*BoolExpr
}

// Table is a hash-consed intern table for BoolExpr nodes. Its factory
// methods (Var, True, False, Not, And, Or, Xor) are the only sanctioned
// way to construct a BoolExpr, and are safe to call concurrently from
// multiple goroutines building expressions for different output cones.
type Table struct {
	shards []shard
	mask   uint64
}

// NewTable returns a Table with its backing map split across shardCount
// buckets (rounded up to the next power of two; a non-positive value
// picks the default shard count).
func NewTable(shardCount int) *Table {
	if shardCount <= 0 {
		shardCount = defaultShardCount
	}
	n := 1
	for n < shardCount {
		n <<= 1
	}
	t := &Table{
		shards: make([]shard, n),
		mask:   uint64(n - 1),
	}
	for i := range t.shards {
		t.shards[i].m = make(map[nodeKey]*BoolExpr)
	}
	return t
}

func (t *Table) shardFor(h uint64) *shard {
	return &t.shards[h&t.mask]
}

// intern returns the existing node for k if present; otherwise it builds
// one with build, inserts it, and returns it. Concurrent callers racing on
// the same key converge on a single winner: the loser's candidate, if any
// was constructed by build, is simply dropped by the garbage collector.
func (t *Table) intern(k nodeKey, build func() *BoolExpr) *BoolExpr {
	s := t.shardFor(k.hash())

	s.mu.RLock()
	if n, ok := s.m[k]; ok {
		s.mu.RUnlock()
		return n
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if n, ok := s.m[k]; ok {
		return n
	}
	n := build()
	s.m[k] = n
	return n
}

// Var returns the (interned) variable node named name.
func (t *Table) Var(name string) *BoolExpr {
	k := nodeKey{op: OpVar, name: name}
	return t.intern(k, func() *BoolExpr {
		return &BoolExpr{id: allocID(), op: OpVar, name: name}
	})
}

// True returns the (unique, interned) constant-true node.
func (t *Table) True() *BoolExpr { return t.constNode(true) }

// False returns the (unique, interned) constant-false node.
func (t *Table) False() *BoolExpr { return t.constNode(false) }

func (t *Table) constNode(v bool) *BoolExpr {
	k := nodeKey{op: OpConst, val: v}
	return t.intern(k, func() *BoolExpr {
		return &BoolExpr{id: allocID(), op: OpConst, val: v}
	})
}

// Not returns Not(a), folding before interning: Not(True)=False,
// Not(False)=True, Not(Not(x))=x.
func (t *Table) Not(a *BoolExpr) *BoolExpr {
	switch {
	case a.op == OpConst:
		return t.constNode(!a.val)
	case a.op == OpNot:
		return a.a
	}
	k := nodeKey{op: OpNot, aID: a.id}
	return t.intern(k, func() *BoolExpr {
		return &BoolExpr{id: allocID(), op: OpNot, a: a}
	})
}

// And returns And(a, b), folding before interning: And(False,_)=False,
// And(True,x)=x, And(x,x)=x, And(x,Not(x))=False.
func (t *Table) And(a, b *BoolExpr) *BoolExpr {
	if a.op == OpConst {
		if !a.val {
			return t.False()
		}
		return b
	}
	if b.op == OpConst {
		if !b.val {
			return t.False()
		}
		return a
	}
	if a == b {
		return a
	}
	if isNotOf(a, b) || isNotOf(b, a) {
		return t.False()
	}
	ca, cb := canonicalOrder(a, b)
	k := nodeKey{op: OpAnd, aID: ca.id, bID: cb.id}
	return t.intern(k, func() *BoolExpr {
		return &BoolExpr{id: allocID(), op: OpAnd, a: ca, b: cb}
	})
}

// Or returns Or(a, b), folding before interning: Or(True,_)=True,
// Or(False,x)=x, Or(x,x)=x, Or(x,Not(x))=True.
func (t *Table) Or(a, b *BoolExpr) *BoolExpr {
	if a.op == OpConst {
		if a.val {
			return t.True()
		}
		return b
	}
	if b.op == OpConst {
		if b.val {
			return t.True()
		}
		return a
	}
	if a == b {
		return a
	}
	if isNotOf(a, b) || isNotOf(b, a) {
		return t.True()
	}
	ca, cb := canonicalOrder(a, b)
	k := nodeKey{op: OpOr, aID: ca.id, bID: cb.id}
	return t.intern(k, func() *BoolExpr {
		return &BoolExpr{id: allocID(), op: OpOr, a: ca, b: cb}
	})
}

// Xor returns Xor(a, b), folding before interning: Xor(False,x)=x,
// Xor(True,x)=Not(x), Xor(x,x)=False.
func (t *Table) Xor(a, b *BoolExpr) *BoolExpr {
	if a.op == OpConst {
		if a.val {
			return t.Not(b)
		}
		return b
	}
	if b.op == OpConst {
		if b.val {
			return t.Not(a)
		}
		return a
	}
	if a == b {
		return t.False()
	}
	ca, cb := canonicalOrder(a, b)
	k := nodeKey{op: OpXor, aID: ca.id, bID: cb.id}
	return t.intern(k, func() *BoolExpr {
		return &BoolExpr{id: allocID(), op: OpXor, a: ca, b: cb}
	})
}

// isNotOf reports whether a is syntactically Not(b).
func isNotOf(a, b *BoolExpr) bool {
	return a.op == OpNot && a.a == b
}

// canonicalOrder returns (a, b) or (b, a), whichever orders its first
// element by the lower node identity, so that Op(a,b) and Op(b,a) always
// intern to the same key.
func canonicalOrder(a, b *BoolExpr) (*BoolExpr, *BoolExpr) {
	if a.id <= b.id {
		return a, b
	}
	return b, a
}
