package equiv

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/nanocoh/kepler-formal/pkg/boolexpr"
	"github.com/nanocoh/kepler-formal/pkg/miter"
	"github.com/nanocoh/kepler-formal/pkg/netlist"
	"github.com/nanocoh/kepler-formal/pkg/poclause"
)

// Result classifies a Checker's verdict.
type Result int

const (
	// ResultEquivalent means the miter was UNSAT and every output was
	// matched and comparable.
	ResultEquivalent Result = iota
	// ResultDifferent means at least one matched output pair's
	// single-output miter was satisfiable.
	ResultDifferent
	// ResultNonComparable means the miter was UNSAT (or no outputs were
	// comparable at all) but some output was unmatched between the two
	// netlists or degraded to "unknown" during cone extraction or
	// conversion. The evidence does not force "different", but it does
	// not let the checker conclude "equivalent" either.
	ResultNonComparable
)

func (r Result) String() string {
	switch r {
	case ResultEquivalent:
		return "equivalent"
	case ResultDifferent:
		return "different"
	case ResultNonComparable:
		return "non-comparable"
	default:
		return "unknown"
	}
}

// Verdict is a Checker's aggregated answer.
type Verdict struct {
	Result Result

	// FailingOutputs names, among matched output pairs, every path whose
	// single-output miter was independently satisfiable.
	FailingOutputs []string

	// FailingPairs carries the same outputs' full miter.Pair, including
	// both sides' BoolExprs, for callers (e.g. the CLI) that want to
	// render a diagnostic artifact without re-running cone extraction.
	FailingPairs []miter.Pair

	// UnmatchedA and UnmatchedB name primary-output paths present on only
	// one side after hierarchical-path matching.
	UnmatchedA, UnmatchedB []string

	// UnknownOutputs names, across both sides, every primary output whose
	// cone extraction or conversion hit a degradable shape/capacity error
	// and was therefore excluded from the miter.
	UnknownOutputs []string
}

// Checker runs one equivalence check between two Designs sharing one
// netlist.DB. It is single-use in the sense that each Check call builds
// its own BoolExpr intern table and SAT engines; Checker itself holds no
// per-run state and may be reused across calls.
type Checker struct {
	// PoolSize bounds concurrent per-output cone/convert tasks.
	// <= 0 selects runtime.GOMAXPROCS(0).
	PoolSize int
	// ShardCount is the BoolExpr intern table's shard count; <= 0 selects
	// boolexpr's own default.
	ShardCount int
	// ArityCeiling bounds the arity of any individual driver cell's truth
	// table a cone may graft; <= 0 selects the cone package's default
	// (ttable.MaxArity).
	ArityCeiling int
}

// NewChecker returns a Checker with the given worker-pool, intern-table
// shard sizing, and per-cone arity ceiling.
func NewChecker(poolSize, shardCount, arityCeiling int) *Checker {
	return &Checker{PoolSize: poolSize, ShardCount: shardCount, ArityCeiling: arityCeiling}
}

// Check runs the full pipeline on designs a and b, both registered on db:
// a serialized two-pass build (switching db's top design is not
// thread-safe), bounded-concurrency per-output cone extraction
// within each pass, hierarchical-path PI/PO matching, and a single miter
// solve with per-output diagnosis on SAT.
func (c *Checker) Check(ctx context.Context, db *netlist.DB, a, b *netlist.Design) (Verdict, error) {
	tbl := boolexpr.NewTable(c.ShardCount)

	outsA, unknownA, err := c.buildSide(ctx, db, a, tbl)
	if err != nil {
		return Verdict{}, err
	}
	outsB, unknownB, err := c.buildSide(ctx, db, b, tbl)
	if err != nil {
		return Verdict{}, err
	}

	pairs, onlyA, onlyB := matchOutputs(outsA, outsB)

	driver := miter.NewDriver(miter.NewGiniEngine(), func() miter.Engine { return miter.NewGiniEngine() }, tbl)
	mv, err := driver.Run(ctx, pairs)
	if err != nil {
		return Verdict{}, errors.Wrap(err, "equiv: solving miter")
	}

	unknown := append(append([]string(nil), unknownA...), unknownB...)
	v := Verdict{
		FailingOutputs: mv.FailingOutputs,
		FailingPairs:   mv.FailingPairs,
		UnmatchedA:     onlyA,
		UnmatchedB:     onlyB,
		UnknownOutputs: unknown,
	}
	switch {
	case !mv.Equivalent:
		v.Result = ResultDifferent
	case len(onlyA) > 0 || len(onlyB) > 0 || len(unknown) > 0:
		v.Result = ResultNonComparable
	default:
		v.Result = ResultEquivalent
	}
	return v, nil
}

// buildSide scopes a top-design switch to d via a TopDesignGuard and
// builds every one of d's primary outputs concurrently, bounded by
// c.PoolSize.
func (c *Checker) buildSide(ctx context.Context, db *netlist.DB, d *netlist.Design, tbl *boolexpr.Table) ([]poclause.Output, []string, error) {
	guard := db.AcquireTop(d)
	defer guard.Release()

	fn := netlist.FlatView(d)
	paths := fn.PrimaryOutputs()

	poolSize := c.PoolSize
	if poolSize <= 0 {
		poolSize = runtime.GOMAXPROCS(0)
	}
	sem := make(chan struct{}, poolSize)

	results := make([]poclause.Output, len(paths))
	unknownMask := make([]bool, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}
			defer func() { <-sem }()

			out, err := poclause.BuildOne(fn, tbl, path, c.ArityCeiling)
			if err != nil {
				if isDegradable(err) {
					unknownMask[i] = true
					return nil
				}
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var outs []poclause.Output
	var unknown []string
	for i, path := range paths {
		if unknownMask[i] {
			unknown = append(unknown, path)
			continue
		}
		outs = append(outs, results[i])
	}
	return outs, unknown, nil
}

// matchOutputs merge-joins two sides' primary-output lists, both already
// in stable lexicographic-path order (netlist.FlatNetlist.PrimaryOutputs),
// producing the matched pairs in that shared order plus each side's
// unmatched suffix.
func matchOutputs(outsA, outsB []poclause.Output) (pairs []miter.Pair, onlyA, onlyB []string) {
	i, j := 0, 0
	for i < len(outsA) && j < len(outsB) {
		switch {
		case outsA[i].Path == outsB[j].Path:
			pairs = append(pairs, miter.Pair{Path: outsA[i].Path, A: outsA[i].Expr, B: outsB[j].Expr})
			i++
			j++
		case outsA[i].Path < outsB[j].Path:
			onlyA = append(onlyA, outsA[i].Path)
			i++
		default:
			onlyB = append(onlyB, outsB[j].Path)
			j++
		}
	}
	for ; i < len(outsA); i++ {
		onlyA = append(onlyA, outsA[i].Path)
	}
	for ; j < len(outsB); j++ {
		onlyB = append(onlyB, outsB[j].Path)
	}
	return pairs, onlyA, onlyB
}
