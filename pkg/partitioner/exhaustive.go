package partitioner

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lintang-b-s/balanced-bisection/pkg"
	"github.com/lintang-b-s/balanced-bisection/pkg/datastructure"
	"github.com/lintang-b-s/balanced-bisection/pkg/logger"
	"github.com/lintang-b-s/balanced-bisection/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const ctxCheckEvery = 1 << 10

// ExhaustiveBisector. exact decision by scoring every split with |U| = floor(n/2).
type ExhaustiveBisector struct {
	graph  *datastructure.Graph
	k      int
	logger *zap.Logger
}

func NewExhaustiveBisector(graph *datastructure.Graph, k int, log *zap.Logger) *ExhaustiveBisector {
	return &ExhaustiveBisector{
		graph:  graph,
		k:      k,
		logger: logger.OrNop(log),
	}
}

// Decide. enumerate the floor(n/2)-subsets of the ascending vertex list in lexicographic order and
// stop at the first one whose cut is at most k.
func (eb *ExhaustiveBisector) Decide() *DecisionResult {
	n := eb.graph.NumberOfVertices()
	half := n / 2

	if eb.k < 0 {
		// cut is never negative
		return newNotFoundResult(0)
	}

	minCut := NewMinCut(eb.graph)
	gen := NewCombinationGenerator(n, half)

	eb.logger.Sugar().Debugf("exhaustive search over C(%d,%d)=%d splits, k=%d", n, half, util.Binomial(n, half), eb.k)

	candidates := 0
	for gen.Next() {
		comb := gen.Current()
		candidates++

		minCut.SetFlags(comb, true)
		cut := minCut.Cut()
		if cut <= eb.k {
			res := newFoundResult(minCut.Partition(), cut)
			res.Candidates = candidates
			eb.logger.Sugar().Debugf("found split with cut %d after %d candidates", cut, candidates)
			return res
		}
		minCut.SetFlags(comb, false)

		if candidates%pkg.COMBINATION_LOG_EVERY == 0 {
			eb.logger.Sugar().Debugf("scored %d splits...", candidates)
		}
	}

	eb.logger.Sugar().Debugf("no split with cut at most %d among %d candidates", eb.k, candidates)
	res := newNotFoundResult(0)
	res.Candidates = candidates
	return res
}

// DecideParallel. same decision as Decide, with the enumeration split by the smallest chosen
// position across at most workers goroutines. the first worker to find a split cancels the others,
// so the witness is some split with cut at most k but not necessarily the one Decide returns.
func (eb *ExhaustiveBisector) DecideParallel(ctx context.Context, workers int) (*DecisionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := eb.graph.NumberOfVertices()
	half := n / 2
	if workers <= 1 || half == 0 || eb.k < 0 {
		return eb.Decide(), nil
	}

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu         sync.Mutex
		found      *DecisionResult
		candidates atomic.Int64
		base       = NewMinCut(eb.graph)
	)

	g, gctx := errgroup.WithContext(searchCtx)
	g.SetLimit(workers)

	for first := 0; first <= n-half; first++ {
		g.Go(func() error {
			res := eb.searchWithFirst(gctx, base.clone(), first, half, &candidates)
			if res == nil {
				return nil
			}
			mu.Lock()
			if found == nil {
				found = res
			}
			mu.Unlock()
			cancel()
			return nil
		})
	}
	_ = g.Wait()

	if found != nil {
		found.Candidates = int(candidates.Load())
		return found, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := newNotFoundResult(0)
	res.Candidates = int(candidates.Load())
	return res, nil
}

// searchWithFirst. scores the half-subsets whose smallest position is first.
func (eb *ExhaustiveBisector) searchWithFirst(ctx context.Context, minCut *MinCut, first, half int,
	candidates *atomic.Int64) *DecisionResult {
	n := minCut.NumberOfVertices()
	rest := NewCombinationGenerator(n-first-1, half-1)
	comb := make([]int, half)
	comb[0] = first

	scored := 0
	defer func() { candidates.Add(int64(scored)) }()

	for rest.Next() {
		if scored%ctxCheckEvery == 0 && ctx.Err() != nil {
			return nil
		}
		for i, idx := range rest.Current() {
			comb[i+1] = first + 1 + idx
		}
		scored++

		minCut.SetFlags(comb, true)
		if cut := minCut.Cut(); cut <= eb.k {
			return newFoundResult(minCut.Partition(), cut)
		}
		minCut.SetFlags(comb, false)
	}
	return nil
}
