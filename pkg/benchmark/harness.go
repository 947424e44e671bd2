package benchmark

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/lintang-b-s/balanced-bisection/pkg/concurrent"
	"github.com/lintang-b-s/balanced-bisection/pkg/generator"
	"github.com/lintang-b-s/balanced-bisection/pkg/logger"
	"github.com/lintang-b-s/balanced-bisection/pkg/partitioner"
	"github.com/lintang-b-s/balanced-bisection/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// Row. one (graph, k policy) comparison of the two deciders
type Row struct {
	N               int
	M               int
	K               int
	KType           string
	BruteTime       time.Duration
	BruteResult     bool
	HeuristicTime   time.Duration
	HeuristicResult bool

	trial       int
	policyOrder int
}

type trial struct {
	n     int
	index int
	seed  uint64
}

type trialResult struct {
	rows []Row
	err  error
}

type Harness struct {
	cfg          Config
	vertexCounts []int
	policies     []KPolicy
	logger       *zap.Logger
}

func NewHarness(cfg Config, policies []KPolicy, log *zap.Logger) (*Harness, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	vertexCounts, err := util.ParseIntList(cfg.VertexCounts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for _, n := range vertexCounts {
		if n < 0 {
			return nil, fmt.Errorf("vertex count %d: %w", n, ErrInvalidConfig)
		}
	}
	if len(policies) == 0 {
		policies = DefaultPolicies()
	}

	return &Harness{
		cfg:          cfg,
		vertexCounts: vertexCounts,
		policies:     policies,
		logger:       logger.OrNop(log),
	}, nil
}

// Run. Trials random graphs per vertex count, every k policy per graph. trials run on the worker
// pool, each with its own rng derived from the base seed, so the rows do not depend on the number of
// workers (durations aside).
func (h *Harness) Run(ctx context.Context) ([]Row, error) {
	trials := make([]trial, 0, len(h.vertexCounts)*h.cfg.Trials)
	for _, n := range h.vertexCounts {
		for i := 0; i < h.cfg.Trials; i++ {
			trials = append(trials, trial{
				n:     n,
				index: i,
				seed:  h.cfg.Seed + uint64(n)<<32 + uint64(i),
			})
		}
	}

	h.logger.Sugar().Infof("running %d trials over vertex counts %v with %d workers",
		len(trials), h.vertexCounts, h.cfg.Workers)

	results := concurrent.Map(h.cfg.Workers, trials, func(tr trial) trialResult {
		if err := ctx.Err(); err != nil {
			return trialResult{err: err}
		}
		rows, err := h.runTrial(tr)
		return trialResult{rows: rows, err: err}
	})

	rows := make([]Row, 0, len(trials)*len(h.policies))
	for _, res := range results {
		if res.err != nil {
			return nil, res.err
		}
		rows = append(rows, res.rows...)
	}

	slices.SortFunc(rows, func(a, b Row) int {
		return cmp.Or(
			cmp.Compare(a.N, b.N),
			cmp.Compare(a.trial, b.trial),
			cmp.Compare(a.policyOrder, b.policyOrder),
		)
	})
	return rows, nil
}

func (h *Harness) runTrial(tr trial) ([]Row, error) {
	rng := rand.New(rand.NewSource(tr.seed))
	graph, err := generator.NewRandomGraphGenerator(rng).Generate(tr.n, h.cfg.EdgeProbability)
	if err != nil {
		return nil, err
	}
	m := graph.NumberOfEdges()

	rows := make([]Row, 0, len(h.policies))
	for order, policy := range h.policies {
		k := policy.Select(m, rng)

		start := time.Now()
		brute := partitioner.NewExhaustiveBisector(graph, k, h.logger).Decide()
		bruteTime := time.Since(start)

		start = time.Now()
		heuristic := partitioner.NewKernighanLin(graph, k, rng, h.logger).Decide()
		heuristicTime := time.Since(start)

		if heuristic.Found && !brute.Found {
			return nil, fmt.Errorf("n=%d trial=%d k=%d: %w", tr.n, tr.index, k, ErrHeuristicFalsePositive)
		}

		rows = append(rows, Row{
			N:               tr.n,
			M:               m,
			K:               k,
			KType:           policy.Name(),
			BruteTime:       bruteTime,
			BruteResult:     brute.Found,
			HeuristicTime:   heuristicTime,
			HeuristicResult: heuristic.Found,
			trial:           tr.index,
			policyOrder:     order,
		})
	}

	h.logger.Sugar().Debugf("trial %d with n=%d m=%d done", tr.index, tr.n, m)
	return rows, nil
}
