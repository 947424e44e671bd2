package partitioner

import (
	"math"
	"time"

	"github.com/lintang-b-s/balanced-bisection/pkg/datastructure"
	"github.com/lintang-b-s/balanced-bisection/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// GainTable. D-value of every vertex: (neighbors on the other side) - (neighbors on its own side)
type GainTable map[datastructure.Index]int

// KernighanLin. single start local search over size-preserving pair swaps.
// Init: one random balanced split. Improve: apply the best swap while its gain is positive.
// Terminal: compare the cut of the local optimum against k.
// A false result does not mean no split exists, the search never restarts from another split.
type KernighanLin struct {
	graph  *datastructure.Graph
	k      int
	rng    *rand.Rand
	logger *zap.Logger
}

// NewKernighanLin. rng drives the initial split, a nil rng is seeded from the clock.
func NewKernighanLin(graph *datastructure.Graph, k int, rng *rand.Rand, log *zap.Logger) *KernighanLin {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &KernighanLin{
		graph:  graph,
		k:      k,
		rng:    rng,
		logger: logger.OrNop(log),
	}
}

func (kl *KernighanLin) Decide() *DecisionResult {
	return kl.DecideFrom(kl.InitialPartition())
}

// DecideFrom. run Improve until a local optimum and evaluate it. p is mutated in place.
func (kl *KernighanLin) DecideFrom(p *datastructure.Partition) *DecisionResult {
	swaps := 0
	for kl.Improve(p) {
		swaps++
	}

	cut := p.Cut(kl.graph)
	kl.logger.Sugar().Debugf("local optimum after %d swaps, cut %d, k %d", swaps, cut, kl.k)

	var res *DecisionResult
	if cut <= kl.k {
		res = newFoundResult(p, cut)
	} else {
		res = newNotFoundResult(cut)
	}
	res.Swaps = swaps
	return res
}

// InitialPartition. shuffle the vertices, U = first floor(n/2), W = the rest
func (kl *KernighanLin) InitialPartition() *datastructure.Partition {
	nodes := kl.graph.GetVertices()
	kl.rng.Shuffle(len(nodes), func(i, j int) { nodes[i], nodes[j] = nodes[j], nodes[i] })
	mid := len(nodes) / 2
	return datastructure.NewPartition(nodes[:mid], nodes[mid:])
}

// Improve. one step: recompute D from scratch, pick the max gain pair and swap it if the gain is
// positive. returns true iff the partition changed.
func (kl *KernighanLin) Improve(p *datastructure.Partition) bool {
	d := kl.ComputeDValues(p)
	a, b, gain, ok := kl.ComputeMaxGain(p, d)
	if !ok || gain <= 0 {
		return false
	}
	// a refused swap (|U| != |W|) ends the search as a local optimum
	return kl.SwapNodes(p, a, b)
}

func (kl *KernighanLin) ComputeDValues(p *datastructure.Partition) GainTable {
	d := make(GainTable, p.SizeU()+p.SizeW())

	dValue := func(v datastructure.Index, otherSide func(datastructure.Index) bool) int {
		val := 0
		kl.graph.ForEachNeighbors(v, func(w datastructure.Index) {
			if otherSide(w) {
				val++
			} else {
				val--
			}
		})
		return val
	}

	p.ForEachU(func(v datastructure.Index) {
		d[v] = dValue(v, p.InW)
	})
	p.ForEachW(func(v datastructure.Index) {
		d[v] = dValue(v, p.InU)
	})
	return d
}

// ComputeMaxGain. gain(a,b) = D[a] + D[b] - 2*edge(a,b) over a in U, b in W. U and W are scanned
// in ascending order and only a strictly larger gain replaces the best pair, so ties resolve to the
// lexicographically smallest (a, b). ok is false when U or W is empty.
func (kl *KernighanLin) ComputeMaxGain(p *datastructure.Partition, d GainTable) (a, b datastructure.Index, gain int, ok bool) {
	gain = math.MinInt
	p.ForEachU(func(u datastructure.Index) {
		p.ForEachW(func(w datastructure.Index) {
			cost := d[u] + d[w]
			if kl.graph.HasEdge(u, w) {
				cost -= 2
			}
			if !ok || cost > gain {
				a, b, gain, ok = u, w, cost, true
			}
		})
	})
	return a, b, gain, ok
}

// SwapNodes. exchange a in U with b in W, a no-op when |U| != |W|
func (kl *KernighanLin) SwapNodes(p *datastructure.Partition, a, b datastructure.Index) bool {
	return p.Swap(a, b)
}
