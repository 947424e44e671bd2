package benchmark

import (
	"golang.org/x/exp/rand"
)

// KPolicy. how the bound k is chosen from the edge count m of a graph
type KPolicy struct {
	name    string
	selectK func(m int, rng *rand.Rand) int
}

func (p KPolicy) Name() string {
	return p.name
}

func (p KPolicy) Select(m int, rng *rand.Rand) int {
	return p.selectK(m, rng)
}

var (
	ZeroK = KPolicy{name: "0", selectK: func(int, *rand.Rand) int {
		return 0
	}}
	EdgeCountK = KPolicy{name: "k", selectK: func(m int, _ *rand.Rand) int {
		return m
	}}
	HalfEdgeCountK = KPolicy{name: "k/2", selectK: func(m int, _ *rand.Rand) int {
		return m / 2
	}}
	// uniform in [0, m]
	RandomK = KPolicy{name: "random", selectK: func(m int, rng *rand.Rand) int {
		return rng.Intn(m + 1)
	}}
)

func DefaultPolicies() []KPolicy {
	return []KPolicy{ZeroK, EdgeCountK, HalfEdgeCountK, RandomK}
}
