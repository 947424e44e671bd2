package partitioner

import (
	"math/bits"
	"testing"

	"github.com/lintang-b-s/balanced-bisection/pkg/datastructure"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func buildGraph(t *testing.T, pairs [][2]datastructure.Index, isolated ...datastructure.Index) *datastructure.Graph {
	t.Helper()
	edges := make([]datastructure.Edge, 0, len(pairs))
	for _, p := range pairs {
		edges = append(edges, datastructure.NewEdge(p[0], p[1]))
	}
	g, err := datastructure.NewGraph(edges, isolated...)
	require.NoError(t, err)
	return g
}

func sixVertexGraph(t *testing.T) *datastructure.Graph {
	return buildGraph(t, [][2]datastructure.Index{
		{1, 2}, {1, 3}, {1, 4}, {2, 3},
		{3, 4}, {3, 5}, {4, 5}, {4, 6},
	})
}

func sixVertexGraphTwo(t *testing.T) *datastructure.Graph {
	return buildGraph(t, [][2]datastructure.Index{
		{1, 2}, {1, 3}, {1, 5}, {2, 6},
		{3, 6}, {3, 5}, {4, 5}, {4, 6},
	})
}

func randomGraph(t *testing.T, rng *rand.Rand, n int, p float64) *datastructure.Graph {
	t.Helper()
	pairs := make([][2]datastructure.Index, 0)
	isolated := make([]datastructure.Index, 0, n)
	for i := 0; i < n; i++ {
		isolated = append(isolated, datastructure.Index(i))
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				pairs = append(pairs, [2]datastructure.Index{datastructure.Index(i), datastructure.Index(j)})
			}
		}
	}
	return buildGraph(t, pairs, isolated...)
}

// bruteForceMinBisection. independent enumeration of every bitmask with floor(n/2) bits set
func bruteForceMinBisection(g *datastructure.Graph) int {
	vertices := g.GetVertices()
	n := len(vertices)
	pos := make(map[datastructure.Index]uint, n)
	for i, v := range vertices {
		pos[v] = uint(i)
	}

	best := -1
	for mask := uint64(0); mask < 1<<n; mask++ {
		if bits.OnesCount64(mask) != n/2 {
			continue
		}
		cut := 0
		for _, e := range g.GetEdges() {
			inU := mask&(1<<pos[e.GetFrom()]) != 0
			inV := mask&(1<<pos[e.GetTo()]) != 0
			if inU != inV {
				cut++
			}
		}
		if best == -1 || cut < best {
			best = cut
		}
	}
	return best
}
