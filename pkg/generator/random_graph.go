package generator

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/balanced-bisection/pkg/datastructure"
	"golang.org/x/exp/rand"
)

var ErrInvalidParameter = errors.New("invalid random graph parameter")

// RandomGraphGenerator. G(n, p) graphs: vertices 0..n-1, each pair joined independently with
// probability p.
type RandomGraphGenerator struct {
	rng *rand.Rand
}

func NewRandomGraphGenerator(rng *rand.Rand) *RandomGraphGenerator {
	return &RandomGraphGenerator{rng: rng}
}

func (gen *RandomGraphGenerator) Generate(n int, p float64) (*datastructure.Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("vertex count %d: %w", n, ErrInvalidParameter)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("edge probability %v: %w", p, ErrInvalidParameter)
	}

	vertices := make([]datastructure.Index, n)
	edges := make([]datastructure.Edge, 0, int(float64(n*(n-1)/2)*p))
	for i := 0; i < n; i++ {
		vertices[i] = datastructure.Index(i)
		for j := i + 1; j < n; j++ {
			if gen.rng.Float64() < p {
				edges = append(edges, datastructure.NewEdge(datastructure.Index(i), datastructure.Index(j)))
			}
		}
	}

	return datastructure.NewGraphWithVertices(vertices, edges)
}
