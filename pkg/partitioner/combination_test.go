package partitioner

import (
	"slices"
	"testing"

	"github.com/lintang-b-s/balanced-bisection/pkg/util"
	"github.com/stretchr/testify/assert"
)

func collect(n, r int) [][]int {
	gen := NewCombinationGenerator(n, r)
	res := make([][]int, 0)
	for gen.Next() {
		res = append(res, slices.Clone(gen.Current()))
	}
	return res
}

func TestCombinationGeneratorOrder(t *testing.T) {
	assert.Equal(t, [][]int{
		{0, 1}, {0, 2}, {0, 3},
		{1, 2}, {1, 3},
		{2, 3},
	}, collect(4, 2))
}

func TestCombinationGeneratorCount(t *testing.T) {
	testCases := []struct {
		name string
		n, r int
	}{
		{name: "empty set", n: 0, r: 0},
		{name: "choose zero", n: 5, r: 0},
		{name: "choose all", n: 5, r: 5},
		{name: "odd", n: 7, r: 3},
		{name: "even", n: 10, r: 5},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			combs := collect(tt.n, tt.r)
			assert.Len(t, combs, util.Binomial(tt.n, tt.r))

			for i := 1; i < len(combs); i++ {
				assert.Equal(t, -1, slices.Compare(combs[i-1], combs[i]), "not strictly lexicographic at %d", i)
			}
		})
	}
}

func TestCombinationGeneratorInvalid(t *testing.T) {
	assert.Empty(t, collect(3, 4))
	assert.Empty(t, collect(3, -1))

	gen := NewCombinationGenerator(2, 1)
	for gen.Next() {
	}
	assert.False(t, gen.Next())
}
