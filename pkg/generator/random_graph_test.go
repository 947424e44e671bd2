package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestGenerate(t *testing.T) {
	g1, err := NewRandomGraphGenerator(rand.New(rand.NewSource(9))).Generate(12, 0.5)
	require.NoError(t, err)
	g2, err := NewRandomGraphGenerator(rand.New(rand.NewSource(9))).Generate(12, 0.5)
	require.NoError(t, err)

	assert.Equal(t, 12, g1.NumberOfVertices())
	assert.Equal(t, g1.GetEdges(), g2.GetEdges())
	assert.LessOrEqual(t, g1.NumberOfEdges(), 66)
}

func TestGenerateExtremes(t *testing.T) {
	gen := NewRandomGraphGenerator(rand.New(rand.NewSource(1)))

	empty, err := gen.Generate(6, 0)
	require.NoError(t, err)
	assert.Equal(t, 6, empty.NumberOfVertices())
	assert.Equal(t, 0, empty.NumberOfEdges())

	complete, err := gen.Generate(6, 1)
	require.NoError(t, err)
	assert.Equal(t, 15, complete.NumberOfEdges())

	none, err := gen.Generate(0, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0, none.NumberOfVertices())
}

func TestGenerateInvalid(t *testing.T) {
	gen := NewRandomGraphGenerator(rand.New(rand.NewSource(1)))

	_, err := gen.Generate(-1, 0.5)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = gen.Generate(4, 1.5)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
