package datastructure

import (
	"bufio"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadGraph(t *testing.T) {
	g, err := NewGraph(edgesOf([][2]Index{{1, 2}, {1, 3}, {2, 3}, {3, 4}}), 10, 11)
	require.NoError(t, err)

	filename := filepath.Join(t.TempDir(), "graph.bz2")
	require.NoError(t, g.WriteGraph(filename))

	got, err := ReadGraph(filename)
	require.NoError(t, err)

	assert.Equal(t, g.GetVertices(), got.GetVertices())
	assert.Equal(t, g.GetEdges(), got.GetEdges())
}

func TestReadEdgeList(t *testing.T) {
	input := `# six vertices
1 2
1 3

2 3
7
`
	g, err := ReadEdgeList(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Index{1, 2, 3, 7}, g.GetVertices())
	assert.Equal(t, 3, g.NumberOfEdges())

	_, err = ReadEdgeList(strings.NewReader("1 2 3\n"))
	assert.ErrorIs(t, err, ErrMalformedFile)

	_, err = ReadEdgeList(strings.NewReader("1 1\n"))
	assert.ErrorIs(t, err, ErrSelfLoop)
}

func TestReadGraphRejectsUnknownEndpoint(t *testing.T) {
	_, err := readText(bufio.NewReader(strings.NewReader("2 1\n1\n2\n1 3\n")))
	assert.ErrorIs(t, err, ErrUnknownVertex)
}
