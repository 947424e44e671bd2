package datastructure

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

type Index uint32

// Edge is an unordered pair of distinct vertices.
type Edge struct {
	u Index
	v Index
}

func NewEdge(u, v Index) Edge {
	return Edge{u: u, v: v}
}

func (e Edge) GetFrom() Index {
	return e.u
}

func (e Edge) GetTo() Index {
	return e.v
}

// normalize. (u,v) and (v,u) map to the same key
func (e Edge) normalize() Edge {
	if e.u > e.v {
		return Edge{u: e.v, v: e.u}
	}
	return e
}

// Graph is an immutable undirected simple graph.
type Graph struct {
	vertices      []Index           // ascending vertex ids
	edges         []Edge            // in insertion order
	adjacencyList map[Index][]Index // ascending neighbors of each vertex
	edgeSet       map[Edge]struct{} // normalized edges
}

// NewGraph builds a graph from an edge list. The vertex set is the union of the edge endpoints and
// the isolated vertices.
func NewGraph(edges []Edge, isolated ...Index) (*Graph, error) {
	vertices := make([]Index, 0, len(isolated)+2*len(edges))
	vertices = append(vertices, isolated...)
	for _, e := range edges {
		vertices = append(vertices, e.u, e.v)
	}
	return NewGraphWithVertices(vertices, edges)
}

// NewGraphWithVertices builds a graph over an explicit vertex set. Every edge endpoint must be a
// member of vertices.
func NewGraphWithVertices(vertices []Index, edges []Edge) (*Graph, error) {
	g := &Graph{
		vertices:      lo.Uniq(vertices),
		adjacencyList: make(map[Index][]Index, len(vertices)),
		edgeSet:       make(map[Edge]struct{}, len(edges)),
		edges:         make([]Edge, 0, len(edges)),
	}
	slices.Sort(g.vertices)
	for _, v := range g.vertices {
		g.adjacencyList[v] = make([]Index, 0)
	}

	for _, e := range edges {
		if err := g.addEdge(e); err != nil {
			return nil, err
		}
	}

	for v := range g.adjacencyList {
		slices.Sort(g.adjacencyList[v])
	}
	return g, nil
}

func (g *Graph) addEdge(e Edge) error {
	if e.u == e.v {
		return fmt.Errorf("edge (%d,%d): %w", e.u, e.v, ErrSelfLoop)
	}
	if !g.HasVertex(e.u) {
		return fmt.Errorf("edge (%d,%d) endpoint %d: %w", e.u, e.v, e.u, ErrUnknownVertex)
	}
	if !g.HasVertex(e.v) {
		return fmt.Errorf("edge (%d,%d) endpoint %d: %w", e.u, e.v, e.v, ErrUnknownVertex)
	}
	key := e.normalize()
	if _, exists := g.edgeSet[key]; exists {
		return fmt.Errorf("edge (%d,%d): %w", e.u, e.v, ErrDuplicateEdge)
	}

	g.edgeSet[key] = struct{}{}
	g.edges = append(g.edges, e)
	// undirected graph
	g.adjacencyList[e.u] = append(g.adjacencyList[e.u], e.v)
	g.adjacencyList[e.v] = append(g.adjacencyList[e.v], e.u)
	return nil
}

func (g *Graph) NumberOfVertices() int {
	return len(g.vertices)
}

func (g *Graph) NumberOfEdges() int {
	return len(g.edges)
}

// GetVertices. return a copy of the vertex ids in ascending order
func (g *Graph) GetVertices() []Index {
	return slices.Clone(g.vertices)
}

func (g *Graph) GetEdges() []Edge {
	return slices.Clone(g.edges)
}

func (g *Graph) HasVertex(v Index) bool {
	_, ok := g.adjacencyList[v]
	return ok
}

func (g *Graph) HasEdge(u, v Index) bool {
	_, ok := g.edgeSet[NewEdge(u, v).normalize()]
	return ok
}

// Neighbors. return the vertices adjacent to v in ascending order. nil if v is not in the graph
func (g *Graph) Neighbors(v Index) []Index {
	return slices.Clone(g.adjacencyList[v])
}

func (g *Graph) Degree(v Index) int {
	return len(g.adjacencyList[v])
}

func (g *Graph) ForEachVertices(handle func(v Index)) {
	for _, v := range g.vertices {
		handle(v)
	}
}

func (g *Graph) ForEachEdges(handle func(e Edge, eId int)) {
	for eId, e := range g.edges {
		handle(e, eId)
	}
}

func (g *Graph) ForEachNeighbors(v Index, handle func(w Index)) {
	for _, w := range g.adjacencyList[v] {
		handle(w)
	}
}
