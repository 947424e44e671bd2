package partitioner

import "github.com/lintang-b-s/balanced-bisection/pkg/datastructure"

// MinCut. scores candidate splits given as positions into the ascending vertex list.
// flags[i] is true if vertices[i] is on side U.
type MinCut struct {
	vertices []datastructure.Index
	edges    [][2]int // edge endpoints as positions into vertices
	flags    []bool
}

func NewMinCut(graph *datastructure.Graph) *MinCut {
	vertices := graph.GetVertices()
	pos := make(map[datastructure.Index]int, len(vertices))
	for i, v := range vertices {
		pos[v] = i
	}

	edges := make([][2]int, 0, graph.NumberOfEdges())
	graph.ForEachEdges(func(e datastructure.Edge, _ int) {
		edges = append(edges, [2]int{pos[e.GetFrom()], pos[e.GetTo()]})
	})

	return &MinCut{
		vertices: vertices,
		edges:    edges,
		flags:    make([]bool, len(vertices)),
	}
}

// clone. shares the read-only vertices and edges, owns its flags
func (mc *MinCut) clone() *MinCut {
	return &MinCut{
		vertices: mc.vertices,
		edges:    mc.edges,
		flags:    make([]bool, len(mc.vertices)),
	}
}

func (mc *MinCut) NumberOfVertices() int {
	return len(mc.vertices)
}

func (mc *MinCut) SetFlags(uPositions []int, flag bool) {
	for _, i := range uPositions {
		mc.flags[i] = flag
	}
}

func (mc *MinCut) GetFlag(i int) bool {
	return mc.flags[i]
}

// Cut. number of edges whose endpoints have different flags
func (mc *MinCut) Cut() int {
	cut := 0
	for _, e := range mc.edges {
		if mc.flags[e[0]] != mc.flags[e[1]] {
			cut++
		}
	}
	return cut
}

// Partition. U = flagged vertices, W = the rest
func (mc *MinCut) Partition() *datastructure.Partition {
	u := make([]datastructure.Index, 0, len(mc.vertices)/2+1)
	w := make([]datastructure.Index, 0, len(mc.vertices)/2+1)
	for i, v := range mc.vertices {
		if mc.flags[i] {
			u = append(u, v)
		} else {
			w = append(w, v)
		}
	}
	return datastructure.NewPartition(u, w)
}
