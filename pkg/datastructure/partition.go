package datastructure

import (
	"fmt"
	"slices"

	"github.com/lintang-b-s/balanced-bisection/pkg"
)

// Partition is a split of a vertex set into two disjoint sides U and W.
// side records the current side of every member, u and w are kept in ascending order.
type Partition struct {
	side map[Index]pkg.Side
	u    []Index
	w    []Index
}

func NewPartition(u, w []Index) *Partition {
	p := &Partition{
		side: make(map[Index]pkg.Side, len(u)+len(w)),
		u:    slices.Clone(u),
		w:    slices.Clone(w),
	}
	slices.Sort(p.u)
	slices.Sort(p.w)
	p.u = slices.Compact(p.u)
	p.w = slices.Compact(p.w)

	for _, v := range p.u {
		p.side[v] = pkg.SIDE_U
	}
	for _, v := range p.w {
		p.side[v] = pkg.SIDE_W
	}
	return p
}

// GetU. return a copy of U in ascending order
func (p *Partition) GetU() []Index {
	return slices.Clone(p.u)
}

// GetW. return a copy of W in ascending order
func (p *Partition) GetW() []Index {
	return slices.Clone(p.w)
}

func (p *Partition) SizeU() int {
	return len(p.u)
}

func (p *Partition) SizeW() int {
	return len(p.w)
}

func (p *Partition) Side(v Index) pkg.Side {
	s, ok := p.side[v]
	if !ok {
		return pkg.SIDE_NONE
	}
	return s
}

func (p *Partition) InU(v Index) bool {
	return p.Side(v) == pkg.SIDE_U
}

func (p *Partition) InW(v Index) bool {
	return p.Side(v) == pkg.SIDE_W
}

func (p *Partition) IsBalanced() bool {
	diff := len(p.u) - len(p.w)
	return diff >= -1 && diff <= 1
}

func (p *Partition) ForEachU(handle func(v Index)) {
	for _, v := range p.u {
		handle(v)
	}
}

func (p *Partition) ForEachW(handle func(v Index)) {
	for _, v := range p.w {
		handle(v)
	}
}

// Swap. exchange a (in U) with b (in W). Swapping is only defined between equal-size sides: when
// |U| != |W|, or a is not in U, or b is not in W, both sides are left unchanged and Swap returns false.
func (p *Partition) Swap(a, b Index) bool {
	if len(p.u) != len(p.w) {
		return false
	}
	if !p.InU(a) || !p.InW(b) {
		return false
	}

	p.u = removeSorted(p.u, a)
	p.w = removeSorted(p.w, b)
	p.u = insertSorted(p.u, b)
	p.w = insertSorted(p.w, a)
	p.side[a] = pkg.SIDE_W
	p.side[b] = pkg.SIDE_U
	return true
}

// Cut. number of edges of g with one endpoint in U and the other in W
func (p *Partition) Cut(g *Graph) int {
	cut := 0
	g.ForEachEdges(func(e Edge, _ int) {
		su, sv := p.Side(e.u), p.Side(e.v)
		if (su == pkg.SIDE_U && sv == pkg.SIDE_W) || (su == pkg.SIDE_W && sv == pkg.SIDE_U) {
			cut++
		}
	})
	return cut
}

// Validate. U and W must be disjoint, cover exactly the vertices of g, and differ in size by at most one.
func (p *Partition) Validate(g *Graph) error {
	if len(p.side) != len(p.u)+len(p.w) {
		return fmt.Errorf("U and W are not disjoint: %w", ErrInvalidPartition)
	}
	if len(p.side) != g.NumberOfVertices() {
		return fmt.Errorf("partition has %d vertices, graph has %d: %w",
			len(p.side), g.NumberOfVertices(), ErrInvalidPartition)
	}
	for v := range p.side {
		if !g.HasVertex(v) {
			return fmt.Errorf("vertex %d is not in the graph: %w", v, ErrInvalidPartition)
		}
	}
	if !p.IsBalanced() {
		return fmt.Errorf("unbalanced sides |U|=%d |W|=%d: %w", len(p.u), len(p.w), ErrInvalidPartition)
	}
	return nil
}

func (p *Partition) Clone() *Partition {
	return NewPartition(p.u, p.w)
}

func (p *Partition) String() string {
	return fmt.Sprintf("U=%v W=%v", p.u, p.w)
}

func removeSorted(s []Index, v Index) []Index {
	i, found := slices.BinarySearch(s, v)
	if !found {
		return s
	}
	return slices.Delete(s, i, i+1)
}

func insertSorted(s []Index, v Index) []Index {
	i, _ := slices.BinarySearch(s, v)
	return slices.Insert(s, i, v)
}
