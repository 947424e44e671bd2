package partitioner

// CombinationGenerator. enumerates every r-subset of {0, ..., n-1} exactly once, in lexicographic
// order, without recursion and without materializing the subsets.
type CombinationGenerator struct {
	n, r    int
	indices []int
	started bool
	done    bool
}

func NewCombinationGenerator(n, r int) *CombinationGenerator {
	return &CombinationGenerator{
		n:       n,
		r:       r,
		indices: make([]int, 0, max(r, 0)),
	}
}

// Next. advance to the next combination. false once every combination has been produced.
func (cg *CombinationGenerator) Next() bool {
	if cg.done {
		return false
	}

	if !cg.started {
		cg.started = true
		if cg.r < 0 || cg.r > cg.n {
			cg.done = true
			return false
		}
		for i := 0; i < cg.r; i++ {
			cg.indices = append(cg.indices, i)
		}
		return true
	}

	// rightmost index that has not reached its maximum value i + n - r
	i := cg.r - 1
	for i >= 0 && cg.indices[i] == i+cg.n-cg.r {
		i--
	}
	if i < 0 {
		cg.done = true
		return false
	}

	cg.indices[i]++
	for j := i + 1; j < cg.r; j++ {
		cg.indices[j] = cg.indices[j-1] + 1
	}
	return true
}

// Current. ascending indices of the current combination. the slice is reused by Next, callers must
// copy it to keep it.
func (cg *CombinationGenerator) Current() []int {
	return cg.indices
}
