package partitioner

import (
	"github.com/lintang-b-s/balanced-bisection/pkg/datastructure"
)

// DecisionResult. outcome of a bisection decision for bound k.
// U, W and Partition are only set when Found is true.
type DecisionResult struct {
	Found     bool
	Cut       int
	U         []datastructure.Index
	W         []datastructure.Index
	Partition *datastructure.Partition

	Candidates int // exhaustive search: number of splits scored
	Swaps      int // kernighan-lin: number of accepted swaps
}

type Decider interface {
	Decide() *DecisionResult
}

func newFoundResult(p *datastructure.Partition, cut int) *DecisionResult {
	return &DecisionResult{
		Found:     true,
		Cut:       cut,
		U:         p.GetU(),
		W:         p.GetW(),
		Partition: p,
	}
}

func newNotFoundResult(cut int) *DecisionResult {
	return &DecisionResult{
		Found: false,
		Cut:   cut,
	}
}
