package benchmark

import (
	"cmp"
	"errors"
	"slices"
	"time"

	"github.com/samber/lo"
)

var ErrHeuristicFalsePositive = errors.New("heuristic reported a split the exhaustive search did not find")

type summaryKey struct {
	n     int
	kType string
}

// Summary. aggregate of the rows sharing a vertex count and k policy
type Summary struct {
	N              int
	KType          string
	Runs           int
	Agreements     int
	FalseNegatives int // exhaustive found a split, heuristic did not
	BruteTime      time.Duration
	HeuristicTime  time.Duration
}

func (s Summary) AgreementRate() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Agreements) / float64(s.Runs)
}

func Summarize(rows []Row) ([]Summary, error) {
	groups := lo.GroupBy(rows, func(r Row) summaryKey {
		return summaryKey{n: r.N, kType: r.KType}
	})

	order := make(map[summaryKey]int, len(groups))
	for i, r := range rows {
		key := summaryKey{n: r.N, kType: r.KType}
		if _, ok := order[key]; !ok {
			order[key] = i
		}
	}

	keys := lo.Keys(groups)
	slices.SortFunc(keys, func(a, b summaryKey) int {
		return cmp.Or(cmp.Compare(a.n, b.n), cmp.Compare(order[a], order[b]))
	})

	summaries := make([]Summary, 0, len(keys))
	for _, key := range keys {
		s := Summary{N: key.n, KType: key.kType}
		for _, r := range groups[key] {
			if r.HeuristicResult && !r.BruteResult {
				return nil, ErrHeuristicFalsePositive
			}
			s.Runs++
			if r.HeuristicResult == r.BruteResult {
				s.Agreements++
			} else {
				s.FalseNegatives++
			}
			s.BruteTime += r.BruteTime
			s.HeuristicTime += r.HeuristicTime
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}
