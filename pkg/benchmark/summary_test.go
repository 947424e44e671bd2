package benchmark

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	rows := []Row{
		{N: 6, KType: "0", BruteResult: false, HeuristicResult: false, BruteTime: time.Second},
		{N: 6, KType: "k/2", BruteResult: true, HeuristicResult: false},
		{N: 6, KType: "0", BruteResult: true, HeuristicResult: true, BruteTime: time.Second},
		{N: 6, KType: "k/2", BruteResult: true, HeuristicResult: true},
		{N: 8, KType: "0", BruteResult: false, HeuristicResult: false},
	}

	summaries, err := Summarize(rows)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	assert.Equal(t, Summary{N: 6, KType: "0", Runs: 2, Agreements: 2, BruteTime: 2 * time.Second}, summaries[0])
	assert.Equal(t, Summary{N: 6, KType: "k/2", Runs: 2, Agreements: 1, FalseNegatives: 1}, summaries[1])
	assert.Equal(t, 8, summaries[2].N)
	assert.InDelta(t, 0.5, summaries[1].AgreementRate(), 1e-9)
}

func TestSummarizeRejectsFalsePositive(t *testing.T) {
	_, err := Summarize([]Row{{N: 4, KType: "0", BruteResult: false, HeuristicResult: true}})
	assert.ErrorIs(t, err, ErrHeuristicFalsePositive)
}
