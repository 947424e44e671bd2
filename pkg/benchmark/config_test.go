package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig(map[string]interface{}{
		"benchmark_vertex_counts":    "24",
		"benchmark_trials":           "200",
		"benchmark_seed":             "3",
		"benchmark_workers":          4,
		"benchmark_edge_probability": "0.5",
		"benchmark_output":           "analysis_24.csv",
		"log_level":                  0,
	})
	require.NoError(t, err)

	assert.Equal(t, Config{
		VertexCounts:    "24",
		Trials:          200,
		Seed:            3,
		Workers:         4,
		EdgeProbability: 0.5,
		Output:          "analysis_24.csv",
	}, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("BENCHMARK_TRIALS", "7")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Trials)
	assert.Equal(t, "8,10,12,14,16", cfg.VertexCounts)
	assert.Equal(t, 0.5, cfg.EdgeProbability)
}
