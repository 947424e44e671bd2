package benchmark

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/lintang-b-s/balanced-bisection/pkg"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid benchmark configuration")

type Config struct {
	VertexCounts    string  `mapstructure:"benchmark_vertex_counts"`
	Trials          int     `mapstructure:"benchmark_trials"`
	Seed            uint64  `mapstructure:"benchmark_seed"`
	Workers         int     `mapstructure:"benchmark_workers"`
	EdgeProbability float64 `mapstructure:"benchmark_edge_probability"`
	Output          string  `mapstructure:"benchmark_output"`
}

func setDefaults() {
	viper.SetDefault("BENCHMARK_VERTEX_COUNTS", "8,10,12,14,16")
	viper.SetDefault("BENCHMARK_TRIALS", pkg.DEFAULT_TRIALS)
	viper.SetDefault("BENCHMARK_SEED", pkg.DEFAULT_SEED)
	viper.SetDefault("BENCHMARK_WORKERS", runtime.NumCPU())
	viper.SetDefault("BENCHMARK_EDGE_PROBABILITY", pkg.EDGE_PROBABILITY)
	viper.SetDefault("BENCHMARK_OUTPUT", "analysis.csv")
}

// LoadConfig. viper defaults, overridden by the config file (if read) and the environment.
func LoadConfig() (Config, error) {
	setDefaults()
	viper.AutomaticEnv()
	return DecodeConfig(viper.AllSettings())
}

// DecodeConfig. settings values may be strings, as they come from the environment.
func DecodeConfig(settings map[string]interface{}) (Config, error) {
	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(settings); err != nil {
		return Config{}, fmt.Errorf("decode benchmark config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Trials < 1 {
		return fmt.Errorf("trials %d: %w", c.Trials, ErrInvalidConfig)
	}
	if c.EdgeProbability < 0 || c.EdgeProbability > 1 {
		return fmt.Errorf("edge probability %v: %w", c.EdgeProbability, ErrInvalidConfig)
	}
	return nil
}
