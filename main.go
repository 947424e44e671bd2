package main

import (
	"context"

	"github.com/lintang-b-s/balanced-bisection/pkg/benchmark"
	"github.com/lintang-b-s/balanced-bisection/pkg/logger"
	"github.com/lintang-b-s/balanced-bisection/pkg/util"
)

func main() {
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := util.ReadConfig(); err != nil {
		logger.Sugar().Infof("no config file, using defaults and environment: %v", err)
	}

	cfg, err := benchmark.LoadConfig()
	if err != nil {
		panic(err)
	}

	harness, err := benchmark.NewHarness(cfg, benchmark.DefaultPolicies(), logger)
	if err != nil {
		panic(err)
	}

	rows, err := harness.Run(context.Background())
	if err != nil {
		panic(err)
	}

	summaries, err := benchmark.Summarize(rows)
	if err != nil {
		panic(err)
	}
	for _, s := range summaries {
		logger.Sugar().Infof("n=%d k_type=%s runs=%d agreement=%.3f false_negatives=%d brute=%v heuristic=%v",
			s.N, s.KType, s.Runs, s.AgreementRate(), s.FalseNegatives, s.BruteTime, s.HeuristicTime)
	}

	if err := benchmark.SaveCSV(cfg.Output, rows); err != nil {
		panic(err)
	}
	logger.Sugar().Infof("wrote %d rows to %s", len(rows), cfg.Output)
}
