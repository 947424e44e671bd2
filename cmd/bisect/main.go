package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lintang-b-s/balanced-bisection/pkg/datastructure"
	"github.com/lintang-b-s/balanced-bisection/pkg/logger"
	"github.com/lintang-b-s/balanced-bisection/pkg/partitioner"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var validSolvers = []string{"exhaustive", "heuristic", "both"}

type output struct {
	Solver   string                `json:"solver"`
	Found    bool                  `json:"found"`
	Cut      int                   `json:"cut"`
	U        []datastructure.Index `json:"u,omitempty"`
	W        []datastructure.Index `json:"w,omitempty"`
	Duration string                `json:"duration"`
}

func main() {
	graphPtr := flag.String("graph", "", "graph file: a plain edge list (\"u v\" per line) or a .bz2 graph file")
	kPtr := flag.Int("k", 0, "bound on the number of cut edges")
	solverPtr := flag.String("solver", "both", "decider to run: \"exhaustive\", \"heuristic\" or \"both\"")
	seedPtr := flag.Uint64("seed", uint64(time.Now().UnixNano()), "seed of the heuristic's initial split")
	workersPtr := flag.Int("workers", 1, "goroutines for the exhaustive search, 1 keeps the deterministic first match")
	flag.Parse()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if *graphPtr == "" || !lo.Contains(validSolvers, *solverPtr) {
		flag.Usage()
		os.Exit(2)
	}

	graph, err := loadGraph(*graphPtr)
	if err != nil {
		log.Fatal("cannot read graph", zap.String("file", *graphPtr), zap.Error(err))
	}
	log.Sugar().Infof("graph with %d vertices and %d edges, k=%d", graph.NumberOfVertices(), graph.NumberOfEdges(), *kPtr)

	outputs := make([]output, 0, 2)
	if *solverPtr != "heuristic" {
		start := time.Now()
		res, err := partitioner.NewExhaustiveBisector(graph, *kPtr, log).DecideParallel(context.Background(), *workersPtr)
		if err != nil {
			log.Fatal("exhaustive search failed", zap.Error(err))
		}
		outputs = append(outputs, toOutput("exhaustive", res, time.Since(start)))
	}
	if *solverPtr != "exhaustive" {
		start := time.Now()
		rng := rand.New(rand.NewSource(*seedPtr))
		res := partitioner.NewKernighanLin(graph, *kPtr, rng, log).Decide()
		outputs = append(outputs, toOutput("heuristic", res, time.Since(start)))
	}

	buf, err := json.MarshalIndent(outputs, "", "  ")
	if err != nil {
		log.Fatal("cannot encode result", zap.Error(err))
	}
	fmt.Println(string(buf))
}

func loadGraph(filename string) (*datastructure.Graph, error) {
	if strings.HasSuffix(filename, ".bz2") {
		return datastructure.ReadGraph(filename)
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return datastructure.ReadEdgeList(f)
}

func toOutput(solver string, res *partitioner.DecisionResult, d time.Duration) output {
	return output{
		Solver:   solver,
		Found:    res.Found,
		Cut:      res.Cut,
		U:        res.U,
		W:        res.W,
		Duration: d.String(),
	}
}
