package benchmark

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"
)

func testConfig() Config {
	return Config{
		VertexCounts:    "4,6,8",
		Trials:          5,
		Seed:            17,
		Workers:         3,
		EdgeProbability: 0.5,
	}
}

func TestHarnessRun(t *testing.T) {
	g := NewWithT(t)

	h, err := NewHarness(testConfig(), nil, nil)
	g.Expect(err).NotTo(HaveOccurred())

	rows, err := h.Run(context.Background())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(rows).To(HaveLen(3 * 5 * 4))

	for i, r := range rows {
		g.Expect(r.KType).To(Equal(DefaultPolicies()[i%4].Name()))
		g.Expect(r.K).To(And(BeNumerically(">=", 0), BeNumerically("<=", r.M)))
		g.Expect(r.M).To(BeNumerically("<=", r.N*(r.N-1)/2))
		if r.HeuristicResult {
			g.Expect(r.BruteResult).To(BeTrue())
		}
		switch r.KType {
		case EdgeCountK.Name():
			g.Expect(r.K).To(Equal(r.M))
			g.Expect(r.BruteResult).To(BeTrue())
			g.Expect(r.HeuristicResult).To(BeTrue())
		case HalfEdgeCountK.Name():
			g.Expect(r.K).To(Equal(r.M / 2))
		case ZeroK.Name():
			g.Expect(r.K).To(BeZero())
		}
	}
	g.Expect(rows[0].N).To(Equal(4))
	g.Expect(rows[len(rows)-1].N).To(Equal(8))
}

func TestHarnessIsReproducible(t *testing.T) {
	g := NewWithT(t)

	cfg := testConfig()
	h1, err := NewHarness(cfg, nil, nil)
	g.Expect(err).NotTo(HaveOccurred())
	cfg.Workers = 1
	h2, err := NewHarness(cfg, nil, nil)
	g.Expect(err).NotTo(HaveOccurred())

	rows1, err := h1.Run(context.Background())
	g.Expect(err).NotTo(HaveOccurred())
	rows2, err := h2.Run(context.Background())
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(rows1).To(HaveLen(len(rows2)))
	for i := range rows1 {
		g.Expect(rows1[i].M).To(Equal(rows2[i].M))
		g.Expect(rows1[i].K).To(Equal(rows2[i].K))
		g.Expect(rows1[i].BruteResult).To(Equal(rows2[i].BruteResult))
		g.Expect(rows1[i].HeuristicResult).To(Equal(rows2[i].HeuristicResult))
	}
}

func TestHarnessCanceled(t *testing.T) {
	g := NewWithT(t)

	h, err := NewHarness(testConfig(), nil, nil)
	g.Expect(err).NotTo(HaveOccurred())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = h.Run(ctx)
	g.Expect(err).To(MatchError(context.Canceled))
}

func TestNewHarnessInvalidConfig(t *testing.T) {
	g := NewWithT(t)

	cfg := testConfig()
	cfg.Trials = 0
	_, err := NewHarness(cfg, nil, nil)
	g.Expect(err).To(MatchError(ErrInvalidConfig))

	cfg = testConfig()
	cfg.VertexCounts = "4,x"
	_, err = NewHarness(cfg, nil, nil)
	g.Expect(err).To(MatchError(ErrInvalidConfig))

	cfg = testConfig()
	cfg.EdgeProbability = 2
	_, err = NewHarness(cfg, nil, nil)
	g.Expect(err).To(MatchError(ErrInvalidConfig))
}
