// Package bench is the benchmark driver. For each configured node count it
// generates one random graph, then runs every solver against it once and
// records the wall-clock time.
//
// Runs are strictly sequential: generation, then solver 1 to completion,
// then solver 2, and so on, then the next node count. At most one solver
// process exists at any time.
//
// A solver that cannot be launched aborts the whole run and Run returns no
// Result. A solver that starts and then fails still yields a row; its
// ExitCode is recorded and a warning is logged.
package bench

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/dijkbench/builder"
	"github.com/katalvlaran/dijkbench/solver"
	"github.com/katalvlaran/dijkbench/textgraph"
)

// Row is one (node count, solver) measurement.
type Row struct {
	Nodes    int
	Links    int
	Elapsed  time.Duration
	ExitCode int
}

// Table holds every row of one solver, in Config.Sizes order.
type Table struct {
	Solver solver.Solver
	Rows   []Row
}

// Result is the in-memory outcome of Run. It is never persisted.
type Result struct {
	RunID uuid.UUID
	// Seed is the seed Run derived its RNG from; 0 when Config.Rand was
	// supplied by the caller.
	Seed   int64
	Sizes  []int
	Links  []int
	Tables []Table
}

// Run executes the benchmark described by cfg.
func Run(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}

	res := &Result{
		RunID:  uuid.New(),
		Sizes:  append([]int(nil), cfg.Sizes...),
		Links:  make([]int, 0, len(cfg.Sizes)),
		Tables: make([]Table, len(cfg.Solvers)),
	}
	logger := cfg.Logger.With().Str("run_id", res.RunID.String()).Logger()

	rng := cfg.Rand
	if rng == nil {
		res.Seed = cfg.Seed
		if res.Seed == 0 {
			res.Seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(res.Seed))
	}
	lo, hi := cfg.costRange()
	p := cfg.probability()
	opts := []builder.BuilderOption{
		builder.WithRand(rng),
		builder.WithUniformIntWeight(lo, hi),
	}

	logger.Info().
		Ints("sizes", cfg.Sizes).
		Int("solvers", len(cfg.Solvers)).
		Int64("seed", res.Seed).
		Float64("p", p).
		Bool("legacy_link_count", cfg.LegacyLinkCount).
		Msg("benchmark started")

	for k, s := range cfg.Solvers {
		res.Tables[k] = Table{Solver: s, Rows: make([]Row, 0, len(cfg.Sizes))}
	}

	for _, n := range cfg.Sizes {
		g, err := builder.GenerateGraph(n, p, opts...)
		if err != nil {
			return nil, fmt.Errorf("bench: %w", err)
		}
		text := textgraph.Format(g)
		links := textgraph.CountLinks(text)
		if cfg.LegacyLinkCount {
			links = textgraph.LegacyLinkCount(text)
		}
		res.Links = append(res.Links, links)

		if e := logger.Debug(); e.Enabled() {
			stats := g.Stats()
			e.Int("nodes", n).
				Int("links", links).
				Float64("density", stats.Density).
				Int("isolated", stats.Isolated).
				Int("components", stats.Components).
				Msg("graph generated")
		}

		for k, s := range cfg.Solvers {
			sample, err := s.Run(text, logger)
			if err != nil {
				return nil, fmt.Errorf("bench: nodes=%d: %w", n, err)
			}
			res.Tables[k].Rows = append(res.Tables[k].Rows, Row{
				Nodes:    n,
				Links:    links,
				Elapsed:  sample.Elapsed,
				ExitCode: sample.ExitCode,
			})
			logger.Info().
				Str("solver", s.Name).
				Int("nodes", n).
				Int("links", links).
				Dur("elapsed", sample.Elapsed).
				Msg("sample recorded")
		}
	}

	logger.Info().Msg("benchmark finished")

	return res, nil
}
