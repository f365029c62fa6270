package bench

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/dijkbench/builder"
	"github.com/katalvlaran/dijkbench/core"
	"github.com/katalvlaran/dijkbench/solver"
)

// Validation errors for Config.
var (
	ErrNoSizes         = errors.New("bench: no node counts")
	ErrInvalidSize     = errors.New("bench: node count must be ≥ 1")
	ErrNoSolvers       = errors.New("bench: no solvers")
	ErrDuplicateSolver = errors.New("bench: duplicate solver name")
	ErrInvalidCost     = errors.New("bench: invalid cost range")
)

// DefaultSizes are the standard benchmark points.
var DefaultSizes = []int{10, 50, 100, 150}

// Config parameterizes one benchmark run.
type Config struct {
	// Sizes are node counts, processed in order.
	Sizes []int
	// Solvers run in order against every generated graph.
	Solvers []solver.Solver

	// Probability is the per-pair edge inclusion probability. Zero means
	// builder.DefaultProbability; there is no way to ask for an empty graph.
	Probability float64
	// MinCost and MaxCost bound edge costs, inclusive. Both zero means
	// builder.DefaultMinCost..builder.DefaultMaxCost.
	MinCost, MaxCost int64

	// Rand supplies all graph entropy. When nil, Run seeds a fresh source
	// from Seed, or from the clock if Seed is zero, and logs the seed.
	Rand *rand.Rand
	Seed int64

	// LegacyLinkCount reports newlines+1 instead of the actual edge count.
	// The two differ only for an empty graph.
	LegacyLinkCount bool

	// Logger receives run progress. The zero value discards everything.
	Logger zerolog.Logger
}

// DefaultConfig returns the standard benchmark configuration: node
// counts 10, 50, 100, 150 against ./Dijkstra and ./DijkstraNlogN, with
// p=0.3 and costs in [1,10].
func DefaultConfig() Config {
	return Config{
		Sizes: append([]int(nil), DefaultSizes...),
		Solvers: []solver.Solver{
			{Name: "Dijkstra", Title: "N * N", Label: "N*N", Path: "./Dijkstra"},
			{Name: "DijkstraNlogN", Title: "N log N", Label: "N log N", Path: "./DijkstraNlogN"},
		},
		Probability: builder.DefaultProbability,
		MinCost:     builder.DefaultMinCost,
		MaxCost:     builder.DefaultMaxCost,
		Logger:      zerolog.Nop(),
	}
}

// Validate checks the run shape and cost range. Probability is checked by
// the builder when the first graph is generated.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return ErrNoSizes
	}
	for i, n := range c.Sizes {
		if n < 1 {
			return fmt.Errorf("Sizes[%d]=%d: %w", i, n, ErrInvalidSize)
		}
	}
	if len(c.Solvers) == 0 {
		return ErrNoSolvers
	}
	seen := make(map[string]struct{}, len(c.Solvers))
	for _, s := range c.Solvers {
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("%q: %w", s.Name, ErrDuplicateSolver)
		}
		seen[s.Name] = struct{}{}
	}
	if lo, hi := c.costRange(); lo < core.MinWeight || hi < lo {
		return fmt.Errorf("[%d,%d]: %w", lo, hi, ErrInvalidCost)
	}

	return nil
}

func (c Config) costRange() (int64, int64) {
	if c.MinCost == 0 && c.MaxCost == 0 {
		return builder.DefaultMinCost, builder.DefaultMaxCost
	}

	return c.MinCost, c.MaxCost
}

func (c Config) probability() float64 {
	if c.Probability == 0 {
		return builder.DefaultProbability
	}

	return c.Probability
}
