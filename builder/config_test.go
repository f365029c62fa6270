// Package builder contains unit tests for builderConfig and BuilderOption
// application order.
package builder

import (
	"math/rand"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}
	if w := cfg.weightFn(nil); w != DefaultMinCost {
		t.Errorf("default weightFn(nil): expected %d, got %d", DefaultMinCost, w)
	}
}

func TestRNGOptions(t *testing.T) {
	t.Parallel()

	exp := rand.New(rand.NewSource(123))
	if cfg := newBuilderConfig(WithRand(exp)); cfg.rng != exp {
		t.Errorf("WithRand: expected shared rng")
	}

	a := newBuilderConfig(WithSeed(42)).rng
	b := newBuilderConfig(WithSeed(42)).rng
	if x, y := a.Int63(), b.Int63(); x != y {
		t.Errorf("WithSeed reproducibility: %d vs %d", x, y)
	}
}

func TestOptionsLastWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithConstantWeight(3), WithConstantWeight(8))
	if w := cfg.weightFn(nil); w != 8 {
		t.Errorf("last option should win: expected 8, got %d", w)
	}
}
