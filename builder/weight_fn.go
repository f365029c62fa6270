package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/dijkbench/core"
)

// Benchmark cost range, inclusive.
const (
	DefaultMinCost int64 = 1
	DefaultMaxCost int64 = 10
)

// WeightFn produces an edge cost from an optional *rand.Rand.
// It must draw only from rng so that a seed fixes the output.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn returns a WeightFn that always yields value and never
// touches the RNG. Panics if value < core.MinWeight.
func ConstantWeightFn(value int64) WeightFn {
	if value < core.MinWeight {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ %d, got %d", core.MinWeight, value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformIntWeightFn returns a WeightFn sampling uniformly from the
// integers in [min, max]. One Int63n draw per call, none when min == max.
// A nil rng yields min. Panics if min < core.MinWeight or max < min.
func UniformIntWeightFn(min, max int64) WeightFn {
	if min < core.MinWeight || max < min {
		panic(fmt.Sprintf("UniformIntWeightFn: require %d ≤ min ≤ max, got min=%d, max=%d",
			core.MinWeight, min, max))
	}
	span := max - min + 1

	return func(rng *rand.Rand) int64 {
		if rng == nil || span == 1 {
			return min
		}

		return min + rng.Int63n(span)
	}
}
