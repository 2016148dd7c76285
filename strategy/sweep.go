package strategy

import (
	"fmt"

	"github.com/tuneinsight/isostrategy/utils/sampling"
)

// Sweep computes, for a tree of n leaves and an ℓ-multiplication of cost p, the
// optimal strategy for each isogeny evaluation cost ratio*p. The strategies are
// computed concurrently and returned in the order of ratios.
func Sweep(n int, p float64, ratios []float64) (strategies []*Strategy, err error) {

	params := make([]Parameters, len(ratios))
	for i, ratio := range ratios {
		if params[i], err = NewParameters(n, p, ratio*p); err != nil {
			return nil, fmt.Errorf("strategy.Sweep: %w", err)
		}
	}

	return GenerateMany(params...)
}

// RandomRatios draws count cost ratios uniformly in [min, max) from prng. With a
// sampling.KeyedPRNG, the same key always produces the same ratios.
func RandomRatios(prng sampling.PRNG, count int, min, max float64) (ratios []float64, err error) {

	if count < 0 {
		return nil, fmt.Errorf("strategy.RandomRatios: count must be positive but is %d: %w", count, ErrInvalidArgument)
	}

	if !(min <= max) {
		return nil, fmt.Errorf("strategy.RandomRatios: invalid interval [%v, %v): %w", min, max, ErrInvalidArgument)
	}

	ratios = make([]float64, count)
	for i := range ratios {
		if ratios[i], err = sampling.ReadFloat64(prng, min, max); err != nil {
			return nil, fmt.Errorf("strategy.RandomRatios: %w", err)
		}
	}

	return
}
