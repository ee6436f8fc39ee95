package distribution

import (
	"fmt"
	"math"

	"github.com/mrc-ide/mcstate2/xoshiro"
)

// Exponential draws from the exponential distribution with the given
// rate. In deterministic mode it returns the mean 1/rate.
func Exponential(rng *xoshiro.State, rate float64) (float64, error) {
	if !(rate > 0) {
		return 0, fail(&ConfigError{
			Dist: "exponential",
			Msg:  fmt.Sprintf("rate = %g", rate),
		})
	}
	if rng.Deterministic {
		return 1 / rate, nil
	}
	return -math.Log(rng.NextFloat64()) / rate, nil
}

// ExponentialMean is Exponential parameterised by the mean rather
// than the rate.
func ExponentialMean(rng *xoshiro.State, mean float64) (float64, error) {
	if !(mean > 0) {
		return 0, fail(&ConfigError{
			Dist: "exponential",
			Msg:  fmt.Sprintf("mean = %g", mean),
		})
	}
	if rng.Deterministic {
		return mean, nil
	}
	return -math.Log(rng.NextFloat64()) * mean, nil
}

// exponentialMeanDraw is the unvalidated stochastic path, shared with
// the gamma shape == 1 case where the parameters are already checked.
func exponentialMeanDraw(rng *xoshiro.State, mean float64) float64 {
	return -math.Log(rng.NextFloat64()) * mean
}
