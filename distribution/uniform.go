package distribution

import (
	"fmt"

	"github.com/mrc-ide/mcstate2/xoshiro"
)

// Uniform draws from the uniform distribution on [min, max). In
// deterministic mode it returns the midpoint.
func Uniform(rng *xoshiro.State, min, max float64) (float64, error) {
	if min > max {
		return 0, fail(&ConfigError{
			Dist: "uniform",
			Msg:  fmt.Sprintf("min = %g exceeds max = %g", min, max),
		})
	}
	if rng.Deterministic {
		return (min + max) / 2, nil
	}
	return min + rng.NextFloat64()*(max-min), nil
}
