package distribution

import (
	"math"

	"github.com/mrc-ide/mcstate2/xoshiro"
)

// Cauchy draws from the Cauchy distribution with the given location
// and scale. The distribution has no mean, so deterministic mode is a
// DomainError.
func Cauchy(rng *xoshiro.State, location, scale float64) (float64, error) {
	if rng.Deterministic {
		return 0, &DomainError{
			Msg: "can't use Cauchy distribution deterministically; it has no mean",
		}
	}
	u := rng.NextFloat64()
	return location + scale*math.Tan(math.Pi*u), nil
}
