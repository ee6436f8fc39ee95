package distribution

import (
	"fmt"
	"math"

	"github.com/mrc-ide/mcstate2/xoshiro"
)

// epsilon is the double-precision machine epsilon; uniform draws at or
// below it are resampled before the log transform rather than being
// surfaced as failures.
const epsilon = 0x1p-52

// Normal draws from the normal distribution with the given mean and
// standard deviation using the Box-Muller transform. In deterministic
// mode it returns the mean.
func Normal(rng *xoshiro.State, mean, sd float64) (float64, error) {
	if !(sd >= 0) {
		return 0, fail(&ConfigError{
			Dist: "normal",
			Msg:  fmt.Sprintf("sd = %g", sd),
		})
	}
	if rng.Deterministic {
		return mean, nil
	}
	return mean + sd*boxMuller(rng), nil
}

// boxMuller returns one standard normal draw.
// https://en.wikipedia.org/wiki/Box%E2%80%93Muller_transform#Basic_form
func boxMuller(rng *xoshiro.State) float64 {
	var u1, u2 float64
	for {
		u1 = rng.NextFloat64()
		u2 = rng.NextFloat64()
		if u1 > epsilon {
			break
		}
	}
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
