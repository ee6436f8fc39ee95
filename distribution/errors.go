// Package distribution implements the random samplers built on the
// xoshiro generators: uniform, exponential, normal, cauchy and gamma.
//
// Every sampler takes a mutable generator state and consumes draws
// from it. When the state's Deterministic flag is set the samplers
// return the distribution's expectation instead of drawing; where no
// expectation exists this is a DomainError.
package distribution

import "fmt"

// ConfigError reports parameters outside a distribution's valid
// range. These are programming errors, never retried.
type ConfigError struct {
	Dist string
	Msg  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid call to %s: %s", e.Dist, e.Msg)
}

// DomainError reports an operation that is undefined for its inputs,
// such as asking for the mean of a distribution that has none.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string {
	return e.Msg
}
