package distribution_test

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/mrc-ide/mcstate2/distribution"
	"github.com/mrc-ide/mcstate2/xoshiro"
)

func TestDeterministicMeans(t *testing.T) {
	s := xoshiro.New(xoshiro.Default, 1)
	s.Deterministic = true

	if got, err := distribution.Exponential(s, 4); err != nil || got != 0.25 {
		t.Errorf("deterministic Exponential(4) = %v, %v; want 0.25", got, err)
	}
	if got, err := distribution.ExponentialMean(s, 3.5); err != nil || got != 3.5 {
		t.Errorf("deterministic ExponentialMean(3.5) = %v, %v; want 3.5", got, err)
	}
	if got, err := distribution.Normal(s, 1.5, 2); err != nil || got != 1.5 {
		t.Errorf("deterministic Normal(1.5, 2) = %v, %v; want 1.5", got, err)
	}
	if got, err := distribution.Uniform(s, 2, 5); err != nil || got != 3.5 {
		t.Errorf("deterministic Uniform(2, 5) = %v, %v; want 3.5", got, err)
	}

	// Deterministic draws must not consume randomness.
	fresh := xoshiro.New(xoshiro.Default, 1)
	fresh.Deterministic = true
	if !s.Equal(fresh) {
		t.Error("deterministic sampling advanced the generator state")
	}
}

func TestCauchyDeterministicFails(t *testing.T) {
	s := xoshiro.New(xoshiro.Default, 1)
	s.Deterministic = true
	_, err := distribution.Cauchy(s, 0, 1)
	var dom *distribution.DomainError
	if !errors.As(err, &dom) {
		t.Fatalf("deterministic Cauchy: got %v, want DomainError", err)
	}
}

func TestParameterValidation(t *testing.T) {
	s := xoshiro.New(xoshiro.Default, 1)
	cases := []struct {
		name string
		call func() (float64, error)
	}{
		{"exponential rate 0", func() (float64, error) { return distribution.Exponential(s, 0) }},
		{"exponential rate -1", func() (float64, error) { return distribution.Exponential(s, -1) }},
		{"exponential mean 0", func() (float64, error) { return distribution.ExponentialMean(s, 0) }},
		{"normal sd -1", func() (float64, error) { return distribution.Normal(s, 0, -1) }},
		{"uniform min > max", func() (float64, error) { return distribution.Uniform(s, 2, 1) }},
	}
	for _, tc := range cases {
		_, err := tc.call()
		var cfg *distribution.ConfigError
		if !errors.As(err, &cfg) {
			t.Errorf("%s: got %v, want ConfigError", tc.name, err)
		}
	}
}

func TestExponentialMoments(t *testing.T) {
	const n = 5000
	s := xoshiro.New(xoshiro.Default, 5)
	xs := make([]float64, n)
	for i := range xs {
		v, err := distribution.Exponential(s, 0.5)
		if err != nil {
			t.Fatalf("Exponential: %v", err)
		}
		if v <= 0 {
			t.Fatalf("draw %d: %v not positive", i, v)
		}
		xs[i] = v
	}
	mean := stat.Mean(xs, nil)
	fmt.Printf("  mean = %.4f (expect 2.0)\n", mean)
	if math.Abs(mean-2.0) > 0.15 {
		t.Errorf("sample mean %.4f too far from 2.0", mean)
	}
}

func TestNormalMoments(t *testing.T) {
	const n = 5000
	s := xoshiro.New(xoshiro.Default, 3)
	xs := make([]float64, n)
	for i := range xs {
		v, err := distribution.Normal(s, 1.5, 2.0)
		if err != nil {
			t.Fatalf("Normal: %v", err)
		}
		xs[i] = v
	}
	mean := stat.Mean(xs, nil)
	sd := stat.StdDev(xs, nil)
	fmt.Printf("  mean = %.4f (expect 1.5), sd = %.4f (expect 2.0)\n", mean, sd)
	if math.Abs(mean-1.5) > 0.15 {
		t.Errorf("sample mean %.4f too far from 1.5", mean)
	}
	if math.Abs(sd-2.0) > 0.1 {
		t.Errorf("sample sd %.4f too far from 2.0", sd)
	}
}

func TestCauchyMedian(t *testing.T) {
	const n = 5001
	s := xoshiro.New(xoshiro.Default, 9)
	xs := make([]float64, n)
	for i := range xs {
		v, err := distribution.Cauchy(s, 1.0, 2.0)
		if err != nil {
			t.Fatalf("Cauchy: %v", err)
		}
		xs[i] = v
	}
	sort.Float64s(xs)
	median := xs[n/2]
	fmt.Printf("  median = %.4f (expect 1.0)\n", median)
	if math.Abs(median-1.0) > 0.3 {
		t.Errorf("sample median %.4f too far from location 1.0", median)
	}
}

func TestUniformRange(t *testing.T) {
	const n = 5000
	s := xoshiro.New(xoshiro.Default, 13)
	xs := make([]float64, n)
	for i := range xs {
		v, err := distribution.Uniform(s, 2, 5)
		if err != nil {
			t.Fatalf("Uniform: %v", err)
		}
		if v < 2 || v >= 5 {
			t.Fatalf("draw %d: %v outside [2, 5)", i, v)
		}
		xs[i] = v
	}
	mean := stat.Mean(xs, nil)
	fmt.Printf("  mean = %.4f (expect 3.5)\n", mean)
	if math.Abs(mean-3.5) > 0.06 {
		t.Errorf("sample mean %.4f too far from 3.5", mean)
	}
}

func TestSamplersReproducible(t *testing.T) {
	a := xoshiro.New(xoshiro.Default, 77)
	b := xoshiro.New(xoshiro.Default, 77)
	for i := 0; i < 200; i++ {
		va, err := distribution.Normal(a, 0, 1)
		if err != nil {
			t.Fatalf("Normal: %v", err)
		}
		vb, err := distribution.Normal(b, 0, 1)
		if err != nil {
			t.Fatalf("Normal: %v", err)
		}
		if va != vb {
			t.Fatalf("draw %d: identically seeded samplers diverge: %v vs %v", i, va, vb)
		}
	}
}

func TestTrapModeToggle(t *testing.T) {
	if distribution.TrapEnabled() {
		t.Fatal("trap mode should be off by default")
	}
	distribution.SetTrap(true)
	if !distribution.TrapEnabled() {
		t.Error("SetTrap(true) did not enable trap mode")
	}
	distribution.SetTrap(false)
	if distribution.TrapEnabled() {
		t.Error("SetTrap(false) did not disable trap mode")
	}
}
