// SPDX-License-Identifier: MIT

package equilibrium

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/polymers/quadrature"
)

// ErrNormalization indicates that the normalization integral was not
// finite and positive, or that the configured domain is empty.
var ErrNormalization = errors.New("equilibrium: normalization is not finite and positive")

// Distribution is a normalized equilibrium distribution over γ.
// It is immutable after New.
type Distribution struct {
	density       func(float64) float64
	normalization float64
	opts          Options
}

// New integrates 4πγ²·density(γ) over [zero, upper] and stores the result.
//
// Errors:
//   - ErrNormalization when zero >= upper or the integral is not finite and positive.
//
// Complexity: Points() evaluations of density.
func New(density func(float64) float64, opts ...Option) (*Distribution, error) {
	o := NewOptions(opts...)
	if o.zero >= o.upper {
		return nil, fmt.Errorf("equilibrium.New: domain [%g, %g]: %w", o.zero, o.upper, ErrNormalization)
	}
	z := quadrature.Integrate1D(func(g float64) float64 {
		return 4 * math.Pi * g * g * density(g)
	}, o.zero, o.upper, o.points)
	if isNonFinite(z) || z <= 0 {
		return nil, fmt.Errorf("equilibrium.New: Z=%g: %w", z, ErrNormalization)
	}

	return &Distribution{density: density, normalization: z, opts: o}, nil
}

// Normalization returns Z.
func (d *Distribution) Normalization() float64 {
	return d.normalization
}

// Options returns the settings the normalization was computed with.
func (d *Distribution) Options() Options {
	return d.opts
}

// Density returns ρ(γ)/Z.
func (d *Distribution) Density(gamma float64) float64 {
	return d.density(gamma) / d.normalization
}

// RadialDensity returns 4πγ²·ρ(γ)/Z.
func (d *Distribution) RadialDensity(gamma float64) float64 {
	return 4 * math.Pi * gamma * gamma * d.Density(gamma)
}
