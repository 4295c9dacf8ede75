// SPDX-License-Identifier: MIT

package extensible

import (
	"math"

	"github.com/katalvlaran/polymers/asymptotic"
	"github.com/katalvlaran/polymers/special"
)

const (
	// InversionRelTol and InversionMaxIters configure the Newton-Raphson
	// inversion of γ(η).
	InversionRelTol   = 1e-12
	InversionMaxIters = 100
)

// Legendre is the large-N isometric ensemble of a per-link response:
// η solves γ(η) = γ and ψ = ηγ + ϱ(η). It satisfies asymptotic.Isometric.
type Legendre struct {
	Response asymptotic.Isotensional
}

// NondimensionalForce returns the η at which the response reaches γ.
func (l Legendre) NondimensionalForce(nondimensionalEndToEndLengthPerLink float64) float64 {
	return Invert(l.Response, nondimensionalEndToEndLengthPerLink)
}

// NondimensionalRelativeHelmholtzFreeEnergyPerLink returns ψ(γ) = ηγ + ϱ(η).
func (l Legendre) NondimensionalRelativeHelmholtzFreeEnergyPerLink(nondimensionalEndToEndLengthPerLink float64) float64 {
	eta := l.NondimensionalForce(nondimensionalEndToEndLengthPerLink)

	return eta*nondimensionalEndToEndLengthPerLink + l.Response.NondimensionalRelativeGibbsFreeEnergyPerLink(eta)
}

// Bounded is implemented by responses that exist only below a maximum
// nondimensional force, such as links that break.
type Bounded interface {
	MaximumNondimensionalForce() float64
}

// Invert solves γ(η) = gamma for η. When the compliance c = dγ/dη falls
// with force the seed γ/c(0) undershoots the root and Newton-Raphson
// approaches it monotonically.
//
// A Bounded response is inverted for |gamma| with steps kept below the
// maximum force, and mirrored for negative gamma. Lengths it cannot reach
// give NaN.
func Invert(response asymptotic.Isotensional, gamma float64) float64 {
	guess := gamma / response.NondimensionalCompliance(0)
	if b, ok := response.(Bounded); ok {
		return math.Copysign(invertBounded(response, math.Abs(gamma), math.Abs(guess), b.MaximumNondimensionalForce()), gamma)
	}

	return special.InverseNewtonRaphson(gamma, response.NondimensionalEndToEndLengthPerLink,
		response.NondimensionalCompliance, guess, InversionRelTol, InversionMaxIters)
}

// invertBounded is Newton-Raphson on [0, maximum): a step that would reach
// the maximum goes halfway to it instead.
func invertBounded(response asymptotic.Isotensional, gamma, guess, maximum float64) float64 {
	if gamma == 0 {
		return 0
	}
	if !(gamma < response.NondimensionalEndToEndLengthPerLink(maximum)) {
		return math.NaN()
	}
	x := math.Min(guess, maximum/2)
	for i := 0; i < InversionMaxIters; i++ {
		residual := response.NondimensionalEndToEndLengthPerLink(x) - gamma
		if math.Abs(residual/gamma) <= InversionRelTol {
			break
		}
		next := x - residual/response.NondimensionalCompliance(x)
		switch {
		case next >= maximum:
			next = (x + maximum) / 2
		case next <= 0:
			next = x / 2
		}
		x = next
	}

	return x
}
