// SPDX-License-Identifier: MIT

package ufjc

import (
	"math"

	"github.com/katalvlaran/polymers/special"
)

// Reduced is the leading-order isotensional response of links governed by
// Potential. It is odd in η: the link stretch follows |η|.
type Reduced struct {
	Potential Potential
}

// NondimensionalEndToEndLengthPerLink returns γ = L(η) + s(|η|) - 1, signed like η.
func (r Reduced) NondimensionalEndToEndLengthPerLink(nondimensionalForce float64) float64 {
	extension := r.Potential.Stretch(math.Abs(nondimensionalForce)) - 1

	return special.Langevin(nondimensionalForce) + math.Copysign(extension, nondimensionalForce)
}

// NondimensionalRelativeGibbsFreeEnergyPerLink returns
// ϱ = -ln(sinh η/η) + u(s) - |η|(s - 1).
func (r Reduced) NondimensionalRelativeGibbsFreeEnergyPerLink(nondimensionalForce float64) float64 {
	eta := math.Abs(nondimensionalForce)

	return -special.LogSinhc(eta) + r.Potential.Energy(eta) - eta*(r.Potential.Stretch(eta)-1)
}

// NondimensionalCompliance returns dγ/dη = L'(η) + s'(|η|).
func (r Reduced) NondimensionalCompliance(nondimensionalForce float64) float64 {
	return special.LangevinDerivative(nondimensionalForce) + r.Potential.Compliance(math.Abs(nondimensionalForce))
}

// MaximumNondimensionalForce returns the force at which links break.
func (r Reduced) MaximumNondimensionalForce() float64 {
	return r.Potential.MaximumForce()
}
