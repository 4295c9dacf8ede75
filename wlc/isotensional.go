// SPDX-License-Identifier: MIT

package wlc

import (
	"math"

	"github.com/katalvlaran/polymers/extensible"
)

// Response is the per-link isotensional response, obtained by inverting
// the isometric force. It satisfies asymptotic.Isotensional.
type Response struct {
	isometric Isometric
}

// NondimensionalEndToEndLengthPerLink returns the γ in (-1, 1) at which
// the isometric force equals η.
func (r Response) NondimensionalEndToEndLengthPerLink(nondimensionalForce float64) float64 {
	return extensible.Invert(forceCurve(r), nondimensionalForce)
}

// NondimensionalRelativeGibbsFreeEnergyPerLink returns ϱ = ψ(γ) - ηγ.
func (r Response) NondimensionalRelativeGibbsFreeEnergyPerLink(nondimensionalForce float64) float64 {
	g := r.NondimensionalEndToEndLengthPerLink(nondimensionalForce)

	return r.isometric.NondimensionalRelativeHelmholtzFreeEnergyPerLink(g) - nondimensionalForce*g
}

// NondimensionalCompliance returns dγ/dη = 1/(dη/dγ).
func (r Response) NondimensionalCompliance(nondimensionalForce float64) float64 {
	return 1 / r.isometric.nondimensionalStiffness(r.NondimensionalEndToEndLengthPerLink(nondimensionalForce))
}

// forceCurve presents η(γ) in the shape extensible.Invert solves, with γ
// in the role of the force and one as its bound.
type forceCurve Response

func (c forceCurve) NondimensionalEndToEndLengthPerLink(gamma float64) float64 {
	return c.isometric.NondimensionalForce(gamma)
}

func (c forceCurve) NondimensionalRelativeGibbsFreeEnergyPerLink(float64) float64 {
	return math.NaN()
}

func (c forceCurve) NondimensionalCompliance(gamma float64) float64 {
	return c.isometric.nondimensionalStiffness(gamma)
}

func (c forceCurve) MaximumNondimensionalForce() float64 { return 1 }
