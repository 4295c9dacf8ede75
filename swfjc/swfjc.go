// SPDX-License-Identifier: MIT

package swfjc

import (
	"fmt"

	"github.com/katalvlaran/polymers/asymptotic"
	"github.com/katalvlaran/polymers/equilibrium"
	"github.com/katalvlaran/polymers/extensible"
	"github.com/katalvlaran/polymers/physics"
)

// MinNumberOfLinks is the smallest chain New accepts.
const MinNumberOfLinks = 1

const opNew = "swfjc.New"

// SWFJC is the square-well freely jointed chain. Build it with New; it is
// read-only afterwards and safe for concurrent use.
type SWFJC struct {
	physics.Chain

	// ContourLength is Nℓ in nm at the inner edge of the well.
	ContourLength float64

	// WellWidth is w in nm.
	WellWidth float64

	Response          Response
	Isometric         Isometric
	Isotensional      extensible.Isotensional
	ModifiedCanonical extensible.ModifiedCanonical
}

// Isometric is the Legendre-transformed isometric ensemble with its
// equilibrium distribution normalized once at construction.
type Isometric struct {
	extensible.Isometric

	distribution *equilibrium.Distribution
}

// New builds an SWFJC with numberOfLinks links of rest length linkLength
// (nm), hinges of mass hingeMass (kg/mol) and well width wellWidth (nm).
// opts tune the quadrature that normalizes the equilibrium distribution;
// the upper bound defaults to 1 + w/ℓ.
//
// Errors:
//   - physics.ErrInvalidParameter for numberOfLinks < MinNumberOfLinks or
//     non-positive lengths, masses and widths.
//   - equilibrium.ErrNormalization if the distribution cannot be normalized.
func New(numberOfLinks int, linkLength, hingeMass, wellWidth float64, opts ...equilibrium.Option) (*SWFJC, error) {
	chain, err := physics.NewChain(opNew, numberOfLinks, MinNumberOfLinks, linkLength, hingeMass)
	if err != nil {
		return nil, err
	}
	if err = physics.RequirePositive(opNew, "wellWidth", wellWidth); err != nil {
		return nil, err
	}

	response := Response{MaximumStretch: 1 + wellWidth/linkLength}
	responseAt := func(float64) asymptotic.Isotensional { return response }
	all := append([]equilibrium.Option{equilibrium.WithUpperBound(response.MaximumStretch)}, opts...)
	isometric := extensible.NewIsometric(chain, responseAt, all...)
	// The response does not depend on temperature.
	distribution, err := isometric.EquilibriumDistribution(0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}

	return &SWFJC{
		Chain:             chain,
		ContourLength:     chain.ContourLength(),
		WellWidth:         wellWidth,
		Response:          response,
		Isometric:         Isometric{Isometric: isometric, distribution: distribution},
		Isotensional:      extensible.NewIsotensional(chain, responseAt),
		ModifiedCanonical: extensible.NewModifiedCanonical(chain, response),
	}, nil
}

// EquilibriumDistribution returns P(r) in nm⁻³ at endToEndLength (nm).
func (m Isometric) EquilibriumDistribution(endToEndLength float64) float64 {
	return m.Density(m.NondimensionalEquilibriumDistribution(m.PerLink(endToEndLength)))
}

// NondimensionalEquilibriumDistribution returns P(γ) ∝ exp(-Nψ(γ)).
func (m Isometric) NondimensionalEquilibriumDistribution(nondimensionalEndToEndLengthPerLink float64) float64 {
	return m.distribution.Density(nondimensionalEndToEndLengthPerLink)
}

// EquilibriumRadialDistribution returns g(r) in nm⁻¹ at endToEndLength (nm).
func (m Isometric) EquilibriumRadialDistribution(endToEndLength float64) float64 {
	return m.RadialDensity(m.NondimensionalEquilibriumRadialDistribution(m.PerLink(endToEndLength)))
}

// NondimensionalEquilibriumRadialDistribution returns 4πγ²P(γ).
func (m Isometric) NondimensionalEquilibriumRadialDistribution(nondimensionalEndToEndLengthPerLink float64) float64 {
	return m.distribution.RadialDensity(nondimensionalEndToEndLengthPerLink)
}
