// SPDX-License-Identifier: MIT

package efjc

import (
	"github.com/katalvlaran/polymers/asymptotic"
	"github.com/katalvlaran/polymers/equilibrium"
	"github.com/katalvlaran/polymers/extensible"
	"github.com/katalvlaran/polymers/physics"
)

const (
	// MinNumberOfLinks is the smallest chain New accepts.
	MinNumberOfLinks = 1

	// DefaultUpperBound is the default upper integration bound in γ for
	// the equilibrium distributions; links stretch past their rest length.
	DefaultUpperBound = 2.0
)

const opNew = "efjc.New"

// EFJC is the extensible freely jointed chain. Build it with New; it is
// read-only afterwards and safe for concurrent use.
type EFJC struct {
	physics.Chain

	// ContourLength is Nℓ in nm at rest.
	ContourLength float64

	// LinkStiffness is k in J/(mol·nm²).
	LinkStiffness float64

	Isometric    Isometric
	Isotensional Isotensional
}

// Isometric holds the Legendre-transformed isometric ensembles of both
// asymptotic orders.
type Isometric struct {
	Reduced extensible.Isometric
	Full    extensible.Isometric
}

// Isotensional holds the isotensional ensembles of both asymptotic orders.
type Isotensional struct {
	Reduced extensible.Isotensional
	Full    extensible.Isotensional
}

// New builds an EFJC with numberOfLinks links of rest length linkLength
// (nm), hinges of mass hingeMass (kg/mol) and link stiffness linkStiffness
// (J/(mol·nm²)). opts tune the quadrature of EquilibriumDistribution;
// the upper bound defaults to DefaultUpperBound.
//
// Errors:
//   - physics.ErrInvalidParameter for numberOfLinks < MinNumberOfLinks or
//     non-positive lengths, masses and stiffnesses.
func New(numberOfLinks int, linkLength, hingeMass, linkStiffness float64, opts ...equilibrium.Option) (*EFJC, error) {
	chain, err := physics.NewChain(opNew, numberOfLinks, MinNumberOfLinks, linkLength, hingeMass)
	if err != nil {
		return nil, err
	}
	if err = physics.RequirePositive(opNew, "linkStiffness", linkStiffness); err != nil {
		return nil, err
	}

	m := &EFJC{Chain: chain, ContourLength: chain.ContourLength(), LinkStiffness: linkStiffness}
	reduced := func(temperature float64) asymptotic.Isotensional {
		return Reduced{NondimensionalLinkStiffness: m.NondimensionalLinkStiffness(temperature)}
	}
	full := func(temperature float64) asymptotic.Isotensional {
		return Full{NondimensionalLinkStiffness: m.NondimensionalLinkStiffness(temperature)}
	}
	all := append([]equilibrium.Option{equilibrium.WithUpperBound(DefaultUpperBound)}, opts...)
	m.Isometric = Isometric{
		Reduced: extensible.NewIsometric(chain, reduced, all...),
		Full:    extensible.NewIsometric(chain, full, all...),
	}
	m.Isotensional = Isotensional{
		Reduced: extensible.NewIsotensional(chain, reduced),
		Full:    extensible.NewIsotensional(chain, full),
	}

	return m, nil
}

// NondimensionalLinkStiffness returns κ = kℓ²/kT at temperature (K).
func (m *EFJC) NondimensionalLinkStiffness(temperature float64) float64 {
	return m.LinkStiffness * m.LinkLength * m.LinkLength / physics.ThermalEnergy(temperature)
}

// ModifiedCanonical returns the tethered-chain expansions of the reduced
// order at temperature (K).
func (m *EFJC) ModifiedCanonical(temperature float64) extensible.ModifiedCanonical {
	return extensible.NewModifiedCanonical(m.Chain, Reduced{NondimensionalLinkStiffness: m.NondimensionalLinkStiffness(temperature)})
}
