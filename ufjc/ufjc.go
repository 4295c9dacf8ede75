// SPDX-License-Identifier: MIT

package ufjc

import (
	"fmt"

	"github.com/katalvlaran/polymers/asymptotic"
	"github.com/katalvlaran/polymers/equilibrium"
	"github.com/katalvlaran/polymers/extensible"
	"github.com/katalvlaran/polymers/physics"
)

const (
	// MinNumberOfLinks is the smallest chain New accepts.
	MinNumberOfLinks = 1

	// DefaultUpperBound is the default upper integration bound in γ for
	// the equilibrium distributions.
	DefaultUpperBound = 2.0
)

const opNew = "ufjc.New"

func errNilPotential(op string) error {
	return fmt.Errorf("%s: nil potential: %w", op, physics.ErrInvalidParameter)
}

// UFJC is the freely jointed chain with arbitrary link potential. Build it
// with New; it is read-only afterwards and safe for concurrent use when
// the potential is.
type UFJC struct {
	physics.Chain

	// ContourLength is Nℓ in nm at rest.
	ContourLength float64

	Potential    LinkPotential
	Isometric    extensible.Isometric
	Isotensional extensible.Isotensional
}

// New builds a UFJC with numberOfLinks links of rest length linkLength (nm)
// and hinges of mass hingeMass (kg/mol), each link governed by potential.
// opts tune the quadrature of EquilibriumDistribution; the upper bound
// defaults to DefaultUpperBound.
//
// Errors:
//   - physics.ErrInvalidParameter for numberOfLinks < MinNumberOfLinks,
//     non-positive lengths and masses, a nil potential or one whose
//     Validate fails.
func New(numberOfLinks int, linkLength, hingeMass float64, potential LinkPotential, opts ...equilibrium.Option) (*UFJC, error) {
	chain, err := physics.NewChain(opNew, numberOfLinks, MinNumberOfLinks, linkLength, hingeMass)
	if err != nil {
		return nil, err
	}
	if potential == nil {
		return nil, errNilPotential(opNew)
	}
	if err = potential.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}

	m := &UFJC{Chain: chain, ContourLength: chain.ContourLength(), Potential: potential}
	response := func(temperature float64) asymptotic.Isotensional {
		return m.Response(temperature)
	}
	all := append([]equilibrium.Option{equilibrium.WithUpperBound(DefaultUpperBound)}, opts...)
	m.Isometric = extensible.NewIsometric(chain, response, all...)
	m.Isotensional = extensible.NewIsotensional(chain, response)

	return m, nil
}

// Response returns the per-link response at temperature (K).
func (m *UFJC) Response(temperature float64) Reduced {
	return Reduced{Potential: m.Potential.Nondimensional(m.LinkLength, temperature)}
}

// ModifiedCanonical returns the tethered-chain expansions at temperature (K).
func (m *UFJC) ModifiedCanonical(temperature float64) extensible.ModifiedCanonical {
	return extensible.NewModifiedCanonical(m.Chain, m.Response(temperature))
}
