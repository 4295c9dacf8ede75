// SPDX-License-Identifier: MIT

package fjc

import (
	"fmt"

	"github.com/katalvlaran/polymers/asymptotic"
	"github.com/katalvlaran/polymers/equilibrium"
	"github.com/katalvlaran/polymers/physics"
)

// MinNumberOfLinks is the smallest chain the exact isometric sum supports;
// its prefactor carries (N-2)!.
const MinNumberOfLinks = 2

const opNew = "fjc.New"

// FJC is the freely jointed chain model. Build it with New; it is read-only
// afterwards and safe for concurrent use.
type FJC struct {
	physics.Chain

	// ContourLength is Nℓ in nm.
	ContourLength float64

	Isometric         Isometric
	Isotensional      Isotensional
	ModifiedCanonical ModifiedCanonical
}

// ModifiedCanonical groups the tethered-chain expansions. The strong
// expansion is taken about Isometric.Legendre, whose force satisfies
// dη/dγ = 1/c(η) with the isotensional compliance c used in its correction.
type ModifiedCanonical struct {
	StrongPotential asymptotic.StrongPotential
	WeakPotential   asymptotic.WeakPotential
}

// New builds an FJC with numberOfLinks links of length linkLength (nm) and
// hinges of mass hingeMass (kg/mol). opts tune the quadrature that
// normalizes the equilibrium distributions.
//
// Errors:
//   - physics.ErrInvalidParameter for numberOfLinks < MinNumberOfLinks or
//     non-positive lengths and masses.
//   - equilibrium.ErrNormalization if a distribution cannot be normalized.
func New(numberOfLinks int, linkLength, hingeMass float64, opts ...equilibrium.Option) (*FJC, error) {
	chain, err := physics.NewChain(opNew, numberOfLinks, MinNumberOfLinks, linkLength, hingeMass)
	if err != nil {
		return nil, err
	}
	isometric, err := newIsometric(chain, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	isotensional := newIsotensional(chain)

	return &FJC{
		Chain:         chain,
		ContourLength: chain.ContourLength(),
		Isometric:     isometric,
		Isotensional:  isotensional,
		ModifiedCanonical: ModifiedCanonical{
			StrongPotential: asymptotic.NewStrongPotential(chain, isometric.Legendre, isotensional),
			WeakPotential:   asymptotic.NewWeakPotential(chain, isotensional),
		},
	}, nil
}
