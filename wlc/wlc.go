// SPDX-License-Identifier: MIT

package wlc

import (
	"fmt"

	"github.com/katalvlaran/polymers/asymptotic"
	"github.com/katalvlaran/polymers/equilibrium"
	"github.com/katalvlaran/polymers/extensible"
	"github.com/katalvlaran/polymers/physics"
)

// MinNumberOfLinks is the smallest chain New accepts.
const MinNumberOfLinks = 1

const opNew = "wlc.New"

// WLC is the worm-like chain. Build it with New; it is read-only afterwards
// and safe for concurrent use.
type WLC struct {
	physics.Chain

	// ContourLength is Nℓ in nm.
	ContourLength float64

	// PersistenceLength is ℓp in nm.
	PersistenceLength float64

	Response          Response
	Isometric         Isometric
	Isotensional      extensible.Isotensional
	ModifiedCanonical extensible.ModifiedCanonical
}

// New builds a WLC of numberOfLinks segments of length linkLength (nm),
// hinges of mass hingeMass (kg/mol) and persistence length
// persistenceLength (nm). opts tune the quadrature that normalizes the
// equilibrium distribution.
//
// Errors:
//   - physics.ErrInvalidParameter for numberOfLinks < MinNumberOfLinks or
//     non-positive lengths and masses.
//   - equilibrium.ErrNormalization if the distribution cannot be normalized.
func New(numberOfLinks int, linkLength, hingeMass, persistenceLength float64, opts ...equilibrium.Option) (*WLC, error) {
	chain, err := physics.NewChain(opNew, numberOfLinks, MinNumberOfLinks, linkLength, hingeMass)
	if err != nil {
		return nil, err
	}
	if err = physics.RequirePositive(opNew, "persistenceLength", persistenceLength); err != nil {
		return nil, err
	}
	isometric, err := newIsometric(chain, linkLength/persistenceLength, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	response := Response{isometric: isometric}

	return &WLC{
		Chain:             chain,
		ContourLength:     chain.ContourLength(),
		PersistenceLength: persistenceLength,
		Response:          response,
		Isometric:         isometric,
		Isotensional:      extensible.NewIsotensional(chain, func(float64) asymptotic.Isotensional { return response }),
		ModifiedCanonical: extensible.ModifiedCanonical{
			StrongPotential: asymptotic.NewStrongPotential(chain, isometric, response),
			WeakPotential:   asymptotic.NewWeakPotential(chain, response),
		},
	}, nil
}

// NondimensionalPersistenceLength returns ℓp/ℓ.
func (m *WLC) NondimensionalPersistenceLength() float64 {
	return m.PersistenceLength / m.LinkLength
}
