// SPDX-License-Identifier: MIT

package extensible

import (
	"github.com/katalvlaran/polymers/asymptotic"
	"github.com/katalvlaran/polymers/physics"
)

// ModifiedCanonical groups the tethered-chain expansions of one response.
// Its dimensional methods are valid at the temperature the response was
// built for.
type ModifiedCanonical struct {
	StrongPotential asymptotic.StrongPotential
	WeakPotential   asymptotic.WeakPotential
}

// NewModifiedCanonical expands about Legendre{response} (strong) and
// response itself (weak).
func NewModifiedCanonical(chain physics.Chain, response asymptotic.Isotensional) ModifiedCanonical {
	return ModifiedCanonical{
		StrongPotential: asymptotic.NewStrongPotential(chain, Legendre{Response: response}, response),
		WeakPotential:   asymptotic.NewWeakPotential(chain, response),
	}
}
