// SPDX-License-Identifier: MIT

// Package wlc implements the worm-like chain through the Marko-Siggia
// interpolation, discretized into N segments of length ℓ so that it shares
// the per-link conventions of the other models.
//
// With p = ℓ/ℓp the isometric ensemble is closed form:
//
//	η(γ) = p·(1/(4(1-γ)²) - 1/4 + γ)
//	ψ(γ) = p·(1/(4(1-γ)) - 1/4 - γ/4 + γ²/2)
//
// The isotensional ensemble inverts η(γ) and takes ϱ = ψ - ηγ.
package wlc
