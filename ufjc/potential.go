// SPDX-License-Identifier: MIT

package ufjc

import (
	"math"

	"github.com/katalvlaran/polymers/physics"
	"github.com/katalvlaran/polymers/special"
)

// Potential is a link potential at fixed temperature, in units of kT and
// parameterized by the nondimensional force η >= 0.
type Potential interface {
	// Stretch returns s(η), the link length over ℓ.
	Stretch(nondimensionalForce float64) float64
	// Compliance returns ds/dη.
	Compliance(nondimensionalForce float64) float64
	// Energy returns u(s(η)).
	Energy(nondimensionalForce float64) float64
	// MaximumForce returns the force at which the link breaks, or +Inf.
	MaximumForce() float64
}

// LinkPotential is a link potential in dimensional units.
type LinkPotential interface {
	// Nondimensional reduces the potential for links of rest length
	// linkLength (nm) at temperature (K).
	Nondimensional(linkLength, temperature float64) Potential
	// Validate reports an invalid parameter as physics.ErrInvalidParameter.
	Validate() error
}

// stiffness maps k (J/(mol·nm²)) to κ = kℓ²/kT.
func stiffness(k, linkLength, temperature float64) float64 {
	return k * linkLength * linkLength / physics.ThermalEnergy(temperature)
}

// ------------------------------
// Harmonic
// ------------------------------

// Harmonic is u(s) = (κ/2)(s - 1)².
type Harmonic struct {
	// Stiffness is k in J/(mol·nm²).
	Stiffness float64
}

func (h Harmonic) Nondimensional(linkLength, temperature float64) Potential {
	return harmonic{kappa: stiffness(h.Stiffness, linkLength, temperature)}
}

func (h Harmonic) Validate() error {
	return physics.RequirePositive("ufjc.Harmonic", "stiffness", h.Stiffness)
}

type harmonic struct{ kappa float64 }

func (p harmonic) Stretch(eta float64) float64 { return 1 + eta/p.kappa }
func (p harmonic) Compliance(float64) float64  { return 1 / p.kappa }
func (p harmonic) Energy(eta float64) float64  { return eta * eta / (2 * p.kappa) }
func (p harmonic) MaximumForce() float64       { return math.Inf(1) }

// ------------------------------
// Log-squared
// ------------------------------

// LogSquared is u(s) = (κ/2)(ln s)². Its force κ·ln(s)/s peaks at s = e, so
// links break at η = κ/e.
type LogSquared struct {
	// Stiffness is k in J/(mol·nm²).
	Stiffness float64
}

func (l LogSquared) Nondimensional(linkLength, temperature float64) Potential {
	return logSquared{kappa: stiffness(l.Stiffness, linkLength, temperature)}
}

func (l LogSquared) Validate() error {
	return physics.RequirePositive("ufjc.LogSquared", "stiffness", l.Stiffness)
}

type logSquared struct{ kappa float64 }

// Stretch solves ln(s)/s = η/κ on [1, e] by Newton-Raphson from 1 + η/κ.
func (p logSquared) Stretch(eta float64) float64 {
	switch maximum := p.MaximumForce(); {
	case eta < 0 || eta > maximum:
		return math.NaN()
	case eta == maximum:
		return math.E
	case eta == 0:
		return 1
	}
	y := eta / p.kappa

	return special.InverseNewtonRaphson(y,
		func(s float64) float64 { return math.Log(s) / s },
		func(s float64) float64 { return (1 - math.Log(s)) / (s * s) },
		1+y, stretchRelTol, stretchMaxIters)
}

func (p logSquared) Compliance(eta float64) float64 {
	s := p.Stretch(eta)

	return s * s / (p.kappa * (1 - math.Log(s)))
}

func (p logSquared) Energy(eta float64) float64 {
	ls := math.Log(p.Stretch(eta))

	return p.kappa * ls * ls / 2
}

func (p logSquared) MaximumForce() float64 { return p.kappa / math.E }

const (
	stretchRelTol   = 1e-12
	stretchMaxIters = 100
)

// ------------------------------
// Morse
// ------------------------------

// Morse is u(s) = ε(1 - exp(-a(s-1)))² with a = √(κ/2ε), so that u''(1) = κ.
// Links break at η = εa/2.
type Morse struct {
	// Stiffness is k in J/(mol·nm²).
	Stiffness float64

	// BondEnergy is the well depth in J/mol.
	BondEnergy float64
}

func (m Morse) Nondimensional(linkLength, temperature float64) Potential {
	kappa := stiffness(m.Stiffness, linkLength, temperature)
	epsilon := m.BondEnergy / physics.ThermalEnergy(temperature)

	return morse{epsilon: epsilon, a: math.Sqrt(kappa / (2 * epsilon))}
}

func (m Morse) Validate() error {
	if err := physics.RequirePositive("ufjc.Morse", "stiffness", m.Stiffness); err != nil {
		return err
	}

	return physics.RequirePositive("ufjc.Morse", "bondEnergy", m.BondEnergy)
}

type morse struct{ epsilon, a float64 }

// y returns exp(-a(s-1)) on the stable branch y > 1/2.
func (p morse) y(eta float64) float64 {
	if eta < 0 || eta > p.MaximumForce() {
		return math.NaN()
	}

	return (1 + math.Sqrt(math.Max(0, 1-2*eta/(p.epsilon*p.a)))) / 2
}

func (p morse) Stretch(eta float64) float64 { return 1 - math.Log(p.y(eta))/p.a }

func (p morse) Compliance(eta float64) float64 {
	y := p.y(eta)

	return 1 / (2 * p.epsilon * p.a * p.a * y * (2*y - 1))
}

func (p morse) Energy(eta float64) float64 {
	d := 1 - p.y(eta)

	return p.epsilon * d * d
}

func (p morse) MaximumForce() float64 { return p.epsilon * p.a / 2 }

// ------------------------------
// Composite
// ------------------------------

// Composite puts two potentials in series: both carry the same force, their
// extensions, energies and compliances add.
type Composite struct {
	First, Second LinkPotential
}

func (c Composite) Nondimensional(linkLength, temperature float64) Potential {
	return composite{
		first:  c.First.Nondimensional(linkLength, temperature),
		second: c.Second.Nondimensional(linkLength, temperature),
	}
}

func (c Composite) Validate() error {
	if c.First == nil || c.Second == nil {
		return errNilPotential("ufjc.Composite")
	}
	if err := c.First.Validate(); err != nil {
		return err
	}

	return c.Second.Validate()
}

type composite struct{ first, second Potential }

func (p composite) Stretch(eta float64) float64 {
	return p.first.Stretch(eta) + p.second.Stretch(eta) - 1
}

func (p composite) Compliance(eta float64) float64 {
	return p.first.Compliance(eta) + p.second.Compliance(eta)
}

func (p composite) Energy(eta float64) float64 {
	return p.first.Energy(eta) + p.second.Energy(eta)
}

func (p composite) MaximumForce() float64 {
	return math.Min(p.first.MaximumForce(), p.second.MaximumForce())
}
