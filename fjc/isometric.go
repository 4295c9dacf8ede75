// SPDX-License-Identifier: MIT

package fjc

import (
	"math"
	"math/big"

	"github.com/katalvlaran/polymers/equilibrium"
	"github.com/katalvlaran/polymers/physics"
	"github.com/katalvlaran/polymers/special"
)

// Isometric is the fixed end-to-end length ensemble, exact for finite N.
//
// With m = (1-γ)/2 and k = ⌈N·m⌉ the end-to-end vector density is
//
//	P(γ) = N^N / (8π (N-2)! γ) · Σ_{s<k} (-1)^s C(N,s) (m - s/N)^{N-2}
//
// The sum alternates with terms far larger than its value near γ = 0, so it
// is accumulated in big.Float with 2N+128 mantissa bits. Free energies are
// taken from ln P directly and stay finite where P underflows float64.
//
// The Gibbs free energy is the finite-N Legendre connection ϱ = ψ - Nηγ at
// the exact force, so ∂ϱ/∂η = -Nγ holds for every N.
type Isometric struct {
	physics.Chain

	// Legendre approximates this ensemble from the isotensional closed forms.
	Legendre IsometricLegendre

	distribution   *equilibrium.Distribution
	logPrefactor   float64
	logDensityZero float64
}

func newIsometric(chain physics.Chain, opts ...equilibrium.Option) (Isometric, error) {
	n := chain.Links()
	lgammaN2, _ := math.Lgamma(n - 1)
	m := Isometric{
		Chain:        chain,
		logPrefactor: n*math.Log(n) - lgammaN2 - math.Log(8*math.Pi),
	}
	d, err := equilibrium.New(m.density, opts...)
	if err != nil {
		return Isometric{}, err
	}
	m.distribution = d
	m.logDensityZero = m.logDensity(d.Options().Zero())

	legendre, err := newIsometricLegendre(chain, opts...)
	if err != nil {
		return Isometric{}, err
	}
	m.Legendre = legendre

	return m, nil
}

// alternatingSum returns Σ = Σ_{s<k} (-1)^s C(N,s) (m - s/N)^power at the
// float64 value of m.
func (m Isometric) alternatingSum(gamma float64, power int) *big.Float {
	n := m.NumberOfLinks
	prec := uint(2*n + 128)
	newFloat := func() *big.Float { return new(big.Float).SetPrec(prec) }

	half := (1 - gamma) / 2
	k := int(math.Ceil(float64(n) * half))
	if k > n+1 {
		k = n + 1
	}

	var (
		sum    = newFloat()
		bigN   = newFloat().SetInt64(int64(n))
		bigM   = newFloat().SetFloat64(half)
		binom  = big.NewInt(1)
		ratio  = new(big.Int)
		x      = newFloat()
		term   = newFloat()
		factor = newFloat()
	)
	for s := 0; s < k; s++ {
		x.Quo(newFloat().SetInt64(int64(s)), bigN)
		x.Sub(bigM, x)
		powBig(term, x, power)
		term.Mul(term, factor.SetInt(binom))
		if s%2 == 1 {
			term.Neg(term)
		}
		sum.Add(sum, term)

		// C(N,s+1) = C(N,s)·(N-s)/(s+1), exact in integers.
		binom.Mul(binom, ratio.SetInt64(int64(n-s)))
		binom.Quo(binom, ratio.SetInt64(int64(s+1)))
	}

	return sum
}

// logAbs returns ln|x| for x far outside the float64 range.
func logAbs(x *big.Float) float64 {
	if x.Sign() == 0 {
		return math.Inf(-1)
	}
	mant := new(big.Float)
	binaryExp := x.MantExp(mant)
	mf, _ := mant.Float64()

	return math.Log(math.Abs(mf)) + float64(binaryExp)*math.Ln2
}

// powBig sets z = x^p by binary exponentiation and returns z.
func powBig(z, x *big.Float, p int) *big.Float {
	base := new(big.Float).SetPrec(z.Prec()).Set(x)
	z.SetInt64(1)
	for ; p > 0; p >>= 1 {
		if p&1 == 1 {
			z.Mul(z, base)
		}
		base.Mul(base, base)
	}

	return z
}

// logDensity returns ln P(γ) of the unnormalized density, -Inf where the
// sum is not positive.
func (m Isometric) logDensity(gamma float64) float64 {
	sum := m.alternatingSum(gamma, m.NumberOfLinks-2)
	if sum.Sign() <= 0 {
		return math.Inf(-1)
	}

	return m.logPrefactor + logAbs(sum) - math.Log(gamma)
}

// density is the unnormalized P(γ); it integrates to one on [0, 1] exactly.
func (m Isometric) density(gamma float64) float64 {
	return math.Exp(m.logDensity(gamma))
}

// Force returns the force (J/(mol·nm)) holding the ends at endToEndLength (nm).
func (m Isometric) Force(endToEndLength, temperature float64) float64 {
	return m.Chain.Force(m.NondimensionalForce(m.PerLink(endToEndLength)), temperature)
}

// NondimensionalForce returns η = ∂ψ/∂γ per link:
//
//	η = [1/γ + (N/2 - 1)·Σ_{N-3}/Σ_{N-2}] / N
func (m Isometric) NondimensionalForce(nondimensionalEndToEndLengthPerLink float64) float64 {
	g := nondimensionalEndToEndLengthPerLink
	n := m.Links()
	ratio := 0.0
	if m.NumberOfLinks > 2 {
		den := m.alternatingSum(g, m.NumberOfLinks-2)
		if den.Sign() == 0 {
			return math.Inf(1)
		}
		num := m.alternatingSum(g, m.NumberOfLinks-3)
		ratio, _ = num.Quo(num, den).Float64()
	}

	return (1/g + (n/2-1)*ratio) / n
}

// HelmholtzFreeEnergy returns the absolute Helmholtz free energy in J/mol.
func (m Isometric) HelmholtzFreeEnergy(endToEndLength, temperature float64) float64 {
	return m.Energy(m.NondimensionalHelmholtzFreeEnergy(m.PerLink(endToEndLength), temperature), temperature)
}

// HelmholtzFreeEnergyPerLink returns the absolute Helmholtz free energy per link in J/mol.
func (m Isometric) HelmholtzFreeEnergyPerLink(endToEndLength, temperature float64) float64 {
	return m.Energy(m.NondimensionalHelmholtzFreeEnergyPerLink(m.PerLink(endToEndLength), temperature), temperature)
}

// RelativeHelmholtzFreeEnergy returns ψ(r) - ψ(ZERO) in J/mol.
func (m Isometric) RelativeHelmholtzFreeEnergy(endToEndLength, temperature float64) float64 {
	return m.Energy(m.NondimensionalRelativeHelmholtzFreeEnergy(m.PerLink(endToEndLength)), temperature)
}

// RelativeHelmholtzFreeEnergyPerLink returns the relative free energy per link in J/mol.
func (m Isometric) RelativeHelmholtzFreeEnergyPerLink(endToEndLength, temperature float64) float64 {
	return m.Energy(m.NondimensionalRelativeHelmholtzFreeEnergyPerLink(m.PerLink(endToEndLength)), temperature)
}

// NondimensionalHelmholtzFreeEnergy returns -ln P_eq(γ) - (N-1)·ln(8π²mℓ²kT/ħ²).
func (m Isometric) NondimensionalHelmholtzFreeEnergy(nondimensionalEndToEndLengthPerLink, temperature float64) float64 {
	logEq := m.logDensity(nondimensionalEndToEndLengthPerLink) - math.Log(m.distribution.Normalization())

	return -logEq - (m.Links()-1)*m.KineticTerm(temperature)
}

// NondimensionalHelmholtzFreeEnergyPerLink returns the total divided by N.
func (m Isometric) NondimensionalHelmholtzFreeEnergyPerLink(nondimensionalEndToEndLengthPerLink, temperature float64) float64 {
	return m.NondimensionalHelmholtzFreeEnergy(nondimensionalEndToEndLengthPerLink, temperature) / m.Links()
}

// NondimensionalRelativeHelmholtzFreeEnergy returns -ln(P(γ)/P(ZERO)).
func (m Isometric) NondimensionalRelativeHelmholtzFreeEnergy(nondimensionalEndToEndLengthPerLink float64) float64 {
	return m.logDensityZero - m.logDensity(nondimensionalEndToEndLengthPerLink)
}

// NondimensionalRelativeHelmholtzFreeEnergyPerLink returns the total divided by N.
func (m Isometric) NondimensionalRelativeHelmholtzFreeEnergyPerLink(nondimensionalEndToEndLengthPerLink float64) float64 {
	return m.NondimensionalRelativeHelmholtzFreeEnergy(nondimensionalEndToEndLengthPerLink) / m.Links()
}

// GibbsFreeEnergy returns the absolute Gibbs free energy in J/mol.
func (m Isometric) GibbsFreeEnergy(endToEndLength, temperature float64) float64 {
	return m.Energy(m.NondimensionalGibbsFreeEnergy(m.PerLink(endToEndLength), temperature), temperature)
}

// GibbsFreeEnergyPerLink returns the absolute Gibbs free energy per link in J/mol.
func (m Isometric) GibbsFreeEnergyPerLink(endToEndLength, temperature float64) float64 {
	return m.Energy(m.NondimensionalGibbsFreeEnergyPerLink(m.PerLink(endToEndLength), temperature), temperature)
}

// RelativeGibbsFreeEnergy returns the relative Gibbs free energy in J/mol.
func (m Isometric) RelativeGibbsFreeEnergy(endToEndLength, temperature float64) float64 {
	return m.Energy(m.NondimensionalRelativeGibbsFreeEnergy(m.PerLink(endToEndLength)), temperature)
}

// RelativeGibbsFreeEnergyPerLink returns the relative Gibbs free energy per link in J/mol.
func (m Isometric) RelativeGibbsFreeEnergyPerLink(endToEndLength, temperature float64) float64 {
	return m.Energy(m.NondimensionalRelativeGibbsFreeEnergyPerLink(m.PerLink(endToEndLength)), temperature)
}

// NondimensionalGibbsFreeEnergy returns the absolute Helmholtz free energy minus Nηγ.
func (m Isometric) NondimensionalGibbsFreeEnergy(nondimensionalEndToEndLengthPerLink, temperature float64) float64 {
	g := nondimensionalEndToEndLengthPerLink

	return m.NondimensionalHelmholtzFreeEnergy(g, temperature) - m.Links()*m.NondimensionalForce(g)*g
}

// NondimensionalGibbsFreeEnergyPerLink returns the total divided by N.
func (m Isometric) NondimensionalGibbsFreeEnergyPerLink(nondimensionalEndToEndLengthPerLink, temperature float64) float64 {
	return m.NondimensionalGibbsFreeEnergy(nondimensionalEndToEndLengthPerLink, temperature) / m.Links()
}

// NondimensionalRelativeGibbsFreeEnergy returns ϱ(γ) = ψ(γ) - Nη(γ)γ with the exact force.
func (m Isometric) NondimensionalRelativeGibbsFreeEnergy(nondimensionalEndToEndLengthPerLink float64) float64 {
	g := nondimensionalEndToEndLengthPerLink

	return m.NondimensionalRelativeHelmholtzFreeEnergy(g) - m.Links()*m.NondimensionalForce(g)*g
}

// NondimensionalRelativeGibbsFreeEnergyPerLink returns the total divided by N.
func (m Isometric) NondimensionalRelativeGibbsFreeEnergyPerLink(nondimensionalEndToEndLengthPerLink float64) float64 {
	return m.NondimensionalRelativeGibbsFreeEnergy(nondimensionalEndToEndLengthPerLink) / m.Links()
}

// EquilibriumDistribution returns the end-to-end vector density in nm⁻³.
func (m Isometric) EquilibriumDistribution(endToEndLength float64) float64 {
	return m.Density(m.NondimensionalEquilibriumDistribution(m.PerLink(endToEndLength)))
}

// NondimensionalEquilibriumDistribution returns the normalized P_eq(γ).
func (m Isometric) NondimensionalEquilibriumDistribution(nondimensionalEndToEndLengthPerLink float64) float64 {
	return m.distribution.Density(nondimensionalEndToEndLengthPerLink)
}

// EquilibriumRadialDistribution returns the radial density in nm⁻¹.
func (m Isometric) EquilibriumRadialDistribution(endToEndLength float64) float64 {
	return m.RadialDensity(m.NondimensionalEquilibriumRadialDistribution(m.PerLink(endToEndLength)))
}

// NondimensionalEquilibriumRadialDistribution returns 4πγ²·P_eq(γ).
func (m Isometric) NondimensionalEquilibriumRadialDistribution(nondimensionalEndToEndLengthPerLink float64) float64 {
	return m.distribution.RadialDensity(nondimensionalEndToEndLengthPerLink)
}

// IsometricLegendre approximates the isometric ensemble through the
// Legendre transform of the isotensional one, exact as N → ∞:
//
//	η = L⁻¹(γ),  ψ = ηγ - ln(sinh η/η),  ϱ = ψ - ηγ
type IsometricLegendre struct {
	physics.Chain

	distribution *equilibrium.Distribution
}

func newIsometricLegendre(chain physics.Chain, opts ...equilibrium.Option) (IsometricLegendre, error) {
	m := IsometricLegendre{Chain: chain}
	d, err := equilibrium.New(func(g float64) float64 {
		return math.Exp(-m.NondimensionalRelativeHelmholtzFreeEnergy(g))
	}, opts...)
	if err != nil {
		return IsometricLegendre{}, err
	}
	m.distribution = d

	return m, nil
}

// Force returns the force (J/(mol·nm)) at endToEndLength (nm).
func (m IsometricLegendre) Force(endToEndLength, temperature float64) float64 {
	return m.Chain.Force(m.NondimensionalForce(m.PerLink(endToEndLength)), temperature)
}

// NondimensionalForce returns η = L⁻¹(γ), independent of N.
func (m IsometricLegendre) NondimensionalForce(nondimensionalEndToEndLengthPerLink float64) float64 {
	return special.InverseLangevin(nondimensionalEndToEndLengthPerLink)
}

// HelmholtzFreeEnergy returns the absolute Helmholtz free energy in J/mol.
func (m IsometricLegendre) HelmholtzFreeEnergy(endToEndLength, temperature float64) float64 {
	return m.Energy(m.NondimensionalHelmholtzFreeEnergy(m.PerLink(endToEndLength), temperature), temperature)
}

// HelmholtzFreeEnergyPerLink returns the absolute Helmholtz free energy per link in J/mol.
func (m IsometricLegendre) HelmholtzFreeEnergyPerLink(endToEndLength, temperature float64) float64 {
	return m.Energy(m.NondimensionalHelmholtzFreeEnergyPerLink(m.PerLink(endToEndLength), temperature), temperature)
}

// RelativeHelmholtzFreeEnergy returns the relative Helmholtz free energy in J/mol.
func (m IsometricLegendre) RelativeHelmholtzFreeEnergy(endToEndLength, temperature float64) float64 {
	return m.Energy(m.NondimensionalRelativeHelmholtzFreeEnergy(m.PerLink(endToEndLength)), temperature)
}

// RelativeHelmholtzFreeEnergyPerLink returns the relative Helmholtz free energy per link in J/mol.
func (m IsometricLegendre) RelativeHelmholtzFreeEnergyPerLink(endToEndLength, temperature float64) float64 {
	return m.Energy(m.NondimensionalRelativeHelmholtzFreeEnergyPerLink(m.PerLink(endToEndLength)), temperature)
}

// NondimensionalHelmholtzFreeEnergy returns Nψ(γ) - (N-1)·ln(8π²mℓ²kT/ħ²).
func (m IsometricLegendre) NondimensionalHelmholtzFreeEnergy(nondimensionalEndToEndLengthPerLink, temperature float64) float64 {
	return m.NondimensionalRelativeHelmholtzFreeEnergy(nondimensionalEndToEndLengthPerLink) - (m.Links()-1)*m.KineticTerm(temperature)
}

// NondimensionalHelmholtzFreeEnergyPerLink returns the total divided by N.
func (m IsometricLegendre) NondimensionalHelmholtzFreeEnergyPerLink(nondimensionalEndToEndLengthPerLink, temperature float64) float64 {
	return m.NondimensionalHelmholtzFreeEnergy(nondimensionalEndToEndLengthPerLink, temperature) / m.Links()
}

// NondimensionalRelativeHelmholtzFreeEnergy returns Nψ(γ).
func (m IsometricLegendre) NondimensionalRelativeHelmholtzFreeEnergy(nondimensionalEndToEndLengthPerLink float64) float64 {
	return m.Links() * m.NondimensionalRelativeHelmholtzFreeEnergyPerLink(nondimensionalEndToEndLengthPerLink)
}

// NondimensionalRelativeHelmholtzFreeEnergyPerLink returns ψ(γ) = ηγ - ln(sinh η/η).
func (m IsometricLegendre) NondimensionalRelativeHelmholtzFreeEnergyPerLink(nondimensionalEndToEndLengthPerLink float64) float64 {
	eta := m.NondimensionalForce(nondimensionalEndToEndLengthPerLink)

	return eta*nondimensionalEndToEndLengthPerLink - special.LogSinhc(eta)
}

// GibbsFreeEnergy returns the absolute Gibbs free energy in J/mol.
func (m IsometricLegendre) GibbsFreeEnergy(endToEndLength, temperature float64) float64 {
	return m.Energy(m.NondimensionalGibbsFreeEnergy(m.PerLink(endToEndLength), temperature), temperature)
}

// GibbsFreeEnergyPerLink returns the absolute Gibbs free energy per link in J/mol.
func (m IsometricLegendre) GibbsFreeEnergyPerLink(endToEndLength, temperature float64) float64 {
	return m.Energy(m.NondimensionalGibbsFreeEnergyPerLink(m.PerLink(endToEndLength), temperature), temperature)
}

// RelativeGibbsFreeEnergy returns the relative Gibbs free energy in J/mol.
func (m IsometricLegendre) RelativeGibbsFreeEnergy(endToEndLength, temperature float64) float64 {
	return m.Energy(m.NondimensionalRelativeGibbsFreeEnergy(m.PerLink(endToEndLength)), temperature)
}

// RelativeGibbsFreeEnergyPerLink returns the relative Gibbs free energy per link in J/mol.
func (m IsometricLegendre) RelativeGibbsFreeEnergyPerLink(endToEndLength, temperature float64) float64 {
	return m.Energy(m.NondimensionalRelativeGibbsFreeEnergyPerLink(m.PerLink(endToEndLength)), temperature)
}

// NondimensionalGibbsFreeEnergy returns the Helmholtz free energy minus Nηγ.
func (m IsometricLegendre) NondimensionalGibbsFreeEnergy(nondimensionalEndToEndLengthPerLink, temperature float64) float64 {
	return m.NondimensionalRelativeGibbsFreeEnergy(nondimensionalEndToEndLengthPerLink) - (m.Links()-1)*m.KineticTerm(temperature)
}

// NondimensionalGibbsFreeEnergyPerLink returns the total divided by N.
func (m IsometricLegendre) NondimensionalGibbsFreeEnergyPerLink(nondimensionalEndToEndLengthPerLink, temperature float64) float64 {
	return m.NondimensionalGibbsFreeEnergy(nondimensionalEndToEndLengthPerLink, temperature) / m.Links()
}

// NondimensionalRelativeGibbsFreeEnergy returns Nϱ(γ).
func (m IsometricLegendre) NondimensionalRelativeGibbsFreeEnergy(nondimensionalEndToEndLengthPerLink float64) float64 {
	return m.Links() * m.NondimensionalRelativeGibbsFreeEnergyPerLink(nondimensionalEndToEndLengthPerLink)
}

// NondimensionalRelativeGibbsFreeEnergyPerLink returns ϱ = -ln(sinh η/η) at η = L⁻¹(γ).
func (m IsometricLegendre) NondimensionalRelativeGibbsFreeEnergyPerLink(nondimensionalEndToEndLengthPerLink float64) float64 {
	return -special.LogSinhc(m.NondimensionalForce(nondimensionalEndToEndLengthPerLink))
}

// EquilibriumDistribution returns the end-to-end vector density in nm⁻³.
func (m IsometricLegendre) EquilibriumDistribution(endToEndLength float64) float64 {
	return m.Density(m.NondimensionalEquilibriumDistribution(m.PerLink(endToEndLength)))
}

// NondimensionalEquilibriumDistribution returns exp(-Nψ(γ))/Z.
func (m IsometricLegendre) NondimensionalEquilibriumDistribution(nondimensionalEndToEndLengthPerLink float64) float64 {
	return m.distribution.Density(nondimensionalEndToEndLengthPerLink)
}

// EquilibriumRadialDistribution returns the radial density in nm⁻¹.
func (m IsometricLegendre) EquilibriumRadialDistribution(endToEndLength float64) float64 {
	return m.RadialDensity(m.NondimensionalEquilibriumRadialDistribution(m.PerLink(endToEndLength)))
}

// NondimensionalEquilibriumRadialDistribution returns 4πγ²·exp(-Nψ(γ))/Z.
func (m IsometricLegendre) NondimensionalEquilibriumRadialDistribution(nondimensionalEndToEndLengthPerLink float64) float64 {
	return m.distribution.RadialDensity(nondimensionalEndToEndLengthPerLink)
}
