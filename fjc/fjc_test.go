// SPDX-License-Identifier: MIT

package fjc_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/polymers/equilibrium"
	"github.com/katalvlaran/polymers/fjc"
	"github.com/katalvlaran/polymers/physics"
	"github.com/katalvlaran/polymers/quadrature"
	"github.com/katalvlaran/polymers/special"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat/combin"
)

const (
	seedDet     = int64(7)
	temperature = 300.0
	normRelTol  = 1e-9
	dualityStep = 1e-6
)

func mustFJC(t testing.TB, n int, l, m float64, opts ...equilibrium.Option) *fjc.FJC {
	t.Helper()
	model, err := fjc.New(n, l, m, opts...)
	require.NoError(t, err)

	return model
}

// randomParameters draws (N, ℓ, m) the way the normalization properties are
// exercised: N in [minN, maxN], ℓ and m in [0.5, 1.5).
func randomParameters(rng *rand.Rand, minN, maxN int) (int, float64, float64) {
	return minN + rng.Intn(maxN-minN+1), 0.5 + rng.Float64(), 0.5 + rng.Float64()
}

// ------------------------------
// Construction
// ------------------------------

func TestNew_EchoesParameters(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	for i := 0; i < 8; i++ {
		n, l, m := randomParameters(rng, fjc.MinNumberOfLinks, 24)
		model := mustFJC(t, n, l, m)
		assert.Equal(t, n, model.NumberOfLinks)
		assert.Equal(t, l, model.LinkLength)
		assert.Equal(t, m, model.HingeMass)
		assert.InDelta(t, float64(n)*l, model.ContourLength, 1e-12)
		assert.Equal(t, model.Chain, model.Isometric.Chain)
		assert.Equal(t, model.Chain, model.Isotensional.Legendre.Chain)
		assert.Equal(t, model.Chain, model.ModifiedCanonical.StrongPotential.Chain)
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := fjc.New(1, 1, 1)
	require.ErrorIs(t, err, physics.ErrInvalidParameter)
	_, err = fjc.New(8, 0, 1)
	require.ErrorIs(t, err, physics.ErrInvalidParameter)
	_, err = fjc.New(8, 1, math.NaN())
	require.ErrorIs(t, err, physics.ErrInvalidParameter)

	_, err = fjc.New(8, 1, 1, equilibrium.WithZero(2))
	require.ErrorIs(t, err, equilibrium.ErrNormalization)
}

// ------------------------------
// Isometric ensemble
// ------------------------------

func TestIsometric_SmokeScenario(t *testing.T) {
	model := mustFJC(t, 8, 1, 1)
	exact := model.Isometric.NondimensionalForce(0.5)
	approx := model.Isometric.Legendre.NondimensionalForce(0.5)
	assert.InDelta(t, special.InverseLangevin(0.5), approx, 0)
	assert.LessOrEqual(t, math.Abs(exact-approx)/approx, 1/math.Sqrt(8))
}

func TestIsometric_TwoLinksClosedForm(t *testing.T) {
	// Two links: P(γ) = 1/(2πγ) and η = 1/(2γ). The midpoint rule integrates
	// the linear radial density 2γ exactly, so Z = 1 - ZERO².
	model := mustFJC(t, 2, 1, 1)
	z := 1 - equilibrium.DefaultZero*equilibrium.DefaultZero
	for _, g := range []float64{0.1, 0.4, 0.9} {
		assert.InDelta(t, 1/(2*g), model.Isometric.NondimensionalForce(g), 1e-12)
		want := 1 / (2 * math.Pi * g) / z
		assert.True(t, scalar.EqualWithinRel(want, model.Isometric.NondimensionalEquilibriumDistribution(g), 1e-12), "γ=%g", g)
	}
}

func TestIsometric_Normalization(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	o := equilibrium.NewOptions()
	for i := 0; i < 6; i++ {
		n, l, m := randomParameters(rng, fjc.MinNumberOfLinks, 64)
		model := mustFJC(t, n, l, m)

		exact := quadrature.Integrate1D(model.Isometric.NondimensionalEquilibriumRadialDistribution, o.Zero(), o.Upper(), o.Points())
		assert.InDelta(t, 1, exact, normRelTol, "N=%d", n)

		legendre := quadrature.Integrate1D(model.Isometric.Legendre.NondimensionalEquilibriumRadialDistribution, o.Zero(), o.Upper(), o.Points())
		assert.InDelta(t, 1, legendre, normRelTol, "N=%d", n)

		// The exact density integrates to one analytically, so Z itself is 1
		// up to the error of the coarse rule.
		assert.InDelta(t, 1, normalizationConstant(model), 1e-4, "N=%d", n)
	}
}

// normalizationConstant recovers Z as the reciprocal of a fine quadrature of
// the normalized radial density.
func normalizationConstant(model *fjc.FJC) float64 {
	o := equilibrium.NewOptions()
	fine := quadrature.Integrate1D(func(g float64) float64 {
		return model.Isometric.NondimensionalEquilibriumRadialDistribution(g)
	}, o.Zero(), o.Upper(), 4000)

	return 1 / fine
}

func TestIsometric_DimensionalDistribution(t *testing.T) {
	model := mustFJC(t, 12, 0.8, 1)
	r := 0.45 * model.ContourLength
	nd := model.Isometric.NondimensionalEquilibriumDistribution(0.45)
	assert.InDelta(t, nd/math.Pow(model.ContourLength, 3), model.Isometric.EquilibriumDistribution(r), 1e-15)
	ndr := model.Isometric.NondimensionalEquilibriumRadialDistribution(0.45)
	assert.InDelta(t, ndr/model.ContourLength, model.Isometric.EquilibriumRadialDistribution(r), 1e-12)
	assert.InDelta(t, 4*math.Pi*0.45*0.45*nd, ndr, 1e-12)
}

func TestIsometric_PerLinkAndDimensional(t *testing.T) {
	model := mustFJC(t, 10, 1.2, 0.9)
	iso := model.Isometric
	leg := model.Isometric.Legendre
	kT := physics.ThermalEnergy(temperature)
	n := float64(model.NumberOfLinks)
	for _, g := range []float64{0.15, 0.5, 0.85} {
		r := g * model.ContourLength

		assert.InDelta(t, n*iso.NondimensionalRelativeHelmholtzFreeEnergyPerLink(g), iso.NondimensionalRelativeHelmholtzFreeEnergy(g), 1e-12)
		assert.InDelta(t, n*iso.NondimensionalHelmholtzFreeEnergyPerLink(g, temperature), iso.NondimensionalHelmholtzFreeEnergy(g, temperature), 1e-10)
		assert.InDelta(t, kT*iso.NondimensionalRelativeHelmholtzFreeEnergy(g), iso.RelativeHelmholtzFreeEnergy(r, temperature), 1e-8)
		assert.InDelta(t, kT*iso.NondimensionalHelmholtzFreeEnergyPerLink(g, temperature), iso.HelmholtzFreeEnergyPerLink(r, temperature), 1e-8)
		assert.InDelta(t, kT/model.LinkLength*iso.NondimensionalForce(g), iso.Force(r, temperature), 1e-8)

		// Absolute and relative forms differ by a γ-independent constant.
		shift := iso.NondimensionalHelmholtzFreeEnergy(g, temperature) - iso.NondimensionalRelativeHelmholtzFreeEnergy(g)
		assert.InDelta(t, iso.NondimensionalHelmholtzFreeEnergy(0.3, temperature)-iso.NondimensionalRelativeHelmholtzFreeEnergy(0.3), shift, 1e-9)

		assert.InDelta(t, n*leg.NondimensionalRelativeHelmholtzFreeEnergyPerLink(g), leg.NondimensionalRelativeHelmholtzFreeEnergy(g), 1e-12)
		assert.InDelta(t, n*leg.NondimensionalRelativeGibbsFreeEnergyPerLink(g), leg.NondimensionalRelativeGibbsFreeEnergy(g), 1e-12)
		assert.InDelta(t, kT*leg.NondimensionalGibbsFreeEnergy(g, temperature), leg.GibbsFreeEnergy(r, temperature), 1e-7)
		assert.InDelta(t, kT*leg.NondimensionalHelmholtzFreeEnergyPerLink(g, temperature), leg.HelmholtzFreeEnergyPerLink(r, temperature), 1e-8)
		assert.InDelta(t, kT/model.LinkLength*leg.NondimensionalForce(g), leg.Force(r, temperature), 1e-8)

		// Helmholtz and Gibbs differ by Nηγ.
		eta := leg.NondimensionalForce(g)
		assert.InDelta(t, n*eta*g, leg.NondimensionalRelativeHelmholtzFreeEnergy(g)-leg.NondimensionalRelativeGibbsFreeEnergy(g), 1e-10)
	}
}

func TestIsometric_ZeroLimits(t *testing.T) {
	model := mustFJC(t, 8, 1, 1)
	zero := equilibrium.DefaultZero
	n := float64(model.NumberOfLinks)
	bound := 3 * n * zero

	assert.Equal(t, 0.0, model.Isometric.NondimensionalRelativeHelmholtzFreeEnergy(zero))
	assert.LessOrEqual(t, math.Abs(model.Isometric.NondimensionalForce(zero)), bound)
	assert.LessOrEqual(t, model.Isometric.NondimensionalEquilibriumRadialDistribution(zero), bound)

	assert.LessOrEqual(t, math.Abs(model.Isometric.Legendre.NondimensionalForce(zero)), bound)
	assert.LessOrEqual(t, math.Abs(model.Isometric.Legendre.NondimensionalRelativeHelmholtzFreeEnergy(zero)), bound)
	assert.LessOrEqual(t, math.Abs(model.Isometric.Legendre.NondimensionalRelativeGibbsFreeEnergy(zero)), bound)
}

func TestIsometric_LegendreDuality(t *testing.T) {
	model := mustFJC(t, 8, 1, 1)
	settings := &fd.Settings{Formula: fd.Central, Step: dualityStep}
	for _, g := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		exact := fd.Derivative(model.Isometric.NondimensionalRelativeHelmholtzFreeEnergyPerLink, g, settings)
		assert.True(t, scalar.EqualWithinRel(model.Isometric.NondimensionalForce(g), exact, 1e-5), "γ=%g", g)

		legendre := fd.Derivative(model.Isometric.Legendre.NondimensionalRelativeHelmholtzFreeEnergyPerLink, g, settings)
		assert.True(t, scalar.EqualWithinRel(model.Isometric.Legendre.NondimensionalForce(g), legendre, 1e-3), "γ=%g", g)
	}
}

func TestIsometric_ThermodynamicLimit(t *testing.T) {
	for _, n := range []int{80, 100} {
		model := mustFJC(t, n, 1, 1)
		tol := 1 / math.Sqrt(float64(n))
		for _, g := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
			exact := model.Isometric.NondimensionalForce(g)
			legendre := model.Isometric.Legendre.NondimensionalForce(g)
			assert.LessOrEqual(t, math.Abs(exact-legendre)/legendre, tol, "N=%d γ=%g force", n, g)

			exactPsi := model.Isometric.NondimensionalRelativeHelmholtzFreeEnergyPerLink(g)
			legendrePsi := model.Isometric.Legendre.NondimensionalRelativeHelmholtzFreeEnergyPerLink(g)
			assert.LessOrEqual(t, math.Abs(exactPsi-legendrePsi)/legendrePsi, tol, "N=%d γ=%g free energy", n, g)
		}
	}
}

func TestIsometric_LargeChains(t *testing.T) {
	o := equilibrium.NewOptions()
	finite := func(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }
	for _, n := range []int{200, 500} {
		model := mustFJC(t, n, 1, 1)
		iso := model.Isometric
		tol := 1 / math.Sqrt(float64(n))

		// The radial density is negligible past γ = 0.4 at these N, and the
		// exact density integrates to one, so Z is 1.
		total := quadrature.Integrate1D(iso.NondimensionalEquilibriumRadialDistribution, o.Zero(), 0.4, 200)
		assert.InDelta(t, 1, total, 1e-6, "N=%d", n)

		for _, g := range []float64{0.1, 0.5, 0.9, 0.95, 0.99} {
			psi := iso.NondimensionalRelativeHelmholtzFreeEnergyPerLink(g)
			absolute := iso.NondimensionalHelmholtzFreeEnergy(g, temperature)
			gibbs := iso.NondimensionalRelativeGibbsFreeEnergy(g)
			require.True(t, finite(psi), "N=%d γ=%g ψ=%g", n, g, psi)
			require.True(t, finite(absolute), "N=%d γ=%g ψ=%g", n, g, absolute)
			require.True(t, finite(gibbs), "N=%d γ=%g ϱ=%g", n, g, gibbs)

			legendrePsi := iso.Legendre.NondimensionalRelativeHelmholtzFreeEnergyPerLink(g)
			assert.LessOrEqual(t, math.Abs(psi-legendrePsi)/legendrePsi, tol, "N=%d γ=%g free energy", n, g)
			legendreEta := iso.Legendre.NondimensionalForce(g)
			assert.LessOrEqual(t, math.Abs(iso.NondimensionalForce(g)-legendreEta)/legendreEta, tol, "N=%d γ=%g force", n, g)
		}
	}
}

func TestIsometric_MatchesFloatSumAtSmallN(t *testing.T) {
	// At N = 8 the alternating sum is harmless in float64.
	const n = 8
	reference := func(g float64) float64 {
		m := (1 - g) / 2
		sum := 0.0
		for s := 0; s < int(math.Ceil(n*m)); s++ {
			sum += math.Pow(-1, float64(s)) * float64(combin.Binomial(n, s)) * math.Pow(m-float64(s)/n, n-2)
		}

		return sum / g
	}
	model := mustFJC(t, n, 1, 1)
	iso := model.Isometric
	for _, g := range []float64{0.2, 0.4, 0.7, 0.9} {
		want := reference(g) / reference(0.5)
		got := iso.NondimensionalEquilibriumDistribution(g) / iso.NondimensionalEquilibriumDistribution(0.5)
		assert.True(t, scalar.EqualWithinRel(want, got, 1e-12), "γ=%g", g)
		assert.InDelta(t, -math.Log(want), iso.NondimensionalRelativeHelmholtzFreeEnergy(g)-iso.NondimensionalRelativeHelmholtzFreeEnergy(0.5), 1e-12)
	}
}

func TestIsometric_GibbsConnection(t *testing.T) {
	model := mustFJC(t, 8, 1, 1)
	iso := model.Isometric
	kT := physics.ThermalEnergy(temperature)
	n := float64(model.NumberOfLinks)
	settings := &fd.Settings{Formula: fd.Central, Step: dualityStep}
	for _, g := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		// ∂ϱ/∂η = -Nγ along the exact force.
		dGibbs := fd.Derivative(iso.NondimensionalRelativeGibbsFreeEnergy, g, settings)
		dForce := fd.Derivative(iso.NondimensionalForce, g, settings)
		assert.True(t, scalar.EqualWithinRel(-n*g, dGibbs/dForce, 1e-5), "γ=%g", g)

		eta := iso.NondimensionalForce(g)
		assert.InDelta(t, n*eta*g, iso.NondimensionalRelativeHelmholtzFreeEnergy(g)-iso.NondimensionalRelativeGibbsFreeEnergy(g), 1e-10)
		assert.InDelta(t, n*iso.NondimensionalRelativeGibbsFreeEnergyPerLink(g), iso.NondimensionalRelativeGibbsFreeEnergy(g), 1e-12)
		assert.InDelta(t, n*iso.NondimensionalGibbsFreeEnergyPerLink(g, temperature), iso.NondimensionalGibbsFreeEnergy(g, temperature), 1e-10)

		shift := iso.NondimensionalHelmholtzFreeEnergy(g, temperature) - iso.NondimensionalRelativeHelmholtzFreeEnergy(g)
		assert.InDelta(t, shift, iso.NondimensionalGibbsFreeEnergy(g, temperature)-iso.NondimensionalRelativeGibbsFreeEnergy(g), 1e-9)

		r := g * model.ContourLength
		assert.InDelta(t, kT*iso.NondimensionalGibbsFreeEnergy(g, temperature), iso.GibbsFreeEnergy(r, temperature), 1e-7)
		assert.InDelta(t, kT*iso.NondimensionalRelativeGibbsFreeEnergyPerLink(g), iso.RelativeGibbsFreeEnergyPerLink(r, temperature), 1e-9)
	}
}

// ------------------------------
// Isotensional ensemble
// ------------------------------

func TestIsotensional_ClosedForms(t *testing.T) {
	model := mustFJC(t, 16, 1, 1)
	iso := model.Isotensional
	for _, eta := range []float64{0.3, 1, 4, 25} {
		assert.InDelta(t, 1/math.Tanh(eta)-1/eta, iso.NondimensionalEndToEndLengthPerLink(eta), 1e-14)
		assert.InDelta(t, -math.Log(math.Sinh(eta)/eta), iso.NondimensionalRelativeGibbsFreeEnergyPerLink(eta), 1e-12)
		assert.InDelta(t, 16*iso.NondimensionalEndToEndLengthPerLink(eta), iso.NondimensionalEndToEndLength(eta), 1e-12)
	}
	assert.InDelta(t, 1.0/3, iso.NondimensionalCompliance(0), 0)
}

func TestIsotensional_PerLinkAndDimensional(t *testing.T) {
	model := mustFJC(t, 6, 0.7, 1.1)
	iso := model.Isotensional
	leg := model.Isotensional.Legendre
	kT := physics.ThermalEnergy(temperature)
	n := float64(model.NumberOfLinks)
	for _, eta := range []float64{0.2, 2, 9} {
		f := eta * kT / model.LinkLength
		assert.InDelta(t, model.ContourLength*iso.NondimensionalEndToEndLengthPerLink(eta), iso.EndToEndLength(f, temperature), 1e-12)
		assert.InDelta(t, model.LinkLength*iso.NondimensionalEndToEndLengthPerLink(eta), iso.EndToEndLengthPerLink(f, temperature), 1e-12)
		assert.InDelta(t, n*iso.NondimensionalGibbsFreeEnergyPerLink(eta, temperature), iso.NondimensionalGibbsFreeEnergy(eta, temperature), 1e-10)
		assert.InDelta(t, kT*iso.NondimensionalGibbsFreeEnergy(eta, temperature), iso.GibbsFreeEnergy(f, temperature), 1e-7)
		assert.InDelta(t, kT*iso.NondimensionalRelativeGibbsFreeEnergyPerLink(eta), iso.RelativeGibbsFreeEnergyPerLink(f, temperature), 1e-9)
		assert.InDelta(t, n*model.KineticTerm(temperature),
			iso.NondimensionalRelativeGibbsFreeEnergy(eta)-iso.NondimensionalGibbsFreeEnergy(eta, temperature), 1e-10)

		assert.InDelta(t, n*leg.NondimensionalRelativeHelmholtzFreeEnergyPerLink(eta), leg.NondimensionalRelativeHelmholtzFreeEnergy(eta), 1e-10)
		assert.InDelta(t, kT*leg.NondimensionalHelmholtzFreeEnergy(eta, temperature), leg.HelmholtzFreeEnergy(f, temperature), 1e-7)
		assert.InDelta(t, kT*leg.NondimensionalRelativeHelmholtzFreeEnergyPerLink(eta), leg.RelativeHelmholtzFreeEnergyPerLink(f, temperature), 1e-9)
		assert.InDelta(t, iso.NondimensionalRelativeGibbsFreeEnergyPerLink(eta)+eta*iso.NondimensionalEndToEndLengthPerLink(eta),
			leg.NondimensionalRelativeHelmholtzFreeEnergyPerLink(eta), 1e-12)
	}
}

func TestIsotensional_LegendreMatchesIsometricAbsolute(t *testing.T) {
	model := mustFJC(t, 8, 1, 1)
	for _, eta := range []float64{0.5, 1.7, 6} {
		g := model.Isotensional.NondimensionalEndToEndLengthPerLink(eta)
		want := model.Isometric.Legendre.NondimensionalHelmholtzFreeEnergy(g, temperature)
		assert.InDelta(t, want, model.Isotensional.Legendre.NondimensionalHelmholtzFreeEnergy(eta, temperature), 1e-6, "η=%g", eta)
		assert.InDelta(t, want/8, model.Isotensional.Legendre.NondimensionalHelmholtzFreeEnergyPerLink(eta, temperature), 1e-7, "η=%g", eta)
	}
}

func TestIsotensional_LegendreDuality(t *testing.T) {
	model := mustFJC(t, 8, 1, 1)
	settings := &fd.Settings{Formula: fd.Central, Step: dualityStep}
	for _, eta := range []float64{0.1, 0.8, 3, 12} {
		// ∂ϱ/∂η = -γ.
		dGibbs := fd.Derivative(model.Isotensional.NondimensionalRelativeGibbsFreeEnergyPerLink, eta, settings)
		assert.True(t, scalar.EqualWithinRel(-model.Isotensional.NondimensionalEndToEndLengthPerLink(eta), dGibbs, 1e-6), "η=%g", eta)

		// ∂ψ/∂η = η·∂γ/∂η.
		dHelmholtz := fd.Derivative(model.Isotensional.Legendre.NondimensionalRelativeHelmholtzFreeEnergyPerLink, eta, settings)
		assert.True(t, scalar.EqualWithinRel(eta*model.Isotensional.NondimensionalCompliance(eta), dHelmholtz, 1e-6), "η=%g", eta)
	}
}

func TestIsotensional_ZeroLimits(t *testing.T) {
	model := mustFJC(t, 8, 1, 1)
	zero := equilibrium.DefaultZero
	bound := float64(model.NumberOfLinks) * zero
	assert.LessOrEqual(t, math.Abs(model.Isotensional.NondimensionalEndToEndLengthPerLink(zero)), bound)
	assert.LessOrEqual(t, math.Abs(model.Isotensional.NondimensionalRelativeGibbsFreeEnergy(zero)), bound)
	assert.LessOrEqual(t, math.Abs(model.Isotensional.Legendre.NondimensionalRelativeHelmholtzFreeEnergy(zero)), bound)
}

// ------------------------------
// Modified canonical ensemble
// ------------------------------

// slope fits the log-log slope between two stiffness values.
func slope(r1, r2, l1, l2 float64) float64 {
	return math.Log(r2/r1) / math.Log(l2/l1)
}

func TestStrongPotential_ConvergesAsInverseStiffness(t *testing.T) {
	model := mustFJC(t, 8, 1, 1)
	strong := model.ModifiedCanonical.StrongPotential
	for _, gp := range []float64{0.2, 0.5, 0.8} {
		ref := model.Isometric.Legendre.NondimensionalForce(gp)
		r1 := math.Abs(strong.NondimensionalForce(gp, 1e3)-ref) / ref
		r2 := math.Abs(strong.NondimensionalForce(gp, 2e3)-ref) / ref
		assert.InDelta(t, -1, slope(r1, r2, 1e3, 2e3), 1e-2, "γp=%g", gp)

		// The tethered chain sits just short of the potential centre.
		g := strong.NondimensionalEndToEndLengthPerLink(gp, 1e3)
		assert.Less(t, g, gp)
		assert.InDelta(t, gp, g, 1e-2)
	}
}

func TestStrongPotential_ExpandsAboutConsistentIsometric(t *testing.T) {
	// The strong correction uses 1/c(η) as dη/dγ. That holds on the Legendre
	// isometric ensemble and fails by several percent on the exact one at N = 8.
	model := mustFJC(t, 8, 1, 1)
	settings := &fd.Settings{Formula: fd.Central, Step: dualityStep}
	compliance := model.Isotensional.NondimensionalCompliance
	for _, g := range []float64{0.2, 0.5, 0.8} {
		legendre := fd.Derivative(model.Isometric.Legendre.NondimensionalForce, g, settings)
		assert.InDelta(t, 1, legendre*compliance(model.Isometric.Legendre.NondimensionalForce(g)), 1e-3, "γ=%g", g)

		exact := fd.Derivative(model.Isometric.NondimensionalForce, g, settings)
		assert.Greater(t, math.Abs(exact*compliance(model.Isometric.NondimensionalForce(g))-1), 0.05, "γ=%g", g)
	}
}

func TestWeakPotential_ConvergesAsStiffness(t *testing.T) {
	model := mustFJC(t, 8, 1, 1)
	weak := model.ModifiedCanonical.WeakPotential
	for _, eta0 := range []float64{0.5, 1, 3} {
		residual := func(lambda float64) float64 {
			ref := model.Isotensional.NondimensionalEndToEndLengthPerLink(eta0)
			return math.Abs(weak.NondimensionalEndToEndLengthPerLink(eta0/lambda, lambda)-ref) / ref
		}
		assert.InDelta(t, 1, slope(residual(0.01), residual(0.02), 0.01, 0.02), 1e-2, "η₀=%g", eta0)
	}
	assert.InDelta(t, 0, weak.NondimensionalRelativeHelmholtzFreeEnergy(0, 0.1), 0)
}

func TestModifiedCanonical_Dimensional(t *testing.T) {
	model := mustFJC(t, 8, 0.9, 1)
	strong := model.ModifiedCanonical.StrongPotential
	weak := model.ModifiedCanonical.WeakPotential
	kT := physics.ThermalEnergy(temperature)
	kappa := 5e4
	lambda := kappa * 8 * 0.9 * 0.9 / kT
	rp := 0.4 * model.ContourLength

	assert.InDelta(t, kT/0.9*strong.NondimensionalForce(0.4, lambda), strong.Force(rp, kappa, temperature), 1e-8)
	assert.InDelta(t, model.ContourLength*strong.NondimensionalEndToEndLengthPerLink(0.4, lambda), strong.EndToEndLength(rp, kappa, temperature), 1e-10)
	assert.InDelta(t, kT*strong.NondimensionalRelativeHelmholtzFreeEnergy(0.4, lambda), strong.RelativeHelmholtzFreeEnergy(rp, kappa, temperature), 1e-7)

	small := 1.0
	lambda = small * 8 * 0.9 * 0.9 / kT
	assert.InDelta(t, kT/0.9*weak.NondimensionalForce(0.4, lambda), weak.Force(rp, small, temperature), 1e-8)
	assert.InDelta(t, model.ContourLength*weak.NondimensionalEndToEndLengthPerLink(0.4, lambda), weak.EndToEndLength(rp, small, temperature), 1e-6)
	assert.InDelta(t, kT*weak.NondimensionalRelativeHelmholtzFreeEnergy(0.4, lambda), weak.RelativeHelmholtzFreeEnergy(rp, small, temperature), 1e-7)
}
