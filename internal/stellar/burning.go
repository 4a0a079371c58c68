package stellar

import "math"

// EnergySource identifies the dominant nuclear burning process in a
// stellar core.
type EnergySource string

const (
	PPChain     EnergySource = "pp-chain"
	CNOCycle    EnergySource = "cno-cycle"
	TripleAlpha EnergySource = "triple-alpha"
)

// Core temperature thresholds separating the burning regimes, in Kelvin.
// A core exactly at a threshold belongs to the hotter regime.
const (
	CNOThreshold         = 1.3e7
	TripleAlphaThreshold = 1e8
)

// DominantEnergySource returns the burning process that dominates at the
// given core temperature. Total function, no failure mode.
func DominantEnergySource(coreTemperature float64) EnergySource {
	switch {
	case coreTemperature >= TripleAlphaThreshold:
		return TripleAlpha
	case coreTemperature >= CNOThreshold:
		return CNOCycle
	default:
		return PPChain
	}
}

// Ignition floors for the rate laws, in units of the law's temperature scale.
const (
	ppIgnitionT6          = 4  // T6 below which the pp-chain rate is 0
	cnoIgnitionT6         = 13 // T6 below which the CNO rate is 0
	tripleAlphaIgnitionT8 = 1  // T8 below which the 3-alpha rate is 0
)

// PPChainRate returns the proton-proton chain energy generation rate in
// W/kg for density in kg/m^3, hydrogen fraction x, and temperature in K.
// Power-law approximation around T6 ~ 15; zero below the ignition floor.
func PPChainRate(density, x, temperature float64) float64 {
	t6 := temperature / 1e6
	if t6 < ppIgnitionT6 {
		return 0
	}
	return 1.07e-12 * density * x * x * math.Pow(t6, 4)
}

// CNORate returns the CNO cycle energy generation rate in W/kg. xCNO is the
// combined carbon-nitrogen-oxygen mass fraction (commonly ~0.7 Z).
func CNORate(density, x, xCNO, temperature float64) float64 {
	t6 := temperature / 1e6
	if t6 < cnoIgnitionT6 {
		return 0
	}
	return 8.24e-31 * density * x * xCNO * math.Pow(t6, 16)
}

// TripleAlphaRate returns the helium triple-alpha energy generation rate in
// W/kg for density in kg/m^3, helium fraction y, and temperature in K.
func TripleAlphaRate(density, y, temperature float64) float64 {
	t8 := temperature / 1e8
	if t8 < tripleAlphaIgnitionT8 {
		return 0
	}
	return 5.09e-17 * density * density * y * y * y * math.Pow(t8, 40)
}
