package stellar

import "math"

// CoreTemperature estimates the central temperature in K for a mass in
// solar masses and mean molecular weight μ, from the virial relation
// T_c ~ μ m_H G M / (k R) with the main-sequence R = M^0.8 radius.
// Yields ~1.4e7 K for the Sun at μ = 0.6.
func CoreTemperature(mass, mu float64) (float64, error) {
	if mass <= 0 {
		return 0, &DomainError{Param: "mass", Value: mass, Reason: "must be positive"}
	}
	if mu <= 0 {
		return 0, &DomainError{Param: "mu", Value: mu, Reason: "must be positive"}
	}
	radius := math.Pow(mass, massRadiusExponent) * SolarRadius
	return mu * HydrogenMass * G * mass * SolarMass / (Boltzmann * radius), nil
}

// GasPressure returns the ideal-gas pressure in Pa for density in kg/m^3,
// temperature in K, and mean molecular weight μ.
func GasPressure(density, temperature, mu float64) float64 {
	if mu <= 0 {
		return 0
	}
	return density * Boltzmann * temperature / (mu * HydrogenMass)
}

// RadiationPressure returns the photon gas pressure aT^4/3 in Pa.
func RadiationPressure(temperature float64) float64 {
	t2 := temperature * temperature
	return RadiationConstant * t2 * t2 / 3
}

// KramersOpacity returns the bound-free Kramers opacity for the given
// composition: κ = κ0 Z (1+X) ρ T^-3.5. Conventional CGS units: density in
// g/cm^3, result in cm^2/g.
func KramersOpacity(density, temperature float64, c Composition) float64 {
	if temperature <= 0 {
		return 0
	}
	return KramersCoefficient * c.Z * (1 + c.X) * density * math.Pow(temperature, -3.5)
}
