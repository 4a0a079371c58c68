package stellar

import "math"

// Exponents and reference values for the main-sequence scaling relations.
// These are the standard textbook power laws, not fits to survey data.
const (
	massLuminosityExponent = 3.5
	massRadiusExponent     = 0.8
	lifetimeExponent       = -2.5

	// SunMainSequenceLifetime is the main-sequence lifetime of a 1 Msun
	// star in years.
	SunMainSequenceLifetime = 1e10
)

// LuminosityFromMass returns the zero-age main-sequence luminosity in solar
// units for a mass in solar masses, using L = M^3.5.
func LuminosityFromMass(mass float64) (float64, error) {
	if mass <= 0 {
		return 0, &DomainError{Param: "mass", Value: mass, Reason: "must be positive"}
	}
	return math.Pow(mass, massLuminosityExponent), nil
}

// RadiusFromMass returns the zero-age main-sequence radius in solar units
// for a mass in solar masses, using R = M^0.8.
func RadiusFromMass(mass float64) (float64, error) {
	if mass <= 0 {
		return 0, &DomainError{Param: "mass", Value: mass, Reason: "must be positive"}
	}
	return math.Pow(mass, massRadiusExponent), nil
}

// MainSequenceLifetime returns the core hydrogen burning lifetime in years
// for a mass in solar masses: t = 10 Gyr * M^-2.5.
// Monotonically decreasing in mass.
func MainSequenceLifetime(mass float64) (float64, error) {
	if mass <= 0 {
		return 0, &DomainError{Param: "mass", Value: mass, Reason: "must be positive"}
	}
	return SunMainSequenceLifetime * math.Pow(mass, lifetimeExponent), nil
}

// EffectiveTemperature inverts the Stefan-Boltzmann law for luminosity and
// radius in solar units, returning Kelvin: T = Tsun * sqrt(sqrt(L)/R).
func EffectiveTemperature(luminosity, radius float64) (float64, error) {
	if luminosity <= 0 {
		return 0, &DomainError{Param: "luminosity", Value: luminosity, Reason: "must be positive"}
	}
	if radius <= 0 {
		return 0, &DomainError{Param: "radius", Value: radius, Reason: "must be positive"}
	}
	return SolarTemperature * math.Sqrt(math.Sqrt(luminosity)/radius), nil
}

// LuminosityFromRadiusTemperature is the forward Stefan-Boltzmann relation
// in solar units: L = R^2 * (T/Tsun)^4.
func LuminosityFromRadiusTemperature(radius, temperature float64) float64 {
	ratio := temperature / SolarTemperature
	return radius * radius * ratio * ratio * ratio * ratio
}
