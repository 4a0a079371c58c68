// Package stellar provides the closed-form stellar physics used by the
// evolution calculator: physical constants, scaling relations, spectral
// classification, nuclear burning thresholds, and blackbody color.
package stellar

// Physical constants in SI units (CODATA 2018).
const (
	// G is the Newtonian gravitational constant, m^3 kg^-1 s^-2.
	G = 6.67430e-11
	// SpeedOfLight in vacuum, m/s.
	SpeedOfLight = 2.99792458e8
	// StefanBoltzmann constant, W m^-2 K^-4.
	StefanBoltzmann = 5.670374419e-8
	// Boltzmann constant, J/K.
	Boltzmann = 1.380649e-23
	// HydrogenMass is the mass of a hydrogen atom, kg.
	HydrogenMass = 1.6735575e-27
	// RadiationConstant a = 4σ/c, J m^-3 K^-4.
	RadiationConstant = 4 * StefanBoltzmann / SpeedOfLight
)

// Solar reference values (IAU 2015 nominal).
const (
	// SolarMass in kg.
	SolarMass = 1.98847e30
	// SolarRadius in m.
	SolarRadius = 6.96340e8
	// SolarLuminosity in W.
	SolarLuminosity = 3.828e26
	// SolarTemperature is the solar effective temperature in K.
	SolarTemperature = 5772.0
)

// Year is the Julian year in seconds.
const Year = 3.15576e7

// KramersCoefficient is the bound-free coefficient for Kramers' opacity law
// in its conventional CGS form (density in g/cm^3, opacity in cm^2/g).
const KramersCoefficient = 4.34e25
