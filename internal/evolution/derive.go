package evolution

import (
	"fmt"
	"math"

	"github.com/cosmicstudio/cs-stellar/internal/stellar"
)

// Metrics are display-oriented quantities derived from a single snapshot,
// all in SI units.
type Metrics struct {
	SurfaceGravity        float64 // m/s^2
	EscapeVelocity        float64 // m/s
	MeanDensity           float64 // kg/m^3
	SchwarzschildRadius   float64 // m
	GravitationalRedshift float64 // dimensionless; +Inf at a black hole
}

// DeriveMetrics computes the derived quantities for one snapshot.
func DeriveMetrics(s State) Metrics {
	massKg := s.Mass * stellar.SolarMass
	radiusM := s.Radius * stellar.SolarRadius
	if massKg <= 0 || radiusM <= 0 {
		return Metrics{}
	}

	rs := SchwarzschildRadius(s.Mass)
	return Metrics{
		SurfaceGravity:        stellar.G * massKg / (radiusM * radiusM),
		EscapeVelocity:        math.Sqrt(2 * stellar.G * massKg / radiusM),
		MeanDensity:           massKg / (4.0 / 3.0 * math.Pi * radiusM * radiusM * radiusM),
		SchwarzschildRadius:   rs,
		GravitationalRedshift: surfaceRedshift(rs, radiusM),
	}
}

// SchwarzschildRadius returns 2GM/c^2 in meters for a mass in solar masses.
func SchwarzschildRadius(massSolar float64) float64 {
	return 2 * stellar.G * massSolar * stellar.SolarMass /
		(stellar.SpeedOfLight * stellar.SpeedOfLight)
}

// surfaceRedshift is the fractional wavelength shift of light escaping from
// radius r: 1/sqrt(1 - rs/r) - 1. Radii at the horizon within float rounding
// diverge to +Inf.
func surfaceRedshift(rs, r float64) float64 {
	if r <= rs*(1+1e-12) {
		return math.Inf(1)
	}
	return 1/math.Sqrt(1-rs/r) - 1
}

// HRPoint is one position in the Hertzsprung-Russell plane.
type HRPoint struct {
	LogTemperature float64 // log10 kelvin
	LogLuminosity  float64 // log10 solar luminosities
	Phase          Phase
}

// HRPoints projects the track into the H-R plane for log-log plotting.
// Snapshots without a photosphere (zero luminosity or temperature, i.e. a
// black hole) are skipped.
func HRPoints(t *Track) []HRPoint {
	points := make([]HRPoint, 0, len(t.Snapshots))
	for _, s := range t.Snapshots {
		if s.Luminosity <= 0 || s.Temperature <= 0 {
			continue
		}
		points = append(points, HRPoint{
			LogTemperature: math.Log10(s.Temperature),
			LogLuminosity:  math.Log10(s.Luminosity),
			Phase:          s.Phase,
		})
	}
	return points
}

// FormatAge renders an age in years with a readable unit.
func FormatAge(years float64) string {
	switch {
	case years >= 1e9:
		return formatWithUnit(years/1e9, "Gyr")
	case years >= 1e6:
		return formatWithUnit(years/1e6, "Myr")
	case years >= 1e3:
		return formatWithUnit(years/1e3, "kyr")
	default:
		return formatWithUnit(years, "yr")
	}
}

// FormatTemperature renders kelvin, switching to compact notation once the
// value leaves the photospheric range.
func FormatTemperature(kelvin float64) string {
	if kelvin >= 1e5 {
		return fmt.Sprintf("%.3g K", kelvin)
	}
	return fmt.Sprintf("%.0f K", kelvin)
}

// formatWithUnit prints a scaled value with precision matched to magnitude.
func formatWithUnit(v float64, unit string) string {
	switch {
	case v < 10:
		return fmt.Sprintf("%.2f %s", v, unit)
	case v < 100:
		return fmt.Sprintf("%.1f %s", v, unit)
	default:
		return fmt.Sprintf("%.0f %s", v, unit)
	}
}
