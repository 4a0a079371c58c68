package evolution

import (
	"math"
	"testing"

	"github.com/cosmicstudio/cs-stellar/internal/stellar"
)

func TestDeriveMetricsSun(t *testing.T) {
	sun := State{Mass: 1, Radius: 1, Luminosity: 1, Temperature: 5772, Phase: PhaseMainSequence}
	m := DeriveMetrics(sun)

	checkWindow(t, "surface gravity", m.SurfaceGravity, 272, 276)
	checkWindow(t, "escape velocity", m.EscapeVelocity, 6.15e5, 6.20e5)
	checkWindow(t, "mean density", m.MeanDensity, 1400, 1412)
	checkWindow(t, "Schwarzschild radius", m.SchwarzschildRadius, 2952, 2955)
	checkWindow(t, "surface redshift", m.GravitationalRedshift, 2.0e-6, 2.3e-6)
}

func TestDeriveMetricsZeroState(t *testing.T) {
	if m := DeriveMetrics(State{}); m != (Metrics{}) {
		t.Errorf("zero state produced metrics %+v", m)
	}
}

func TestSchwarzschildRadius(t *testing.T) {
	tests := []struct {
		name     string
		mass     float64
		min, max float64
	}{
		{name: "Sun", mass: 1, min: 2952, max: 2955},
		{name: "Typical neutron star", mass: 2.4, min: 7085, max: 7090},
		{name: "Stellar black hole", mass: 9, min: 26578, max: 26582},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SchwarzschildRadius(tt.mass)
			if got < tt.min || got > tt.max {
				t.Errorf("SchwarzschildRadius(%g) = %g, want within [%g, %g]",
					tt.mass, got, tt.min, tt.max)
			}
		})
	}
}

func TestBlackHoleMetrics(t *testing.T) {
	final := mustCompute(t, 30.0).FinalState()
	m := DeriveMetrics(final)

	// Escaping an event horizon takes exactly the speed of light.
	c := stellar.SpeedOfLight
	checkWindow(t, "horizon escape velocity", m.EscapeVelocity, c-1, c+1)

	if !math.IsInf(m.GravitationalRedshift, 1) {
		t.Errorf("horizon redshift = %g, want +Inf", m.GravitationalRedshift)
	}
}

func TestNeutronStarRedshift(t *testing.T) {
	final := mustCompute(t, 10.0).FinalState()
	m := DeriveMetrics(final)

	// 3 Msun inside 10 km sits deep in the relativistic zone but outside
	// the horizon.
	if math.IsInf(m.GravitationalRedshift, 1) {
		t.Fatal("neutron-star redshift diverged")
	}
	checkWindow(t, "NS redshift", m.GravitationalRedshift, 0.5, 5)
}

func TestHRPoints(t *testing.T) {
	solar := mustCompute(t, 1.0)
	points := HRPoints(solar)
	if len(points) != len(solar.Snapshots) {
		t.Errorf("solar track: %d points from %d snapshots", len(points), len(solar.Snapshots))
	}
	checkWindow(t, "first log T", points[0].LogTemperature, 3.60, 3.61)
	if points[0].Phase != PhasePreMainSequence {
		t.Errorf("first point phase = %s", points[0].Phase)
	}

	// The black-hole terminal snapshot has no photosphere to plot.
	heavy := mustCompute(t, 40.0)
	points = HRPoints(heavy)
	if len(points) != len(heavy.Snapshots)-1 {
		t.Errorf("heavy track: %d points from %d snapshots", len(points), len(heavy.Snapshots))
	}
}

func TestFormatAge(t *testing.T) {
	tests := []struct {
		years float64
		want  string
	}{
		{0, "0.00 yr"},
		{150, "150 yr"},
		{999, "999 yr"},
		{1234, "1.23 kyr"},
		{3.1e7, "31.0 Myr"},
		{4.57e9, "4.57 Gyr"},
		{2.0286e11, "203 Gyr"},
	}

	for _, tt := range tests {
		if got := FormatAge(tt.years); got != tt.want {
			t.Errorf("FormatAge(%g) = %q, want %q", tt.years, got, tt.want)
		}
	}
}

func TestFormatTemperature(t *testing.T) {
	tests := []struct {
		kelvin float64
		want   string
	}{
		{5772, "5772 K"},
		{10264.2, "10264 K"},
		{250000, "2.5e+05 K"},
		{1e6, "1e+06 K"},
		{0, "0 K"},
	}

	for _, tt := range tests {
		if got := FormatTemperature(tt.kelvin); got != tt.want {
			t.Errorf("FormatTemperature(%g) = %q, want %q", tt.kelvin, got, tt.want)
		}
	}
}
