package evolution

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/cosmicstudio/cs-stellar/internal/stellar"
)

// testMasses spans every regime including both domain endpoints.
var testMasses = []float64{0.1, 0.3, 0.49999, 0.5, 1.0, 5.0, 7.9999, 8.0, 20.0, 24.9999, 25.0, 60.0, 100.0}

func mustCompute(t *testing.T, mass float64) *Track {
	t.Helper()
	track, err := Compute(mass)
	if err != nil {
		t.Fatalf("Compute(%g) failed: %v", mass, err)
	}
	return track
}

func TestComputeRejectsBadMass(t *testing.T) {
	tests := []struct {
		name string
		mass float64
	}{
		{name: "Zero", mass: 0},
		{name: "Negative", mass: -5},
		{name: "Below domain", mass: 0.05},
		{name: "Above domain", mass: 100.001},
		{name: "NaN", mass: math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track, err := Compute(tt.mass)
			if err == nil {
				t.Fatalf("Compute(%g) succeeded, want DomainError", tt.mass)
			}
			var derr *DomainError
			if !errors.As(err, &derr) {
				t.Fatalf("Compute(%g) error %T, want *DomainError", tt.mass, err)
			}
			if track != nil {
				t.Error("rejected input still produced a track")
			}
		})
	}
}

func TestComputeRejectsBadComposition(t *testing.T) {
	tests := []struct {
		name string
		comp stellar.Composition
	}{
		{name: "Sum below one", comp: stellar.Composition{X: 0.5, Y: 0.2, Z: 0.2}},
		{name: "Sum above one", comp: stellar.Composition{X: 0.7, Y: 0.31, Z: 0.01}},
		{name: "Negative hydrogen", comp: stellar.Composition{X: -0.1, Y: 1.05, Z: 0.05}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeWithComposition(1.0, tt.comp)
			var derr *DomainError
			if !errors.As(err, &derr) {
				t.Fatalf("ComputeWithComposition error %v, want *DomainError", err)
			}
		})
	}
}

func TestComputeDeterministic(t *testing.T) {
	for _, mass := range testMasses {
		a := mustCompute(t, mass)
		b := mustCompute(t, mass)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("repeat Compute(%g) differs", mass)
		}
	}
}

func TestTrackAgesStrictlyIncrease(t *testing.T) {
	for _, mass := range testMasses {
		track := mustCompute(t, mass)
		for i := 1; i < len(track.Snapshots); i++ {
			prev, curr := track.Snapshots[i-1].Age, track.Snapshots[i].Age
			if curr <= prev {
				t.Fatalf("mass %g: age[%d]=%g not above age[%d]=%g",
					mass, i, curr, i-1, prev)
			}
		}
	}
}

func TestTrackFirstAndLastPhase(t *testing.T) {
	for _, mass := range testMasses {
		track := mustCompute(t, mass)
		if got := track.Snapshots[0].Phase; got != PhasePreMainSequence {
			t.Errorf("mass %g: first phase = %s", mass, got)
		}
		want := track.Regime.TerminalPhase()
		if got := track.FinalState().Phase; got != want {
			t.Errorf("mass %g: final phase = %s, want %s", mass, got, want)
		}
	}
}

func TestTrackPhaseOrder(t *testing.T) {
	for _, mass := range testMasses {
		track := mustCompute(t, mass)

		var seen []Phase
		for _, s := range track.Snapshots {
			if len(seen) == 0 || seen[len(seen)-1] != s.Phase {
				seen = append(seen, s.Phase)
			}
		}

		want := track.Regime.Phases()
		if !reflect.DeepEqual(seen, want) {
			t.Errorf("mass %g: phases %v, want %v", mass, seen, want)
		}
	}
}

func TestSolarTrack(t *testing.T) {
	track := mustCompute(t, 1.0)

	if track.Regime != RegimeIntermediate {
		t.Fatalf("regime = %s", track.Regime)
	}
	if len(track.Snapshots) != 201 {
		t.Fatalf("snapshot count = %d, want 201", len(track.Snapshots))
	}

	// ZAMS anchor follows the pre-main-sequence leg.
	zams := track.Snapshots[40]
	if zams.Phase != PhaseMainSequence {
		t.Fatalf("snapshot 40 phase = %s, want %s", zams.Phase, PhaseMainSequence)
	}
	checkWindow(t, "ZAMS luminosity", zams.Luminosity, 0.95, 1.05)
	checkWindow(t, "ZAMS radius", zams.Radius, 0.95, 1.05)
	checkWindow(t, "ZAMS temperature", zams.Temperature, 5771, 5773)
	if zams.SpectralClass != stellar.ClassG {
		t.Errorf("ZAMS class = %s, want G", zams.SpectralClass)
	}

	// Main-sequence span close to 10 Gyr.
	var msSpan float64
	for _, pi := range PhaseIntervals(track) {
		if pi.Phase == PhaseMainSequence {
			msSpan = pi.Span()
		}
	}
	checkWindow(t, "MS span", msSpan, 0.9e10, 1.1e10)

	// Terminal carbon-oxygen white dwarf.
	final := track.FinalState()
	if final.Phase != PhaseWhiteDwarf {
		t.Fatalf("final phase = %s", final.Phase)
	}
	checkWindow(t, "final age", final.Age, 1.09e10, 1.11e10)
	checkWindow(t, "WD mass", final.Mass, 0.599, 0.601)
	checkWindow(t, "WD luminosity", final.Luminosity, 0.0009, 0.0011)
	checkWindow(t, "WD radius", final.Radius, 0.0099, 0.0101)
	checkWindow(t, "WD temperature", final.Temperature, 10200, 10330)
	if final.SpectralClass != stellar.ClassWhiteDwarf {
		t.Errorf("WD class = %s, want D", final.SpectralClass)
	}
}

func TestLowMassTrack(t *testing.T) {
	track := mustCompute(t, 0.3)

	if track.Regime != RegimeLow {
		t.Fatalf("regime = %s", track.Regime)
	}
	if len(track.Snapshots) != 142 {
		t.Fatalf("snapshot count = %d, want 142", len(track.Snapshots))
	}

	final := track.FinalState()
	if final.Phase != PhaseWhiteDwarf {
		t.Fatalf("final phase = %s", final.Phase)
	}
	// Helium white dwarf: hydrogen exhausted, metals untouched.
	if final.Composition.X != 0 {
		t.Errorf("helium WD hydrogen = %g", final.Composition.X)
	}
	checkWindow(t, "helium WD metals", final.Composition.Z, 0.0141, 0.0143)
	checkWindow(t, "final age", final.Age, 2.2e11, 2.26e11)
}

func TestNeutronStarTerminal(t *testing.T) {
	track := mustCompute(t, 8.0)

	final := track.FinalState()
	if final.Phase != PhaseNeutronStar {
		t.Fatalf("final phase = %s", final.Phase)
	}
	if final.SpectralClass != stellar.ClassNeutronStar {
		t.Errorf("class = %s, want NS", final.SpectralClass)
	}
	checkWindow(t, "NS mass", final.Mass, 2.399, 2.401)
	checkWindow(t, "NS radius", final.Radius*stellar.SolarRadius, 9999, 10001)
	checkWindow(t, "NS luminosity", final.Luminosity*stellar.SolarLuminosity, 0.99e20, 1.01e20)
	checkWindow(t, "NS temperature", final.Temperature, 0.99e6, 1.01e6)
	if final.Composition != (stellar.Composition{Z: 1}) {
		t.Errorf("NS composition = %+v", final.Composition)
	}
}

func TestBlackHoleTerminal(t *testing.T) {
	track := mustCompute(t, 25.0)

	final := track.FinalState()
	if final.Phase != PhaseBlackHole {
		t.Fatalf("final phase = %s", final.Phase)
	}
	if final.SpectralClass != stellar.ClassBlackHole {
		t.Errorf("class = %s, want BH", final.SpectralClass)
	}
	if final.Luminosity != 0 || final.Temperature != 0 {
		t.Errorf("black hole has L=%g T=%g, want zero", final.Luminosity, final.Temperature)
	}
	checkWindow(t, "BH mass", final.Mass, 7.499, 7.501)

	// Event horizon for the 7.5 Msun remnant.
	checkWindow(t, "BH radius", final.Radius*stellar.SolarRadius, 22100, 22200)
}

func TestSupernovaFlash(t *testing.T) {
	track := mustCompute(t, 20.0)

	var sn *State
	for i := range track.Snapshots {
		if track.Snapshots[i].Phase == PhaseSupernova {
			sn = &track.Snapshots[i]
			break
		}
	}
	if sn == nil {
		t.Fatal("no supernova snapshot")
	}

	lzams := math.Pow(20, 3.5)
	rzams := math.Pow(20, 0.8)
	checkWindow(t, "SN luminosity", sn.Luminosity, 0.999e6*lzams, 1.001e6*lzams)
	checkWindow(t, "SN radius", sn.Radius, 999*rzams, 1001*rzams)
	checkWindow(t, "SN metals", sn.Composition.Z, 0.299, 0.301)
	if sn.Composition.X != 0 {
		t.Errorf("SN hydrogen = %g, want 0", sn.Composition.X)
	}
}

func TestWhiteDwarfTemperatureBand(t *testing.T) {
	// Terminal WD temperature scales with ZAMS luminosity; across the
	// intermediate regime it stays within an order of magnitude of 1e4 K.
	for _, mass := range []float64{0.5, 1.0, 2.0, 5.0, 7.9} {
		final := mustCompute(t, mass).FinalState()
		checkWindow(t, "WD temperature", final.Temperature, 5e3, 1.2e5)
	}
}

func TestMassConstantUntilTerminal(t *testing.T) {
	for _, mass := range []float64{0.3, 1.0, 8.0, 25.0} {
		track := mustCompute(t, mass)
		for i, s := range track.Snapshots[:len(track.Snapshots)-1] {
			if s.Mass != mass {
				t.Fatalf("mass %g: snapshot %d mass = %g", mass, i, s.Mass)
			}
		}

		final := track.FinalState()
		want := whiteDwarfMassFraction
		if track.Regime == RegimeHigh || track.Regime == RegimeVeryHigh {
			want = remnantMassFraction
		}
		checkWindow(t, "remnant mass fraction", final.Mass/mass, want-1e-9, want+1e-9)
	}
}

func TestMainSequenceCompositionDrift(t *testing.T) {
	track := mustCompute(t, 1.0)

	var prev *State
	for i := range track.Snapshots {
		s := &track.Snapshots[i]
		if s.Phase != PhaseMainSequence {
			continue
		}
		if s.Composition.Z != stellar.SolarZ {
			t.Fatalf("MS metals drifted to %g", s.Composition.Z)
		}
		if prev != nil {
			if s.Composition.X > prev.Composition.X {
				t.Fatalf("hydrogen increased: %g -> %g", prev.Composition.X, s.Composition.X)
			}
			if s.Composition.Y < prev.Composition.Y {
				t.Fatalf("helium decreased: %g -> %g", prev.Composition.Y, s.Composition.Y)
			}
		}
		prev = s
	}
	if prev == nil {
		t.Fatal("no main-sequence snapshots")
	}

	// Half the initial hydrogen is gone by turnoff.
	checkWindow(t, "turnoff hydrogen", prev.Composition.X, 0.369, 0.3691)
}

func TestCompositionsStayPhysical(t *testing.T) {
	for _, mass := range testMasses {
		track := mustCompute(t, mass)
		for i, s := range track.Snapshots {
			if err := s.Composition.Validate(); err != nil {
				t.Fatalf("mass %g snapshot %d (%s): %v", mass, i, s.Phase, err)
			}
		}
	}
}

func TestCompositionOverride(t *testing.T) {
	metalPoor := stellar.Composition{X: 0.75, Y: 0.2485, Z: 0.0015}
	track, err := ComputeWithComposition(1.0, metalPoor)
	if err != nil {
		t.Fatalf("ComputeWithComposition failed: %v", err)
	}

	if track.InitialComposition != metalPoor {
		t.Errorf("initial composition = %+v", track.InitialComposition)
	}
	if got := track.Snapshots[0].Composition; got != metalPoor {
		t.Errorf("first snapshot composition = %+v", got)
	}

	// ZAMS observables depend only on mass, not composition.
	zams := track.Snapshots[40]
	checkWindow(t, "ZAMS luminosity", zams.Luminosity, 0.9999, 1.0001)

	// The AGB dredge-up raises the terminal metal fraction by 0.2.
	final := track.FinalState()
	checkWindow(t, "WD metals", final.Composition.Z, 0.2014, 0.2016)
}

func TestTrackIDStable(t *testing.T) {
	a := mustCompute(t, 1.0)
	b := mustCompute(t, 1.0)
	if a.ID != b.ID {
		t.Errorf("same inputs produced IDs %s and %s", a.ID, b.ID)
	}
	if _, err := uuid.Parse(a.ID); err != nil {
		t.Errorf("track ID %q is not a UUID: %v", a.ID, err)
	}

	c := mustCompute(t, 1.0000001)
	if a.ID == c.ID {
		t.Error("different masses share a track ID")
	}

	d, err := ComputeWithComposition(1.0, stellar.Composition{X: 0.75, Y: 0.2485, Z: 0.0015})
	if err != nil {
		t.Fatalf("ComputeWithComposition failed: %v", err)
	}
	if a.ID == d.ID {
		t.Error("different compositions share a track ID")
	}
}

func TestLiveSnapshotsArePositive(t *testing.T) {
	for _, mass := range testMasses {
		track := mustCompute(t, mass)
		for i, s := range track.Snapshots {
			if s.Phase.Remnant() && s.Phase != PhaseWhiteDwarf {
				continue
			}
			if s.Luminosity <= 0 || s.Radius <= 0 || s.Temperature <= 0 {
				t.Fatalf("mass %g snapshot %d (%s): L=%g R=%g T=%g",
					mass, i, s.Phase, s.Luminosity, s.Radius, s.Temperature)
			}
		}
	}
}

// checkWindow fails unless got lies in [min, max].
func checkWindow(t *testing.T, name string, got, min, max float64) {
	t.Helper()
	if got < min || got > max {
		t.Errorf("%s = %g, want within [%g, %g]", name, got, min, max)
	}
}
