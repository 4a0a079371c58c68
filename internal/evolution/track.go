package evolution

import (
	"math"
	"sort"

	"github.com/cosmicstudio/cs-stellar/internal/stellar"
)

// State is a snapshot of a star at one moment along its track.
// Mass, Luminosity and Radius are in solar units, Age in years,
// Temperature (effective surface) in kelvin.
type State struct {
	Age           float64
	Mass          float64
	Luminosity    float64
	Radius        float64
	Temperature   float64
	Phase         Phase
	SpectralClass stellar.SpectralClass
	Composition   stellar.Composition
}

// Track is the complete evolutionary history of one star, from the first
// pre-main-sequence snapshot to its terminal remnant. Snapshots are ordered
// by strictly increasing age. Tracks are immutable once computed.
type Track struct {
	ID                 string // deterministic UUID derived from the inputs
	InitialMass        float64
	InitialComposition stellar.Composition
	Regime             Regime
	Snapshots          []State
}

// FinalAge returns the age of the terminal snapshot in years.
func (t *Track) FinalAge() float64 {
	if len(t.Snapshots) == 0 {
		return 0
	}
	return t.Snapshots[len(t.Snapshots)-1].Age
}

// FinalState returns the terminal remnant snapshot.
func (t *Track) FinalState() State {
	if len(t.Snapshots) == 0 {
		return State{}
	}
	return t.Snapshots[len(t.Snapshots)-1]
}

// StateAtAge returns the state at an arbitrary age in years, linearly
// interpolating numeric fields between the two bracketing snapshots.
// Ages that hit a snapshot exactly return it unchanged. Phase and spectral
// class are taken from the later bracketing snapshot. Ages outside
// [0, FinalAge] are rejected with an OutOfRangeError, never clamped.
func (t *Track) StateAtAge(age float64) (State, error) {
	if len(t.Snapshots) == 0 {
		return State{}, &OutOfRangeError{Query: "age", Value: age}
	}

	// NaN compares false against everything, so it needs its own check or it
	// would fall through the range guard and past the end of the search.
	first := t.Snapshots[0].Age
	last := t.Snapshots[len(t.Snapshots)-1].Age
	if math.IsNaN(age) || age < first || age > last {
		return State{}, &OutOfRangeError{Query: "age", Value: age, Min: first, Max: last}
	}

	// First snapshot with Age >= age; the range check above guarantees a hit.
	i := sort.Search(len(t.Snapshots), func(i int) bool {
		return t.Snapshots[i].Age >= age
	})
	s := t.Snapshots[i]
	if s.Age == age {
		return s, nil
	}
	return interpolateStates(t.Snapshots[i-1], s, age), nil
}

// StateAtFraction maps f in [0, 1] to age f x FinalAge and returns the
// interpolated state there. Fractions outside [0, 1] are rejected.
func (t *Track) StateAtFraction(f float64) (State, error) {
	if math.IsNaN(f) || f < 0 || f > 1 {
		return State{}, &OutOfRangeError{Query: "fraction", Value: f, Min: 0, Max: 1}
	}
	return t.StateAtAge(f * t.FinalAge())
}

// interpolateStates blends two snapshots at an age strictly between them.
func interpolateStates(a, b State, age float64) State {
	f := (age - a.Age) / (b.Age - a.Age)
	return State{
		Age:           age,
		Mass:          lerp(a.Mass, b.Mass, f),
		Luminosity:    lerp(a.Luminosity, b.Luminosity, f),
		Radius:        lerp(a.Radius, b.Radius, f),
		Temperature:   lerp(a.Temperature, b.Temperature, f),
		Phase:         b.Phase,
		SpectralClass: b.SpectralClass,
		Composition: stellar.Composition{
			X: lerp(a.Composition.X, b.Composition.X, f),
			Y: lerp(a.Composition.Y, b.Composition.Y, f),
			Z: lerp(a.Composition.Z, b.Composition.Z, f),
		},
	}
}

func lerp(a, b, f float64) float64 {
	return a + (b-a)*f
}
