package evolution

import (
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"

	"github.com/cosmicstudio/cs-stellar/internal/stellar"
)

// Initial-mass domain in solar masses. Masses outside are rejected.
const (
	MinInitialMass = 0.1
	MaxInitialMass = 100.0
)

// Sample counts per track leg.
const (
	pmsSamples    = 40  // pre-main-sequence, linear in time
	msSamples     = 100 // main sequence, log-spaced burn fractions
	postMSSamples = 60  // post-main-sequence, linear progress
)

// Pre-main-sequence contraction, Kelvin-Helmholtz scaling.
const (
	pmsLifetimeYears    = 3.1e7 // at one solar mass
	pmsLifetimeExponent = -2.3
	pmsContractionSpan  = 20.0   // starting radius in units of the ZAMS radius
	hayashiTemperature  = 4000.0 // kelvin, surface floor during contraction
)

// Main-sequence drift as core hydrogen depletes.
const (
	msLuminosityGain = 0.5 // fractional brightening by turnoff
	msRadiusGain     = 0.1 // fractional swelling by turnoff
	msBurnedFraction = 0.5 // share of initial hydrogen consumed by turnoff
)

// Post-main-sequence duration as a fraction of the main-sequence lifetime.
const (
	giantDuration      = 0.1  // low and intermediate regimes
	supergiantDuration = 0.01 // high and very-high regimes
)

// Late-stage composition shifts.
const (
	agbMetalYield        = 0.2 // helium dredged into metals across the AGB
	supernovaMetallicity = 0.3 // metal fraction at core collapse
)

// Supernova flash scaling, relative to ZAMS values.
const (
	supernovaLuminosity = 1e6
	supernovaRadius     = 1000.0
)

// Terminal remnant scaling.
const (
	whiteDwarfMassFraction = 0.6
	whiteDwarfLuminosity   = 0.001 // of ZAMS luminosity
	whiteDwarfRadius       = 0.01  // solar radii
	remnantMassFraction    = 0.3   // neutron star / black hole
)

// Neutron-star calibration values.
const (
	neutronStarRadiusMeters = 1.0e4
	neutronStarLuminosityW  = 1.0e20
	neutronStarTemperature  = 1.0e6
)

// trackNamespace seeds the deterministic UUIDv5 track identifiers.
var trackNamespace = uuid.MustParse("5d8f7b0a-3c41-4a86-9d22-6f6b9f0c2e71")

// Compute builds the full evolutionary track for a star of the given initial
// mass in solar masses, assuming solar composition.
func Compute(mass float64) (*Track, error) {
	return ComputeWithComposition(mass, stellar.SolarComposition())
}

// ComputeWithComposition builds the track with an explicit initial
// composition. The mass must lie in [MinInitialMass, MaxInitialMass] and the
// composition must be physical; anything else is rejected with a DomainError,
// never clamped. The computation is pure and allocation-fresh: identical
// inputs yield bit-identical tracks, and concurrent callers need no locking.
func ComputeWithComposition(mass float64, comp stellar.Composition) (*Track, error) {
	if math.IsNaN(mass) || mass < MinInitialMass || mass > MaxInitialMass {
		return nil, &DomainError{
			Param:  "mass",
			Value:  mass,
			Reason: fmt.Sprintf("initial mass must lie in [%g, %g] solar masses", MinInitialMass, MaxInitialMass),
		}
	}
	if err := comp.Validate(); err != nil {
		return nil, err
	}

	zams := zamsPoint(mass)
	regime := ClassifyRegime(mass)

	states := make([]State, 0, trackCapacity(regime))
	states = appendPreMainSequence(states, mass, comp, zams)
	states = appendMainSequence(states, mass, comp, zams)
	states = appendPostMainSequence(states, regime, mass, comp, zams)

	return &Track{
		ID:                 trackID(mass, comp),
		InitialMass:        mass,
		InitialComposition: comp,
		Regime:             regime,
		Snapshots:          states,
	}, nil
}

// zamsValues holds the zero-age main-sequence anchors every leg scales from.
type zamsValues struct {
	lum    float64 // solar luminosities
	radius float64 // solar radii
	temp   float64 // kelvin
}

// zamsPoint evaluates the scaling relations at the given mass. The mass is
// validated before this point, so the domain errors cannot fire.
func zamsPoint(mass float64) zamsValues {
	lum, _ := stellar.LuminosityFromMass(mass)
	radius, _ := stellar.RadiusFromMass(mass)
	temp, _ := stellar.EffectiveTemperature(lum, radius)
	return zamsValues{lum: lum, radius: radius, temp: temp}
}

func pmsLifetime(mass float64) float64 {
	return pmsLifetimeYears * math.Pow(mass, pmsLifetimeExponent)
}

func msLifetime(mass float64) float64 {
	t, _ := stellar.MainSequenceLifetime(mass)
	return t
}

func effectiveTemp(lum, radius float64) float64 {
	t, _ := stellar.EffectiveTemperature(lum, radius)
	return t
}

func trackCapacity(regime Regime) int {
	n := pmsSamples + msSamples + 1 // legs plus the ZAMS anchor
	if regime == RegimeLow {
		return n + 1
	}
	return n + postMSSamples
}

// appendPreMainSequence models Hayashi-style contraction onto the main
// sequence: the protostar starts at twenty ZAMS radii near the convective
// temperature floor and shrinks to the ZAMS point, with luminosity following
// the Stefan-Boltzmann law throughout.
func appendPreMainSequence(states []State, mass float64, comp stellar.Composition, zams zamsValues) []State {
	duration := pmsLifetime(mass)
	for i := 0; i < pmsSamples; i++ {
		f := float64(i) / pmsSamples
		radius := zams.radius * math.Pow(pmsContractionSpan, 1-f)
		f2 := f * f
		temp := hayashiTemperature + (zams.temp-hayashiTemperature)*f2*f2
		lum := stellar.LuminosityFromRadiusTemperature(radius, temp)
		states = append(states, State{
			Age:           f * duration,
			Mass:          mass,
			Luminosity:    lum,
			Radius:        radius,
			Temperature:   temp,
			Phase:         PhasePreMainSequence,
			SpectralClass: stellar.ClassFromTemperature(temp),
			Composition:   comp,
		})
	}
	return states
}

// appendMainSequence anchors the track at the zero-age main sequence, then
// samples the slow hydrogen-burning drift on a log grid so the early main
// sequence is resolved without spending samples on the long quiet middle.
func appendMainSequence(states []State, mass float64, comp stellar.Composition, zams zamsValues) []State {
	start := pmsLifetime(mass)
	lifetime := msLifetime(mass)

	states = append(states, State{
		Age:           start,
		Mass:          mass,
		Luminosity:    zams.lum,
		Radius:        zams.radius,
		Temperature:   zams.temp,
		Phase:         PhaseMainSequence,
		SpectralClass: stellar.ClassFromTemperature(zams.temp),
		Composition:   comp,
	})

	for j := 0; j < msSamples; j++ {
		// Burn fraction u covers [1e-3, 1] in equal log steps.
		u := math.Pow(10, -3+3*float64(j)/float64(msSamples-1))
		lum := zams.lum * (1 + msLuminosityGain*u)
		radius := zams.radius * (1 + msRadiusGain*u)
		temp := effectiveTemp(lum, radius)
		states = append(states, State{
			Age:           start + u*lifetime,
			Mass:          mass,
			Luminosity:    lum,
			Radius:        radius,
			Temperature:   temp,
			Phase:         PhaseMainSequence,
			SpectralClass: stellar.ClassFromTemperature(temp),
			Composition: stellar.Composition{
				X: comp.X * (1 - msBurnedFraction*u),
				Y: comp.Y + msBurnedFraction*comp.X*u,
				Z: comp.Z,
			},
		})
	}
	return states
}

func appendPostMainSequence(states []State, regime Regime, mass float64, comp stellar.Composition, zams zamsValues) []State {
	switch regime {
	case RegimeLow:
		return append(states, lowMassRemnant(mass, comp, zams))
	case RegimeIntermediate:
		return appendGiantBranch(states, mass, comp, zams)
	default:
		return appendSupergiantCollapse(states, regime, mass, comp, zams)
	}
}

// lowMassRemnant is the single terminal snapshot for stars below the giant
// threshold: a helium white dwarf reached well after core burning ends. The
// contraction itself is not sampled; it outlasts every other timescale here.
func lowMassRemnant(mass float64, comp stellar.Composition, zams zamsValues) State {
	age := pmsLifetime(mass) + 1.1*msLifetime(mass)
	return whiteDwarfState(age, mass, zams, stellar.Composition{Y: 1 - comp.Z, Z: comp.Z})
}

// appendGiantBranch runs the intermediate-mass endgame: ascent of the red
// giant branch, the helium-burning horizontal branch, the asymptotic giant
// branch, envelope ejection as a planetary nebula, and a carbon-oxygen white
// dwarf. Luminosity and radius multipliers scale the ZAMS values.
func appendGiantBranch(states []State, mass float64, comp stellar.Composition, zams zamsValues) []State {
	msEnd := pmsLifetime(mass) + msLifetime(mass)
	duration := giantDuration * msLifetime(mass)

	// Composition anchors for the late stages. The dredge-up yield is capped
	// by the helium actually present, so metal-rich overrides stay physical.
	tamsX := comp.X * (1 - msBurnedFraction)
	hbComp := stellar.Composition{Y: 1 - comp.Z, Z: comp.Z}
	yield := agbMetalYield
	if yield > hbComp.Y {
		yield = hbComp.Y
	}
	finalComp := stellar.Composition{Y: hbComp.Y - yield, Z: comp.Z + yield}

	// Endpoints for the planetary-nebula descent.
	agbEndLum := zams.lum * (50 + 1000)
	agbEndRadius := zams.radius * (10 + 200)
	wdLum := whiteDwarfLuminosity * zams.lum

	for k := 1; k <= postMSSamples; k++ {
		p := float64(k) / postMSSamples
		age := msEnd + p*duration

		if p >= 1 {
			states = append(states, whiteDwarfState(age, mass, zams, finalComp))
			break
		}

		var (
			lum, radius float64
			phase       Phase
			c           stellar.Composition
		)
		switch {
		case p >= 0.95:
			// Envelope ejection: the exposed core slides down to the
			// white-dwarf locus on a log-linear path.
			q := (p - 0.95) / 0.05
			lum = logBlend(agbEndLum, wdLum, q)
			radius = logBlend(agbEndRadius, whiteDwarfRadius, q)
			phase = PhasePlanetaryNebula
			c = finalComp
		case p >= 0.75:
			q := (p - 0.75) / 0.2
			lum = zams.lum * (50 + 1000*q)
			radius = zams.radius * (10 + 200*q)
			phase = PhaseAsymptoticGiant
			c = stellar.Composition{
				Y: hbComp.Y - yield*q,
				Z: comp.Z + yield*q,
			}
		case p >= 0.6:
			lum = 50 * zams.lum
			radius = 10 * zams.radius
			phase = PhaseHorizontalBranch
			c = hbComp
		case p >= 0.2:
			q := (p - 0.2) / 0.4
			lum = zams.lum * (3 + 100*q)
			radius = zams.radius * (5 + 50*q)
			phase = PhaseRedGiantBranch
			c = shellBurningComp(tamsX, comp.Z, p, 0.6)
		default:
			// Subgiant ramp onto the giant branch.
			lum = zams.lum * (1 + 10*p)
			radius = zams.radius * (1 + 5*p)
			phase = PhaseRedGiantBranch
			c = shellBurningComp(tamsX, comp.Z, p, 0.6)
		}

		temp := effectiveTemp(lum, radius)
		states = append(states, State{
			Age:           age,
			Mass:          mass,
			Luminosity:    lum,
			Radius:        radius,
			Temperature:   temp,
			Phase:         phase,
			SpectralClass: stellar.ClassFromTemperature(temp),
			Composition:   c,
		})
	}
	return states
}

// appendSupergiantCollapse runs the massive-star endgame: the supergiant
// expansion climb, the supernova flash, and a compact remnant whose flavor
// depends on the regime.
func appendSupergiantCollapse(states []State, regime Regime, mass float64, comp stellar.Composition, zams zamsValues) []State {
	msEnd := pmsLifetime(mass) + msLifetime(mass)
	duration := supergiantDuration * msLifetime(mass)

	tamsX := comp.X * (1 - msBurnedFraction)
	snComp := advancedBurningComp(tamsX, comp.Z, 1)

	for k := 1; k <= postMSSamples; k++ {
		p := float64(k) / postMSSamples
		age := msEnd + p*duration

		if p >= 1 {
			states = append(states, remnantState(age, regime, mass))
			break
		}

		var (
			lum, radius float64
			phase       Phase
			c           stellar.Composition
		)
		if p >= 0.9 {
			lum = supernovaLuminosity * zams.lum
			radius = supernovaRadius * zams.radius
			phase = PhaseSupernova
			c = snComp
		} else {
			lum = zams.lum * (10 + 1000*p)
			radius = zams.radius * (10 + 100*p)
			phase = PhaseSupergiant
			c = advancedBurningComp(tamsX, comp.Z, p/0.9)
		}

		temp := effectiveTemp(lum, radius)
		states = append(states, State{
			Age:           age,
			Mass:          mass,
			Luminosity:    lum,
			Radius:        radius,
			Temperature:   temp,
			Phase:         phase,
			SpectralClass: stellar.ClassFromTemperature(temp),
			Composition:   c,
		})
	}
	return states
}

// whiteDwarfState builds the terminal white-dwarf snapshot. Temperature
// follows from the Stefan-Boltzmann law and lands in the 1e4 to 1e5 K band.
func whiteDwarfState(age, initialMass float64, zams zamsValues, comp stellar.Composition) State {
	lum := whiteDwarfLuminosity * zams.lum
	return State{
		Age:           age,
		Mass:          initialMass * whiteDwarfMassFraction,
		Luminosity:    lum,
		Radius:        whiteDwarfRadius,
		Temperature:   effectiveTemp(lum, whiteDwarfRadius),
		Phase:         PhaseWhiteDwarf,
		SpectralClass: stellar.ClassWhiteDwarf,
		Composition:   comp,
	}
}

// remnantState builds the neutron-star or black-hole terminal snapshot.
// Neutron-star values are calibrated constants. A black hole has no
// photosphere, so luminosity and temperature are zero and the radius is the
// Schwarzschild radius for the remnant mass.
func remnantState(age float64, regime Regime, initialMass float64) State {
	remnantMass := initialMass * remnantMassFraction
	s := State{
		Age:         age,
		Mass:        remnantMass,
		Composition: stellar.Composition{Z: 1},
	}
	if regime == RegimeVeryHigh {
		s.Phase = PhaseBlackHole
		s.SpectralClass = stellar.ClassBlackHole
		s.Radius = SchwarzschildRadius(remnantMass) / stellar.SolarRadius
		return s
	}
	s.Phase = PhaseNeutronStar
	s.SpectralClass = stellar.ClassNeutronStar
	s.Radius = neutronStarRadiusMeters / stellar.SolarRadius
	s.Luminosity = neutronStarLuminosityW / stellar.SolarLuminosity
	s.Temperature = neutronStarTemperature
	return s
}

// shellBurningComp depletes the remaining envelope hydrogen linearly until it
// is gone at progress depleteBy; helium absorbs the difference and metals
// stay frozen.
func shellBurningComp(startX, z, p, depleteBy float64) stellar.Composition {
	x := startX * (1 - p/depleteBy)
	if x < 0 {
		x = 0
	}
	return stellar.Composition{X: x, Y: 1 - z - x, Z: z}
}

// advancedBurningComp models late burning in massive stars as a single blend
// f in [0, 1]: hydrogen runs out while the metal fraction climbs from its
// initial value to the pre-collapse one, helium taking up the remainder.
func advancedBurningComp(startX, z0, f float64) stellar.Composition {
	if f > 1 {
		f = 1
	}
	x := startX * (1 - f)
	z := z0 + (supernovaMetallicity-z0)*f
	return stellar.Composition{X: x, Y: 1 - x - z, Z: z}
}

// logBlend interpolates between two positive values linearly in log space.
func logBlend(a, b, f float64) float64 {
	return a * math.Pow(b/a, f)
}

// trackID derives a stable UUID from the exact float bits of the inputs, so
// repeat computations of the same star share an identity.
func trackID(mass float64, comp stellar.Composition) string {
	canonical := fmt.Sprintf("mass=%s;x=%s;y=%s;z=%s",
		hexFloat(mass), hexFloat(comp.X), hexFloat(comp.Y), hexFloat(comp.Z))
	return uuid.NewSHA1(trackNamespace, []byte(canonical)).String()
}

func hexFloat(v float64) string {
	return strconv.FormatFloat(v, 'x', -1, 64)
}
