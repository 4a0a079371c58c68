// Package evolution computes full stellar evolutionary tracks from closed-form
// scaling relations: pre-main-sequence contraction, the main sequence, the
// giant or supergiant stages a star's mass allows, and a terminal remnant.
// Tracks are immutable once computed and safe to share between goroutines.
package evolution

import (
	"fmt"
	"strings"
)

// Phase identifies one evolutionary stage.
type Phase string

const (
	PhasePreMainSequence  Phase = "pre-main-sequence"
	PhaseMainSequence     Phase = "main-sequence"
	PhaseRedGiantBranch   Phase = "red-giant-branch"
	PhaseHorizontalBranch Phase = "horizontal-branch"
	PhaseAsymptoticGiant  Phase = "asymptotic-giant-branch"
	PhaseSupergiant       Phase = "supergiant"
	PhasePlanetaryNebula  Phase = "planetary-nebula"
	PhaseSupernova        Phase = "supernova"
	PhaseWhiteDwarf       Phase = "white-dwarf"
	PhaseNeutronStar      Phase = "neutron-star"
	PhaseBlackHole        Phase = "black-hole"
)

// phaseLabels maps each phase to its display name.
var phaseLabels = map[Phase]string{
	PhasePreMainSequence:  "Pre-Main Sequence",
	PhaseMainSequence:     "Main Sequence",
	PhaseRedGiantBranch:   "Red Giant Branch",
	PhaseHorizontalBranch: "Horizontal Branch",
	PhaseAsymptoticGiant:  "Asymptotic Giant Branch",
	PhaseSupergiant:       "Supergiant",
	PhasePlanetaryNebula:  "Planetary Nebula",
	PhaseSupernova:        "Supernova",
	PhaseWhiteDwarf:       "White Dwarf",
	PhaseNeutronStar:      "Neutron Star",
	PhaseBlackHole:        "Black Hole",
}

// phaseShort maps each phase to its abbreviation for compact tables.
var phaseShort = map[Phase]string{
	PhasePreMainSequence:  "PMS",
	PhaseMainSequence:     "MS",
	PhaseRedGiantBranch:   "RGB",
	PhaseHorizontalBranch: "HB",
	PhaseAsymptoticGiant:  "AGB",
	PhaseSupergiant:       "SG",
	PhasePlanetaryNebula:  "PN",
	PhaseSupernova:        "SN",
	PhaseWhiteDwarf:       "WD",
	PhaseNeutronStar:      "NS",
	PhaseBlackHole:        "BH",
}

// Label returns the human-readable phase name.
func (p Phase) Label() string {
	if label, ok := phaseLabels[p]; ok {
		return label
	}
	return string(p)
}

// Short returns the phase abbreviation, e.g. "RGB".
func (p Phase) Short() string {
	if s, ok := phaseShort[p]; ok {
		return s
	}
	return "?"
}

// Remnant reports whether the phase is a compact remnant with no ordinary
// photosphere (white dwarf, neutron star, black hole).
func (p Phase) Remnant() bool {
	switch p {
	case PhaseWhiteDwarf, PhaseNeutronStar, PhaseBlackHole:
		return true
	}
	return false
}

// ParsePhase converts a string to a Phase, case-insensitively.
func ParsePhase(s string) (Phase, error) {
	p := Phase(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := phaseLabels[p]; !ok {
		return "", fmt.Errorf("unknown phase %q", s)
	}
	return p, nil
}

// Regime buckets initial mass into one of four evolutionary paths.
type Regime int

const (
	RegimeLow          Regime = iota // < 0.5 solar masses
	RegimeIntermediate               // 0.5 to 8
	RegimeHigh                       // 8 to 25
	RegimeVeryHigh                   // 25 and above
)

// Regime mass boundaries in solar masses. Each bound belongs to the
// heavier regime: exactly 8 solar masses evolves as a high-mass star.
const (
	IntermediateMassMin = 0.5
	HighMassMin         = 8.0
	VeryHighMassMin     = 25.0
)

// String returns the regime name.
func (r Regime) String() string {
	switch r {
	case RegimeLow:
		return "low"
	case RegimeIntermediate:
		return "intermediate"
	case RegimeHigh:
		return "high"
	case RegimeVeryHigh:
		return "very-high"
	default:
		return "?"
	}
}

// ParseRegime converts a string produced by Regime.String back to a Regime.
func ParseRegime(s string) (Regime, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return RegimeLow, nil
	case "intermediate":
		return RegimeIntermediate, nil
	case "high":
		return RegimeHigh, nil
	case "very-high":
		return RegimeVeryHigh, nil
	}
	return 0, fmt.Errorf("unknown regime %q", s)
}

// ClassifyRegime returns the regime for an initial mass in solar masses.
func ClassifyRegime(mass float64) Regime {
	switch {
	case mass >= VeryHighMassMin:
		return RegimeVeryHigh
	case mass >= HighMassMin:
		return RegimeHigh
	case mass >= IntermediateMassMin:
		return RegimeIntermediate
	default:
		return RegimeLow
	}
}

// regimePhases lists the phases each regime passes through, in track order.
var regimePhases = map[Regime][]Phase{
	RegimeLow: {
		PhasePreMainSequence, PhaseMainSequence, PhaseWhiteDwarf,
	},
	RegimeIntermediate: {
		PhasePreMainSequence, PhaseMainSequence, PhaseRedGiantBranch,
		PhaseHorizontalBranch, PhaseAsymptoticGiant, PhasePlanetaryNebula,
		PhaseWhiteDwarf,
	},
	RegimeHigh: {
		PhasePreMainSequence, PhaseMainSequence, PhaseSupergiant,
		PhaseSupernova, PhaseNeutronStar,
	},
	RegimeVeryHigh: {
		PhasePreMainSequence, PhaseMainSequence, PhaseSupergiant,
		PhaseSupernova, PhaseBlackHole,
	},
}

// Phases returns the ordered phase sequence for the regime.
func (r Regime) Phases() []Phase {
	seq := regimePhases[r]
	out := make([]Phase, len(seq))
	copy(out, seq)
	return out
}

// TerminalPhase returns the remnant the regime ends in.
func (r Regime) TerminalPhase() Phase {
	seq := regimePhases[r]
	if len(seq) == 0 {
		return PhaseBlackHole
	}
	return seq[len(seq)-1]
}
