// Package preset ships the built-in star scenarios demos and the CLI start
// from. The catalog is compiled in; presets never load from files.
package preset

import (
	"strings"

	"github.com/cosmicstudio/cs-stellar/internal/stellar"
)

// Scenario is one ready-made star configuration.
type Scenario struct {
	Key         string // stable lookup key, lower-case
	Name        string
	Mass        float64              // solar masses
	Composition *stellar.Composition // nil means solar
	Description string
}

// EffectiveComposition resolves the scenario's composition, falling back to
// solar when none is set.
func (s Scenario) EffectiveComposition() stellar.Composition {
	if s.Composition != nil {
		return *s.Composition
	}
	return stellar.SolarComposition()
}

// Scenarios is the built-in catalog. Slice order is the display order.
var Scenarios = []Scenario{
	{
		Key:         "red-dwarf",
		Name:        "Red Dwarf",
		Mass:        0.3,
		Description: "A slow-burning M dwarf whose main sequence outlasts the present age of the universe.",
	},
	{
		Key:         "sun",
		Name:        "Sun-like Star",
		Mass:        1.0,
		Description: "A G-type dwarf on the same path as the Sun: red giant, planetary nebula, white dwarf.",
	},
	{
		Key:  "metal-poor-sun",
		Name: "Metal-poor Sun",
		Mass: 1.0,
		Composition: &stellar.Composition{
			X: 0.75,
			Y: 0.2485,
			Z: 0.0015,
		},
		Description: "A solar-mass Population II star with about a tenth of the solar metal content.",
	},
	{
		Key:         "intermediate",
		Name:        "Intermediate Star",
		Mass:        5.0,
		Description: "A mid-weight star headed up the asymptotic giant branch toward a carbon-oxygen white dwarf.",
	},
	{
		Key:         "massive",
		Name:        "Massive Star",
		Mass:        20.0,
		Description: "A hot B-type star that ends in a core-collapse supernova and a neutron star.",
	},
}

// scenariosByKey indexes the catalog for lookups.
var scenariosByKey = func() map[string]Scenario {
	m := make(map[string]Scenario, len(Scenarios))
	for _, s := range Scenarios {
		m[s.Key] = s
	}
	return m
}()

// ByKey finds a scenario by its key, case-insensitively.
func ByKey(key string) (Scenario, bool) {
	s, ok := scenariosByKey[strings.ToLower(strings.TrimSpace(key))]
	return s, ok
}

// Keys returns the catalog keys in display order.
func Keys() []string {
	keys := make([]string, len(Scenarios))
	for i, s := range Scenarios {
		keys[i] = s.Key
	}
	return keys
}
