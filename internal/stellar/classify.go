package stellar

// SpectralClass is the Morgan-Keenan temperature class of a star, plus the
// compact labels used for remnants.
type SpectralClass string

const (
	ClassO SpectralClass = "O"
	ClassB SpectralClass = "B"
	ClassA SpectralClass = "A"
	ClassF SpectralClass = "F"
	ClassG SpectralClass = "G"
	ClassK SpectralClass = "K"
	ClassM SpectralClass = "M"

	// Remnant labels. Not MK classes; used when no photospheric
	// classification applies.
	ClassWhiteDwarf  SpectralClass = "D"
	ClassNeutronStar SpectralClass = "NS"
	ClassBlackHole   SpectralClass = "BH"
)

// ClassInfo describes a spectral class for display purposes.
type ClassInfo struct {
	Class   SpectralClass
	Name    string  // conventional color description
	MinTemp float64 // K, inclusive lower bound (0 for M)
	MaxTemp float64 // K, exclusive upper bound (0 means unbounded)
	Hex     string  // representative display color
}

// Classes is the catalog of main-sequence spectral classes, hottest first.
// Colors follow the conventional photographic star colors.
var Classes = []ClassInfo{
	{Class: ClassO, Name: "blue", MinTemp: 30000, MaxTemp: 0, Hex: "#9bb0ff"},
	{Class: ClassB, Name: "blue-white", MinTemp: 10000, MaxTemp: 30000, Hex: "#aabfff"},
	{Class: ClassA, Name: "white", MinTemp: 7500, MaxTemp: 10000, Hex: "#cad7ff"},
	{Class: ClassF, Name: "yellow-white", MinTemp: 6000, MaxTemp: 7500, Hex: "#f8f7ff"},
	{Class: ClassG, Name: "yellow", MinTemp: 5200, MaxTemp: 6000, Hex: "#fff4ea"},
	{Class: ClassK, Name: "orange", MinTemp: 3700, MaxTemp: 5200, Hex: "#ffd2a1"},
	{Class: ClassM, Name: "red", MinTemp: 0, MaxTemp: 3700, Hex: "#ffcc6f"},
}

// ClassesByLetter maps class letters to their catalog entries.
var ClassesByLetter = func() map[SpectralClass]ClassInfo {
	m := make(map[SpectralClass]ClassInfo, len(Classes))
	for _, ci := range Classes {
		m[ci.Class] = ci
	}
	return m
}()

// ClassFromTemperature maps an effective temperature in Kelvin to a spectral
// class. A temperature exactly at a class boundary belongs to the hotter
// class (30000 K classifies as O). Total function; anything below the K
// floor, including non-physical inputs, classifies as M.
func ClassFromTemperature(temperature float64) SpectralClass {
	for _, ci := range Classes {
		if ci.MinTemp > 0 && temperature >= ci.MinTemp {
			return ci.Class
		}
	}
	return ClassM
}

// GetClassInfo returns the catalog entry for a class letter.
func GetClassInfo(class SpectralClass) (ClassInfo, bool) {
	ci, ok := ClassesByLetter[class]
	return ci, ok
}
