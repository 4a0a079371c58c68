package stellar

import "math"

// Composition holds the mass fractions of hydrogen, helium, and metals.
// A physical composition satisfies X + Y + Z = 1 with all parts >= 0.
type Composition struct {
	X float64 // hydrogen mass fraction
	Y float64 // helium mass fraction
	Z float64 // metals mass fraction
}

// Solar photospheric composition (Asplund et al. 2009).
const (
	SolarX = 0.7381
	SolarY = 0.2477
	SolarZ = 0.0142
)

// compositionSumTolerance bounds the accepted deviation of X+Y+Z from 1.
const compositionSumTolerance = 1e-9

// SolarComposition returns the solar photospheric mass fractions.
func SolarComposition() Composition {
	return Composition{X: SolarX, Y: SolarY, Z: SolarZ}
}

// Sum returns X + Y + Z.
func (c Composition) Sum() float64 {
	return c.X + c.Y + c.Z
}

// Validate checks that the composition is physical: non-negative parts
// summing to 1 within tolerance.
func (c Composition) Validate() error {
	if c.X < 0 {
		return &DomainError{Param: "hydrogen", Value: c.X, Reason: "mass fraction must be non-negative"}
	}
	if c.Y < 0 {
		return &DomainError{Param: "helium", Value: c.Y, Reason: "mass fraction must be non-negative"}
	}
	if c.Z < 0 {
		return &DomainError{Param: "metals", Value: c.Z, Reason: "mass fraction must be non-negative"}
	}
	if sum := c.Sum(); math.IsNaN(sum) || math.Abs(sum-1) > compositionSumTolerance {
		return &DomainError{Param: "composition", Value: sum, Reason: "mass fractions must sum to 1"}
	}
	return nil
}

// MeanMolecularWeight returns μ for a fully ionized gas of the given
// composition: μ = 1 / (2X + 3Y/4 + Z/2).
func MeanMolecularWeight(c Composition) float64 {
	denom := 2*c.X + 0.75*c.Y + 0.5*c.Z
	if denom <= 0 {
		return 0
	}
	return 1 / denom
}
