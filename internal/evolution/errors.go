package evolution

import (
	"fmt"

	"github.com/cosmicstudio/cs-stellar/internal/stellar"
)

// DomainError is an alias to stellar.DomainError so callers matching
// calculator input errors need only this package.
type DomainError = stellar.DomainError

// OutOfRangeError reports a track query outside the span the track covers.
// Queries are rejected, never clamped.
type OutOfRangeError struct {
	Query string  // what was queried, e.g. "age" or "fraction"
	Value float64 // the rejected value
	Min   float64 // inclusive lower bound
	Max   float64 // inclusive upper bound
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s = %g outside track range [%g, %g]", e.Query, e.Value, e.Min, e.Max)
}
