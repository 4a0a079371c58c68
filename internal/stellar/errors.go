package stellar

import "fmt"

// DomainError reports an argument outside a function's valid mathematical
// domain. The calculator never clamps; violations surface to the caller.
type DomainError struct {
	Param  string  // offending parameter name
	Value  float64 // value supplied by the caller
	Reason string  // constraint that was violated
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s = %g outside domain: %s", e.Param, e.Value, e.Reason)
}
