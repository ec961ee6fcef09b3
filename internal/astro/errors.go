package astro

import (
	"errors"
	"fmt"
)

// FormatError reports malformed textual input to a parser, naming the
// offending token.
type FormatError struct {
	Input string // the full input string
	Token string // the token that failed to parse
}

func (e *FormatError) Error() string {
	if e.Token != "" && e.Token != e.Input {
		return fmt.Sprintf("cannot parse %q: bad token %q", e.Input, e.Token)
	}
	return fmt.Sprintf("cannot parse %q", e.Input)
}

// DomainError reports a value outside the valid range for its role.
// Declination-like angles outside ±90° are a caller error, not something
// to wrap silently.
type DomainError struct {
	Quantity string
	Value    float64
	Min, Max float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s %.6f out of range [%g, %g]", e.Quantity, e.Value, e.Min, e.Max)
}

// ErrNonConvergence is returned when event refinement exhausts its
// iteration budget without reaching the time tolerance. This indicates an
// internal defect, not an expected astronomical state.
var ErrNonConvergence = errors.New("refinement exceeded iteration budget")
