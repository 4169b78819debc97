package fdiff

import (
	"errors"
	"fmt"
)

// Domain errors for error-model operations.
var (
	// ErrInvalidParameter indicates an input outside its valid domain
	// (non-positive step or epsilon, empty or inverted step range).
	ErrInvalidParameter = errors.New("fdiff: invalid parameter")

	// ErrDegenerateInput indicates the optimal step is undefined because the
	// derivative term it divides by is zero at x0.
	ErrDegenerateInput = errors.New("fdiff: degenerate input")
)

// ParamError describes which parameter was rejected and why.
type ParamError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s=%g %s", ErrInvalidParameter, e.Name, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}

func invalid(name string, value float64, reason string) error {
	return &ParamError{Name: name, Value: value, Reason: reason}
}

// DegenerateError reports the scheme and derivative order that made the
// optimal step undefined.
type DegenerateError struct {
	Method Method
	X0     float64
	Order  int
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("%s: %s optimal step undefined, f^(%d)(%g) is zero",
		ErrDegenerateInput, e.Method, e.Order, e.X0)
}

func (e *DegenerateError) Unwrap() error {
	return ErrDegenerateInput
}
