package fdiff

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/num/hyperdual"
)

// EstimateZeroTolerance is the magnitude below which a finite-difference
// estimate of f'' or f''' is treated as zero.
const EstimateZeroTolerance = 1e-6

type Func func(x float64) float64

// Dual is a real function written over hyperdual numbers so that its first
// and second derivatives come out of a single evaluation.
type Dual func(x hyperdual.Number) hyperdual.Number

// Target pairs a function with its exact first derivative. D2 and D3 are
// optional; when nil they are estimated from DF with central differences.
type Target struct {
	Name string
	F    Func
	DF   Func
	D2   Func
	D3   Func
}

func (t Target) validate() error {
	if t.F == nil || t.DF == nil {
		return fmt.Errorf("%w: target %q needs both f and f'", ErrInvalidParameter, t.Name)
	}
	return nil
}

// Derivs resolves f', f'' and f''' at x0.
func (t Target) Derivs(x0 float64) Derivatives {
	d := Derivatives{D1: t.DF(x0)}

	if t.D2 != nil {
		d.D2 = t.D2(x0)
	} else {
		d.D2 = fd.Derivative(t.DF, x0, &fd.Settings{Formula: fd.Central})
		d.D2Estimated = true
	}

	if t.D3 != nil {
		d.D3 = t.D3(x0)
	} else {
		d.D3 = fd.Derivative(t.DF, x0, &fd.Settings{
			Formula:     fd.Central2nd,
			OriginKnown: true,
			OriginValue: d.D1,
		})
		d.D3Estimated = true
	}

	return d
}

// FromHyperdual builds a target whose higher derivatives are exact: f'' is
// the ϵ₁ϵ₂ part of f and f''' the ϵ₁ϵ₂ part of f'.
func FromHyperdual(name string, f, df Dual) Target {
	return Target{
		Name: name,
		F:    func(x float64) float64 { return f(hyperdual.Number{Real: x}).Real },
		DF:   func(x float64) float64 { return df(hyperdual.Number{Real: x}).Real },
		D2:   func(x float64) float64 { return f(seed(x)).E1E2mag },
		D3:   func(x float64) float64 { return df(seed(x)).E1E2mag },
	}
}

func seed(x float64) hyperdual.Number {
	return hyperdual.Number{Real: x, E1mag: 1, E2mag: 1}
}

func constant(c float64) hyperdual.Number {
	return hyperdual.Number{Real: c}
}

// Sine is the reference target, f = sin and f' = cos.
func Sine() Target {
	return Target{
		Name: "sin",
		F:    math.Sin,
		DF:   math.Cos,
		D2:   func(x float64) float64 { return -math.Sin(x) },
		D3:   func(x float64) float64 { return -math.Cos(x) },
	}
}

func Cosine() Target {
	return FromHyperdual("cos",
		hyperdual.Cos,
		func(x hyperdual.Number) hyperdual.Number {
			return hyperdual.Mul(constant(-1), hyperdual.Sin(x))
		},
	)
}

func Exponential() Target {
	return FromHyperdual("exp", hyperdual.Exp, hyperdual.Exp)
}

// Logarithm is only defined for x0 > h.
func Logarithm() Target {
	return FromHyperdual("log", hyperdual.Log, hyperdual.Inv)
}

// Cubic is x^3 - 2x. Its second derivative vanishes at 0, which makes the
// forward optimum undefined there.
func Cubic() Target {
	return FromHyperdual("cubic",
		func(x hyperdual.Number) hyperdual.Number {
			return hyperdual.Mul(x, hyperdual.Add(hyperdual.Mul(x, x), constant(-2)))
		},
		func(x hyperdual.Number) hyperdual.Number {
			return hyperdual.Add(hyperdual.Mul(constant(3), hyperdual.Mul(x, x)), constant(-2))
		},
	)
}

var targets = map[string]func() Target{
	"sin":   Sine,
	"cos":   Cosine,
	"exp":   Exponential,
	"log":   Logarithm,
	"cubic": Cubic,
}

// LookupTarget returns the catalogue target with the given name.
func LookupTarget(name string) (Target, error) {
	fn, ok := targets[name]
	if !ok {
		return Target{}, fmt.Errorf("unknown target: %s (available: %v)", name, TargetNames())
	}
	return fn(), nil
}

func TargetNames() []string {
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
