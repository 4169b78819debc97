package fdiff

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	DefaultMinExp    = -16
	DefaultMaxExp    = -1
	DefaultNumPoints = 50
	DefaultX0        = 1.0
)

// StepRange describes NumPoints step sizes spaced evenly in log10 between
// 10^MinExp and 10^MaxExp inclusive.
type StepRange struct {
	MinExp    int `json:"min_exp"`
	MaxExp    int `json:"max_exp"`
	NumPoints int `json:"num_points"`
}

func (r StepRange) Validate() error {
	if r.MinExp >= r.MaxExp {
		return invalid("min_exp", float64(r.MinExp), "must be below max_exp")
	}
	if r.NumPoints < 1 {
		return invalid("num_points", float64(r.NumPoints), "must be positive")
	}
	lo, hi := math.Pow(10, float64(r.MinExp)), math.Pow(10, float64(r.MaxExp))
	if lo == 0 || math.IsInf(hi, 0) {
		return invalid("min_exp", float64(r.MinExp), "range overflows float64")
	}
	return nil
}

// Steps returns the step sizes in ascending order.
func (r StepRange) Steps() ([]float64, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	lo, hi := math.Pow(10, float64(r.MinExp)), math.Pow(10, float64(r.MaxExp))
	if r.NumPoints == 1 {
		return []float64{lo}, nil
	}
	return floats.LogSpan(make([]float64, r.NumPoints), lo, hi), nil
}

// Params is everything besides the target that determines one analysis run.
// It is comparable and serves as a memoization key.
type Params struct {
	Range   StepRange `json:"range"`
	Epsilon float64   `json:"epsilon"`
	X0      float64   `json:"x0"`
}

func DefaultParams() Params {
	return Params{
		Range: StepRange{
			MinExp:    DefaultMinExp,
			MaxExp:    DefaultMaxExp,
			NumPoints: DefaultNumPoints,
		},
		Epsilon: DefaultEpsilon,
		X0:      DefaultX0,
	}
}

func (p Params) Validate() error {
	if err := p.Range.Validate(); err != nil {
		return err
	}
	if err := checkEpsilon(p.Epsilon); err != nil {
		return err
	}
	return checkX0(p.X0)
}
