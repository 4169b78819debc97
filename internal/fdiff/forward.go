package fdiff

import "math"

// ForwardScheme is the one-sided difference (f(x0+h) - f(x0)) / h.
//
// Truncation error is (h/2)|f''(x0)|. Rounding error is 2ε/h: each of the two
// evaluations carries an error of order ε and the difference is divided by h.
type ForwardScheme struct{}

func NewForward() *ForwardScheme {
	return &ForwardScheme{}
}

func (s *ForwardScheme) Method() Method { return Forward }
func (s *ForwardScheme) Order() int     { return 1 }

func (s *ForwardScheme) Approx(f Func, x0, h float64) float64 {
	return (f(x0+h) - f(x0)) / h
}

func (s *ForwardScheme) Truncation(h float64, d Derivatives) float64 {
	return h / 2 * math.Abs(d.D2)
}

func (s *ForwardScheme) Rounding(h, eps float64) float64 {
	return 2 * eps / h
}

func (s *ForwardScheme) TruncationTerm(d Derivatives) (float64, int, bool) {
	return math.Abs(d.D2), 2, d.D2Estimated
}

// OptimalStep solves m/2 - 2ε/h² = 0.
func (s *ForwardScheme) OptimalStep(m, eps float64) float64 {
	return 2 * math.Sqrt(eps/m)
}
