package fdiff

import "math"

// CentralScheme is the symmetric difference (f(x0+h) - f(x0-h)) / (2h).
//
// Truncation error is (h²/6)|f'''(x0)|. Rounding error is ε/h: two evaluations
// of order ε divided by 2h.
type CentralScheme struct{}

func NewCentral() *CentralScheme {
	return &CentralScheme{}
}

func (s *CentralScheme) Method() Method { return Central }
func (s *CentralScheme) Order() int     { return 2 }

func (s *CentralScheme) Approx(f Func, x0, h float64) float64 {
	return (f(x0+h) - f(x0-h)) / (2 * h)
}

func (s *CentralScheme) Truncation(h float64, d Derivatives) float64 {
	return h * h / 6 * math.Abs(d.D3)
}

func (s *CentralScheme) Rounding(h, eps float64) float64 {
	return eps / h
}

func (s *CentralScheme) TruncationTerm(d Derivatives) (float64, int, bool) {
	return math.Abs(d.D3), 3, d.D3Estimated
}

// OptimalStep solves h·m/3 - ε/h² = 0.
func (s *CentralScheme) OptimalStep(m, eps float64) float64 {
	return math.Cbrt(3 * eps / m)
}
