package fdiff

// Scheme is a finite-difference formula for f'(x0) together with its analytic
// error model. The truncation and rounding estimates must be the ones the
// optimal step minimizes.
type Scheme interface {
	Method() Method
	// Order is the exponent of h in the truncation error.
	Order() int
	Approx(f Func, x0, h float64) float64
	Truncation(h float64, d Derivatives) float64
	Rounding(h, eps float64) float64
	// TruncationTerm returns |f^(k)(x0)| and k for the derivative that
	// scales the truncation error, and whether that derivative was estimated.
	TruncationTerm(d Derivatives) (m float64, k int, estimated bool)
	// OptimalStep minimizes Truncation+Rounding given TruncationTerm m > 0.
	OptimalStep(m, eps float64) float64
}

// Schemes returns the forward and central schemes in that order.
func Schemes() []Scheme {
	return []Scheme{NewForward(), NewCentral()}
}

// TotalError is the estimated total error of s at step h.
func TotalError(s Scheme, h, eps float64, d Derivatives) float64 {
	return s.Truncation(h, d) + s.Rounding(h, eps)
}
