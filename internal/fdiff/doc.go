// Package fdiff models the error of finite-difference derivative approximations.
//
// The package compares two schemes for approximating f'(x0):
//
//   - [Forward]: (f(x0+h) - f(x0)) / h, first order
//   - [Central]: (f(x0+h) - f(x0-h)) / (2h), second order
//
// For every step size h the [Compute] function measures the actual error
// against the exact derivative and evaluates two analytic estimates:
// truncation error, which shrinks with h, and rounding error, which grows as
// h shrinks. [Solve] returns the closed-form step size that minimizes their
// sum for each scheme.
//
// # Example
//
//	target := fdiff.Sine()
//	params := fdiff.DefaultParams()
//	report, err := fdiff.Analyze(target, params)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(report.Optimum.Forward.H)
//
// # Errors
//
// Invalid inputs fail with [ErrInvalidParameter] before any record is
// produced. When the higher derivative a scheme depends on vanishes at x0 the
// optimal step is undefined and [Solve] fails with [ErrDegenerateInput].
//
// # Thread Safety
//
// Every function in the package is pure. [Cache] is the only stateful type
// and is NOT safe for concurrent use.
package fdiff
