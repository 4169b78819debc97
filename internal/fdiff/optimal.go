package fdiff

import "math"

// Solve returns the step size minimizing estimated total error for each
// scheme, together with that minimum. It fails with ErrDegenerateInput when
// f''(x0) (forward) or f'''(x0) (central) is zero.
func Solve(t Target, x0, eps float64) (Optimum, error) {
	if err := t.validate(); err != nil {
		return Optimum{}, err
	}
	if err := checkX0(x0); err != nil {
		return Optimum{}, err
	}
	if err := checkEpsilon(eps); err != nil {
		return Optimum{}, err
	}
	return solve(t.Derivs(x0), x0, eps)
}

func solve(d Derivatives, x0, eps float64) (Optimum, error) {
	var opt Optimum
	for _, s := range Schemes() {
		p, err := OptimalFor(s, d, x0, eps)
		if err != nil {
			return Optimum{}, err
		}
		if s.Method() == Central {
			opt.Central = p
		} else {
			opt.Forward = p
		}
	}
	return opt, nil
}

// OptimalFor solves a single scheme.
func OptimalFor(s Scheme, d Derivatives, x0, eps float64) (OptimalPoint, error) {
	if err := checkEpsilon(eps); err != nil {
		return OptimalPoint{}, err
	}
	return optimalPoint(s, d, x0, eps)
}

func optimalPoint(s Scheme, d Derivatives, x0, eps float64) (OptimalPoint, error) {
	m, order, estimated := s.TruncationTerm(d)
	if isZero(m, estimated) {
		return OptimalPoint{}, &DegenerateError{Method: s.Method(), X0: x0, Order: order}
	}

	h := s.OptimalStep(m, eps)
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		return OptimalPoint{}, &DegenerateError{Method: s.Method(), X0: x0, Order: order}
	}

	return OptimalPoint{
		Method:        s.Method(),
		H:             h,
		MinTotalError: TotalError(s, h, eps, d),
	}, nil
}

func isZero(m float64, estimated bool) bool {
	if math.IsNaN(m) {
		return true
	}
	if estimated {
		return m < EstimateZeroTolerance
	}
	return m == 0
}
