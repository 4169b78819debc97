package fdiff

import "math"

// Compute evaluates the forward and central schemes at every step size and
// returns one ErrorRecord per step for each. Inputs are validated before any
// record is produced; steps is not modified.
func Compute(t Target, x0 float64, steps []float64, eps float64) (forward, central []ErrorRecord, err error) {
	if err := t.validate(); err != nil {
		return nil, nil, err
	}
	if err := checkX0(x0); err != nil {
		return nil, nil, err
	}
	if err := checkEpsilon(eps); err != nil {
		return nil, nil, err
	}
	if err := checkSteps(steps); err != nil {
		return nil, nil, err
	}

	d := t.Derivs(x0)
	forward = sweep(NewForward(), t.F, x0, steps, eps, d)
	central = sweep(NewCentral(), t.F, x0, steps, eps, d)
	return forward, central, nil
}

func sweep(s Scheme, f Func, x0 float64, steps []float64, eps float64, d Derivatives) []ErrorRecord {
	records := make([]ErrorRecord, len(steps))
	for i, h := range steps {
		approx := s.Approx(f, x0, h)
		records[i] = ErrorRecord{
			H:          h,
			Approx:     approx,
			Actual:     math.Abs(approx - d.D1),
			Truncation: s.Truncation(h, d),
			Rounding:   s.Rounding(h, eps),
		}
	}
	return records
}

func checkSteps(steps []float64) error {
	if len(steps) == 0 {
		return invalid("steps", 0, "must not be empty")
	}
	for _, h := range steps {
		if !(h > 0) || math.IsInf(h, 0) {
			return invalid("h", h, "must be positive and finite")
		}
	}
	return nil
}

func checkEpsilon(eps float64) error {
	if !(eps > 0) || math.IsInf(eps, 0) {
		return invalid("epsilon", eps, "must be positive and finite")
	}
	return nil
}

func checkX0(x0 float64) error {
	if math.IsNaN(x0) || math.IsInf(x0, 0) {
		return invalid("x0", x0, "must be finite")
	}
	return nil
}
