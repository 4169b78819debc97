package fdiff

import "math"

// Report is the full outcome of one analysis run.
type Report struct {
	Target      string        `json:"target"`
	Params      Params        `json:"params"`
	Derivatives Derivatives   `json:"derivatives"`
	Forward     []ErrorRecord `json:"forward"`
	Central     []ErrorRecord `json:"central"`
	Optimum     Optimum       `json:"optimum"`
	// Empirical holds, per scheme, the sampled step with the smallest
	// measured error.
	Empirical Empirical `json:"empirical"`
}

type Empirical struct {
	Forward ErrorRecord `json:"forward"`
	Central ErrorRecord `json:"central"`
}

// Records returns the record sequence for m.
func (r *Report) Records(m Method) []ErrorRecord {
	if m == Central {
		return r.Central
	}
	return r.Forward
}

// OptimalPoint returns the optimum for m.
func (r *Report) OptimalPoint(m Method) OptimalPoint {
	if m == Central {
		return r.Optimum.Central
	}
	return r.Optimum.Forward
}

// Analyze builds the step range from p, computes both error sequences and
// solves for the optimal steps. It either returns a complete report or fails
// without output.
func Analyze(t Target, p Params) (*Report, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	steps, err := p.Range.Steps()
	if err != nil {
		return nil, err
	}

	d := t.Derivs(p.X0)
	opt, err := solve(d, p.X0, p.Epsilon)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Target:      t.Name,
		Params:      p,
		Derivatives: d,
		Forward:     sweep(NewForward(), t.F, p.X0, steps, p.Epsilon, d),
		Central:     sweep(NewCentral(), t.F, p.X0, steps, p.Epsilon, d),
		Optimum:     opt,
	}
	report.Empirical = Empirical{
		Forward: bestSample(report.Forward),
		Central: bestSample(report.Central),
	}
	return report, nil
}

// bestSample is an argmin over the measured error. NaN samples never win.
func bestSample(records []ErrorRecord) ErrorRecord {
	best := ErrorRecord{Actual: math.Inf(1)}
	for _, r := range records {
		if r.Actual < best.Actual {
			best = r
		}
	}
	return best
}

// Curves computes the error records of both schemes over the step range of
// p without solving for the optimum. It still succeeds when the optimum is
// undefined at x0.
func Curves(t Target, p Params) (forward, central []ErrorRecord, err error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	steps, err := p.Range.Steps()
	if err != nil {
		return nil, nil, err
	}
	return Compute(t, p.X0, steps, p.Epsilon)
}
