package fdiff

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestSolveSine(t *testing.T) {
	eps := 1e-16
	x0 := 1.0

	opt, err := Solve(Sine(), x0, eps)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	wantForward := 2 * math.Sqrt(eps/math.Abs(math.Sin(x0)))
	wantCentral := math.Pow(3*eps/math.Abs(math.Cos(x0)), 1.0/3)

	if !relClose(opt.Forward.H, wantForward, 1e-12) {
		t.Errorf("forward h_opt = %g, expected %g", opt.Forward.H, wantForward)
	}
	if !relClose(opt.Central.H, wantCentral, 1e-12) {
		t.Errorf("central h_opt = %g, expected %g", opt.Central.H, wantCentral)
	}
	if opt.Forward.H < 1e-9 || opt.Forward.H > 1e-7 {
		t.Errorf("forward h_opt %g outside the 1e-8 scale", opt.Forward.H)
	}
	if opt.Central.H < 1e-6 || opt.Central.H > 1e-4 {
		t.Errorf("central h_opt %g outside the 1e-5 scale", opt.Central.H)
	}

	wantMin := 2 * math.Sqrt(eps*math.Sin(x0))
	if !relClose(opt.Forward.MinTotalError, wantMin, 1e-12) {
		t.Errorf("forward min error = %g, expected %g", opt.Forward.MinTotalError, wantMin)
	}
	if opt.Forward.Method != Forward || opt.Central.Method != Central {
		t.Errorf("unexpected methods %v and %v", opt.Forward.Method, opt.Central.Method)
	}
}

func TestOptimalStepMinimizesSampledTotal(t *testing.T) {
	tests := []struct {
		name   string
		target Target
		x0     float64
		eps    float64
	}{
		{"sin at 1", Sine(), 1.0, 1e-16},
		{"sin at 1 default eps", Sine(), 1.0, DefaultEpsilon},
		{"exp at 0.5", Exponential(), 0.5, 1e-12},
		{"cubic at 1", Cubic(), 1.0, DefaultEpsilon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt, err := Solve(tt.target, tt.x0, tt.eps)
			if err != nil {
				t.Fatalf("solve failed: %v", err)
			}
			d := tt.target.Derivs(tt.x0)

			for _, s := range Schemes() {
				best := opt.Forward
				if s.Method() == Central {
					best = opt.Central
				}

				if got := TotalError(s, best.H, tt.eps, d); !relClose(got, best.MinTotalError, 1e-15) {
					t.Errorf("%s: min error %g does not match total at h_opt %g", s.Method(), best.MinTotalError, got)
				}

				steps := floats.LogSpan(make([]float64, 201), best.H/100, best.H*100)
				for _, h := range steps {
					total := TotalError(s, h, tt.eps, d)
					if best.MinTotalError > total*(1+1e-12) {
						t.Errorf("%s: total %g at h=%g is below the optimum %g at h=%g",
							s.Method(), total, h, best.MinTotalError, best.H)
					}
				}
			}
		})
	}
}

func TestSolveDegenerate(t *testing.T) {
	quadratic := Target{
		Name: "quadratic",
		F:    func(x float64) float64 { return x * x },
		DF:   func(x float64) float64 { return 2 * x },
		D2:   func(x float64) float64 { return 2 },
		D3:   func(x float64) float64 { return 0 },
	}
	estimatedSine := Target{Name: "sin-estimated", F: math.Sin, DF: math.Cos}

	tests := []struct {
		name   string
		target Target
		x0     float64
		method Method
		order  int
	}{
		{"sin at 0", Sine(), 0, Forward, 2},
		{"cubic at 0", Cubic(), 0, Forward, 2},
		{"quadratic", quadratic, 1.0, Central, 3},
		{"estimated sin at 0", estimatedSine, 0, Forward, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.target, tt.x0, DefaultEpsilon)
			if !errors.Is(err, ErrDegenerateInput) {
				t.Fatalf("expected ErrDegenerateInput, got %v", err)
			}
			var de *DegenerateError
			if !errors.As(err, &de) {
				t.Fatalf("expected *DegenerateError, got %T", err)
			}
			if de.Method != tt.method || de.Order != tt.order {
				t.Errorf("expected %s/f^(%d), got %s/f^(%d)", tt.method, tt.order, de.Method, de.Order)
			}
		})
	}
}

func TestSolveExactSmallSecondDerivative(t *testing.T) {
	const c = 1e-7
	target := Target{
		Name: "scaled-quadratic",
		F:    func(x float64) float64 { return c * x * x / 2 },
		DF:   func(x float64) float64 { return c * x },
		D2:   func(x float64) float64 { return c },
	}
	d := target.Derivs(1.0)
	if d.D2Estimated || !d.D3Estimated {
		t.Fatalf("expected exact f'' and estimated f''', got %+v", d)
	}

	p, err := OptimalFor(NewForward(), d, 1.0, DefaultEpsilon)
	if err != nil {
		t.Fatalf("exact nonzero f'' rejected: %v", err)
	}
	if want := 2 * math.Sqrt(DefaultEpsilon/c); !relClose(p.H, want, 1e-12) {
		t.Errorf("h* = %g, expected %g", p.H, want)
	}

	_, err = Solve(target, 1.0, DefaultEpsilon)
	var de *DegenerateError
	if !errors.As(err, &de) || de.Method != Central {
		t.Errorf("expected only the central scheme to be degenerate, got %v", err)
	}
}

func TestSolveInvalidEpsilon(t *testing.T) {
	for _, eps := range []float64{0, -1e-16, math.NaN(), math.Inf(1)} {
		if _, err := Solve(Sine(), 1.0, eps); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("eps=%g: expected ErrInvalidParameter, got %v", eps, err)
		}
	}
}

func TestOptimalForSingleScheme(t *testing.T) {
	d := Sine().Derivs(1.0)
	p, err := OptimalFor(NewCentral(), d, 1.0, 1e-16)
	if err != nil {
		t.Fatalf("optimal failed: %v", err)
	}
	if p.Method != Central {
		t.Errorf("expected central, got %s", p.Method)
	}
	if _, err := OptimalFor(NewForward(), d, 1.0, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}
