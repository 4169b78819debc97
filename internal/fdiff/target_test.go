package fdiff

import (
	"math"
	"testing"
)

func TestCatalogueDerivatives(t *testing.T) {
	tests := []struct {
		name       string
		x0         float64
		d1, d2, d3 float64
	}{
		{"sin", 1.0, math.Cos(1), -math.Sin(1), -math.Cos(1)},
		{"cos", 0.7, -math.Sin(0.7), -math.Cos(0.7), math.Sin(0.7)},
		{"exp", 0.5, math.Exp(0.5), math.Exp(0.5), math.Exp(0.5)},
		{"log", 2.0, 0.5, -0.25, 0.25},
		{"cubic", 1.5, 3*1.5*1.5 - 2, 9, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := LookupTarget(tt.name)
			if err != nil {
				t.Fatalf("lookup failed: %v", err)
			}
			if target.Name != tt.name {
				t.Errorf("expected name %s, got %s", tt.name, target.Name)
			}

			d := target.Derivs(tt.x0)
			if d.Estimated() {
				t.Error("catalogue targets should have exact higher derivatives")
			}
			if !relClose(d.D1, tt.d1, 1e-12) {
				t.Errorf("f' = %g, expected %g", d.D1, tt.d1)
			}
			if !relClose(d.D2, tt.d2, 1e-12) {
				t.Errorf("f'' = %g, expected %g", d.D2, tt.d2)
			}
			if !relClose(d.D3, tt.d3, 1e-12) {
				t.Errorf("f''' = %g, expected %g", d.D3, tt.d3)
			}
		})
	}
}

func TestHyperdualValues(t *testing.T) {
	cubic := Cubic()
	for _, x := range []float64{-2, 0, 0.3, 4} {
		if got, want := cubic.F(x), x*x*x-2*x; !relClose(got, want, 1e-14) {
			t.Errorf("cubic(%g) = %g, expected %g", x, got, want)
		}
	}
	if d := cubic.Derivs(0); d.D2 != 0 {
		t.Errorf("cubic f''(0) = %g, expected exactly 0", d.D2)
	}
}

func TestEstimatedDerivatives(t *testing.T) {
	target := Target{Name: "sin-estimated", F: math.Sin, DF: math.Cos}

	for _, x0 := range []float64{0.3, 1.0, 2.5} {
		d := target.Derivs(x0)
		if !d.D2Estimated || !d.D3Estimated {
			t.Error("expected estimated derivatives")
		}
		if math.Abs(d.D2+math.Sin(x0)) > 1e-6 {
			t.Errorf("x0=%g: estimated f'' = %g, expected %g", x0, d.D2, -math.Sin(x0))
		}
		if math.Abs(d.D3+math.Cos(x0)) > 1e-6 {
			t.Errorf("x0=%g: estimated f''' = %g, expected %g", x0, d.D3, -math.Cos(x0))
		}
	}
}

func TestLookupTargetUnknown(t *testing.T) {
	if _, err := LookupTarget("tan"); err == nil {
		t.Error("expected error for unknown target")
	}
	names := TargetNames()
	if len(names) != 5 || names[0] != "cos" {
		t.Errorf("unexpected target names %v", names)
	}
}
