package fdiff

import "math"

// DefaultEpsilon is the float64 machine epsilon.
var DefaultEpsilon = math.Nextafter(1, 2) - 1

type Method int

const (
	Forward Method = iota
	Central
)

func (m Method) String() string {
	switch m {
	case Forward:
		return "forward"
	case Central:
		return "central"
	default:
		return "unknown"
	}
}

// ErrorRecord holds the measured and estimated errors of one scheme at one
// step size. Error fields are magnitudes.
type ErrorRecord struct {
	H          float64 `json:"h"`
	Approx     float64 `json:"approx"`
	Actual     float64 `json:"actual"`
	Truncation float64 `json:"truncation"`
	Rounding   float64 `json:"rounding"`
}

// Total is the estimated total error, truncation plus rounding.
func (r ErrorRecord) Total() float64 {
	return r.Truncation + r.Rounding
}

type OptimalPoint struct {
	Method        Method  `json:"-"`
	H             float64 `json:"h"`
	MinTotalError float64 `json:"min_total_error"`
}

type Optimum struct {
	Forward OptimalPoint `json:"forward"`
	Central OptimalPoint `json:"central"`
}

// Derivatives are the derivative values of a target at x0 that the error
// estimates depend on. D2Estimated and D3Estimated mark values that came from
// finite differences rather than closed forms.
type Derivatives struct {
	D1          float64 `json:"d1"`
	D2          float64 `json:"d2"`
	D3          float64 `json:"d3"`
	D2Estimated bool    `json:"d2_estimated"`
	D3Estimated bool    `json:"d3_estimated"`
}

// Estimated reports whether any higher derivative was estimated.
func (d Derivatives) Estimated() bool {
	return d.D2Estimated || d.D3Estimated
}
