package export

import (
	"encoding/json"
	"io"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/fdlab/internal/fdiff"
)

// Document is the JSON export of a report. Non-finite values are written
// as null.
type Document struct {
	ID          string            `json:"id"`
	Timestamp   time.Time         `json:"timestamp"`
	Target      string            `json:"target"`
	X0          float64           `json:"x0"`
	Epsilon     float64           `json:"epsilon"`
	Range       fdiff.StepRange   `json:"range"`
	Derivatives fdiff.Derivatives `json:"derivatives"`
	Optimum     fdiff.Optimum     `json:"optimum"`
	Forward     []Record          `json:"forward"`
	Central     []Record          `json:"central"`
}

type Record struct {
	H          *float64 `json:"h"`
	Approx     *float64 `json:"approx"`
	Actual     *float64 `json:"actual"`
	Truncation *float64 `json:"truncation"`
	Rounding   *float64 `json:"rounding"`
	Total      *float64 `json:"total"`
}

// NewDocument stamps r with a fresh run id and the current time.
func NewDocument(r *fdiff.Report) Document {
	return Document{
		ID:          uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		Target:      r.Target,
		X0:          r.Params.X0,
		Epsilon:     r.Params.Epsilon,
		Range:       r.Params.Range,
		Derivatives: r.Derivatives,
		Optimum:     r.Optimum,
		Forward:     records(r.Forward),
		Central:     records(r.Central),
	}
}

// WriteJSON writes r as an indented Document.
func WriteJSON(w io.Writer, r *fdiff.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(r))
}

func records(recs []fdiff.ErrorRecord) []Record {
	out := make([]Record, len(recs))
	for i, r := range recs {
		out[i] = Record{
			H:          finite(r.H),
			Approx:     finite(r.Approx),
			Actual:     finite(r.Actual),
			Truncation: finite(r.Truncation),
			Rounding:   finite(r.Rounding),
			Total:      finite(r.Total()),
		}
	}
	return out
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
