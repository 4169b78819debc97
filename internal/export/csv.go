package export

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/san-kum/fdlab/internal/fdiff"
)

var csvHeader = []string{"h", "method", "approx", "actual", "truncation", "rounding", "total"}

// WriteCSV writes one row per error record, forward records first, each
// method in ascending h.
func WriteCSV(w io.Writer, r *fdiff.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, m := range []fdiff.Method{fdiff.Forward, fdiff.Central} {
		recs := append([]fdiff.ErrorRecord(nil), r.Records(m)...)
		sortByH(recs)
		for _, rec := range recs {
			row := []string{
				formatFloat(rec.H),
				m.String(),
				formatFloat(rec.Approx),
				formatFloat(rec.Actual),
				formatFloat(rec.Truncation),
				formatFloat(rec.Rounding),
				formatFloat(rec.Total()),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func sortByH(recs []fdiff.ErrorRecord) {
	sort.Slice(recs, func(i, j int) bool { return recs[i].H < recs[j].H })
}
