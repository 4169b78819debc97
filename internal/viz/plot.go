package viz

import (
	"fmt"
	"math"
	"sort"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/fdlab/internal/fdiff"
)

// logFloor stands in for log10(0) so exact results stay on the chart.
// Non-finite errors are left as NaN gaps.
const logFloor = -20

// LogLogPlot charts log10 of the actual, truncation and rounding error
// against the sampled steps in ascending h. Steps are log-spaced, so the x
// axis is log10(h).
func LogLogPlot(records []fdiff.ErrorRecord, title string, width, height int) string {
	if len(records) == 0 {
		return ""
	}
	sorted := SortedByH(records)

	actual := make([]float64, len(sorted))
	trunc := make([]float64, len(sorted))
	round := make([]float64, len(sorted))
	for i, r := range sorted {
		actual[i] = safeLog10(r.Actual)
		trunc[i] = safeLog10(r.Truncation)
		round[i] = safeLog10(r.Rounding)
	}

	caption := fmt.Sprintf("%s: log10(error), h = %.0e .. %.0e", title, sorted[0].H, sorted[len(sorted)-1].H)
	return asciigraph.PlotMany([][]float64{actual, trunc, round},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(1),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red, asciigraph.Green),
		asciigraph.SeriesLegends("actual", "truncation", "rounding"),
	)
}

// SortedByH returns a copy of records ordered by ascending h.
func SortedByH(records []fdiff.ErrorRecord) []fdiff.ErrorRecord {
	sorted := make([]fdiff.ErrorRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].H < sorted[j].H })
	return sorted
}

func safeLog10(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 1) {
		return math.NaN()
	}
	if v <= 0 {
		return logFloor
	}
	return math.Max(math.Log10(v), logFloor)
}
