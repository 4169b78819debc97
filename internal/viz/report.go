package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/san-kum/fdlab/internal/fdiff"
)

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorder).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeader
			}
			return tableCell
		})
}

// Theory summarizes both formulas and their error orders.
func Theory() string {
	forward := lipgloss.JoinVertical(lipgloss.Left,
		Title.Render("Forward difference"),
		"f'(x) ≈ (f(x+h) - f(x)) / h",
		MetricLabel.Render("truncation ")+"(h/2)|f''(x)|   O(h)",
		MetricLabel.Render("rounding   ")+"2ε/h           O(ε/h)",
	)
	central := lipgloss.JoinVertical(lipgloss.Left,
		Title.Render("Central difference"),
		"f'(x) ≈ (f(x+h) - f(x-h)) / 2h",
		MetricLabel.Render("truncation ")+"(h²/6)|f'''(x)| O(h²)",
		MetricLabel.Render("rounding   ")+"ε/h             O(ε/h)",
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, Panel.Render(forward), " ", Panel.Render(central))
}

// OptimumTable lists the analytic optimum and the best sampled step of each
// scheme.
func OptimumTable(r *fdiff.Report) string {
	t := newTable().Headers("method", "h_opt", "min total error", "best sampled h", "best sampled error")
	for _, m := range []fdiff.Method{fdiff.Forward, fdiff.Central} {
		opt := r.OptimalPoint(m)
		best := r.Empirical.Forward
		if m == fdiff.Central {
			best = r.Empirical.Central
		}
		t.Row(m.String(), sci(opt.H), sci(opt.MinTotalError), sci(best.H), sci(best.Actual))
	}
	return t.Render()
}

// ComparisonTable contrasts the two schemes, with the closed forms evaluated
// for this report.
func ComparisonTable(r *fdiff.Report) string {
	f, c := r.Optimum.Forward, r.Optimum.Central
	return newTable().
		Headers("aspect", "forward", "central").
		Row("truncation order", "O(h)", "O(h²)").
		Row("rounding order", "O(ε/h)", "O(ε/h)").
		Row("optimal h", "2√(ε/|f''|) = "+sci(f.H), "∛(3ε/|f'''|) = "+sci(c.H)).
		Row("best accuracy", "~√ε = "+sci(f.MinTotalError), "~ε^(2/3) = "+sci(c.MinTotalError)).
		Row("stability", "moderate", "better").
		Render()
}

// Summary is the header block naming the target and parameters.
func Summary(r *fdiff.Report) string {
	p := r.Params
	d := r.Derivatives
	lines := []string{
		Title.Render(fmt.Sprintf("f = %s at x0 = %g", r.Target, p.X0)),
		metric("epsilon", sci(p.Epsilon)) + "  " +
			metric("h", fmt.Sprintf("1e%d .. 1e%d (%d points)", p.Range.MinExp, p.Range.MaxExp, p.Range.NumPoints)),
		metric("f'", fmt.Sprintf("%.6g", d.D1)) + "  " +
			metric("f''", fmt.Sprintf("%.6g", d.D2)) + "  " +
			metric("f'''", fmt.Sprintf("%.6g", d.D3)),
	}
	if d.Estimated() {
		lines = append(lines, Subtle.Render("higher derivatives estimated by finite differences"))
	}
	return strings.Join(lines, "\n")
}

// Render lays out a complete report: summary, theory, both plots and the
// tables.
func Render(r *fdiff.Report, width, height int) string {
	var b strings.Builder
	b.WriteString(Summary(r) + "\n\n")
	b.WriteString(Theory() + "\n\n")
	b.WriteString(LogLogPlot(r.Forward, "forward difference", width, height) + "\n\n")
	b.WriteString(LogLogPlot(r.Central, "central difference", width, height) + "\n\n")
	b.WriteString(Title.Render("Optimal step") + "\n")
	b.WriteString(OptimumTable(r) + "\n\n")
	b.WriteString(Title.Render("Method comparison") + "\n")
	b.WriteString(ComparisonTable(r) + "\n")
	return b.String()
}

func metric(label, value string) string {
	return MetricLabel.Render(label+" ") + MetricValue.Render(value)
}

func sci(v float64) string {
	return fmt.Sprintf("%.3e", v)
}

// RenderCurves lays out the plots of a run whose optimum is undefined, with
// the reason in place of the optimum tables.
func RenderCurves(target string, p fdiff.Params, forward, central []fdiff.ErrorRecord, reason error, width, height int) string {
	var b strings.Builder
	b.WriteString(Title.Render(fmt.Sprintf("f = %s at x0 = %g", target, p.X0)) + "\n")
	b.WriteString(ErrorText.Render(reason.Error()) + "\n\n")
	b.WriteString(LogLogPlot(forward, "forward difference", width, height) + "\n\n")
	b.WriteString(LogLogPlot(central, "central difference", width, height) + "\n")
	return b.String()
}
