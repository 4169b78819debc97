package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/san-kum/fdlab/internal/fdiff"
)

const (
	DefaultSVGWidth  = 800
	DefaultSVGHeight = 900

	svgMargin = 60
)

// Point is a chart coordinate in log10 space.
type Point struct{ X, Y float64 }

type series struct {
	name   string
	stroke string
	points []Point
}

// WriteSVG renders one log-log panel per method, stacked vertically. Each
// panel draws the actual, truncation and rounding error against h and marks
// the optimal step.
func WriteSVG(w io.Writer, r *fdiff.Report, width, height int) error {
	if width <= 2*svgMargin || height <= 4*svgMargin {
		return fmt.Errorf("svg size %dx%d too small", width, height)
	}
	panelH := height / 2

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="monospace" font-size="12">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for i, m := range []fdiff.Method{fdiff.Forward, fdiff.Central} {
		sb.WriteString(fmt.Sprintf(`<g id="%s" transform="translate(0,%d)">
`, m, i*panelH))
		writePanel(&sb, r, m, width, panelH)
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writePanel(sb *strings.Builder, r *fdiff.Report, m fdiff.Method, width, height int) {
	recs := r.Records(m)
	all := []series{
		{"actual", "#00aaff", logPoints(recs, func(e fdiff.ErrorRecord) float64 { return e.Actual })},
		{"truncation", "#ff4444", logPoints(recs, func(e fdiff.ErrorRecord) float64 { return e.Truncation })},
		{"rounding", "#44ff44", logPoints(recs, func(e fdiff.ErrorRecord) float64 { return e.Rounding })},
	}
	opt := r.OptimalPoint(m)
	marker, hasMarker := logPoint(opt.H, opt.MinTotalError)

	var pts []Point
	for _, s := range all {
		pts = append(pts, s.points...)
	}
	if hasMarker {
		pts = append(pts, marker)
	}

	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="#00ffff">%s difference: log10(error) vs log10(h)</text>
`, svgMargin, svgMargin/2, m))
	if len(pts) == 0 {
		return
	}
	b := boundsOf(pts)

	plotW := float64(width - 2*svgMargin)
	plotH := float64(height - 2*svgMargin)
	project := func(p Point) (float64, float64) {
		x := svgMargin + (p.X-b.minX)/b.rangeX()*plotW
		y := svgMargin + plotH - (p.Y-b.minY)/b.rangeY()*plotH
		return x, y
	}

	sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%.0f" height="%.0f" fill="none" stroke="#444466"/>
`, svgMargin, svgMargin, plotW, plotH))
	for d := math.Ceil(b.minX); d <= b.maxX; d++ {
		x, _ := project(Point{d, b.minY})
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.0f" fill="#888899" text-anchor="middle">%g</text>
`, x, float64(svgMargin)+plotH+16, d))
	}
	for d := math.Ceil(b.minY); d <= b.maxY; d++ {
		_, y := project(Point{b.minX, d})
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%.1f" fill="#888899" text-anchor="end">%g</text>
`, svgMargin-6, y+4, d))
	}

	for i, s := range all {
		if len(s.points) >= 2 {
			sb.WriteString(fmt.Sprintf(`<path class="%s" fill="none" stroke="%s" stroke-width="1.5" d="%s"/>
`, s.name, s.stroke, pathData(s.points, project)))
		}
		sb.WriteString(fmt.Sprintf(`<text x="%.0f" y="%d" fill="%s">%s</text>
`, float64(svgMargin)+plotW-90, svgMargin+16*(i+1), s.stroke, s.name))
	}

	if hasMarker {
		x, y := project(marker)
		sb.WriteString(fmt.Sprintf(`<circle class="optimum" cx="%.1f" cy="%.1f" r="5" fill="#ffff00"/>
<text x="%.1f" y="%.1f" fill="#ffff00">h* = %.3e</text>
`, x, y, x+8, y-8, opt.H))
	}
}

func pathData(points []Point, project func(Point) (float64, float64)) string {
	var sb strings.Builder
	for i, p := range points {
		x, y := project(p)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("M%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	return sb.String()
}

// logPoints maps records to log10 coordinates, dropping zero and
// non-finite errors, which have no place on a log axis.
func logPoints(recs []fdiff.ErrorRecord, val func(fdiff.ErrorRecord) float64) []Point {
	sorted := make([]fdiff.ErrorRecord, len(recs))
	copy(sorted, recs)
	sortByH(sorted)

	pts := make([]Point, 0, len(sorted))
	for _, r := range sorted {
		if p, ok := logPoint(r.H, val(r)); ok {
			pts = append(pts, p)
		}
	}
	return pts
}

func logPoint(x, y float64) (Point, bool) {
	if !(x > 0) || !(y > 0) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return Point{}, false
	}
	return Point{math.Log10(x), math.Log10(y)}, true
}

type bounds struct {
	minX, maxX, minY, maxY float64
}

func (b bounds) rangeX() float64 { return b.maxX - b.minX }
func (b bounds) rangeY() float64 { return b.maxY - b.minY }

// boundsOf returns the bounding box of points, padded by 5% and at least
// one decade wide on each axis.
func boundsOf(points []Point) bounds {
	b := bounds{points[0].X, points[0].X, points[0].Y, points[0].Y}
	for _, p := range points {
		b.minX = math.Min(b.minX, p.X)
		b.maxX = math.Max(b.maxX, p.X)
		b.minY = math.Min(b.minY, p.Y)
		b.maxY = math.Max(b.maxY, p.Y)
	}
	if b.rangeX() < 1 {
		b.minX, b.maxX = b.minX-0.5, b.maxX+0.5
	}
	if b.rangeY() < 1 {
		b.minY, b.maxY = b.minY-0.5, b.maxY+0.5
	}
	padX, padY := b.rangeX()*0.05, b.rangeY()*0.05
	return bounds{b.minX - padX, b.maxX + padX, b.minY - padY, b.maxY + padY}
}
