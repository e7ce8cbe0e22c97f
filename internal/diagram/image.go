package diagram

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gosteel/internal/code"
	"github.com/alexiusacademia/gosteel/internal/report"
)

// ExportBucklingCurve exports the buckling curve φ(λ̄) for the given
// curve class and marks the verified member's point on it.
func ExportBucklingCurve(curve code.Curve, label string, ry, e float64, b *report.Buckling, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Flexural Buckling Curve %q", label)
	p.X.Label.Text = "Conventional slenderness λ̄"
	p.Y.Label.Text = "Buckling factor φ"
	p.Y.Min = 0
	p.Y.Max = 1.05

	const points = 240
	maxLambda := 6.0 / math.Sqrt(ry/e)
	pts := make(plotter.XYs, points)
	for i := range pts {
		lambda := maxLambda * float64(i) / float64(points-1)
		res := code.Phi(lambda, ry, e, curve)
		pts[i] = plotter.XY{X: res.LambdaBar, Y: res.Phi}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)

	if b != nil {
		member, err := plotter.NewScatter(plotter.XYs{{X: b.LambdaBar, Y: b.Phi}})
		if err != nil {
			return err
		}
		member.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		member.GlyphStyle.Radius = vg.Points(5)
		member.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(member)

		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: b.LambdaBar, Y: b.Phi + 0.05}},
			Labels: []string{fmt.Sprintf("λ̄=%.2f φ=%.3f (%s axis)", b.LambdaBar, b.Phi, b.Axis)},
		})
		if err != nil {
			return err
		}
		p.Add(lbl)
	}

	// Threshold of the high-slenderness tail.
	tail, err := plotter.NewLine(plotter.XYs{
		{X: curve.Threshold, Y: 0},
		{X: curve.Threshold, Y: 1.05},
	})
	if err != nil {
		return err
	}
	tail.LineStyle.Width = vg.Points(1)
	tail.LineStyle.Color = color.Gray{Y: 128}
	tail.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(tail)

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	width := 8 * vg.Inch
	height := 5 * vg.Inch
	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// ExportUtilization exports a bar chart of the check utilization
// ratios, with the pass boundary at 1.0 drawn as a reference line.
func ExportUtilization(results []report.CheckResult, filename string) error {
	p := plot.New()
	p.Title.Text = "Check Utilization"
	p.Y.Label.Text = "demand / capacity"
	p.Y.Min = 0

	values := make(plotter.Values, len(results))
	names := make([]string, len(results))
	for i, r := range results {
		v := r.Ratio
		if math.IsInf(v, 1) {
			v = 2
		}
		values[i] = v
		names[i] = r.Name
	}

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return err
	}
	bars.Color = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	p.Add(bars)
	p.NominalX(names...)

	limit, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: 1},
		{X: float64(len(results)) - 0.5, Y: 1},
	})
	if err != nil {
		return err
	}
	limit.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	limit.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(limit)

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}
	return p.Save(8*vg.Inch, 5*vg.Inch, filename)
}
