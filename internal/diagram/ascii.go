// Package diagram renders verification output for terminals and image
// export. It consumes engine results only and recomputes nothing.
package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gosteel/internal/code"
	"github.com/alexiusacademia/gosteel/internal/report"
)

// CurveSparkline plots the buckling curve φ(λ̄) over the usual
// slenderness range, for quick terminal inspection.
func CurveSparkline(curve code.Curve, ry, e float64) string {
	const points = 60
	data := make([]float64, 0, points)
	// Sweep member slenderness so that λ̄ covers 0..6.
	maxLambda := 6.0 / math.Sqrt(ry/e)
	for i := 0; i < points; i++ {
		lambda := maxLambda * float64(i) / float64(points-1)
		data = append(data, code.Phi(lambda, ry, e, curve).Phi)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Caption("buckling curve φ(λ̄), λ̄ = 0…6"),
	)
}

// UtilizationBars renders one bar per check result. The pass boundary
// (ratio = 1) sits mid-bar; ratios above 2 are clipped.
func UtilizationBars(results []report.CheckResult) string {
	const width = 40
	var sb strings.Builder
	for _, res := range results {
		ratio := res.Ratio
		if ratio > 2 {
			ratio = 2
		}
		filled := int(math.Round(ratio / 2 * width))
		mark := "OK"
		if !res.Pass {
			mark = "FAIL"
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("·", width-filled)
		sb.WriteString(fmt.Sprintf("  %-18s %s %6.3f %s\n", res.Name, bar, res.Ratio, mark))
	}
	return sb.String()
}
