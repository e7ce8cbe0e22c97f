package code

import "math"

// PhiMethod names the branch of the buckling-curve evaluation that
// produced a coefficient. The non-standard branches are numeric policy,
// recorded in the verification report.
type PhiMethod string

const (
	PhiStandard   PhiMethod = "standard"    // curve formula
	PhiLowLambda  PhiMethod = "low_lambda"  // below applicability, phi = 1
	PhiHighLambda PhiMethod = "high_lambda" // Euler-like tail, phi = 7.6/λ̄²
)

// PhiResult is one evaluation of a buckling curve.
type PhiResult struct {
	Phi       float64
	LambdaBar float64 // conditional slenderness λ·sqrt(Ry/E)
	Delta     float64 // intermediate of the standard formula, 0 otherwise
	Method    PhiMethod
}

// Phi evaluates the flexural buckling reduction coefficient for
// slenderness lambda (dimensionless, lef/i) against a curve.
//
// Standard branch (formula 8):
//
//	δ = 9.87·(1 − α + β·λ̄) + λ̄²
//	φ = (δ − sqrt(δ² − 39.48·λ̄²)) / (2·λ̄²)
//
// Below the curve's applicability bound φ is 1 (no extrapolation of the
// curve toward zero slenderness); above the threshold the 7.6/λ̄² tail
// applies.
func Phi(lambda, ry, e float64, curve Curve) PhiResult {
	lambdaBar := lambda * math.Sqrt(ry/e)

	if lambdaBar <= curve.LowLambda || lambdaBar <= 0 {
		return PhiResult{Phi: 1.0, LambdaBar: lambdaBar, Method: PhiLowLambda}
	}
	if lambdaBar > curve.Threshold {
		return PhiResult{Phi: 7.6 / (lambdaBar * lambdaBar), LambdaBar: lambdaBar, Method: PhiHighLambda}
	}

	delta := 9.87*(1-curve.Alpha+curve.Beta*lambdaBar) + lambdaBar*lambdaBar
	disc := delta*delta - 39.48*lambdaBar*lambdaBar
	if disc < 0 {
		disc = 0
	}
	phi := (delta - math.Sqrt(disc)) / (2 * lambdaBar * lambdaBar)
	if phi > 1 {
		phi = 1
	}
	return PhiResult{Phi: phi, LambdaBar: lambdaBar, Delta: delta, Method: PhiStandard}
}
