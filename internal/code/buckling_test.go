package code_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosteel/internal/code"
)

func curveB(t *testing.T) code.Curve {
	t.Helper()
	ed := code.DefaultEdition()
	c, ok := ed.Curves["b"]
	require.True(t, ok)
	return c
}

func TestPhiLowLambda(t *testing.T) {
	ry := 245.0 / 1.025
	res := code.Phi(10, ry, code.E, curveB(t)) // λ̄ ≈ 0.34
	assert.Equal(t, 1.0, res.Phi)
	assert.Equal(t, code.PhiLowLambda, res.Method)
}

func TestPhiStandardFormula(t *testing.T) {
	ry := 245.0 / 1.025
	// I-20 over 1.0 m pinned: λ = 1000/20.7.
	res := code.Phi(1000.0/20.7, ry, code.E, curveB(t))
	assert.Equal(t, code.PhiStandard, res.Method)
	assert.InDelta(t, 1.6456, res.LambdaBar, 1e-3)
	assert.InDelta(t, 0.8754, res.Phi, 1e-3)
}

func TestPhiHighLambdaTail(t *testing.T) {
	curve := curveB(t)
	ry := 245.0 / 1.025
	// Pick λ so that λ̄ = 5, past the curve-b threshold 4.4.
	lambda := 5.0 / math.Sqrt(ry/code.E)
	res := code.Phi(lambda, ry, code.E, curve)
	assert.Equal(t, code.PhiHighLambda, res.Method)
	assert.InDelta(t, 7.6/25.0, res.Phi, 1e-6)
}

func TestPhiMonotonicallyDecreasing(t *testing.T) {
	curve := curveB(t)
	ry := 245.0 / 1.025
	prev := 1.0
	for lambda := 20.0; lambda <= 200; lambda += 5 {
		res := code.Phi(lambda, ry, code.E, curve)
		assert.LessOrEqual(t, res.Phi, prev, "λ = %.0f", lambda)
		assert.Greater(t, res.Phi, 0.0)
		prev = res.Phi
	}
}

func TestCurveOrdering(t *testing.T) {
	// At the same slenderness, curve a is the most favorable and curve c
	// the least.
	ed := code.DefaultEdition()
	ry := 245.0 / 1.025
	const lambda = 80.0
	a := code.Phi(lambda, ry, code.E, ed.Curves["a"]).Phi
	b := code.Phi(lambda, ry, code.E, ed.Curves["b"]).Phi
	c := code.Phi(lambda, ry, code.E, ed.Curves["c"]).Phi
	assert.Greater(t, a, b)
	assert.Greater(t, b, c)
}
