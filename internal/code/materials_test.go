package code_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosteel/internal/code"
)

func TestResolveStrengthBrackets(t *testing.T) {
	cases := []struct {
		grade     string
		thickness float64
		ryn       float64
	}{
		{"C245", 10, 245},
		{"C245", 20, 245}, // inclusive upper bound
		{"C245", 25, 235},
		{"C245", 40, 235},
		{"C255", 5, 255},
		{"C255", 15, 245},
		{"C345", 30, 305},
		{"C390", 10, 390},
	}
	for _, tc := range cases {
		st, err := code.ResolveStrength(tc.grade, tc.thickness)
		require.NoError(t, err, "%s t=%.0f", tc.grade, tc.thickness)
		assert.Equal(t, tc.ryn, st.Ryn, "%s t=%.0f", tc.grade, tc.thickness)
	}
}

func TestDesignStrengthDerivation(t *testing.T) {
	st, err := code.ResolveStrength("C245", 10)
	require.NoError(t, err)

	assert.InDelta(t, 245.0/1.025, st.Ry, 1e-9)
	assert.InDelta(t, 370.0/1.025, st.Ru, 1e-9)
	assert.InDelta(t, 0.58*245.0/1.025, st.Rs, 1e-9)
	assert.Equal(t, 206000.0, st.E)
	assert.Equal(t, 1.025, st.GammaM)
}

func TestC390ReliabilityFactor(t *testing.T) {
	st, err := code.ResolveStrength("C390", 10)
	require.NoError(t, err)
	assert.Equal(t, 1.05, st.GammaM)
	assert.InDelta(t, 390.0/1.05, st.Ry, 1e-9)
}

func TestThicknessBeyondTable(t *testing.T) {
	_, err := code.ResolveStrength("C245", 41)
	require.Error(t, err)
	var terr *code.ThicknessRangeError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, 40.0, terr.Max)

	// C345K has a single thin bracket.
	_, err = code.ResolveStrength("C345K", 12)
	assert.True(t, errors.As(err, &terr))
}

func TestUnknownGrade(t *testing.T) {
	_, err := code.ResolveStrength("S355", 10)
	require.Error(t, err)
	var gerr *code.UnknownGradeError
	assert.True(t, errors.As(err, &gerr))
}

func TestNonPositiveThickness(t *testing.T) {
	var terr *code.ThicknessRangeError
	_, err := code.ResolveStrength("C245", 0)
	require.Error(t, err)
	assert.True(t, errors.As(err, &terr))

	_, err = code.ResolveStrength("C245", -3)
	require.Error(t, err)
	assert.True(t, errors.As(err, &terr))
	assert.Equal(t, -3.0, terr.Thickness)
}

func TestGradesListed(t *testing.T) {
	gs := code.Grades()
	assert.Contains(t, gs, "C235")
	assert.Contains(t, gs, "C390")
	for _, g := range gs {
		brackets, err := code.GradeBrackets(g)
		require.NoError(t, err)
		require.NotEmpty(t, brackets)
		// Brackets ordered by strictly increasing thickness.
		for i := 1; i < len(brackets); i++ {
			assert.Greater(t, brackets[i].MaxThickness, brackets[i-1].MaxThickness)
		}
	}
}
