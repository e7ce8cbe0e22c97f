package profile_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosteel/internal/profile"
)

func TestIBeamExplicitDimensions(t *testing.T) {
	prof := &profile.SectionProfile{Shape: profile.IBeam, H: 400, B: 200, Tw: 8, Tf: 12}
	props, err := profile.Resolve(prof)
	require.NoError(t, err)

	// A = 2·(200·12) + 376·8
	assert.InDelta(t, 7808, props.A, 1e-9)
	// Ix = 200·400³/12 − 2·(96·376³/12)
	assert.InDelta(t, 2.16149e8, props.Ix, 1e4)
	assert.InDelta(t, 1.60160e7, props.Iy, 1e3)
	assert.InDelta(t, 1.08074e6, props.Wx, 1e2)
	// Sx = one flange about mid-depth plus half the web
	assert.InDelta(t, 606976, props.Sx, 1e-6)

	assert.InDelta(t, math.Sqrt(props.Ix/props.A), props.Rx, 1e-12)
	assert.Equal(t, 12.0, props.PlateThickness)
	assert.Equal(t, 8.0, props.WebThickness)
	assert.True(t, props.TorsionApprox)
	assert.False(t, props.FromCatalog)
}

func TestResolveDeterministic(t *testing.T) {
	prof := &profile.SectionProfile{Shape: profile.IBeam, H: 400, B: 200, Tw: 8, Tf: 12}
	a, err := profile.Resolve(prof)
	require.NoError(t, err)
	b, err := profile.Resolve(prof)
	require.NoError(t, err)

	// Same inputs must reproduce bit-identical properties.
	assert.Equal(t, a, b)
}

func TestCircTubeExactTorsion(t *testing.T) {
	prof := &profile.SectionProfile{Shape: profile.CircTube, D: 100, T: 10}
	props, err := profile.Resolve(prof)
	require.NoError(t, err)

	assert.InDelta(t, math.Pi*900, props.A, 1e-9)
	assert.InDelta(t, math.Pi*(1e8-4.096e7)/64, props.Ix, 1e-6)
	// Polar moment is exact for the annulus.
	assert.Equal(t, 2*props.Ix, props.It)
	assert.False(t, props.TorsionApprox)
	assert.Equal(t, props.Ix, props.Iy)
}

func TestRectTubeProperties(t *testing.T) {
	prof := &profile.SectionProfile{Shape: profile.RectTube, H: 200, B: 100, T: 8}
	props, err := profile.Resolve(prof)
	require.NoError(t, err)

	assert.InDelta(t, 200*100-184*84, props.A, 1e-9)
	// Two webs resist shear.
	assert.Equal(t, 16.0, props.WebThickness)
	assert.Greater(t, props.Ix, props.Iy)
}

func TestAnglePrincipalMinimum(t *testing.T) {
	prof := &profile.SectionProfile{Shape: profile.Angle, B: 100, T: 10}
	props, err := profile.Resolve(prof)
	require.NoError(t, err)

	assert.InDelta(t, 1900, props.A, 1e-9)
	// The principal minimum axis of an equal-leg angle lies at 45°; its
	// radius is below both rectangular-axis radii.
	assert.Less(t, props.RMin, props.Rx)
	assert.Greater(t, props.RMin, 0.0)
}

func TestInvalidGeometry(t *testing.T) {
	cases := []struct {
		name string
		prof profile.SectionProfile
	}{
		{"web thicker than flange width", profile.SectionProfile{Shape: profile.IBeam, H: 200, B: 10, Tw: 12, Tf: 8}},
		{"flanges consume the depth", profile.SectionProfile{Shape: profile.IBeam, H: 20, B: 100, Tw: 5, Tf: 10}},
		{"zero dimensions", profile.SectionProfile{Shape: profile.Channel}},
		{"angle thickness over leg", profile.SectionProfile{Shape: profile.Angle, B: 50, T: 50}},
		{"tube wall leaves no bore", profile.SectionProfile{Shape: profile.CircTube, D: 40, T: 20}},
		{"rect tube wall too thick", profile.SectionProfile{Shape: profile.RectTube, H: 40, B: 100, T: 20}},
		{"unknown shape", profile.SectionProfile{Shape: "hexagon", H: 100, B: 100}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := profile.Resolve(&tc.prof)
			require.Error(t, err)
			var gerr *profile.GeometryError
			assert.True(t, errors.As(err, &gerr))
		})
	}
}
