package load_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosteel/internal/load"
)

func TestNormalizeUnits(t *testing.T) {
	c, err := load.Normalize(load.Raw{
		Type:    load.CentralCompression,
		N:       500,
		Length:  3,
		Support: load.SupportPinned,
	})
	require.NoError(t, err)

	assert.Equal(t, 500e3, c.N)       // kN → N
	assert.Equal(t, 3000.0, c.Length) // m → mm
	assert.Equal(t, 1.0, c.MuX)
	assert.Equal(t, 1.0, c.MuY)
	assert.Equal(t, 3000.0, c.LefX)
	assert.Equal(t, 3000.0, c.LefY)
}

func TestSupportFactors(t *testing.T) {
	cases := []struct {
		support load.Support
		mu      float64
	}{
		{load.SupportCantilever, 2.0},
		{load.SupportPinned, 1.0},
		{load.SupportFixed, 0.5},
		{load.SupportFixedPinned, 0.7},
	}
	for _, tc := range cases {
		c, err := load.Normalize(load.Raw{
			Type: load.CentralCompression, N: 100, Length: 2, Support: tc.support,
		})
		require.NoError(t, err, tc.support)
		assert.Equal(t, tc.mu, c.MuX, tc.support)
		assert.Equal(t, tc.mu*2000, c.LefX, tc.support)
	}
}

func TestExplicitMuOverridesSupport(t *testing.T) {
	c, err := load.Normalize(load.Raw{
		Type: load.CentralCompression, N: 100, Length: 2,
		Support: load.SupportPinned, MuX: 0.8,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.8, c.MuX)
	assert.Equal(t, 1.0, c.MuY) // unset axis still defaults from the scheme
}

func TestEccentricityFolding(t *testing.T) {
	c, err := load.Normalize(load.Raw{
		Type: load.EccentricCompression, N: 100, Ey: 50, Length: 2,
		Support: load.SupportPinned,
	})
	require.NoError(t, err)
	// Mx = N·ey = 100e3 N · 50 mm
	assert.Equal(t, 5e6, c.Mx)
	assert.Equal(t, 0.0, c.My)
}

func TestCentralTypesRejectMoments(t *testing.T) {
	var ierr *load.InconsistentError
	for _, raw := range []load.Raw{
		{Type: load.CentralCompression, N: 100, Mx: 10, Length: 2, Support: load.SupportPinned},
		{Type: load.CentralCompression, N: 100, Ey: 20, Length: 2, Support: load.SupportPinned},
		{Type: load.CentralTension, N: 100, Q: 10},
		{Type: load.CentralTension}, // no axial force at all
	} {
		_, err := load.Normalize(raw)
		require.Error(t, err)
		assert.True(t, errors.As(err, &ierr), "%+v", raw)
	}
}

func TestBendingConsistency(t *testing.T) {
	var ierr *load.InconsistentError

	// Uniaxial with a weak-axis moment belongs to biaxial.
	_, err := load.Normalize(load.Raw{
		Type: load.UniaxialBending, Mx: 50, My: 10, Length: 4, Support: load.SupportPinned,
	})
	require.Error(t, err)
	assert.True(t, errors.As(err, &ierr))

	// Biaxial needs both moments.
	_, err = load.Normalize(load.Raw{
		Type: load.BiaxialBending, Mx: 50, Length: 4, Support: load.SupportPinned,
	})
	require.Error(t, err)
	assert.True(t, errors.As(err, &ierr))

	// An axial force on a bending type is rejected, never re-tagged.
	_, err = load.Normalize(load.Raw{
		Type: load.UniaxialBending, Mx: 50, N: 100, Length: 4, Support: load.SupportPinned,
	})
	require.Error(t, err)
	assert.True(t, errors.As(err, &ierr))
}

func TestPureShearConsistency(t *testing.T) {
	c, err := load.Normalize(load.Raw{Type: load.PureShear, Q: 80})
	require.NoError(t, err)
	assert.Equal(t, 80e3, c.Q)

	var ierr *load.InconsistentError
	_, err = load.Normalize(load.Raw{Type: load.PureShear, Q: 80, Mx: 10})
	require.Error(t, err)
	assert.True(t, errors.As(err, &ierr))
}

func TestCombinedNeedsAComponent(t *testing.T) {
	var ierr *load.InconsistentError
	_, err := load.Normalize(load.Raw{Type: load.Combined, Length: 3, Support: load.SupportPinned})
	require.Error(t, err)
	assert.True(t, errors.As(err, &ierr))
}

func TestCompressionNeedsLength(t *testing.T) {
	_, err := load.Normalize(load.Raw{Type: load.CentralCompression, N: 100})
	assert.Error(t, err)

	// Tension members carry no stability check, so no length is needed.
	_, err = load.Normalize(load.Raw{Type: load.CentralTension, N: 100})
	assert.NoError(t, err)
}

func TestValidatorBounds(t *testing.T) {
	_, err := load.Normalize(load.Raw{Type: load.CentralTension, N: 2e5})
	assert.Error(t, err)

	_, err = load.Normalize(load.Raw{
		Type: load.CentralCompression, N: 100, Length: 200, Support: load.SupportPinned,
	})
	assert.Error(t, err)

	_, err = load.Normalize(load.Raw{Type: load.CentralTension, N: -5})
	assert.Error(t, err)
}

func TestParseHelpers(t *testing.T) {
	typ, err := load.ParseType("eccentric-compression")
	require.NoError(t, err)
	assert.Equal(t, load.EccentricCompression, typ)

	_, err = load.ParseType("torsion")
	assert.Error(t, err)

	sup, err := load.ParseSupport("fixed-pinned")
	require.NoError(t, err)
	assert.Equal(t, load.SupportFixedPinned, sup)

	_, err = load.ParseSupport("floating")
	assert.Error(t, err)
}

func TestCompressionTag(t *testing.T) {
	assert.True(t, load.CentralCompression.Compression())
	assert.True(t, load.EccentricCompression.Compression())
	assert.True(t, load.Combined.Compression())
	assert.False(t, load.CentralTension.Compression())
	assert.False(t, load.UniaxialBending.Compression())
}
