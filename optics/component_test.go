package optics_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/lvphoton/matrix"
	"github.com/katalvlaran/lvphoton/optics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireUnitary fails unless comp has a unitary M×M matrix.
func requireUnitary(t *testing.T, comp optics.Component) *matrix.Dense {
	t.Helper()
	u, err := comp.Unitary()
	require.NoError(t, err)
	require.Equal(t, comp.M(), u.Rows())
	ok, err := matrix.IsUnitary(u)
	require.NoError(t, err)
	require.True(t, ok, "%s is not unitary:\n%s", comp.Name(), u)

	return u
}

func at(t *testing.T, m *matrix.Dense, r, c int) complex128 {
	t.Helper()
	v, err := m.At(r, c)
	require.NoError(t, err)

	return v
}

func TestBeamSplitter_Unitary(t *testing.T) {
	for _, conv := range []optics.Convention{optics.ConventionRx, optics.ConventionRy, optics.ConventionH} {
		for _, theta := range []float64{0, 0.3, math.Pi / 2, 2.1, math.Pi} {
			bs := optics.NewBeamSplitter(conv, theta)
			requireUnitary(t, bs)
			requireUnitary(t, bs.WithPhases(0.1, -0.7, 1.3, 2.9))
		}
	}
}

func TestBeamSplitter_BalancedHIsHadamard(t *testing.T) {
	u := requireUnitary(t, optics.BalancedH())
	h := 1 / math.Sqrt2
	want, err := matrix.NewDenseFrom([][]complex128{{complex(h, 0), complex(h, 0)}, {complex(h, 0), complex(-h, 0)}})
	require.NoError(t, err)
	ok, err := matrix.AllClose(u, want)
	require.NoError(t, err)
	assert.True(t, ok, "got:\n%s", u)
	assert.Equal(t, "BS.H", optics.BalancedH().Name())
}

func TestBeamSplitter_WithPhasesCopies(t *testing.T) {
	bs := optics.NewBeamSplitter(optics.ConventionRx, 1)
	ph := bs.WithPhases(1, 2, 3, 4)
	assert.Zero(t, bs.PhiTL)
	assert.Equal(t, 4.0, ph.PhiBR)
	assert.Contains(t, ph.String(), "φbr=4")
	assert.NotContains(t, bs.String(), "φ")
}

func TestReflectivityToTheta(t *testing.T) {
	for _, r := range []float64{0, 1.0 / 3, 0.5, 1} {
		theta := optics.ReflectivityToTheta(r)
		c := math.Cos(theta / 2)
		assert.InDelta(t, r, c*c, 1e-12)
	}
}

func TestPhaseShifter(t *testing.T) {
	u := requireUnitary(t, optics.NewPhaseShifter(math.Pi/2))
	assert.InDelta(t, 0, cmplx.Abs(at(t, u, 0, 0)-1i), 1e-12)
	assert.Equal(t, 1, optics.NewPhaseShifter(0).M())
}

func TestNewUnitary(t *testing.T) {
	good, err := matrix.NewDenseFrom([][]complex128{{0, 1i}, {1i, 0}})
	require.NoError(t, err)
	u, err := optics.NewUnitary("iX", good)
	require.NoError(t, err)
	assert.Equal(t, 2, u.M())
	assert.Equal(t, "iX[2×2]", u.String())

	// mutating the source must not leak into the component
	require.NoError(t, good.Set(0, 1, 5))
	requireUnitary(t, u)

	_, err = optics.NewUnitary("bad", good)
	require.ErrorIs(t, err, optics.ErrNotUnitary)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = optics.NewUnitary("rect", rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = optics.NewUnitary("nil", nil)
	require.ErrorIs(t, err, optics.ErrNilComponent)
}
