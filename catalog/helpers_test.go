package catalog_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvphoton/matrix"
	"github.com/stretchr/testify/require"
)

// permanent expands along the first row; inputs here are at most 4×4.
func permanent(m [][]complex128) complex128 {
	if len(m) == 0 {
		return 1
	}
	var sum complex128
	for j, v := range m[0] {
		if v == 0 {
			continue
		}
		minor := make([][]complex128, 0, len(m)-1)
		for _, row := range m[1:] {
			r := make([]complex128, 0, len(row)-1)
			r = append(r, row[:j]...)
			minor = append(minor, append(r, row[j+1:]...))
		}
		sum += v * permanent(minor)
	}

	return sum
}

// multiplicityNorm returns sqrt(prod n_k!) over the repeated modes of list.
func multiplicityNorm(list []int) float64 {
	counts := make(map[int]int, len(list))
	for _, m := range list {
		counts[m]++
	}
	norm := 1.0
	for _, n := range counts {
		for k := 2; k <= n; k++ {
			norm *= float64(k)
		}
	}

	return math.Sqrt(norm)
}

// transition is the amplitude of detecting photons on out (one entry per
// photon) when photons enter on in.
func transition(t *testing.T, u *matrix.Dense, in, out []int) complex128 {
	t.Helper()
	require.Equal(t, len(in), len(out), "photon number is conserved")
	sub := make([][]complex128, len(out))
	for i, o := range out {
		sub[i] = make([]complex128, len(in))
		for j, k := range in {
			v, err := u.At(o, k)
			require.NoError(t, err)
			sub[i][j] = v
		}
	}

	return permanent(sub) / complex(multiplicityNorm(in)*multiplicityNorm(out), 0)
}
