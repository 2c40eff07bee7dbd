// Package compiler_test contains unit and scenario tests for the compiler.
package compiler_test

import (
	"testing"

	"github.com/katalvlaran/lvphoton/circuit"
	"github.com/katalvlaran/lvphoton/compiler"
	"github.com/katalvlaran/lvphoton/matrix"
	"github.com/katalvlaran/lvphoton/optics"
	"github.com/katalvlaran/lvphoton/processor"
	"github.com/stretchr/testify/require"
)

// mustCompile compiles c or fails the test.
func mustCompile(t *testing.T, c *circuit.Circuit, opts ...compiler.Option) *processor.Processor {
	t.Helper()
	p, err := compiler.Compile(c, opts...)
	require.NoError(t, err)

	return p
}

// permAt returns offset and vector of the PERM entry at idx.
func permAt(t *testing.T, p *processor.Processor, idx int) (int, []int) {
	t.Helper()
	entries := p.Network.Entries()
	require.Greater(t, len(entries), idx)
	perm, ok := entries[idx].Component.(*optics.Permutation)
	require.True(t, ok, "entry %d is %s, not PERM", idx, entries[idx].Component.Name())

	return entries[idx].Offset, perm.Vector()
}

// subCircuitAt returns offset and circuit of the nested circuit entry at idx.
func subCircuitAt(t *testing.T, p *processor.Processor, idx int) (int, *optics.Circuit) {
	t.Helper()
	entries := p.Network.Entries()
	require.Greater(t, len(entries), idx)
	sub, ok := entries[idx].Component.(*optics.Circuit)
	require.True(t, ok, "entry %d is %s, not a circuit", idx, entries[idx].Component.Name())

	return entries[idx].Offset, sub
}

func sourceModes(p *processor.Processor) []int {
	out := make([]int, len(p.Sources))
	for i, s := range p.Sources {
		out[i] = s.Mode
	}

	return out
}

func requireUnitaryNetwork(t *testing.T, p *processor.Processor) {
	t.Helper()
	u, err := p.Network.Unitary()
	require.NoError(t, err)
	ok, err := matrix.IsUnitary(u)
	require.NoError(t, err)
	require.True(t, ok)
}

func inverseOf(v []int) []int {
	inv := make([]int, len(v))
	for i, x := range v {
		inv[x] = i
	}

	return inv
}

func compilerHeralded(heralded bool) []compiler.Option {
	return []compiler.Option{compiler.WithHeralded(heralded)}
}

// permanent expands along the first row; inputs here are a handful of photons.
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

// photonList expands a mode -> count map entry list into one mode per photon.
func photonList(modes, counts []int) []int {
	var out []int
	for i, m := range modes {
		for k := 0; k < counts[i]; k++ {
			out = append(out, m)
		}
	}

	return out
}

// detectionProbability is |perm(U[out, in])|² / (prod in! · prod out!) for
// photon lists in and out.
func detectionProbability(t *testing.T, p *processor.Processor, in, out []int) float64 {
	t.Helper()
	require.Equal(t, len(in), len(out))
	u, err := p.Network.Unitary()
	require.NoError(t, err)
	sub := make([][]complex128, len(out))
	for i, o := range out {
		sub[i] = make([]complex128, len(in))
		for j, k := range in {
			v, err := u.At(o, k)
			require.NoError(t, err)
			sub[i][j] = v
		}
	}
	norm := 1.0
	for _, list := range [][]int{in, out} {
		seen := make(map[int]int, len(list))
		for _, m := range list {
			seen[m]++
			norm *= float64(seen[m])
		}
	}
	amp := permanent(sub)

	return (real(amp)*real(amp) + imag(amp)*imag(amp)) / norm
}

// twoQubitOutcomes returns P(|xy>) for x, y in {0,1}, with heralds met.
func twoQubitOutcomes(t *testing.T, p *processor.Processor) [2][2]float64 {
	t.Helper()
	var srcModes, srcCounts, hModes, hCounts []int
	for _, s := range p.Sources {
		srcModes, srcCounts = append(srcModes, s.Mode), append(srcCounts, s.Photons)
	}
	for _, h := range p.Heralds {
		hModes, hCounts = append(hModes, h.Mode), append(hCounts, h.Count)
	}
	in := photonList(srcModes, srcCounts)
	heralded := photonList(hModes, hCounts)

	var out [2][2]float64
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			pattern := append([]int{p.QubitModes[0].Zero + x, p.QubitModes[1].Zero + y}, heralded...)
			out[x][y] = detectionProbability(t, p, in, pattern)
		}
	}

	return out
}
