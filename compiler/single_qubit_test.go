package compiler_test

import (
	"testing"

	"github.com/katalvlaran/lvphoton/circuit"
	"github.com/katalvlaran/lvphoton/optics"
	"github.com/katalvlaran/lvphoton/processor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_SingleH(t *testing.T) {
	p := mustCompile(t, circuit.New(1).Add("h", []int{0}))

	assert.Equal(t, 2, p.M())
	assert.Equal(t, []processor.Source{{Mode: 0, Photons: 1}}, p.Sources)
	assert.Empty(t, p.Heralds)
	assert.True(t, p.PostSelect.Empty())
	assert.Equal(t, 1.0, p.SuccessProbability)

	require.Equal(t, 1, p.Network.Len())
	off, sub := subCircuitAt(t, p, 0)
	assert.Equal(t, 0, off)
	require.Equal(t, 1, sub.Len())
	_, isBS := sub.Entries()[0].Component.(*optics.BeamSplitter)
	assert.True(t, isBS)
}

func TestCompile_DoubleH(t *testing.T) {
	p := mustCompile(t, circuit.New(1).Add("h", []int{0}).Add("h", []int{0}))
	assert.Equal(t, 2, p.Network.Len())
	assert.Equal(t, []int{0}, sourceModes(p))
}

func TestCompile_SGateIsPhaseOnOneRail(t *testing.T) {
	p := mustCompile(t, circuit.New(1).Add("s", []int{0}))
	require.Equal(t, 1, p.Network.Len())
	_, sub := subCircuitAt(t, p, 0)
	require.Equal(t, 1, sub.Len())
	e := sub.Entries()[0]
	assert.Equal(t, []int{1}, e.Modes())
	_, isPS := e.Component.(*optics.PhaseShifter)
	assert.True(t, isPS)
}

func TestCompile_SingleQubitOnlyKeepsWidth(t *testing.T) {
	c := circuit.New(3).
		Add("h", []int{0}).
		Add("rz", []int{1}, 0.3).
		Add("u3", []int{2}, 0.1, 0.2, 0.3).
		Add("x", []int{1})

	for _, heralded := range []bool{true, false} {
		p := mustCompile(t, c, compilerHeralded(heralded)...)
		assert.Equal(t, 6, p.M())
		assert.Equal(t, []int{0, 2, 4}, sourceModes(p))
		assert.Empty(t, p.Heralds)
		assert.True(t, p.PostSelect.Empty())
		require.Equal(t, 4, p.Network.Len())

		offsets := make([]int, 0, 4)
		for _, e := range p.Network.Entries() {
			offsets = append(offsets, e.Offset)
			_, isPerm := e.Component.(*optics.Permutation)
			assert.False(t, isPerm, "single-qubit gates are never routed")
		}
		assert.Equal(t, []int{0, 2, 4, 2}, offsets)
		requireUnitaryNetwork(t, p)
	}
}
