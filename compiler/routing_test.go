package compiler_test

import (
	"testing"

	"github.com/katalvlaran/lvphoton/circuit"
	"github.com/katalvlaran/lvphoton/compiler"
	"github.com/katalvlaran/lvphoton/processor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_RoutedCNOT(t *testing.T) {
	cases := []struct {
		name      string
		n         int
		control   int
		target    int
		heralded  bool
		m         int
		sources   []int
		forward   []int
		inverse   []int
		heraldMap map[int]int
	}{
		{
			name: "heralded adjacent", n: 2, control: 0, target: 1, heralded: true, m: 8,
			sources:   []int{0, 2, 5, 7},
			forward:   []int{2, 3, 4, 5, 0, 1, 6, 7},
			inverse:   []int{4, 5, 0, 1, 2, 3, 6, 7},
			heraldMap: map[int]int{4: 0, 5: 1, 6: 0, 7: 1},
		},
		{
			name: "heralded reversed", n: 2, control: 1, target: 0, heralded: true, m: 8,
			sources:   []int{0, 2, 5, 7},
			forward:   []int{4, 5, 2, 3, 0, 1, 6, 7},
			inverse:   []int{4, 5, 2, 3, 0, 1, 6, 7},
			heraldMap: map[int]int{4: 0, 5: 1, 6: 0, 7: 1},
		},
		{
			name: "heralded non-adjacent", n: 3, control: 0, target: 2, heralded: true, m: 10,
			sources:   []int{0, 2, 4, 7, 9},
			forward:   []int{2, 3, 8, 9, 4, 5, 0, 1, 6, 7},
			inverse:   []int{6, 7, 0, 1, 4, 5, 8, 9, 2, 3},
			heraldMap: map[int]int{6: 0, 7: 1, 8: 0, 9: 1},
		},
		{
			name: "postselected adjacent", n: 2, control: 0, target: 1, heralded: false, m: 6,
			sources:   []int{0, 2},
			forward:   []int{1, 2, 3, 4, 0, 5},
			inverse:   []int{4, 0, 1, 2, 3, 5},
			heraldMap: map[int]int{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := circuit.New(tc.n).Add("h", []int{0}).Add("cx", []int{tc.control, tc.target})
			p := mustCompile(t, c, compiler.WithHeralded(tc.heralded))

			assert.Equal(t, tc.m, p.M())
			assert.Equal(t, tc.sources, sourceModes(p))
			assert.Equal(t, tc.heraldMap, p.HeraldMap())
			require.Equal(t, 4, p.Network.Len(), "H, PERM, CNOT, PERM")

			off, fwd := permAt(t, p, 1)
			assert.Equal(t, 0, off)
			assert.Equal(t, tc.forward, fwd)
			off, inv := permAt(t, p, 3)
			assert.Equal(t, 0, off)
			assert.Equal(t, tc.inverse, inv)
			assert.Equal(t, inverseOf(fwd), inv)

			off, sub := subCircuitAt(t, p, 2)
			assert.Equal(t, 0, off)
			assert.Equal(t, tc.m-2*(tc.n-2), sub.M(), "fragment spans the block, not the idle qubit")
			requireUnitaryNetwork(t, p)
		})
	}
}

func TestCompile_PostselectedConditions(t *testing.T) {
	p := mustCompile(t, circuit.New(2).Add("cx", []int{0, 1}).Add("cx", []int{1, 0}))

	assert.False(t, p.Heralded)
	assert.Empty(t, p.Heralds)
	assert.Equal(t, []processor.Condition{
		{Modes: []int{0, 1}, Count: 1},
		{Modes: []int{2, 3}, Count: 1},
	}, p.PostSelect.Conditions)
	assert.InDelta(t, 1.0/81, p.SuccessProbability, 1e-12)
	// two utility pairs at most
	assert.LessOrEqual(t, p.M(), 2*2+2*2)
	assert.Equal(t, []int{0, 2}, sourceModes(p))
}

func TestCompile_HeraldedAncillasAreFresh(t *testing.T) {
	c := circuit.New(3).Add("cx", []int{0, 1}).Add("cz", []int{2, 0}).Add("cx", []int{1, 2})
	p := mustCompile(t, c, compiler.WithHeralded(true))

	assert.Equal(t, 2*3+3*4, p.M())
	require.Len(t, p.Heralds, 12)
	seen := map[int]bool{}
	for _, h := range p.Heralds {
		assert.GreaterOrEqual(t, h.Mode, 6, "herald on a qubit mode")
		assert.False(t, seen[h.Mode], "mode %d heralded twice", h.Mode)
		seen[h.Mode] = true
	}
	assert.Len(t, p.Sources, 3+6)
	assert.InDelta(t, (2.0/27)*(2.0/27)*(2.0/27), p.SuccessProbability, 1e-15)
	assert.Equal(t, 9, p.Network.Len())
}

func TestCompile_ReversedOperandsShareShape(t *testing.T) {
	for _, heralded := range []bool{true, false} {
		a := mustCompile(t, circuit.New(3).Add("cx", []int{0, 2}), compiler.WithHeralded(heralded))
		b := mustCompile(t, circuit.New(3).Add("cx", []int{2, 0}), compiler.WithHeralded(heralded))

		_, fa := permAt(t, a, 0)
		_, fb := permAt(t, b, 0)
		assert.NotEqual(t, fa, fb)
		assert.Equal(t, a.M(), b.M())
		assert.Equal(t, len(a.Sources), len(b.Sources))
		assert.Equal(t, len(a.Heralds), len(b.Heralds))
	}
}

func TestCompile_SwapFoldsToOnePermutation(t *testing.T) {
	for _, qs := range [][]int{{0, 1}, {1, 0}} {
		for _, heralded := range []bool{true, false} {
			p := mustCompile(t, circuit.New(2).Add("swap", qs), compiler.WithHeralded(heralded))
			assert.Equal(t, 4, p.M())
			assert.Equal(t, []int{0, 2}, sourceModes(p))
			require.Equal(t, 1, p.Network.Len())
			off, vec := permAt(t, p, 0)
			assert.Equal(t, 0, off)
			assert.Equal(t, []int{2, 3, 0, 1}, vec)
			assert.Equal(t, []int{0, 1, 2, 3}, p.Network.Entries()[0].Modes())
		}
	}
}

func TestCompile_SwapNonAdjacentIsTrimmed(t *testing.T) {
	p := mustCompile(t, circuit.New(4).Add("swap", []int{1, 3}))
	require.Equal(t, 1, p.Network.Len())
	off, vec := permAt(t, p, 0)
	assert.Equal(t, 2, off)
	assert.Equal(t, []int{4, 5, 2, 3, 0, 1}, vec)
}
