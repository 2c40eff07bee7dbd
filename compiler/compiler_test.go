package compiler_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvphoton/catalog"
	"github.com/katalvlaran/lvphoton/circuit"
	"github.com/katalvlaran/lvphoton/compiler"
	"github.com/katalvlaran/lvphoton/optics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCompile_Errors(t *testing.T) {
	cases := []struct {
		name  string
		c     *circuit.Circuit
		want  error
		index int
	}{
		{"unknown kind", circuit.New(2).Add("h", []int{0}).Add("toffoli", []int{0, 1}), compiler.ErrUnsupportedGate, 1},
		{"too few operands", circuit.New(2).Add("cx", []int{0}), compiler.ErrInvalidOperand, 0},
		{"too many operands", circuit.New(2).Add("h", []int{0, 1}), compiler.ErrInvalidOperand, 0},
		{"repeated", circuit.New(2).Add("cx", []int{1, 1}), compiler.ErrInvalidOperand, 0},
		{"out of range", circuit.New(2).Add("x", []int{0}).Add("x", []int{2}), compiler.ErrInvalidOperand, 1},
		{"negative", circuit.New(2).Add("cz", []int{-1, 0}), compiler.ErrInvalidOperand, 0},
		{"missing angle", circuit.New(1).Add("rz", []int{0}), compiler.ErrInvalidOperand, 0},
		{"extra angle", circuit.New(1).Add("h", []int{0}, math.Pi), compiler.ErrInvalidOperand, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := compiler.Compile(tc.c, compiler.WithHeralded(true))
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, p)

			var ge *compiler.GateError
			require.True(t, errors.As(err, &ge))
			assert.Equal(t, tc.index, ge.Index)
			assert.Equal(t, tc.c.Gates[tc.index].Kind, ge.Kind)
		})
	}
}

func TestCompile_ParamCountKeepsCatalogCause(t *testing.T) {
	_, err := compiler.Compile(circuit.New(1).Add("u", []int{0}, 1, 2))
	require.ErrorIs(t, err, compiler.ErrInvalidOperand)
	require.ErrorIs(t, err, catalog.ErrParamCount)
}

func TestCompile_NoQubits(t *testing.T) {
	_, err := compiler.Compile(circuit.New(0))
	require.ErrorIs(t, err, compiler.ErrNoQubits)

	_, err = compiler.Compile(nil)
	require.ErrorIs(t, err, compiler.ErrNoQubits)
}

func TestCompile_EmptyCircuit(t *testing.T) {
	p := mustCompile(t, circuit.New(2))
	assert.Equal(t, 4, p.M())
	assert.Equal(t, 0, p.Network.Len())
	assert.Equal(t, []int{1, 0, 1, 0}, p.InputState())
	assert.Equal(t, "network", p.Network.Name())
}

func TestCompile_Deterministic(t *testing.T) {
	c := circuit.New(3).
		Add("h", []int{0}).
		Add("cx", []int{0, 2}).
		Add("cz", []int{1, 0}).
		Add("swap", []int{2, 1}).
		Add("ry", []int{1}, 0.4)
	c.Name = "det"

	for _, heralded := range []bool{true, false} {
		a := mustCompile(t, c, compiler.WithHeralded(heralded))
		b := mustCompile(t, c, compiler.WithHeralded(heralded))
		assert.Equal(t, a, b)
		assert.Equal(t, a.Network.String(), b.Network.String())
		assert.Equal(t, "det", a.Network.Name())
		requireUnitaryNetwork(t, a)
	}
}

// coupler is a 2-qubit test gate without ancillas that is not a pure rewiring.
func coupler() catalog.Entry {
	return catalog.Entry{
		Kind:  "coupler",
		Arity: 2,
		Build: func(catalog.Request) (catalog.Fragment, error) {
			c, err := optics.NewCircuit(4, "coupler")
			if err != nil {
				return catalog.Fragment{}, err
			}
			if err = c.Add(1, optics.BalancedH()); err != nil {
				return catalog.Fragment{}, err
			}

			return catalog.Fragment{Circuit: c, QubitOffsets: []int{0, 2}, SuccessProbability: 1}, nil
		},
	}
}

func TestCompile_IdentityPermutations(t *testing.T) {
	reg, err := catalog.Default().With(coupler())
	require.NoError(t, err)
	c := circuit.New(2).Add("coupler", []int{0, 1})

	p := mustCompile(t, c, compiler.WithRegistry(reg))
	require.Equal(t, 1, p.Network.Len(), "identity routing is elided")
	off, _ := subCircuitAt(t, p, 0)
	assert.Equal(t, 0, off)

	p = mustCompile(t, c, compiler.WithRegistry(reg), compiler.WithIdentityPermutations())
	require.Equal(t, 3, p.Network.Len())
	_, fwd := permAt(t, p, 0)
	_, inv := permAt(t, p, 2)
	assert.Equal(t, []int{0, 1, 2, 3}, fwd)
	assert.Equal(t, []int{0, 1, 2, 3}, inv)

	// reversed operands need a real permutation even without the option
	p = mustCompile(t, circuit.New(2).Add("coupler", []int{1, 0}), compiler.WithRegistry(reg))
	require.Equal(t, 3, p.Network.Len())
}

func TestCompile_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c := circuit.New(2).Add("h", []int{0}).Add("cnot", []int{0, 1})

	_ = mustCompile(t, c, compiler.WithLogger(zap.New(core)))
	assert.Equal(t, 2, logs.FilterMessage("gate compiled").Len())
	info := logs.FilterMessage("circuit compiled").All()
	require.Len(t, info, 1)
	assert.Equal(t, int64(6), info[0].ContextMap()["modes"])

	_, err := compiler.Compile(circuit.New(1).Add("nope", []int{0}), compiler.WithLogger(zap.New(core)))
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("gate rejected").Len())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { compiler.WithRegistry(nil) })
	assert.Panics(t, func() { compiler.WithLogger(nil) })
	assert.Panics(t, func() { compiler.WithConcurrency(0) })

	o := compiler.New(compiler.WithConcurrency(3), compiler.WithHeralded(true)).Options()
	assert.Equal(t, 3, o.Concurrency)
	assert.True(t, o.Heralded)
	assert.False(t, o.KeepIdentity)
	assert.Same(t, catalog.Default(), o.Registry)
}
