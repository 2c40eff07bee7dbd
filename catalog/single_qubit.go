// SPDX-License-Identifier: MIT

// Package catalog - single-qubit gates.
//
// Dual-rail: local mode 0 carries |0>, local mode 1 carries |1>. Every gate
// below is exact, global phase included.
package catalog

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/lvphoton/matrix"
	"github.com/katalvlaran/lvphoton/optics"
)

// layoutFunc returns the components of a single-qubit gate for given angles.
type layoutFunc func(params []float64) ([]step, error)

// singleQubit wraps a layout into a BuildFunc producing a 2-mode fragment.
func singleQubit(kind string, layout layoutFunc) BuildFunc {
	return func(req Request) (Fragment, error) {
		parts, err := layout(req.Params)
		if err != nil {
			return Fragment{}, err
		}
		c, err := assemble(2, kind, parts...)
		if err != nil {
			return Fragment{}, err
		}

		return Fragment{Circuit: c, QubitOffsets: []int{0}, SuccessProbability: 1}, nil
	}
}

// fixed is a parameterless layout. parts runs on every Build so no two
// fragments share a component.
func fixed(parts func() []step) layoutFunc {
	return func([]float64) ([]step, error) { return parts(), nil }
}

// phaseOnOne applies e^{iφ(params)} to |1>.
func phaseOnOne(phi func(params []float64) float64) layoutFunc {
	return func(params []float64) ([]step, error) {
		return []step{{1, optics.NewPhaseShifter(phi(params))}}, nil
	}
}

func constant(v float64) func([]float64) float64 { return func([]float64) float64 { return v } }

func first(params []float64) float64 { return params[0] }

// genericU realises u(θ, φ, λ) as a validated 2×2 unitary.
func genericU(params []float64) ([]step, error) {
	theta, phi, lambda := params[0], params[1], params[2]
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	m, err := matrix.NewDenseFrom([][]complex128{
		{c, -cmplx.Exp(complex(0, lambda)) * s},
		{cmplx.Exp(complex(0, phi)) * s, cmplx.Exp(complex(0, phi+lambda)) * c},
	})
	if err != nil {
		return nil, err
	}
	u, err := optics.NewUnitary("U", m)
	if err != nil {
		return nil, err
	}

	return []step{{0, u}}, nil
}

// singleQubitEntries returns the default single-qubit gate set.
func singleQubitEntries() []Entry {
	return []Entry{
		{Kind: "id", Arity: 1, Summary: "identity",
			Build: singleQubit("id", fixed(func() []step { return nil }))},
		{Kind: "h", Arity: 1, Summary: "Hadamard",
			Build: singleQubit("h", fixed(func() []step {
				return []step{{0, optics.BalancedH()}}
			}))},
		{Kind: "x", Arity: 1, Summary: "Pauli X (rail swap)",
			Build: singleQubit("x", fixed(func() []step {
				return []step{{0, optics.MustPermutation([]int{1, 0})}}
			}))},
		{Kind: "y", Arity: 1, Summary: "Pauli Y",
			Build: singleQubit("y", fixed(func() []step {
				return []step{
					{0, optics.MustPermutation([]int{1, 0})},
					{0, optics.NewPhaseShifter(-math.Pi / 2)},
					{1, optics.NewPhaseShifter(math.Pi / 2)},
				}
			}))},
		{Kind: "z", Arity: 1, Summary: "Pauli Z",
			Build: singleQubit("z", phaseOnOne(constant(math.Pi)))},
		{Kind: "s", Arity: 1, Summary: "phase π/2",
			Build: singleQubit("s", phaseOnOne(constant(math.Pi/2)))},
		{Kind: "sdg", Arity: 1, Summary: "phase -π/2",
			Build: singleQubit("sdg", phaseOnOne(constant(-math.Pi/2)))},
		{Kind: "t", Arity: 1, Summary: "phase π/4",
			Build: singleQubit("t", phaseOnOne(constant(math.Pi/4)))},
		{Kind: "tdg", Arity: 1, Summary: "phase -π/4",
			Build: singleQubit("tdg", phaseOnOne(constant(-math.Pi/4)))},
		{Kind: "sx", Arity: 1, Summary: "square root of X",
			Build: singleQubit("sx", fixed(func() []step {
				return []step{
					{0, optics.NewBeamSplitter(optics.ConventionRx, -math.Pi/2)},
					{0, optics.NewPhaseShifter(math.Pi / 4)},
					{1, optics.NewPhaseShifter(math.Pi / 4)},
				}
			}))},
		{Kind: "p", Aliases: []string{"phase"}, Arity: 1, Params: 1, Summary: "phase λ on |1>",
			Build: singleQubit("p", phaseOnOne(first))},
		{Kind: "rz", Arity: 1, Params: 1, Summary: "Z rotation",
			Build: singleQubit("rz", func(params []float64) ([]step, error) {
				return []step{
					{0, optics.NewPhaseShifter(-params[0] / 2)},
					{1, optics.NewPhaseShifter(params[0] / 2)},
				}, nil
			})},
		{Kind: "rx", Arity: 1, Params: 1, Summary: "X rotation",
			Build: singleQubit("rx", func(params []float64) ([]step, error) {
				return []step{{0, optics.NewBeamSplitter(optics.ConventionRx, -params[0])}}, nil
			})},
		{Kind: "ry", Arity: 1, Params: 1, Summary: "Y rotation",
			Build: singleQubit("ry", func(params []float64) ([]step, error) {
				return []step{{0, optics.NewBeamSplitter(optics.ConventionRy, params[0])}}, nil
			})},
		{Kind: "u", Aliases: []string{"u3"}, Arity: 1, Params: 3, Summary: "generic U(θ,φ,λ)",
			Build: singleQubit("u", genericU)},
	}
}
