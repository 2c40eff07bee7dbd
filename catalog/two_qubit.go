// SPDX-License-Identifier: MIT

// Package catalog - two-qubit gates.
//
// Heralded CNOT (Knill): 8 modes laid out [a,a,c,c,t,t,a,a]. The target is
// conjugated by Hadamards around Knill's controlled-sign core, which acts on
// the |1> rails of both operands and the two photon-carrying ancillas
// (positions 1 and 7). Detecting the input pattern (0,1,0,1) on the ancillas
// certifies the gate for every input with probability 2/27.
//
// Postselected CNOT (Ralph): 6 modes laid out [u,c,c,t,t,u]; the two utility
// modes start empty and success is a one-photon-per-qubit coincidence.
// Success probability 1/9.
package catalog

import (
	"math"

	"github.com/katalvlaran/lvphoton/matrix"
	"github.com/katalvlaran/lvphoton/optics"
)

const (
	heraldedCNOTSuccess     = 2.0 / 27
	postselectedCNOTSuccess = 1.0 / 9
)

// knillGather moves (c1, a1, a3, t1) of the heralded layout onto modes 0..3,
// in the row order of knillCore; the idle modes follow on 4..7.
var knillGather = []int{4, 1, 5, 0, 6, 3, 7, 2}

// step is one component at a local offset of a multi-mode fragment.
type step struct {
	offset int
	comp   optics.Component
}

// assemble builds an m-mode circuit from steps.
func assemble(m int, name string, steps ...step) (*optics.Circuit, error) {
	c, err := optics.NewCircuit(m, name)
	if err != nil {
		return nil, err
	}
	for _, s := range steps {
		if err = c.Add(s.offset, s.comp); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// knillCore returns the real 4-mode controlled-sign unitary over
// (control |1>, ancilla, ancilla, target |1>). With one photon in each
// ancilla and one detected in each, |xy> -> (-1)^(xy) sqrt(2/27) |xy>.
func knillCore() (*optics.Unitary, error) {
	r2, r6 := math.Sqrt2, math.Sqrt(6)
	a := math.Sqrt((3 + r6) / 18)
	b := math.Sqrt((3 - r6) / 18)
	m, err := matrix.NewDenseFrom([][]complex128{
		{complex(-1.0/3, 0), complex(-r2/3, 0), complex(2.0/3, 0), complex(r2/3, 0)},
		{complex(-r2*a, 0), complex(a, 0), complex(b, 0), complex(-r2*b, 0)},
		{complex(r2*b, 0), complex(-b, 0), complex(a, 0), complex(-r2*a, 0)},
		{complex(-r2/3, 0), complex(-2.0/3, 0), complex(-r2/3, 0), complex(-1.0/3, 0)},
	})
	if err != nil {
		return nil, err
	}

	return optics.NewUnitary("CS", m)
}

// heraldedCNOT returns the Knill network on [a,a,c,c,t,t,a,a].
func heraldedCNOT() (Fragment, error) {
	core, err := knillCore()
	if err != nil {
		return Fragment{}, err
	}
	gather := optics.MustPermutation(knillGather)
	c, err := assemble(8, "heralded cnot",
		step{4, optics.BalancedH()},
		step{0, gather},
		step{0, core},
		step{0, gather.Inverse()},
		step{4, optics.BalancedH()},
	)
	if err != nil {
		return Fragment{}, err
	}

	return Fragment{
		Circuit:      c,
		QubitOffsets: []int{2, 4},
		Ancillas: []Ancilla{
			{Photons: 0, Herald: 0},
			{Photons: 1, Herald: 1},
			{Photons: 0, Herald: 0},
			{Photons: 1, Herald: 1},
		},
		Heralded:           true,
		SuccessProbability: heraldedCNOTSuccess,
	}, nil
}

// postselectedCNOT returns the Ralph network on [u,c,c,t,t,u]. The control's
// |1> rail meets the target's |0> rail on the central 1/3 splitter; the π
// shift on the target's |1> rail puts the sign on |11>.
func postselectedCNOT() (Fragment, error) {
	third := optics.ReflectivityToTheta(1.0 / 3)
	c, err := assemble(6, "postselected cnot",
		step{3, optics.BalancedH()},
		step{0, optics.NewBeamSplitter(optics.ConventionH, third)},
		step{2, optics.NewBeamSplitter(optics.ConventionH, third)},
		step{4, optics.NewBeamSplitter(optics.ConventionH, third)},
		step{4, optics.NewPhaseShifter(math.Pi)},
		step{3, optics.BalancedH()},
	)
	if err != nil {
		return Fragment{}, err
	}

	return Fragment{
		Circuit:            c,
		QubitOffsets:       []int{1, 3},
		Ancillas:           []Ancilla{{}, {}},
		PostSelect:         true,
		SuccessProbability: postselectedCNOTSuccess,
	}, nil
}

func buildCNOT(req Request) (Fragment, error) {
	if req.Heralded {
		return heraldedCNOT()
	}

	return postselectedCNOT()
}

// buildCZ conjugates the CNOT target with Hadamards.
func buildCZ(req Request) (Fragment, error) {
	cnot, err := buildCNOT(req)
	if err != nil {
		return Fragment{}, err
	}
	target := cnot.QubitOffsets[1]
	c, err := assemble(cnot.Width(), "cz",
		step{target, optics.BalancedH()},
		step{0, cnot.Circuit},
		step{target, optics.BalancedH()},
	)
	if err != nil {
		return Fragment{}, err
	}
	cnot.Circuit = c

	return cnot, nil
}

// buildSwap exchanges the two operand pairs; it needs no ancilla.
func buildSwap(Request) (Fragment, error) {
	c, err := assemble(4, "swap", step{0, optics.MustPermutation([]int{2, 3, 0, 1})})
	if err != nil {
		return Fragment{}, err
	}

	return Fragment{Circuit: c, QubitOffsets: []int{0, 2}, SuccessProbability: 1}, nil
}

// twoQubitEntries returns the default two-qubit gate set.
func twoQubitEntries() []Entry {
	return []Entry{
		{Kind: "cx", Aliases: []string{"cnot"}, Arity: 2, Summary: "controlled NOT", Build: buildCNOT},
		{Kind: "cz", Arity: 2, Summary: "controlled Z", Build: buildCZ},
		{Kind: "swap", Arity: 2, Summary: "exchange two qubits", Build: buildSwap},
	}
}
