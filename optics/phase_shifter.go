// SPDX-License-Identifier: MIT

package optics

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/lvphoton/matrix"
)

// PhaseShifter multiplies the amplitude of a single mode by e^{iφ}.
type PhaseShifter struct {
	Phi float64
}

var _ Component = (*PhaseShifter)(nil)

// NewPhaseShifter returns a phase shifter of angle phi.
func NewPhaseShifter(phi float64) *PhaseShifter { return &PhaseShifter{Phi: phi} }

// Name implements Component.
func (p *PhaseShifter) Name() string { return "PS" }

// M implements Component.
func (p *PhaseShifter) M() int { return 1 }

// Unitary implements Component.
func (p *PhaseShifter) Unitary() (*matrix.Dense, error) {
	return matrix.NewDenseFrom([][]complex128{{cmplx.Exp(complex(0, p.Phi))}})
}

// String renders the shifter as PS(φ=...).
func (p *PhaseShifter) String() string { return fmt.Sprintf("PS(φ=%.4g)", p.Phi) }
