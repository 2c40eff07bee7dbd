// SPDX-License-Identifier: MIT

package optics

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/lvphoton/matrix"
)

// Convention selects the sign/phase layout of a BeamSplitter matrix.
type Convention int

const (
	// ConventionRx: [[cos, i·sin], [i·sin, cos]] (symmetric splitter).
	ConventionRx Convention = iota

	// ConventionRy: [[cos, -sin], [sin, cos]] (real rotation).
	ConventionRy

	// ConventionH: [[cos, sin], [sin, -cos]] (Hadamard-like at θ=π/2).
	ConventionH
)

// String returns the short convention tag used in component names.
func (c Convention) String() string {
	switch c {
	case ConventionRx:
		return "Rx"
	case ConventionRy:
		return "Ry"
	case ConventionH:
		return "H"
	default:
		return fmt.Sprintf("Convention(%d)", int(c))
	}
}

// BeamSplitter is a 2-mode coupler. Theta sets the splitting ratio
// (cos²(θ/2) stays on the same rail); the four phases are applied on the
// top-left, top-right, bottom-left and bottom-right ports.
type BeamSplitter struct {
	Convention Convention
	Theta      float64
	PhiTL      float64
	PhiTR      float64
	PhiBL      float64
	PhiBR      float64
}

var _ Component = (*BeamSplitter)(nil)

// NewBeamSplitter returns a splitter without port phases.
func NewBeamSplitter(conv Convention, theta float64) *BeamSplitter {
	return &BeamSplitter{Convention: conv, Theta: theta}
}

// BalancedH returns the 50:50 H-convention splitter, i.e. the Hadamard on a
// dual-rail qubit.
func BalancedH() *BeamSplitter {
	return NewBeamSplitter(ConventionH, math.Pi/2)
}

// WithPhases returns a copy of b with the given port phases.
func (b *BeamSplitter) WithPhases(tl, tr, bl, br float64) *BeamSplitter {
	c := *b
	c.PhiTL, c.PhiTR, c.PhiBL, c.PhiBR = tl, tr, bl, br

	return &c
}

// ReflectivityToTheta converts a reflectivity r∈[0,1] into the θ parameter.
func ReflectivityToTheta(r float64) float64 {
	return 2 * math.Acos(math.Sqrt(r))
}

// Name implements Component.
func (b *BeamSplitter) Name() string { return "BS." + b.Convention.String() }

// M implements Component.
func (b *BeamSplitter) M() int { return 2 }

// Unitary implements Component.
func (b *BeamSplitter) Unitary() (*matrix.Dense, error) {
	c := complex(math.Cos(b.Theta/2), 0)
	s := complex(math.Sin(b.Theta/2), 0)
	tl := cmplx.Exp(complex(0, b.PhiTL+b.PhiTR))
	tr := cmplx.Exp(complex(0, b.PhiTR+b.PhiBL))
	bl := cmplx.Exp(complex(0, b.PhiTL+b.PhiBR))
	br := cmplx.Exp(complex(0, b.PhiBL+b.PhiBR))

	var rows [][]complex128
	switch b.Convention {
	case ConventionRx:
		rows = [][]complex128{{tl * c, 1i * tr * s}, {1i * bl * s, br * c}}
	case ConventionRy:
		rows = [][]complex128{{tl * c, -tr * s}, {bl * s, br * c}}
	case ConventionH:
		rows = [][]complex128{{tl * c, tr * s}, {bl * s, -br * c}}
	default:
		return nil, fmt.Errorf("beam splitter %s: %w", b.Convention, ErrNotUnitary)
	}

	return matrix.NewDenseFrom(rows)
}

// String renders the splitter with its non-zero parameters.
func (b *BeamSplitter) String() string {
	s := fmt.Sprintf("%s(θ=%.4g", b.Name(), b.Theta)
	for _, ph := range []struct {
		tag string
		v   float64
	}{{"φtl", b.PhiTL}, {"φtr", b.PhiTR}, {"φbl", b.PhiBL}, {"φbr", b.PhiBR}} {
		if ph.v != 0 {
			s += fmt.Sprintf(", %s=%.4g", ph.tag, ph.v)
		}
	}

	return s + ")"
}
