// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"

	"github.com/katalvlaran/lvphoton/optics"
)

// Ancilla describes one non-qubit mode of a fragment.
type Ancilla struct {
	// Photons injected on the mode at input.
	Photons int

	// Herald is the photon count that certifies success on a heralded fragment.
	Herald int
}

// Fragment is the optical realisation of one gate. It is read-only once
// built; the compiler only nests Circuit inside its network.
type Fragment struct {
	Circuit            *optics.Circuit
	QubitOffsets       []int
	Ancillas           []Ancilla
	Heralded           bool
	PostSelect         bool
	SuccessProbability float64
}

// Width returns the number of modes the fragment spans.
func (f Fragment) Width() int {
	if f.Circuit == nil {
		return 0
	}

	return f.Circuit.M()
}

// AncillaPairs returns how many fresh mode pairs the fragment requests.
func (f Fragment) AncillaPairs() int { return len(f.Ancillas) / 2 }

// AncillaPositions lists the local positions not taken by operand pairs,
// ascending. Ancillas[i] describes position AncillaPositions()[i].
func (f Fragment) AncillaPositions() []int {
	used := make([]bool, f.Width())
	for _, off := range f.QubitOffsets {
		if off >= 0 && off+1 < len(used) {
			used[off], used[off+1] = true, true
		}
	}
	out := make([]int, 0, len(f.Ancillas))
	for pos, u := range used {
		if !u {
			out = append(out, pos)
		}
	}

	return out
}

// Validate checks the layout against the expected number of operands.
func (f Fragment) Validate(arity int) error {
	if f.Circuit == nil {
		return fmt.Errorf("nil circuit: %w", ErrInvalidFragment)
	}
	if len(f.QubitOffsets) != arity {
		return fmt.Errorf("%q declares %d operands, want %d: %w",
			f.Circuit.Name(), len(f.QubitOffsets), arity, ErrInvalidFragment)
	}
	if len(f.Ancillas)%2 != 0 {
		return fmt.Errorf("%q has %d ancilla modes, not whole pairs: %w",
			f.Circuit.Name(), len(f.Ancillas), ErrInvalidFragment)
	}
	if want := 2*arity + len(f.Ancillas); f.Width() != want {
		return fmt.Errorf("%q spans %d modes, want %d: %w", f.Circuit.Name(), f.Width(), want, ErrInvalidFragment)
	}

	used := make([]bool, f.Width())
	for i, off := range f.QubitOffsets {
		if off < 0 || off+2 > f.Width() || used[off] || used[off+1] {
			return fmt.Errorf("%q operand %d at offset %d: %w", f.Circuit.Name(), i, off, ErrInvalidFragment)
		}
		used[off], used[off+1] = true, true
	}
	for i, a := range f.Ancillas {
		if a.Photons < 0 || a.Herald < 0 {
			return fmt.Errorf("%q ancilla %d has negative photon count: %w", f.Circuit.Name(), i, ErrInvalidFragment)
		}
	}
	if f.SuccessProbability <= 0 || f.SuccessProbability > 1 {
		return fmt.Errorf("%q success probability %g: %w", f.Circuit.Name(), f.SuccessProbability, ErrInvalidFragment)
	}

	return nil
}

// IsPermutation reports whether the fragment only rewires modes.
func (f Fragment) IsPermutation() bool {
	if f.Circuit == nil || len(f.Ancillas) != 0 {
		return false
	}
	_, ok := f.Circuit.AsPermutation()

	return ok
}
