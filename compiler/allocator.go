// SPDX-License-Identifier: MIT

package compiler

import (
	"fmt"

	"github.com/katalvlaran/lvphoton/processor"
)

// modeAllocator owns the mode space of one compilation. Qubit pairs are fixed
// at construction; ancilla pairs are only ever appended.
type modeAllocator struct {
	qubits []processor.ModePair
	m      int
}

// newModeAllocator assigns qubit i to (2i, 2i+1), so m starts at 2n.
func newModeAllocator(n int) (*modeAllocator, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%d qubits: %w", n, ErrNoQubits)
	}
	a := &modeAllocator{qubits: make([]processor.ModePair, n), m: 2 * n}
	for i := range a.qubits {
		a.qubits[i] = processor.ModePair{Zero: 2 * i, One: 2*i + 1}
	}

	return a, nil
}

// M returns the current number of modes.
func (a *modeAllocator) M() int { return a.m }

// AncillaModes returns how many modes were appended after the qubit pairs.
func (a *modeAllocator) AncillaModes() int { return a.m - 2*len(a.qubits) }

// NumQubits returns n.
func (a *modeAllocator) NumQubits() int { return len(a.qubits) }

// Qubit returns the mode pair of qubit q; q must be in range.
func (a *modeAllocator) Qubit(q int) processor.ModePair { return a.qubits[q] }

// QubitModes returns a copy of every qubit's pair.
func (a *modeAllocator) QubitModes() []processor.ModePair {
	out := make([]processor.ModePair, len(a.qubits))
	copy(out, a.qubits)

	return out
}

// AllocateAncilla appends pairs fresh mode pairs at the end of the mode space
// and returns them in ascending order. Indices are never reused.
func (a *modeAllocator) AllocateAncilla(pairs int) []processor.ModePair {
	if pairs <= 0 {
		return nil
	}
	out := make([]processor.ModePair, pairs)
	for i := range out {
		out[i] = processor.ModePair{Zero: a.m, One: a.m + 1}
		a.m += 2
	}

	return out
}
