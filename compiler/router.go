// SPDX-License-Identifier: MIT

// Package compiler - permutation routing.
//
// A multi-qubit fragment expects its modes contiguous and in its own order.
// The router moves the involved network modes into one block starting at the
// lowest involved mode, runs the fragment there, and moves everything back.
//
// Forward vector over m modes, block b (fragment order), start s = min(b):
//
//	p[b[j]] = s + j                          involved modes, in fragment order
//	p[u_k]  = k-th free position ascending   uninvolved modes, in mode order
//
// Free positions are those outside [s, s+len(b)), so every mode below s is a
// fixed point. The inverse undoes p exactly.
package compiler

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/katalvlaran/lvphoton/catalog"
	"github.com/katalvlaran/lvphoton/optics"
	"github.com/katalvlaran/lvphoton/processor"
)

// route is a fragment placed on the network through a permutation pair.
type route struct {
	block   []int // network mode at each fragment position
	start   int   // network offset the fragment is placed at
	forward *optics.Permutation
	inverse *optics.Permutation
}

// flatten lists the modes of pairs in order.
func flatten(pairs []processor.ModePair) []int {
	out := make([]int, 0, 2*len(pairs))
	for _, p := range pairs {
		out = append(out, p.Zero, p.One)
	}

	return out
}

// fragmentBlock lays the operand pairs at the fragment's QubitOffsets and the
// ancilla modes, ascending, on the remaining positions.
//
// Errors: ErrModeCountMismatch if the allocated ancillas do not fill the
// fragment exactly.
func fragmentBlock(frag catalog.Fragment, operands, ancillas []processor.ModePair) ([]int, error) {
	positions := frag.AncillaPositions()
	extra := flatten(ancillas)
	if len(positions) != len(extra) || len(frag.QubitOffsets) != len(operands) {
		return nil, fmt.Errorf("fragment %q: %d free positions, %d ancilla modes: %w",
			frag.Circuit.Name(), len(positions), len(extra), ErrModeCountMismatch)
	}

	block := make([]int, frag.Width())
	for i, off := range frag.QubitOffsets {
		block[off], block[off+1] = operands[i].Zero, operands[i].One
	}
	for i, pos := range positions {
		block[pos] = extra[i]
	}

	return block, nil
}

// forwardVector computes the routing vector described in the file header.
// Complexity: O(m) time, O(m/64) words for the involved set.
func forwardVector(m int, block []int) ([]int, int, error) {
	if len(block) == 0 || len(block) > m {
		return nil, 0, fmt.Errorf("block of %d modes in %d: %w", len(block), m, ErrPermutationInvariant)
	}
	involved := bitset.New(uint(m))
	start := m
	for _, mode := range block {
		if mode < 0 || mode >= m || involved.Test(uint(mode)) {
			return nil, 0, fmt.Errorf("block mode %d in %d: %w", mode, m, ErrPermutationInvariant)
		}
		involved.Set(uint(mode))
		if mode < start {
			start = mode
		}
	}
	end := start + len(block)
	if end > m {
		return nil, 0, fmt.Errorf("block [%d,%d) beyond %d modes: %w", start, end, m, ErrPermutationInvariant)
	}

	vec := make([]int, m)
	for j, mode := range block {
		vec[mode] = start + j
	}
	// uninvolved modes, ascending, onto free positions, ascending
	pos := 0
	for mode := 0; mode < m; mode++ {
		if involved.Test(uint(mode)) {
			continue
		}
		if pos == start {
			pos = end
		}
		vec[mode] = pos
		pos++
	}

	return vec, start, nil
}

// planRoute builds and checks the forward/inverse pair for block.
func planRoute(m int, block []int) (route, error) {
	vec, start, err := forwardVector(m, block)
	if err != nil {
		return route{}, err
	}
	fwd, err := optics.NewPermutation(vec)
	if err != nil {
		return route{}, fmt.Errorf("%w: %w", ErrPermutationInvariant, err)
	}
	inv := fwd.Inverse()
	roundTrip, err := fwd.Then(inv)
	if err != nil || !roundTrip.IsIdentity() {
		return route{}, fmt.Errorf("forward %v does not invert: %w", fwd, ErrPermutationInvariant)
	}

	return route{block: block, start: start, forward: fwd, inverse: inv}, nil
}

// fold composes forward, the fragment's own permutation and the inverse into
// one network permutation. ok is false when the fragment does more than
// rewire modes.
func (r route) fold(m int, frag catalog.Fragment) (*optics.Permutation, bool, error) {
	if !frag.IsPermutation() {
		return nil, false, nil
	}
	local, _ := frag.Circuit.AsPermutation()
	lifted, err := local.Lift(m, r.start)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrModeCountMismatch, err)
	}
	total, err := r.forward.Then(lifted)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrPermutationInvariant, err)
	}
	if total, err = total.Then(r.inverse); err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrPermutationInvariant, err)
	}

	return total, true, nil
}
