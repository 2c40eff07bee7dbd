// SPDX-License-Identifier: MIT

// Package optics - permutation utilities.
//
// This file contains the mode-rewiring component and the helpers routing code
// needs on top of it:
//   - ValidatePermutation: verify a bijection over {0..n-1}.
//   - Inverse / Then: exact inverse and sequential composition.
//   - Lift: place a local permutation at an offset of a wider network.
//   - Trim: shrink a permutation to the smallest span of modes it moves.
package optics

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/katalvlaran/lvphoton/matrix"
)

// Permutation routes the photon entering mode i to mode vector[i].
// The vector is validated on construction and never mutated afterwards.
type Permutation struct {
	vector []int
}

var _ Component = (*Permutation)(nil)

// ValidatePermutation checks that vector is a permutation of {0..len-1}.
// It allocates a single bitset of len(vector) bits as the seen-marker.
//
// Complexity: O(n) time, O(n/64) words of space.
func ValidatePermutation(vector []int) error {
	n := len(vector)
	if n == 0 {
		return fmt.Errorf("empty vector: %w", ErrInvalidPermutation)
	}
	seen := bitset.New(uint(n))
	for i, v := range vector {
		if v < 0 || v >= n {
			return fmt.Errorf("position %d maps to %d outside 0..%d: %w", i, v, n-1, ErrInvalidPermutation)
		}
		if seen.Test(uint(v)) {
			return fmt.Errorf("output %d used twice: %w", v, ErrInvalidPermutation)
		}
		seen.Set(uint(v))
	}

	return nil
}

// NewPermutation validates and copies vector.
func NewPermutation(vector []int) (*Permutation, error) {
	if err := ValidatePermutation(vector); err != nil {
		return nil, err
	}
	v := make([]int, len(vector))
	copy(v, vector)

	return &Permutation{vector: v}, nil
}

// MustPermutation is NewPermutation for literal vectors; it panics on an
// invalid vector.
func MustPermutation(vector []int) *Permutation {
	p, err := NewPermutation(vector)
	if err != nil {
		panic(err)
	}

	return p
}

// IdentityPermutation returns the identity over m modes (m must be > 0).
func IdentityPermutation(m int) (*Permutation, error) {
	if m <= 0 {
		return nil, ErrInvalidWidth
	}
	v := make([]int, m)
	for i := range v {
		v[i] = i
	}

	return &Permutation{vector: v}, nil
}

// Name implements Component.
func (p *Permutation) Name() string { return "PERM" }

// M implements Component.
func (p *Permutation) M() int { return len(p.vector) }

// Vector returns a copy of the routing vector.
func (p *Permutation) Vector() []int {
	v := make([]int, len(p.vector))
	copy(v, p.vector)

	return v
}

// Apply returns the output mode of input mode i, or -1 when i is out of range.
func (p *Permutation) Apply(i int) int {
	if i < 0 || i >= len(p.vector) {
		return -1
	}

	return p.vector[i]
}

// Inverse returns q with q[p[i]] == i.
func (p *Permutation) Inverse() *Permutation {
	inv := make([]int, len(p.vector))
	for i, v := range p.vector {
		inv[v] = i
	}

	return &Permutation{vector: inv}
}

// IsIdentity reports whether every mode maps to itself.
func (p *Permutation) IsIdentity() bool {
	for i, v := range p.vector {
		if i != v {
			return false
		}
	}

	return true
}

// Then returns the permutation "p, then q": r[i] = q[p[i]].
// Both operands must span the same number of modes.
func (p *Permutation) Then(q *Permutation) (*Permutation, error) {
	if q == nil {
		return nil, ErrNilComponent
	}
	if len(p.vector) != len(q.vector) {
		return nil, fmt.Errorf("compose %d-mode with %d-mode: %w", len(p.vector), len(q.vector), ErrInvalidWidth)
	}
	r := make([]int, len(p.vector))
	for i, v := range p.vector {
		r[i] = q.vector[v]
	}

	return &Permutation{vector: r}, nil
}

// Lift embeds p at offset inside an m-mode identity.
func (p *Permutation) Lift(m, offset int) (*Permutation, error) {
	if offset < 0 || offset+len(p.vector) > m {
		return nil, fmt.Errorf("lift %d modes at %d into %d: %w", len(p.vector), offset, m, ErrModeRange)
	}
	full, err := IdentityPermutation(m)
	if err != nil {
		return nil, err
	}
	for i, v := range p.vector {
		full.vector[offset+i] = offset + v
	}

	return full, nil
}

// Trim returns the smallest contiguous span [offset, offset+M) containing
// every mode p moves, with the vector re-based to that span. The boolean is
// false for the identity, which moves nothing.
func (p *Permutation) Trim() (int, *Permutation, bool) {
	lo, hi := -1, -1
	for i, v := range p.vector {
		if i != v {
			if lo < 0 {
				lo = i
			}
			hi = i
		}
	}
	if lo < 0 {
		return 0, nil, false
	}
	// a permutation maps [lo, hi] onto itself once everything outside is fixed
	v := make([]int, hi-lo+1)
	for i := range v {
		v[i] = p.vector[lo+i] - lo
	}

	return lo, &Permutation{vector: v}, true
}

// Unitary implements Component: U[p[i]][i] = 1.
func (p *Permutation) Unitary() (*matrix.Dense, error) {
	u, err := matrix.NewDense(len(p.vector), len(p.vector))
	if err != nil {
		return nil, err
	}
	for i, v := range p.vector {
		if err = u.Set(v, i, 1); err != nil {
			return nil, err
		}
	}

	return u, nil
}

// String renders the component as PERM[a,b,...].
func (p *Permutation) String() string {
	parts := make([]string, len(p.vector))
	for i, v := range p.vector {
		parts[i] = strconv.Itoa(v)
	}

	return "PERM[" + strings.Join(parts, ",") + "]"
}
