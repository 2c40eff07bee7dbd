// SPDX-License-Identifier: MIT

package optics

import "errors"

var (
	// ErrInvalidPermutation indicates a vector that is not a bijection on 0..n-1.
	ErrInvalidPermutation = errors.New("optics: vector is not a permutation")

	// ErrModeRange indicates a component placed outside the circuit's modes.
	ErrModeRange = errors.New("optics: component exceeds circuit modes")

	// ErrInvalidWidth indicates a non-positive mode count or a shrinking Grow.
	ErrInvalidWidth = errors.New("optics: invalid mode count")

	// ErrNotUnitary indicates a matrix that is not square-unitary within tolerance.
	ErrNotUnitary = errors.New("optics: matrix is not unitary")

	// ErrNilComponent indicates a nil component passed to Circuit.Add.
	ErrNilComponent = errors.New("optics: nil component")
)
