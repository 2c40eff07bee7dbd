// SPDX-License-Identifier: MIT

// Package matrix - algebra over Dense.
//
// Every function validates its operands first and returns a fresh result;
// operands are never mutated.
package matrix

import (
	"fmt"
	"math/cmplx"
)

const (
	opMul       = "Mul"
	opConjT     = "ConjugateTranspose"
	opEmbed     = "Embed"
	opAllClose  = "AllClose"
	opIsUnitary = "IsUnitary"
)

// matrixErrorf wraps err with the operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication of a and b (a × b).
// Stage 1 (Validate): nil-check and inner-dimension match.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): i-k-j loop over the flat buffers, skipping zero entries.
// Complexity: O(r*n*c) time and O(r*c) memory.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k    int
		av         complex128
		rowA, rowB int // flat offsets of the current rows in a and b
		rowR       int // flat offset of the current row in res
	)
	for i = 0; i < a.r; i++ {
		rowA = i * a.c
		rowR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue // permutation and block-diagonal matrices are mostly zeros
			}
			rowB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// ConjugateTranspose returns the Hermitian adjoint m†.
// Complexity: O(r*c).
func ConjugateTranspose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opConjT, ErrNilMatrix)
	}
	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opConjT, err)
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = cmplx.Conj(m.data[i*m.c+j])
		}
	}

	return res, nil
}

// Embed returns an n×n identity with the square block placed on the diagonal
// starting at (offset, offset). It lifts a k-mode component onto an n-mode
// network.
//
// Errors: ErrNonSquare if block is not square, ErrDimensionMismatch if the
// block does not fit at offset.
// Complexity: O(n² + k²).
func Embed(n, offset int, block *Dense) (*Dense, error) {
	if block == nil {
		return nil, matrixErrorf(opEmbed, ErrNilMatrix)
	}
	if block.r != block.c {
		return nil, matrixErrorf(opEmbed, ErrNonSquare)
	}
	if offset < 0 || offset+block.r > n {
		return nil, matrixErrorf(opEmbed, ErrDimensionMismatch)
	}
	res, err := Identity(n)
	if err != nil {
		return nil, matrixErrorf(opEmbed, err)
	}
	k := block.r
	for i := 0; i < k; i++ {
		copy(res.data[(offset+i)*n+offset:(offset+i)*n+offset+k], block.data[i*k:(i+1)*k])
	}

	return res, nil
}

// AllClose reports whether a and b have the same shape and every pair of
// entries differs by at most eps in modulus.
// Complexity: O(r*c).
func AllClose(a, b *Dense, opts ...Option) (bool, error) {
	if a == nil || b == nil {
		return false, matrixErrorf(opAllClose, ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return false, matrixErrorf(opAllClose, ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	for i := range a.data {
		if cmplx.Abs(a.data[i]-b.data[i]) > o.eps {
			return false, nil
		}
	}

	return true, nil
}

// IsUnitary reports whether m·m† equals the identity within eps.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n³).
func IsUnitary(m *Dense, opts ...Option) (bool, error) {
	if m == nil {
		return false, matrixErrorf(opIsUnitary, ErrNilMatrix)
	}
	if m.r != m.c {
		return false, matrixErrorf(opIsUnitary, ErrNonSquare)
	}
	adj, err := ConjugateTranspose(m)
	if err != nil {
		return false, matrixErrorf(opIsUnitary, err)
	}
	prod, err := Mul(m, adj)
	if err != nil {
		return false, matrixErrorf(opIsUnitary, err)
	}
	id, err := Identity(m.r)
	if err != nil {
		return false, matrixErrorf(opIsUnitary, err)
	}

	return AllClose(prod, id, opts...)
}
