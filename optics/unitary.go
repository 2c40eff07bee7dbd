// SPDX-License-Identifier: MIT

package optics

import (
	"fmt"

	"github.com/katalvlaran/lvphoton/matrix"
)

// Unitary is a component defined directly by its transfer matrix.
type Unitary struct {
	name string
	u    *matrix.Dense
}

var _ Component = (*Unitary)(nil)

// NewUnitary validates that u is square and unitary (within the matrix
// options' tolerance) and keeps a private copy.
func NewUnitary(name string, u *matrix.Dense, opts ...matrix.Option) (*Unitary, error) {
	if u == nil {
		return nil, ErrNilComponent
	}
	ok, err := matrix.IsUnitary(u, opts...)
	if err != nil {
		return nil, fmt.Errorf("unitary %q: %w", name, err)
	}
	if !ok {
		return nil, fmt.Errorf("unitary %q: %w", name, ErrNotUnitary)
	}

	return &Unitary{name: name, u: u.Clone()}, nil
}

// Name implements Component.
func (u *Unitary) Name() string { return u.name }

// M implements Component.
func (u *Unitary) M() int { return u.u.Rows() }

// Unitary implements Component; the returned matrix is a copy.
func (u *Unitary) Unitary() (*matrix.Dense, error) { return u.u.Clone(), nil }

// String renders the component as Name[m×m].
func (u *Unitary) String() string { return fmt.Sprintf("%s[%d×%d]", u.name, u.M(), u.M()) }
