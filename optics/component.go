// SPDX-License-Identifier: MIT

package optics

import "github.com/katalvlaran/lvphoton/matrix"

// Component is a passive linear-optical element acting on M() adjacent modes.
type Component interface {
	// Name returns a short display name, e.g. "BS.H" or "PERM".
	Name() string

	// M returns the number of modes the component spans.
	M() int

	// Unitary returns the M×M transfer matrix. Column j is the output
	// amplitude distribution of a photon entering on local mode j.
	Unitary() (*matrix.Dense, error)
}
