// SPDX-License-Identifier: MIT

package catalog

import "errors"

var (
	// ErrUnsupportedGate is returned by Lookup for a kind the registry lacks.
	ErrUnsupportedGate = errors.New("catalog: unsupported gate")

	// ErrParamCount indicates a Request with the wrong number of angles.
	ErrParamCount = errors.New("catalog: wrong number of gate parameters")

	// ErrInvalidEntry indicates an Entry without kind, arity or builder.
	ErrInvalidEntry = errors.New("catalog: invalid entry")

	// ErrDuplicateKind indicates two entries claiming the same kind or alias.
	ErrDuplicateKind = errors.New("catalog: duplicate gate kind")

	// ErrInvalidFragment indicates a built fragment with inconsistent layout.
	ErrInvalidFragment = errors.New("catalog: invalid fragment")
)
