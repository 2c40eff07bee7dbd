// SPDX-License-Identifier: MIT

package compiler

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvphoton/catalog"
)

var (
	// ErrUnsupportedGate is returned when the registry has no entry for a gate kind.
	ErrUnsupportedGate = catalog.ErrUnsupportedGate

	// ErrInvalidOperand indicates a wrong operand or parameter count, a
	// repeated operand or a qubit index outside the circuit.
	ErrInvalidOperand = errors.New("compiler: invalid gate operand")

	// ErrPermutationInvariant indicates a routing vector that is not a
	// bijection or whose inverse does not restore the identity.
	ErrPermutationInvariant = errors.New("compiler: permutation invariant violated")

	// ErrModeCountMismatch indicates a network width or fragment width that
	// disagrees with the allocated mode space.
	ErrModeCountMismatch = errors.New("compiler: mode count mismatch")

	// ErrNoQubits indicates a nil circuit or one with fewer than one qubit.
	ErrNoQubits = errors.New("compiler: circuit has no qubits")
)

// GateError locates a failure at one gate of the input circuit.
type GateError struct {
	Index int
	Kind  string
	Err   error
}

func (e *GateError) Error() string {
	return fmt.Sprintf("compiler: gate %d (%s): %v", e.Index, e.Kind, e.Err)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *GateError) Unwrap() error { return e.Err }
