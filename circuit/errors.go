// SPDX-License-Identifier: MIT

package circuit

import "errors"

var (
	// ErrNoQubits indicates a circuit declared with fewer than one qubit.
	ErrNoQubits = errors.New("circuit: qubit count must be positive")

	// ErrEmptyKind indicates a gate without a kind.
	ErrEmptyKind = errors.New("circuit: gate kind is empty")

	// ErrOperandCount indicates a gate with no operands or more than two.
	ErrOperandCount = errors.New("circuit: gate takes one or two qubits")

	// ErrOperandRange indicates an operand outside 0..n-1.
	ErrOperandRange = errors.New("circuit: qubit index out of range")

	// ErrRepeatedOperand indicates the same qubit used twice by one gate.
	ErrRepeatedOperand = errors.New("circuit: repeated qubit operand")

	// ErrBadParam indicates a NaN or infinite angle.
	ErrBadParam = errors.New("circuit: gate parameter is not finite")

	// ErrSyntax indicates a malformed compact gate string.
	ErrSyntax = errors.New("circuit: malformed gate")
)
