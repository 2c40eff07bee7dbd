// SPDX-License-Identifier: MIT

package compiler

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvphoton/catalog"
	"github.com/katalvlaran/lvphoton/circuit"
	"github.com/katalvlaran/lvphoton/processor"
)

// translation is one gate resolved against the catalog and the mode space.
type translation struct {
	entry    catalog.Entry
	fragment catalog.Fragment
	operands []processor.ModePair // operand order
	ancillas []processor.ModePair // freshly allocated, ascending
}

// direct reports whether the fragment sits on its single operand pair as is.
func (t translation) direct() bool {
	return len(t.operands) == 1 && len(t.ancillas) == 0
}

// checkOperands rejects wrong counts, repeated qubits and out-of-range indices.
func checkOperands(qubits []int, arity, n int) error {
	if len(qubits) != arity {
		return fmt.Errorf("%d operands, want %d: %w", len(qubits), arity, ErrInvalidOperand)
	}
	for i, q := range qubits {
		if q < 0 || q >= n {
			return fmt.Errorf("qubit %d of %d: %w", q, n, ErrInvalidOperand)
		}
		for _, prev := range qubits[:i] {
			if prev == q {
				return fmt.Errorf("qubit %d used twice: %w", q, ErrInvalidOperand)
			}
		}
	}

	return nil
}

// translate resolves g. Every check runs before ancillas are allocated, so a
// rejected gate leaves the mode space untouched.
//
// Stage 1 (Lookup): unknown kinds fail with ErrUnsupportedGate.
// Stage 2 (Operands): count, range and repetition.
// Stage 3 (Build): fragment for the heralded flag and parameters.
// Stage 4 (Allocate): the fragment's ancilla pairs.
func translate(reg *catalog.Registry, g circuit.Gate, heralded bool, alloc *modeAllocator) (translation, error) {
	entry, ok := reg.Entry(g.Kind)
	if !ok {
		return translation{}, fmt.Errorf("%q: %w", g.Kind, ErrUnsupportedGate)
	}
	if err := checkOperands(g.Qubits, entry.Arity, alloc.NumQubits()); err != nil {
		return translation{}, err
	}

	frag, err := reg.Lookup(entry.Kind, catalog.Request{Heralded: heralded, Params: g.Params})
	if err != nil {
		if errors.Is(err, catalog.ErrParamCount) {
			return translation{}, fmt.Errorf("%w: %w", ErrInvalidOperand, err)
		}

		return translation{}, err
	}

	t := translation{entry: entry, fragment: frag, operands: make([]processor.ModePair, len(g.Qubits))}
	for i, q := range g.Qubits {
		t.operands[i] = alloc.Qubit(q)
	}
	t.ancillas = alloc.AllocateAncilla(frag.AncillaPairs())

	return t, nil
}
