// SPDX-License-Identifier: MIT

package compiler

import (
	"fmt"

	"github.com/katalvlaran/lvphoton/optics"
	"github.com/katalvlaran/lvphoton/processor"
)

// composer appends entries to the growing network. The network width must
// track the allocator's mode count at every step.
type composer struct {
	net          *optics.Circuit
	alloc        *modeAllocator
	keepIdentity bool
}

func newComposer(name string, alloc *modeAllocator, keepIdentity bool) (*composer, error) {
	net, err := optics.NewCircuit(alloc.M(), name)
	if err != nil {
		return nil, err
	}

	return &composer{net: net, alloc: alloc, keepIdentity: keepIdentity}, nil
}

// sync widens the network to the allocator's current mode count.
func (c *composer) sync() error {
	if err := c.net.Grow(c.alloc.M()); err != nil {
		return fmt.Errorf("%w: %w", ErrModeCountMismatch, err)
	}

	return nil
}

// add appends comp at offset after checking the width invariant.
func (c *composer) add(offset int, comp optics.Component) error {
	if c.net.M() != c.alloc.M() {
		return fmt.Errorf("network has %d modes, allocator %d: %w", c.net.M(), c.alloc.M(), ErrModeCountMismatch)
	}
	if err := c.net.Add(offset, comp); err != nil {
		return fmt.Errorf("%w: %w", ErrModeCountMismatch, err)
	}

	return nil
}

// addPermutation appends p over all modes unless it is an elidable identity.
func (c *composer) addPermutation(p *optics.Permutation) error {
	if p.IsIdentity() && !c.keepIdentity {
		return nil
	}

	return c.add(0, p)
}

// place emits a translated gate: directly for an unrouted single-qubit
// fragment, as one trimmed PERM for pure rewiring, otherwise as
// forward / fragment / inverse.
func (c *composer) place(t translation, book *heraldBook) error {
	if err := c.sync(); err != nil {
		return err
	}
	frag := t.fragment
	if t.direct() {
		book.record(frag, t.operands, nil)

		return c.add(t.operands[0].Zero, frag.Circuit)
	}

	block, err := fragmentBlock(frag, t.operands, t.ancillas)
	if err != nil {
		return err
	}
	if frag.Width() != len(block) {
		return fmt.Errorf("fragment %d modes, block %d: %w", frag.Width(), len(block), ErrModeCountMismatch)
	}
	r, err := planRoute(c.alloc.M(), block)
	if err != nil {
		return err
	}
	book.record(frag, t.operands, flatten(t.ancillas))

	folded, ok, err := r.fold(c.alloc.M(), frag)
	if err != nil {
		return err
	}
	if ok {
		return c.addFolded(folded)
	}

	if err = c.addPermutation(r.forward); err != nil {
		return err
	}
	if err = c.add(r.start, frag.Circuit); err != nil {
		return err
	}

	return c.addPermutation(r.inverse)
}

// addFolded emits a composed rewiring trimmed to the modes it moves.
func (c *composer) addFolded(p *optics.Permutation) error {
	offset, trimmed, moves := p.Trim()
	if !moves {
		return c.addPermutation(p)
	}

	return c.add(offset, trimmed)
}

// assemble wraps the network and the finalized book into a validated Processor.
func (c *composer) assemble(book *heraldBook, heralded bool) (*processor.Processor, error) {
	if c.net.M() != c.alloc.M() {
		return nil, fmt.Errorf("network has %d modes, allocator %d: %w", c.net.M(), c.alloc.M(), ErrModeCountMismatch)
	}
	book.finalize()
	p := &processor.Processor{
		Network:            c.net,
		QubitModes:         c.alloc.QubitModes(),
		Sources:            book.sources,
		Heralds:            book.heralds,
		PostSelect:         book.post,
		Heralded:           heralded,
		SuccessProbability: book.success,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}
