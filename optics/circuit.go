// SPDX-License-Identifier: MIT

// Package optics - Circuit, the ordered optical network.
//
// A Circuit is itself a Component, so fragments nest inside the network that
// hosts them. Width only ever grows; entries are never removed or reordered.
package optics

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvphoton/matrix"
)

// Entry places a component on modes [Offset, Offset+Component.M()).
type Entry struct {
	Offset    int
	Component Component
}

// Modes returns the contiguous mode range covered by the entry.
func (e Entry) Modes() []int {
	out := make([]int, e.Component.M())
	for i := range out {
		out[i] = e.Offset + i
	}

	return out
}

// Circuit is an ordered list of components on m modes.
type Circuit struct {
	name    string
	m       int
	entries []Entry
}

var _ Component = (*Circuit)(nil)

// NewCircuit returns an empty m-mode circuit.
func NewCircuit(m int, name string) (*Circuit, error) {
	if m <= 0 {
		return nil, fmt.Errorf("circuit %q with %d modes: %w", name, m, ErrInvalidWidth)
	}

	return &Circuit{name: name, m: m}, nil
}

// Add appends comp on modes starting at offset.
// Errors: ErrNilComponent, ErrModeRange when the component overflows the circuit.
func (c *Circuit) Add(offset int, comp Component) error {
	if comp == nil {
		return ErrNilComponent
	}
	if offset < 0 || offset+comp.M() > c.m {
		return fmt.Errorf("%s (%d modes) at %d in %d-mode %q: %w",
			comp.Name(), comp.M(), offset, c.m, c.name, ErrModeRange)
	}
	c.entries = append(c.entries, Entry{Offset: offset, Component: comp})

	return nil
}

// Grow widens the circuit to m modes. Shrinking is rejected.
func (c *Circuit) Grow(m int) error {
	if m < c.m {
		return fmt.Errorf("shrink %q from %d to %d: %w", c.name, c.m, m, ErrInvalidWidth)
	}
	c.m = m

	return nil
}

// Name implements Component.
func (c *Circuit) Name() string { return c.name }

// M implements Component.
func (c *Circuit) M() int { return c.m }

// Len returns the number of top-level entries.
func (c *Circuit) Len() int { return len(c.entries) }

// Entries returns a copy of the top-level entries in application order.
func (c *Circuit) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)

	return out
}

// Unitary implements Component. Entries act left to right, so the composite
// is E_k · ... · E_1 with every E lifted onto all m modes.
// Complexity: O(k·m³) for k entries.
func (c *Circuit) Unitary() (*matrix.Dense, error) {
	u, err := matrix.Identity(c.m)
	if err != nil {
		return nil, err
	}
	for idx, e := range c.entries {
		block, err := e.Component.Unitary()
		if err != nil {
			return nil, fmt.Errorf("%q entry %d (%s): %w", c.name, idx, e.Component.Name(), err)
		}
		lifted, err := matrix.Embed(c.m, e.Offset, block)
		if err != nil {
			return nil, fmt.Errorf("%q entry %d (%s): %w", c.name, idx, e.Component.Name(), err)
		}
		if u, err = matrix.Mul(lifted, u); err != nil {
			return nil, err
		}
	}

	return u, nil
}

// AsPermutation reports whether the circuit only rewires modes and, if so,
// returns the equivalent permutation over all m modes. Nested circuits are
// inspected recursively; an empty circuit is the identity.
func (c *Circuit) AsPermutation() (*Permutation, bool) {
	acc, err := IdentityPermutation(c.m)
	if err != nil {
		return nil, false
	}
	for _, e := range c.entries {
		var local *Permutation
		switch comp := e.Component.(type) {
		case *Permutation:
			local = comp
		case *Circuit:
			p, ok := comp.AsPermutation()
			if !ok {
				return nil, false
			}
			local = p
		default:
			return nil, false
		}
		lifted, err := local.Lift(c.m, e.Offset)
		if err != nil {
			return nil, false
		}
		if acc, err = acc.Then(lifted); err != nil {
			return nil, false
		}
	}

	return acc, true
}

// String lists the entries one per line, nested circuits indented.
func (c *Circuit) String() string {
	var sb strings.Builder
	c.write(&sb, 0)

	return sb.String()
}

func (c *Circuit) write(sb *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(sb, "%s%s[%d modes]\n", indent, c.name, c.m)
	for _, e := range c.entries {
		if sub, ok := e.Component.(*Circuit); ok {
			fmt.Fprintf(sb, "%s  @%d\n", indent, e.Offset)
			sub.write(sb, depth+2)
			continue
		}
		fmt.Fprintf(sb, "%s  @%d %v\n", indent, e.Offset, e.Component)
	}
}
