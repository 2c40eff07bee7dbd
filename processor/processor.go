// SPDX-License-Identifier: MIT

package processor

import (
	"fmt"

	"github.com/katalvlaran/lvphoton/optics"
)

// Processor is the compiled, runnable unit.
type Processor struct {
	Network            *optics.Circuit
	QubitModes         []ModePair
	Sources            []Source
	Heralds            []Herald
	PostSelect         PostSelect
	Heralded           bool
	SuccessProbability float64
}

// M returns the number of optical modes, 0 without a network.
func (p *Processor) M() int {
	if p.Network == nil {
		return 0
	}

	return p.Network.M()
}

// InputState returns the input occupation vector implied by Sources.
func (p *Processor) InputState() []int {
	state := make([]int, p.M())
	for _, s := range p.Sources {
		if s.Mode >= 0 && s.Mode < len(state) {
			state[s.Mode] += s.Photons
		}
	}

	return state
}

// SourceMap returns mode -> injected photons.
func (p *Processor) SourceMap() map[int]int {
	out := make(map[int]int, len(p.Sources))
	for _, s := range p.Sources {
		out[s.Mode] = s.Photons
	}

	return out
}

// HeraldMap returns mode -> expected photon count.
func (p *Processor) HeraldMap() map[int]int {
	out := make(map[int]int, len(p.Heralds))
	for _, h := range p.Heralds {
		out[h.Mode] = h.Count
	}

	return out
}

// Accepts reports whether a detected output pattern passes the heralds and
// the postselection predicate.
// Errors: ErrOccupationLength when len(output) != M(), or any Validate error.
func (p *Processor) Accepts(output []int) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	if len(output) != p.M() {
		return false, fmt.Errorf("%d values for %d modes: %w", len(output), p.M(), ErrOccupationLength)
	}
	for _, h := range p.Heralds {
		if output[h.Mode] != h.Count {
			return false, nil
		}
	}
	for _, c := range p.PostSelect.Conditions {
		if !c.holds(output) {
			return false, nil
		}
	}

	return true, nil
}

// Validate checks internal consistency: every record within [0, M), qubit
// pairs adjacent and disjoint, sources and heralds strictly ascending,
// non-negative counts and heralds not combined with postselection.
func (p *Processor) Validate() error {
	if p.Network == nil {
		return ErrNilNetwork
	}
	m := p.M()
	inRange := func(mode int) bool { return mode >= 0 && mode < m }

	taken := make(map[int]bool, 2*len(p.QubitModes))
	for q, mp := range p.QubitModes {
		if mp.One != mp.Zero+1 || !inRange(mp.Zero) || !inRange(mp.One) || taken[mp.Zero] || taken[mp.One] {
			return fmt.Errorf("qubit %d on (%d,%d): %w", q, mp.Zero, mp.One, ErrInvalidPair)
		}
		taken[mp.Zero], taken[mp.One] = true, true
	}

	prev := -1
	for _, s := range p.Sources {
		if !inRange(s.Mode) {
			return fmt.Errorf("source on mode %d of %d: %w", s.Mode, m, ErrModeRange)
		}
		if s.Mode <= prev {
			return fmt.Errorf("source on mode %d after %d: %w", s.Mode, prev, ErrUnsorted)
		}
		if s.Photons < 0 {
			return fmt.Errorf("source on mode %d: %w", s.Mode, ErrNegativeCount)
		}
		prev = s.Mode
	}

	prev = -1
	for _, h := range p.Heralds {
		if !inRange(h.Mode) {
			return fmt.Errorf("herald on mode %d of %d: %w", h.Mode, m, ErrModeRange)
		}
		if h.Mode <= prev {
			return fmt.Errorf("herald on mode %d after %d: %w", h.Mode, prev, ErrUnsorted)
		}
		if h.Count < 0 {
			return fmt.Errorf("herald on mode %d: %w", h.Mode, ErrNegativeCount)
		}
		prev = h.Mode
	}

	for _, c := range p.PostSelect.Conditions {
		for _, mode := range c.Modes {
			if !inRange(mode) {
				return fmt.Errorf("condition %s: %w", c, ErrModeRange)
			}
		}
		if c.Count < 0 {
			return fmt.Errorf("condition %s: %w", c, ErrNegativeCount)
		}
	}
	if len(p.Heralds) > 0 && !p.PostSelect.Empty() {
		return ErrConflictingConditions
	}
	if p.SuccessProbability <= 0 || p.SuccessProbability > 1 {
		return fmt.Errorf("%g: %w", p.SuccessProbability, ErrInvalidProbability)
	}

	return nil
}

// String summarises the processor on a few lines.
func (p *Processor) String() string {
	return fmt.Sprintf("processor: %d modes, %d qubits, %d entries\n  sources: %v\n  heralds: %v\n  postselect: %s\n  success: %.6g\n",
		p.M(), len(p.QubitModes), p.networkLen(), p.Sources, p.Heralds, p.PostSelect, p.SuccessProbability)
}

func (p *Processor) networkLen() int {
	if p.Network == nil {
		return 0
	}

	return p.Network.Len()
}
