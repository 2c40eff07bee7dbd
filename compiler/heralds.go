// SPDX-License-Identifier: MIT

package compiler

import (
	"sort"

	"github.com/katalvlaran/lvphoton/catalog"
	"github.com/katalvlaran/lvphoton/processor"
)

// heraldBook accumulates sources, heralds, postselection conditions and the
// success probability while gates are compiled. finalize sorts everything.
type heraldBook struct {
	sources []processor.Source
	heralds []processor.Herald
	post    processor.PostSelect
	success float64
}

// newHeraldBook seeds one single-photon source per qubit on its |0> rail.
func newHeraldBook(qubits []processor.ModePair) *heraldBook {
	b := &heraldBook{sources: make([]processor.Source, 0, len(qubits)), success: 1}
	for _, q := range qubits {
		b.sources = append(b.sources, processor.Source{Mode: q.Zero, Photons: 1})
	}

	return b
}

// record books the ancilla modes of one placed fragment. ancillaModes[i] is
// the network mode at the fragment's i-th ancilla position.
func (b *heraldBook) record(frag catalog.Fragment, operands []processor.ModePair, ancillaModes []int) {
	for i, a := range frag.Ancillas {
		mode := ancillaModes[i]
		if a.Photons > 0 {
			b.sources = append(b.sources, processor.Source{Mode: mode, Photons: a.Photons})
		}
		if frag.Heralded {
			b.heralds = append(b.heralds, processor.Herald{Mode: mode, Count: a.Herald})
		}
	}
	if frag.PostSelect {
		for _, q := range operands {
			c := processor.Condition{Modes: []int{q.Zero, q.One}, Count: 1}
			if !b.post.Has(c) {
				b.post.Conditions = append(b.post.Conditions, c)
			}
		}
	}
	b.success *= frag.SuccessProbability
}

// finalize orders sources and heralds by mode and conditions by first mode.
func (b *heraldBook) finalize() {
	sort.Slice(b.sources, func(i, j int) bool { return b.sources[i].Mode < b.sources[j].Mode })
	sort.Slice(b.heralds, func(i, j int) bool { return b.heralds[i].Mode < b.heralds[j].Mode })
	sort.Slice(b.post.Conditions, func(i, j int) bool {
		return b.post.Conditions[i].Modes[0] < b.post.Conditions[j].Modes[0]
	})
}
