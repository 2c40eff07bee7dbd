// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Request carries the per-gate arguments a builder needs.
type Request struct {
	// Heralded selects the heralded realisation of multi-qubit gates.
	Heralded bool

	// Params holds the gate angles in radians, in declaration order.
	Params []float64
}

// BuildFunc produces a fresh fragment for one gate occurrence.
type BuildFunc func(req Request) (Fragment, error)

// Entry is one row of the catalog.
type Entry struct {
	Kind    string
	Aliases []string
	Arity   int
	Params  int
	Summary string
	Build   BuildFunc
}

// clone copies the alias slice so callers cannot reach registry state.
func (e Entry) clone() Entry {
	e.Aliases = append([]string(nil), e.Aliases...)

	return e
}

// Registry is an immutable kind -> Entry table.
type Registry struct {
	byName  map[string]int // kind or alias -> index into entries
	entries []Entry        // sorted by Kind
}

// normalize folds gate names the way circuit files spell them.
func normalize(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

// NewRegistry validates entries and indexes them by kind and alias.
//
// Errors: ErrInvalidEntry for an empty kind, non-positive arity, negative
// parameter count or nil builder; ErrDuplicateKind when a kind or alias is
// claimed twice.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		byName:  make(map[string]int, len(entries)),
		entries: make([]Entry, 0, len(entries)),
	}
	for _, e := range entries {
		if err := r.insert(e); err != nil {
			return nil, err
		}
	}
	r.reindex()

	return r, nil
}

// insert appends e after validation; reindex must follow.
func (r *Registry) insert(e Entry) error {
	e.Kind = normalize(e.Kind)
	if e.Kind == "" || e.Arity <= 0 || e.Params < 0 || e.Build == nil {
		return fmt.Errorf("entry %q: %w", e.Kind, ErrInvalidEntry)
	}
	aliases := make([]string, len(e.Aliases))
	for i, a := range e.Aliases {
		aliases[i] = normalize(a)
	}
	e.Aliases = aliases

	for _, name := range append([]string{e.Kind}, aliases...) {
		if name == "" {
			return fmt.Errorf("entry %q has an empty alias: %w", e.Kind, ErrInvalidEntry)
		}
		if _, dup := r.byName[name]; dup {
			return fmt.Errorf("%q: %w", name, ErrDuplicateKind)
		}
		r.byName[name] = -1
	}
	r.entries = append(r.entries, e)

	return nil
}

// reindex sorts entries by kind and rebuilds the name index.
func (r *Registry) reindex() {
	sort.Slice(r.entries, func(i, j int) bool { return r.entries[i].Kind < r.entries[j].Kind })
	for i, e := range r.entries {
		r.byName[e.Kind] = i
		for _, a := range e.Aliases {
			r.byName[a] = i
		}
	}
}

// With returns a new registry holding the receiver's entries plus extra.
// The receiver is left untouched.
func (r *Registry) With(extra ...Entry) (*Registry, error) {
	all := make([]Entry, 0, len(r.entries)+len(extra))
	all = append(all, r.entries...)
	all = append(all, extra...)

	return NewRegistry(all...)
}

// Entry returns the entry registered under kind or one of its aliases.
func (r *Registry) Entry(kind string) (Entry, bool) {
	idx, ok := r.byName[normalize(kind)]
	if !ok {
		return Entry{}, false
	}

	return r.entries[idx].clone(), true
}

// Lookup builds the fragment for kind. The fragment is validated against the
// entry's arity before it is returned.
//
// Errors: ErrUnsupportedGate, ErrParamCount, ErrInvalidFragment or whatever
// the builder reports.
func (r *Registry) Lookup(kind string, req Request) (Fragment, error) {
	e, ok := r.Entry(kind)
	if !ok {
		return Fragment{}, fmt.Errorf("%q: %w", kind, ErrUnsupportedGate)
	}
	if len(req.Params) != e.Params {
		return Fragment{}, fmt.Errorf("%s takes %d parameters, got %d: %w", e.Kind, e.Params, len(req.Params), ErrParamCount)
	}
	f, err := e.Build(req)
	if err != nil {
		return Fragment{}, fmt.Errorf("build %s: %w", e.Kind, err)
	}
	if err = f.Validate(e.Arity); err != nil {
		return Fragment{}, fmt.Errorf("build %s: %w", e.Kind, err)
	}

	return f, nil
}

// Kinds returns the canonical kinds in ascending order.
func (r *Registry) Kinds() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Kind
	}

	return out
}

// Entries returns a copy of every entry, sorted by kind.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.clone()
	}

	return out
}

// Len returns the number of canonical kinds.
func (r *Registry) Len() int { return len(r.entries) }
