// SPDX-License-Identifier: MIT

package compiler

import (
	"runtime"

	"github.com/katalvlaran/lvphoton/catalog"
	"go.uber.org/zap"
)

// Options configures a Compiler. Build it through Option values; the zero
// value is not meant to be used directly.
type Options struct {
	// Heralded selects heralded realisations of multi-qubit gates. The
	// default (false) compiles them for postselection.
	Heralded bool

	// Registry is the gate catalog; defaults to catalog.Default().
	Registry *catalog.Registry

	// Logger receives per-gate debug and per-circuit info records.
	Logger *zap.Logger

	// KeepIdentity emits routing permutations even when they move nothing.
	KeepIdentity bool

	// Concurrency bounds CompileAll; defaults to GOMAXPROCS.
	Concurrency int
}

// Option mutates Options before compilation.
type Option func(*Options)

// defaultOptions returns the configuration New starts from.
func defaultOptions() Options {
	return Options{
		Registry:    catalog.Default(),
		Logger:      zap.NewNop(),
		Concurrency: runtime.GOMAXPROCS(0),
	}
}

// WithHeralded switches every multi-qubit gate to its heralded realisation
// (true) or its postselected one (false).
func WithHeralded(heralded bool) Option {
	return func(o *Options) { o.Heralded = heralded }
}

// WithRegistry replaces the gate catalog. Panics on nil.
func WithRegistry(r *catalog.Registry) Option {
	if r == nil {
		panic("compiler: WithRegistry(nil)")
	}

	return func(o *Options) { o.Registry = r }
}

// WithLogger sets the structured logger. Panics on nil; pass zap.NewNop()
// to silence.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("compiler: WithLogger(nil)")
	}

	return func(o *Options) { o.Logger = l }
}

// WithIdentityPermutations keeps routing permutations that are the identity,
// so every routed gate contributes exactly forward, fragment and inverse.
func WithIdentityPermutations() Option {
	return func(o *Options) { o.KeepIdentity = true }
}

// WithConcurrency bounds the number of circuits CompileAll works on at once.
// Panics if n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic("compiler: WithConcurrency(n<1)")
	}

	return func(o *Options) { o.Concurrency = n }
}
