// SPDX-License-Identifier: MIT

package catalog

var defaultRegistry = mustRegistry(append(singleQubitEntries(), twoQubitEntries()...)...)

func mustRegistry(entries ...Entry) *Registry {
	r, err := NewRegistry(entries...)
	if err != nil {
		panic(err)
	}

	return r
}

// Default returns the built-in registry. It is shared and immutable; extend
// it with With.
func Default() *Registry { return defaultRegistry }
