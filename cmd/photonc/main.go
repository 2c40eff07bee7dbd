// Command photonc compiles gate-level circuits into linear-optical processors.
//
//	photonc compile bell.yaml --heralded
//	photonc compile a.yaml b.yaml --output yaml
//	photonc gates
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
