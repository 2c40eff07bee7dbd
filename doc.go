// Package lvphoton compiles gate-based quantum circuits into linear-optical
// networks.
//
// What is lvphoton?
//
//	A small, dependency-light toolchain that takes n qubits and a gate list
//	and produces a photonic Processor on dual-rail modes:
//		• Dual-rail encoding: qubit i lives on modes 2i (|0>) and 2i+1 (|1>)
//		• Data-driven gate catalog: H, Pauli, phase, rotations, U, CX, CZ, SWAP
//		• Heralded (Knill) or postselected (Ralph) two-qubit gates
//		• Exact permutation routing of non-adjacent operands
//		• Sources, heralds and postselection assembled for a simulator
//
// Packages:
//
//	matrix/    complex Dense matrices: Mul, Embed, IsUnitary
//	optics/    beam splitters, phase shifters, permutations, nested circuits
//	catalog/   gate kind -> optical fragment registry (Default)
//	circuit/   gate lists, validation, YAML circuit files
//	processor/ the compiled artifact: network, sources, heralds, postselection
//	compiler/  allocation, translation, routing, bookkeeping, batch compile
//	cmd/photonc command-line front end
//
// Quick example:
//
//	bell := circuit.New(2).Add("h", []int{0}).Add("cx", []int{0, 1})
//	p, err := compiler.Compile(bell, compiler.WithHeralded(true))
//	// p.M() == 8, sources on modes 0, 2, 5, 7, heralds on 4..7
//
// Simulation, rendering and network optimisation are out of scope; the
// Processor is plain data for whichever backend consumes it.
package lvphoton
