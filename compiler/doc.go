// Package compiler turns a gate-level circuit into a linear-optical
// processor using dual-rail encoding.
//
// Pipeline (one pass, program order):
//
//	allocator   qubit i -> modes (2i, 2i+1); ancilla pairs appended at the end
//	translator  catalog lookup, operand checks, ancilla allocation
//	router      forward PERM, fragment on a contiguous block, inverse PERM
//	heralds     sources, heralds or postselection, success probability
//	composer    grows the network with the mode space and assembles the Processor
//
// Routing example (heralded CNOT, control 0, target 1, n = 2):
//
//	network modes  q0: 0,1  q1: 2,3  ancillas: 4,5,6,7
//	fragment wants [a,a,c,c,t,t,a,a] -> block [4,5,0,1,2,3,6,7]
//	forward  PERM[2,3,4,5,0,1,6,7]  (input i leaves on output p[i])
//	inverse  PERM[4,5,0,1,2,3,6,7]
//
// Heralded vs postselected is a single switch (WithHeralded) applied to every
// multi-qubit gate. A Compiler is immutable and safe for concurrent use;
// each Compile call owns its own state.
package compiler
