// Package optics models linear-optical networks over numbered modes.
//
// What is here?
//
//	A Component acts on a contiguous run of M() modes and exposes its M×M
//	transfer matrix. The package ships the building blocks gate catalogs are
//	made of:
//	  • BeamSplitter: Rx, Ry and H conventions with four optional phases
//	  • PhaseShifter: single-mode phase e^{iφ}
//	  • Permutation : mode rewiring, input i leaves on output Vector()[i]
//	  • Unitary     : any validated unitary matrix
//	  • Circuit     : an ordered list of (offset, Component) entries; it is
//	                   itself a Component, so fragments nest inside networks.
//
// Circuits can grow in width (Grow) but entries already added keep their
// offsets, which is what a compiler appending ancilla modes relies on.
//
// Unitary() on a Circuit multiplies the lifted entry matrices in order; it is
// a debugging and testing aid, not a simulator.
package optics
