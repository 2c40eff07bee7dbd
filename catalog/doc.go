// Package catalog maps gate kinds to linear-optical fragments.
//
// A Registry is an immutable table of Entry records. Each entry names a gate
// kind (plus aliases), the number of qubits and angle parameters it takes, and
// a Build function returning the Fragment that realises the gate on dual-rail
// qubits.
//
// Fragment layout:
//
//	A fragment for a k-qubit gate spans 2k + 2a modes, where a is the number of
//	ancilla pairs it needs. QubitOffsets gives, in operand order, the local
//	offset of each operand's mode pair; every other local mode is an ancilla,
//	described in ascending position order by Ancillas.
//
// Two-qubit gates come in two flavours selected by Request.Heralded:
//
//	heralded     ancilla photons are injected and measured; the measured
//	             pattern certifies success (Knill CNOT, 2/27)
//	postselected no photons are added; success is decided afterwards from the
//	             qubit modes themselves (Ralph CNOT, 1/9)
//
// Registries are safe for concurrent use. With returns an extended copy and
// never touches the receiver.
package catalog
