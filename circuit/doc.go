// Package circuit holds the gate-level input of the compiler: a qubit count
// and an ordered list of gates.
//
// Circuits are built in code with New/Add or read from YAML with Load and
// Decode. A gate can be written as a mapping or, more tersely, as a scalar:
//
//	name: bell
//	qubits: 2
//	gates:
//	  - h 0
//	  - cx 0 1
//	  - rz(1.5708) 1
//	  - kind: u
//	    qubits: [0]
//	    params: [0.1, 0.2, 0.3]
//
// Validate only checks the shape of each gate (operand count and range,
// repeated operands, finite angles). Whether a kind exists and how many
// operands it takes is the gate catalog's business.
package circuit
