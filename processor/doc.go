// Package processor defines the compiled artifact: an optical network plus
// everything a simulator needs to run it.
//
//   - QubitModes: the dual-rail pair of each logical qubit.
//   - Sources: where photons enter (one per qubit on its |0> rail, plus any
//     photons ancillas require).
//   - Heralds: ancilla modes and the photon count that certifies success.
//   - PostSelect: photon-count conditions applied after detection when the
//     network was compiled without heralds.
//
// A Processor is plain data. The compiler never touches it after returning
// it, and Validate can be re-run by callers that edit it by hand.
package processor
