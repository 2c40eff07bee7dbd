// SPDX-License-Identifier: MIT

package processor

import "errors"

var (
	// ErrNilNetwork indicates a processor without a network.
	ErrNilNetwork = errors.New("processor: nil network")

	// ErrModeRange indicates a record pointing outside the network's modes.
	ErrModeRange = errors.New("processor: mode out of range")

	// ErrInvalidPair indicates a qubit whose rails are not (k, k+1) or overlap another qubit.
	ErrInvalidPair = errors.New("processor: invalid qubit mode pair")

	// ErrUnsorted indicates sources or heralds not strictly ascending by mode.
	ErrUnsorted = errors.New("processor: records not sorted by mode")

	// ErrNegativeCount indicates a negative photon count.
	ErrNegativeCount = errors.New("processor: negative photon count")

	// ErrConflictingConditions indicates heralds and postselection on one processor.
	ErrConflictingConditions = errors.New("processor: heralds and postselection are exclusive")

	// ErrInvalidProbability indicates a success probability outside (0, 1].
	ErrInvalidProbability = errors.New("processor: success probability out of range")

	// ErrOccupationLength indicates an occupation vector of the wrong length.
	ErrOccupationLength = errors.New("processor: occupation length differs from mode count")
)
