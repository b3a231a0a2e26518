package sketch

import "errors"

var (
	// ErrZeroItems is returned when a bloom filter is sized for zero items.
	ErrZeroItems = errors.New("sketch: expected item count must be non-zero")

	// ErrInvalidFalsePositiveRate is returned when the target false
	// positive rate is not in the open interval (0, 1).
	ErrInvalidFalsePositiveRate = errors.New("sketch: false positive rate must be in (0, 1)")

	// ErrInvalidPrecision is returned when a HyperLogLog precision is
	// outside [MinPrecision, MaxPrecision].
	ErrInvalidPrecision = errors.New("sketch: invalid precision")

	// ErrNilHasher is returned when a constructor is given a nil Hasher.
	ErrNilHasher = errors.New("sketch: nil hasher")

	// ErrPrecisionMismatch is returned when merging HyperLogLogs of
	// different precision.
	ErrPrecisionMismatch = errors.New("sketch: precision mismatch")
)
