package algopfa

import "errors"

// Sentinel errors returned by transform operations. Every failure mode is
// an invalid-argument contract violation: all checks run eagerly, before
// any array is touched, so there is no partial-failure state and nothing
// to retry.
var (
	// ErrInvalidLength is returned when a transform length is not in the
	// supported coprime-factor table, or when a nearest-length query is
	// asked for a length beyond the table maximum.
	ErrInvalidLength = errors.New("algopfa: invalid transform length")

	// ErrInvalidSign is returned when a transform sign is not 1 or -1.
	ErrInvalidSign = errors.New("algopfa: sign must be 1 or -1")

	// ErrLengthMismatch is returned when an array or one of its rows does
	// not cover the transform's expected dimensions.
	ErrLengthMismatch = errors.New("algopfa: array length mismatch")

	// ErrNilSlice is returned when a transform input or output is nil.
	ErrNilSlice = errors.New("algopfa: nil slice")
)
