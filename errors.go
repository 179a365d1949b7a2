package shortfft

import "errors"

// Sentinel errors returned by transform operations. All validity checks
// happen at the public boundary; synthesis and execution of a well-formed
// request never fail.
var (
	// ErrInvalidLength is returned when the requested transform length is
	// negative. Any non-negative length is accepted, including zero.
	ErrInvalidLength = errors.New("shortfft: invalid transform length")

	// ErrNilSlice is returned when a nil slice is passed where caller
	// storage is required.
	ErrNilSlice = errors.New("shortfft: nil slice")

	// ErrLengthMismatch is returned when input/output slice lengths don't
	// match the kernel's transform length.
	ErrLengthMismatch = errors.New("shortfft: slice length mismatch")

	// ErrInvalidPrecision is returned when an arbitrary-precision kernel is
	// requested outside [bignum.MinPrec, bignum.MaxPrec].
	ErrInvalidPrecision = errors.New("shortfft: precision out of range")
)
