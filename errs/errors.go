// Package errs defines sentinel errors shared across blockstream packages.
//
// Call sites wrap these with fmt.Errorf("%w: detail", ...) so callers can
// match with errors.Is while still receiving context about the failure.
package errs

import "errors"

var (
	// ErrWriterClosed is returned when a write operation is attempted on a
	// writer after Close. Writing after close is a contract violation; the
	// writer state is not modified.
	ErrWriterClosed = errors.New("writer is closed")

	// ErrSinkClosed is returned when a sealed block is delivered to a sink
	// that has already been finalized.
	ErrSinkClosed = errors.New("sink is closed")

	// ErrInvalidCapacity is returned when a writer or pool is configured
	// with a non-positive block capacity.
	ErrInvalidCapacity = errors.New("invalid block capacity")

	// ErrInvalidFrame is returned when a framed block read from a stream
	// has a malformed or truncated header.
	ErrInvalidFrame = errors.New("invalid block frame")

	// ErrChecksumMismatch is returned when a framed block payload fails
	// checksum verification.
	ErrChecksumMismatch = errors.New("block checksum mismatch")

	// ErrTypeMismatch is returned when self-verification detects that an
	// item's type fingerprint does not match the expected type.
	ErrTypeMismatch = errors.New("item type fingerprint mismatch")
)
