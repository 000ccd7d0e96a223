package fiscal

import "errors"

// Error classes surfaced by the conversion engine. Every error returned
// from the public API wraps exactly one of these, so callers can sort
// failures with errors.Is.
var (
	// ErrInvalidDirection means the requested from/to pair is not supported.
	ErrInvalidDirection = errors.New("invalid conversion direction")

	// ErrMalformedInput means a value does not parse in the shape its
	// source coordinate requires.
	ErrMalformedInput = errors.New("malformed input")

	// ErrOutOfRange means a parsed date or fiscal week falls outside the
	// configured fiscal range.
	ErrOutOfRange = errors.New("out of supported range")

	// ErrNotConfigured means the alignment table has no entry for a year
	// it is asked about.
	ErrNotConfigured = errors.New("year not configured")
)
