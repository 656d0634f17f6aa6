package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingField indicates a raw listing lacks a field the
	// normaliser requires. It aborts the whole normalisation call.
	ErrMissingField = errors.New("missing required field")

	// ErrStoreCorrupt indicates the store exists but could not be decoded.
	ErrStoreCorrupt = errors.New("store is corrupt")

	// ErrUnsupportedBackend indicates an unknown storage backend name.
	ErrUnsupportedBackend = errors.New("unsupported storage backend")

	// ErrUnknownSetting indicates a configuration key hhvac does not recognise.
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrServiceUnavailable indicates a required service was not wired.
	ErrServiceUnavailable = errors.New("service unavailable")
)
