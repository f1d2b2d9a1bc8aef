package common

import "errors"

var (
	// ErrInvalidIdentity is returned when a key would be built from a missing
	// user or room identity. Nothing is read or written in that case.
	ErrInvalidIdentity = errors.New("invalid identity")

	// ErrCorruptRecord marks stored data that does not decode into the
	// expected shape. Stores treat such records as absent.
	ErrCorruptRecord = errors.New("corrupt record")

	// ErrStorageUnavailable wraps any failure of the persistence medium.
	ErrStorageUnavailable = errors.New("storage unavailable")

	ErrEmptyContent = errors.New("message content cannot be empty")
	ErrRoleMismatch = errors.New("operation not available for this role")
)
