// Package errors provides centralized error handling for lockbox.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrUnsupportedMode indicates a file access mode outside the
	// r/w/a/x family was given to the mode resolver.
	ErrUnsupportedMode = errors.New("unsupported file mode")

	// ErrLockFailed indicates the OS reported that an advisory lock
	// could not be acquired or released. The concrete OS cause is
	// carried by flock.LockError.
	ErrLockFailed = errors.New("lock operation failed")

	// ErrInvalidToken indicates an encrypted token failed authentication,
	// either because it was tampered with or decrypted with a key derived
	// from the wrong secret or salt.
	ErrInvalidToken = errors.New("invalid encryption token")

	// ErrKeyNotSet indicates an encrypt or decrypt call before a key
	// was derived.
	ErrKeyNotSet = errors.New("encryption key not set")

	// ErrStoreRead indicates the system credential store failed to
	// return a secret for a reason other than the secret being absent.
	ErrStoreRead = errors.New("credential store read failed")

	// ErrStoreWrite indicates the system credential store rejected a write.
	ErrStoreWrite = errors.New("credential store write failed")

	// ErrStoreDelete indicates the system credential store failed to
	// delete a secret.
	ErrStoreDelete = errors.New("credential store delete failed")

	// ErrSaltRequired indicates vault usage without a configured salt.
	ErrSaltRequired = errors.New("vault salt is not configured")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidVault indicates an invalid vault configuration value.
	ErrConfigInvalidVault = errors.New("invalid vault configuration")

	// ErrConfigInvalidLog indicates an invalid logging configuration value.
	ErrConfigInvalidLog = errors.New("invalid log configuration")

	// ErrValueOutOfRange indicates that a value is outside the allowed range.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrInvalidArgument indicates that an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
)
