// Package common defines shared sentinel errors used across the wiki core.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrNotFound = errors.New("not found")

	// Account / page conflicts.
	ErrAlreadyExists = errors.New("already exists")

	// Validation errors.
	ErrInvalidUsername = errors.New("invalid username")

	// Generic internal failure, returned when a storage error must not
	// leak backend details to the caller.
	ErrInternal = errors.New("internal error")
)
