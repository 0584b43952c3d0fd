// Package common defines the sentinel errors shared across the UniCaronas
// data core. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrRideFull       = errors.New("ride is full")
	ErrUnauthorized   = errors.New("unauthorized")

	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Storage-level errors. ErrCorruptData marks a blob that exists but
	// cannot be parsed; ErrStorage marks an underlying read/write failure.
	ErrCorruptData = errors.New("corrupt data")
	ErrStorage     = errors.New("storage failure")
)
