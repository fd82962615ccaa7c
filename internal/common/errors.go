// Package common provides shared utilities and types used across the application.
package common

import "errors"

// Common application errors.
var (
	// ErrDatabaseCorrupted indicates the database schema cannot be used by
	// this build (for example, it was written by a newer version).
	ErrDatabaseCorrupted = errors.New("database corrupted")

	// ErrInvalidConfig indicates a configuration value that cannot be parsed.
	ErrInvalidConfig = errors.New("invalid configuration")
)
