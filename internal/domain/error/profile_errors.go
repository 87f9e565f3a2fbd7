package error

import "errors"

// Profile domain errors.
var (
	// ErrProfileNotFound is returned when a profile row does not exist.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrAdminRequired is returned when a non-admin attempts an admin operation.
	ErrAdminRequired = errors.New("admin role required")
)

// ProfileErrorCode defines error codes for profile errors.
// Format: PROF-XXYYYY where XX is category and YYYY is specific error.
type ProfileErrorCode string

const (
	ErrCodeProfileNotFound ProfileErrorCode = "PROF-010001"
	ErrCodeAdminRequired   ProfileErrorCode = "PROF-020001"
)
