// Package error defines domain-specific errors for the Planify application.
package error

import "errors"

// Email domain errors.
var (
	// ErrEmailSendFailed is returned when an email fails to be sent.
	ErrEmailSendFailed = errors.New("failed to send email")

	// ErrEmailNotConfigured is returned when the email provider key is missing.
	ErrEmailNotConfigured = errors.New("email service is not configured")
)

// EmailErrorCode defines error codes for email errors.
// Format: EMAIL-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	ErrCodeEmailSendFailed    EmailErrorCode = "EMAIL-010001"
	ErrCodeEmailNotConfigured EmailErrorCode = "EMAIL-010002"
)
