// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// PasswordResetEmailInput carries the fields of a password reset message.
type PasswordResetEmailInput struct {
	UserEmail string
	ResetURL  string
	ExpiresIn string
}

// EmailService defines the interface for application-level email delivery.
type EmailService interface {
	// SendPasswordResetEmail sends a password reset email.
	SendPasswordResetEmail(ctx context.Context, input PasswordResetEmailInput) error
}
