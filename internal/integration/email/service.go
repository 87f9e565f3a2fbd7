package email

import (
	"context"
	"fmt"

	"github.com/planify/backend/internal/application/adapter"
	domainerror "github.com/planify/backend/internal/domain/error"
	"github.com/planify/backend/internal/integration/email/templates"
)

// Service renders and sends transactional emails.
type Service struct {
	sender   adapter.EmailSender
	renderer *templates.Renderer
}

// NewService creates a new email service.
func NewService(sender adapter.EmailSender, renderer *templates.Renderer) *Service {
	return &Service{
		sender:   sender,
		renderer: renderer,
	}
}

// SendPasswordResetEmail renders the password reset template and sends it.
func (s *Service) SendPasswordResetEmail(ctx context.Context, input adapter.PasswordResetEmailInput) error {
	if s.sender == nil {
		return domainerror.ErrEmailNotConfigured
	}

	html, text, err := s.renderer.Render("password_reset", templates.PasswordResetData{
		ResetURL:  input.ResetURL,
		ExpiresIn: input.ExpiresIn,
	})
	if err != nil {
		return fmt.Errorf("render password reset template: %w", err)
	}

	_, err = s.sender.Send(ctx, adapter.SendEmailInput{
		To:      input.UserEmail,
		Subject: "Parolni tiklash - Planify",
		HTML:    html,
		Text:    text,
	})
	return err
}
