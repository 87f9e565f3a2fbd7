// Package auth contains authentication-related use cases.
package auth

import (
	"context"

	"github.com/planify/backend/internal/application/adapter"
)

// LogoutUserInput represents the input for user logout.
type LogoutUserInput struct {
	RefreshToken string
}

// LogoutUserOutput represents the output of user logout.
type LogoutUserOutput struct {
	Message string
}

// LogoutUserUseCase handles user logout logic.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
	sessionBus   adapter.SessionBus
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService, sessionBus adapter.SessionBus) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
		sessionBus:   sessionBus,
	}
}

// Execute performs the user logout by invalidating the refresh token.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	// Resolve the owner before invalidating so the signed_out event can
	// carry the user id. An unparseable token still logs out cleanly.
	claims, err := uc.tokenService.ValidateRefreshToken(ctx, input.RefreshToken)

	// Invalidate refresh token (ignore errors as the token might already be invalid)
	_ = uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken)

	if err == nil {
		uc.sessionBus.Publish(adapter.SessionEvent{
			Type:    adapter.SessionEventSignedOut,
			UserID:  claims.UserID,
			Session: nil,
		})
	}

	return &LogoutUserOutput{
		Message: "Successfully logged out",
	}, nil
}
