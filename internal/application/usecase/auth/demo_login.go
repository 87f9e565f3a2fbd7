// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/domain/entity"
)

// DemoLoginOutput represents the output of a demo-mode login.
type DemoLoginOutput struct {
	AccessToken  string
	RefreshToken string
	Session      *entity.Session
}

// DemoLoginUseCase issues tokens for the synthetic demo identity. No
// account row exists for it and nothing the demo user does is persisted.
type DemoLoginUseCase struct {
	tokenService adapter.TokenService
}

// NewDemoLoginUseCase creates a new DemoLoginUseCase instance.
func NewDemoLoginUseCase(tokenService adapter.TokenService) *DemoLoginUseCase {
	return &DemoLoginUseCase{tokenService: tokenService}
}

// Execute issues the demo token pair.
func (uc *DemoLoginUseCase) Execute(ctx context.Context) (*DemoLoginOutput, error) {
	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, entity.DemoUserID, entity.DemoEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to generate demo tokens: %w", err)
	}

	return &DemoLoginOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		Session:      entity.NewDemoSession(),
	}, nil
}
