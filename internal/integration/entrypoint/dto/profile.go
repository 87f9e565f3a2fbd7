package dto

import (
	"time"

	"github.com/planify/backend/internal/domain/entity"
)

// ProfileResponse represents a user profile in API responses.
type ProfileResponse struct {
	ID                    string     `json:"id"`
	Email                 string     `json:"email"`
	Role                  string     `json:"role"`
	IsActive              bool       `json:"is_active"`
	SubscriptionExpiresAt *time.Time `json:"subscription_expires_at"`
	XP                    int        `json:"xp"`
	Level                 int        `json:"level"`
}

// ToProfileResponse converts a UserProfile entity to a response DTO.
func ToProfileResponse(profile *entity.UserProfile) ProfileResponse {
	return ProfileResponse{
		ID:                    profile.ID.String(),
		Email:                 profile.Email,
		Role:                  string(profile.Role),
		IsActive:              profile.IsActive,
		SubscriptionExpiresAt: profile.SubscriptionExpiresAt,
		XP:                    profile.XP,
		Level:                 profile.Level,
	}
}

// ToProfileResponses converts a slice of UserProfile entities to response DTOs.
func ToProfileResponses(profiles []*entity.UserProfile) []ProfileResponse {
	responses := make([]ProfileResponse, len(profiles))
	for i, profile := range profiles {
		responses[i] = ToProfileResponse(profile)
	}
	return responses
}

// UpdateProfileRequest represents the request body for an admin profile
// edit. Absent fields are left untouched; an empty subscription expiry
// string clears the expiry.
type UpdateProfileRequest struct {
	Role                  *string `json:"role,omitempty"`
	IsActive              *bool   `json:"is_active,omitempty"`
	SubscriptionExpiresAt *string `json:"subscription_expires_at,omitempty"`
}

// AwardXPRequest represents the request body for a manual XP award.
type AwardXPRequest struct {
	Amount int `json:"amount" binding:"required,gt=0"`
}

// FocusSessionRequest represents the request body for logging a focus
// session.
type FocusSessionRequest struct {
	Minutes int `json:"minutes" binding:"required,gt=0"`
}

// XPNotificationResponse represents the latest XP toast, if any.
type XPNotificationResponse struct {
	Amount int   `json:"amount"`
	ID     int64 `json:"id"`
}
