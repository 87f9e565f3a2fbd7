package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a profile's authorization role.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// XPPerLevel is the amount of XP required to advance one level.
const XPPerLevel = 100

// UserProfile represents the productivity profile attached to an account.
// Its ID equals the session user id. The profile is created lazily on first
// sign-in if no row exists.
type UserProfile struct {
	ID                    uuid.UUID
	Email                 string
	Role                  Role
	IsActive              bool
	SubscriptionExpiresAt *time.Time
	XP                    int
	Level                 int
}

// NewDefaultProfile synthesizes the default profile for a first sign-in.
func NewDefaultProfile(userID uuid.UUID, email string) *UserProfile {
	return &UserProfile{
		ID:       userID,
		Email:    email,
		Role:     RoleUser,
		IsActive: true,
		XP:       0,
		Level:    1,
	}
}

// LevelForXP returns the level derived from an XP total.
func LevelForXP(xp int) int {
	return xp/XPPerLevel + 1
}

// IsAdmin reports whether the profile has the admin role.
func (p *UserProfile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// HasAccess reports whether the profile may use the application.
func (p *UserProfile) HasAccess() bool {
	return p.IsActive
}
