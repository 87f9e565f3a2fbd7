package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authentication account in the Planify system.
// The productivity profile (XP, role, access flags) lives in UserProfile
// and is created lazily on first sign-in.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User account.
func NewUser(email, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
