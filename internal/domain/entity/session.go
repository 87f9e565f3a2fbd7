package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the opaque authenticated-session object handed out by the
// session provider. A nil *Session means no user is signed in.
type Session struct {
	UserID    uuid.UUID
	Email     string
	CreatedAt time.Time
}

// DemoUserID is the fixed user id of the synthetic demo session.
var DemoUserID = uuid.MustParse("00000000-0000-0000-0000-0000000000d0")

// DemoEmail is the email of the synthetic demo session.
const DemoEmail = "demo@planner.ai"

// NewDemoSession returns the synthetic session used by demo mode.
func NewDemoSession() *Session {
	return &Session{
		UserID:    DemoUserID,
		Email:     DemoEmail,
		CreatedAt: time.Now().UTC(),
	}
}

// NewDemoProfile returns the synthetic profile loaded in demo mode.
func NewDemoProfile() *UserProfile {
	return &UserProfile{
		ID:       DemoUserID,
		Email:    DemoEmail,
		Role:     RoleAdmin,
		IsActive: true,
		XP:       120,
		Level:    2,
	}
}
