package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingGoal represents a savings target. CurrentAmount may exceed
// TargetAmount; over-saving is allowed and never clamped.
type SavingGoal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Color         string
	Deadline      string // optional YYYY-MM-DD
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSavingGoal creates a new SavingGoal entity for the given owner.
func NewSavingGoal(userID uuid.UUID, title string, target, current decimal.Decimal, color, deadline string) *SavingGoal {
	now := time.Now().UTC()

	return &SavingGoal{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         title,
		TargetAmount:  target,
		CurrentAmount: current,
		Color:         color,
		Deadline:      deadline,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Clone returns a copy of the goal.
func (g *SavingGoal) Clone() *SavingGoal {
	c := *g
	return &c
}
