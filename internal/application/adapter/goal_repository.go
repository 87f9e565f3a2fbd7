package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/planify/backend/internal/domain/entity"
)

// GoalPatch is a partial update for a saving goal. Nil fields are left untouched.
type GoalPatch struct {
	Title         *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	Color         *string
	Deadline      *string
}

// GoalRepository defines the remote-store interface for saving goals.
type GoalRepository interface {
	// FindByUserID retrieves all saving goals for a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SavingGoal, error)

	// Create inserts a saving goal and returns the stored row.
	Create(ctx context.Context, goal *entity.SavingGoal) (*entity.SavingGoal, error)

	// Update applies a partial update to the goal with the given id.
	Update(ctx context.Context, userID, id uuid.UUID, patch GoalPatch) error

	// Delete removes the goal with the given id.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
