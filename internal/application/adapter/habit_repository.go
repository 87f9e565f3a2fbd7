package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/planify/backend/internal/domain/entity"
)

// HabitPatch is a partial update for a habit. Nil fields are left untouched.
type HabitPatch struct {
	Title          *string
	Color          *string
	CompletedDates *[]string
}

// HabitRepository defines the remote-store interface for habits.
type HabitRepository interface {
	// FindByUserID retrieves all habits for a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error)

	// Create inserts a habit and returns the stored row.
	Create(ctx context.Context, habit *entity.Habit) (*entity.Habit, error)

	// Update applies a partial update to the habit with the given id.
	Update(ctx context.Context, userID, id uuid.UUID, patch HabitPatch) error

	// Delete removes the habit with the given id.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
