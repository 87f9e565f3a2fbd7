// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/planify/backend/internal/domain/entity"
)

// TaskPatch is a partial update for a task. Nil fields are left untouched.
// The persistence layer renames patch fields to their storage columns.
type TaskPatch struct {
	Title     *string
	Completed *bool
	Priority  *entity.Priority
	Date      *string
	TimeBlock *string
	Tags      *[]string
}

// TaskRepository defines the remote-store interface for tasks.
// Reads are always scoped to the owning user; inserts stamp the owner id
// and return the row carrying the server-assigned id.
type TaskRepository interface {
	// FindByUserID retrieves all tasks for a user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error)

	// Create inserts a task and returns the stored row.
	Create(ctx context.Context, task *entity.Task) (*entity.Task, error)

	// CreateBatch inserts several tasks in one call and returns the stored rows.
	CreateBatch(ctx context.Context, tasks []*entity.Task) ([]*entity.Task, error)

	// Update applies a partial update to the task with the given id.
	Update(ctx context.Context, userID, id uuid.UUID, patch TaskPatch) error

	// Delete removes the task with the given id.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
