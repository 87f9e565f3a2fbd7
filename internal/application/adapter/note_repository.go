package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/planify/backend/internal/domain/entity"
)

// NoteRepository defines the remote-store interface for notes.
type NoteRepository interface {
	// FindByUserID retrieves all notes for a user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Note, error)

	// Create inserts a note and returns the stored row.
	Create(ctx context.Context, note *entity.Note) (*entity.Note, error)

	// Delete removes the note with the given id.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
