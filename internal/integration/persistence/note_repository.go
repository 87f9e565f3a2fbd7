package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/domain/entity"
	domainerror "github.com/planify/backend/internal/domain/error"
	"github.com/planify/backend/internal/integration/persistence/model"
)

// noteRepository implements the adapter.NoteRepository interface.
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new note repository instance.
func NewNoteRepository(db *gorm.DB) adapter.NoteRepository {
	return &noteRepository{
		db: db,
	}
}

// FindByUserID retrieves all notes for a user, newest first.
func (r *noteRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Note, error) {
	var noteModels []model.NoteModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&noteModels)
	if result.Error != nil {
		return nil, result.Error
	}

	notes := make([]*entity.Note, len(noteModels))
	for i, nm := range noteModels {
		notes[i] = nm.ToEntity()
	}
	return notes, nil
}

// Create inserts a note and returns the stored row.
func (r *noteRepository) Create(ctx context.Context, note *entity.Note) (*entity.Note, error) {
	noteModel := model.NoteFromEntity(note)
	result := r.db.WithContext(ctx).Create(noteModel)
	if result.Error != nil {
		return nil, result.Error
	}
	return noteModel.ToEntity(), nil
}

// Delete removes the note with the given id.
func (r *noteRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.NoteModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrNoteNotFound
	}
	return nil
}
