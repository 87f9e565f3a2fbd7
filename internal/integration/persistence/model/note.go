package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/planify/backend/internal/domain/entity"
)

// NoteModel represents the notes table in the database.
type NoteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the NoteModel.
func (NoteModel) TableName() string {
	return "notes"
}

// ToEntity converts a NoteModel to a domain Note entity.
func (m *NoteModel) ToEntity() *entity.Note {
	return &entity.Note{
		ID:        m.ID,
		UserID:    m.UserID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

// NoteFromEntity creates a NoteModel from a domain Note entity.
func NoteFromEntity(note *entity.Note) *NoteModel {
	return &NoteModel{
		ID:        note.ID,
		UserID:    note.UserID,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
	}
}
