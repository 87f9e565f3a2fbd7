package entity

import (
	"time"

	"github.com/google/uuid"
)

// Note represents a free-form brain-dump note.
type Note struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Content   string
	CreatedAt time.Time
}

// Clone returns a copy of the note.
func (n *Note) Clone() *Note {
	c := *n
	return &c
}

// NewNote creates a new Note entity for the given owner.
func NewNote(userID uuid.UUID, content string) *Note {
	return &Note{
		ID:        uuid.New(),
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}
