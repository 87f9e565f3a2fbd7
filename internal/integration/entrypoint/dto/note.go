package dto

import (
	"time"

	"github.com/planify/backend/internal/domain/entity"
)

// CreateNoteRequest represents the request body for note creation.
type CreateNoteRequest struct {
	Content string `json:"content" binding:"required,min=1"`
}

// NoteResponse represents a note in API responses.
type NoteResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ToNoteResponse converts a Note entity to a NoteResponse DTO.
func ToNoteResponse(note *entity.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID.String(),
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
	}
}

// ToNoteResponses converts a slice of Note entities to response DTOs.
func ToNoteResponses(notes []*entity.Note) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = ToNoteResponse(note)
	}
	return responses
}
