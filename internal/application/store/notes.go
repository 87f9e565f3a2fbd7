package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/planify/backend/internal/domain/entity"
	domainerror "github.com/planify/backend/internal/domain/error"
)

// AddNote inserts a note remotely and prepends the stored row locally.
func (s *Store) AddNote(ctx context.Context, content string) (*entity.Note, error) {
	session, err := s.currentSession()
	if err != nil {
		return nil, err
	}

	note := entity.NewNote(session.UserID, content)
	if !s.isDemo() {
		stored, err := s.repos.Notes.Create(ctx, note)
		if err != nil {
			return nil, err
		}
		note = stored
	}

	s.mu.Lock()
	s.notes = append([]*entity.Note{note.Clone()}, s.notes...)
	s.mu.Unlock()
	return note, nil
}

// DeleteNote removes the note locally and issues the remote delete. Note
// deletion has no resync path: a remote failure is logged and local and
// remote state stay diverged until the next full fetch.
func (s *Store) DeleteNote(ctx context.Context, id uuid.UUID) (Outcome, error) {
	s.mu.Lock()
	kept := s.notes[:0:0]
	found := false
	for _, n := range s.notes {
		if n.ID == id {
			found = true
			continue
		}
		kept = append(kept, n)
	}
	s.notes = kept
	s.mu.Unlock()

	if !found {
		return Outcome{}, domainerror.ErrNoteNotFound
	}

	outcome := Outcome{AppliedLocally: true}
	if s.isDemo() {
		return outcome, nil
	}
	session, err := s.currentSession()
	if err != nil {
		return outcome, err
	}
	if err := s.repos.Notes.Delete(ctx, session.UserID, id); err != nil {
		s.logger.Warn("note delete failed", "note_id", id, "error", err)
		return outcome, nil
	}
	outcome.PersistedRemotely = true
	return outcome, nil
}
