package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	domainerror "github.com/planify/backend/internal/domain/error"
)

func TestAddNote(t *testing.T) {
	f := newFixture(t)

	note, err := f.store.AddNote(context.Background(), "remember the milk")
	if err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}
	if note.Content != "remember the milk" {
		t.Errorf("unexpected content: %q", note.Content)
	}
	if f.notes.createCalls != 1 {
		t.Errorf("expected 1 remote insert, got %d", f.notes.createCalls)
	}
	// Notes award nothing.
	if got := f.store.Profile().XP; got != 0 {
		t.Errorf("expected no XP for a note, got %d", got)
	}
}

func TestDeleteNoteNoResync(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	note, _ := f.store.AddNote(ctx, "x")
	f.notes.deleteErr = errors.New("delete rejected")

	outcome, err := f.store.DeleteNote(ctx, note.ID)
	if err != nil {
		t.Fatalf("expected the delete failure to be absorbed, got %v", err)
	}
	if !outcome.AppliedLocally || outcome.PersistedRemotely || outcome.Resynced {
		t.Errorf("unexpected outcome: %+v", outcome)
	}
	// No corrective re-fetch for notes.
	if f.notes.findCalls != 1 { // the bootstrap fetch only
		t.Errorf("expected no re-fetch after a failed delete, got %d fetches", f.notes.findCalls)
	}
	if len(f.store.Notes()) != 0 {
		t.Error("expected the note to stay removed locally")
	}
}

func TestDeleteNoteUnknownID(t *testing.T) {
	f := newFixture(t)

	_, err := f.store.DeleteNote(context.Background(), uuid.New())
	if !errors.Is(err, domainerror.ErrNoteNotFound) {
		t.Errorf("expected ErrNoteNotFound, got %v", err)
	}
}
