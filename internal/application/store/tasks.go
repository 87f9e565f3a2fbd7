package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/domain/entity"
	domainerror "github.com/planify/backend/internal/domain/error"
)

// XP amounts awarded by task mutations.
const (
	xpPerTaskCreated   = 5
	xpPerTaskCompleted = 10
)

// defaultBulkTaskTitle fills in for drafts without a title.
const defaultBulkTaskTitle = "Vazifa"

// AddTaskInput carries the fields of a new task.
type AddTaskInput struct {
	Title     string
	Priority  entity.Priority
	Date      string
	TimeBlock string
	Tags      []string
}

// AddTask inserts a task remotely, prepends the stored row to the local
// collection and awards XP. In demo mode the locally generated id is kept
// and no remote call is made.
func (s *Store) AddTask(ctx context.Context, input AddTaskInput) (*entity.Task, error) {
	session, err := s.currentSession()
	if err != nil {
		return nil, err
	}
	if input.Priority == "" {
		input.Priority = entity.PriorityMedium
	}
	if !entity.IsValidPriority(input.Priority) {
		return nil, domainerror.ErrInvalidPriority
	}
	if input.Date == "" {
		input.Date = entity.LocalDate(time.Now())
	}
	if _, err := time.Parse(entity.DateLayout, input.Date); err != nil {
		return nil, domainerror.ErrInvalidDate
	}

	task := entity.NewTask(session.UserID, input.Title, input.Priority, input.Date, input.TimeBlock)
	if len(input.Tags) > 0 {
		task.Tags = input.Tags
	}

	if !s.isDemo() {
		stored, err := s.repos.Tasks.Create(ctx, task)
		if err != nil {
			return nil, err
		}
		task = stored
	}

	s.mu.Lock()
	s.tasks = append([]*entity.Task{task.Clone()}, s.tasks...)
	s.mu.Unlock()

	s.AwardXP(ctx, xpPerTaskCreated)
	return task, nil
}

// AddTasksBulk materializes AI-planner drafts, fills missing fields with
// defaults, inserts them in one batch and awards XP proportional to the
// count.
func (s *Store) AddTasksBulk(ctx context.Context, drafts []entity.TaskDraft) ([]*entity.Task, error) {
	session, err := s.currentSession()
	if err != nil {
		return nil, err
	}
	if len(drafts) == 0 {
		return nil, nil
	}

	tasks := make([]*entity.Task, 0, len(drafts))
	for _, d := range drafts {
		title := d.Title
		if title == "" {
			title = defaultBulkTaskTitle
		}
		priority := d.Priority
		if !entity.IsValidPriority(priority) {
			priority = entity.PriorityMedium
		}
		date := d.Date
		if _, err := time.Parse(entity.DateLayout, date); err != nil {
			date = entity.LocalDate(time.Now())
		}
		tasks = append(tasks, entity.NewTask(session.UserID, title, priority, date, d.TimeBlock))
	}

	if !s.isDemo() {
		stored, err := s.repos.Tasks.CreateBatch(ctx, tasks)
		if err != nil {
			return nil, err
		}
		tasks = stored
	}

	s.mu.Lock()
	stored := make([]*entity.Task, len(tasks))
	for i, t := range tasks {
		stored[i] = t.Clone()
	}
	s.tasks = append(stored, s.tasks...)
	s.mu.Unlock()

	s.AwardXP(ctx, xpPerTaskCreated*len(tasks))
	return tasks, nil
}

// ToggleTask flips the completed flag locally, persists the flag remotely
// and awards XP only on the transition to completed. Remote failures are
// logged, never propagated.
func (s *Store) ToggleTask(ctx context.Context, id uuid.UUID) (Outcome, error) {
	s.mu.Lock()
	var newStatus bool
	found := false
	for _, t := range s.tasks {
		if t.ID == id {
			t.Completed = !t.Completed
			newStatus = t.Completed
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return Outcome{}, domainerror.ErrTaskNotFound
	}

	outcome := Outcome{AppliedLocally: true}
	if !s.isDemo() {
		session, err := s.currentSession()
		if err != nil {
			return outcome, err
		}
		completed := newStatus
		if err := s.repos.Tasks.Update(ctx, session.UserID, id, adapter.TaskPatch{Completed: &completed}); err != nil {
			s.logger.Warn("task toggle persist failed", "task_id", id, "error", err)
		} else {
			outcome.PersistedRemotely = true
		}
	}

	if newStatus {
		s.AwardXP(ctx, xpPerTaskCompleted)
	}
	return outcome, nil
}

// UpdateTask applies a shallow merge locally and issues the remote patch.
// The remote result is not propagated to the caller; the returned outcome
// carries the persistence flag.
func (s *Store) UpdateTask(ctx context.Context, id uuid.UUID, patch adapter.TaskPatch) (Outcome, error) {
	s.mu.Lock()
	found := false
	for _, t := range s.tasks {
		if t.ID != id {
			continue
		}
		found = true
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Completed != nil {
			t.Completed = *patch.Completed
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		if patch.Date != nil {
			t.Date = *patch.Date
		}
		if patch.TimeBlock != nil {
			t.TimeBlock = *patch.TimeBlock
		}
		if patch.Tags != nil {
			t.Tags = *patch.Tags
		}
		break
	}
	s.mu.Unlock()

	if !found {
		return Outcome{}, domainerror.ErrTaskNotFound
	}

	outcome := Outcome{AppliedLocally: true}
	if s.isDemo() {
		return outcome, nil
	}
	session, err := s.currentSession()
	if err != nil {
		return outcome, err
	}
	if err := s.repos.Tasks.Update(ctx, session.UserID, id, patch); err != nil {
		s.logger.Warn("task update persist failed", "task_id", id, "error", err)
	} else {
		outcome.PersistedRemotely = true
	}
	return outcome, nil
}

// DeleteTask removes the task locally, then issues the remote delete. A
// remote failure is logged and answered with one corrective re-fetch of the
// whole task collection.
func (s *Store) DeleteTask(ctx context.Context, id uuid.UUID) (Outcome, error) {
	s.mu.Lock()
	kept := s.tasks[:0:0]
	found := false
	for _, t := range s.tasks {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	s.mu.Unlock()

	if !found {
		return Outcome{}, domainerror.ErrTaskNotFound
	}

	outcome := Outcome{AppliedLocally: true}
	if s.isDemo() {
		return outcome, nil
	}
	session, err := s.currentSession()
	if err != nil {
		return outcome, err
	}
	if err := s.repos.Tasks.Delete(ctx, session.UserID, id); err != nil {
		s.logger.Error("task delete failed, resyncing", "task_id", id, "error", err)
		s.fetchTasks(ctx)
		outcome.Resynced = true
		return outcome, nil
	}
	outcome.PersistedRemotely = true
	return outcome, nil
}

// ConvertNoteToTask creates a task from the note's content dated today,
// then deletes the source note. The pair is not atomic: when the delete
// fails after a successful add, the note remains as a duplicate.
func (s *Store) ConvertNoteToTask(ctx context.Context, noteID uuid.UUID) (*entity.Task, error) {
	s.mu.Lock()
	var content string
	found := false
	for _, n := range s.notes {
		if n.ID == noteID {
			content = n.Content
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return nil, domainerror.ErrNoteNotFound
	}

	task, err := s.AddTask(ctx, AddTaskInput{
		Title:    content,
		Priority: entity.PriorityMedium,
		Date:     entity.LocalDate(time.Now()),
	})
	if err != nil {
		return nil, err
	}

	s.DeleteNote(ctx, noteID)
	return task, nil
}
