package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/domain/entity"
	domainerror "github.com/planify/backend/internal/domain/error"
)

func TestAddTask(t *testing.T) {
	f := newFixture(t)
	serverID := uuid.New()
	f.tasks.serverID = serverID

	task, err := f.store.AddTask(context.Background(), AddTaskInput{Title: "write report"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	if task.ID != serverID {
		t.Errorf("expected the server-assigned id %s, got %s", serverID, task.ID)
	}
	if task.Priority != entity.PriorityMedium {
		t.Errorf("expected default priority medium, got %s", task.Priority)
	}
	if task.Date != entity.LocalDate(time.Now()) {
		t.Errorf("expected today's date as default, got %s", task.Date)
	}
	if task.Completed {
		t.Error("expected a new task to be incomplete")
	}
	tasks := f.store.Tasks()
	if len(tasks) != 1 || tasks[0].ID != serverID {
		t.Error("expected the stored row prepended to the local collection")
	}
	if f.tasks.createCalls != 1 {
		t.Errorf("expected 1 remote insert, got %d", f.tasks.createCalls)
	}

	// Creation awards XP.
	if got := f.store.Profile().XP; got != xpPerTaskCreated {
		t.Errorf("expected %d XP after add, got %d", xpPerTaskCreated, got)
	}
	n := f.store.LastXPNotification()
	if n == nil || n.Amount != xpPerTaskCreated {
		t.Errorf("expected an XP notification of %d, got %+v", xpPerTaskCreated, n)
	}
}

func TestAddTaskPrependsNewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, _ := f.store.AddTask(ctx, AddTaskInput{Title: "first"})
	second, _ := f.store.AddTask(ctx, AddTaskInput{Title: "second"})

	tasks := f.store.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != second.ID || tasks[1].ID != first.ID {
		t.Error("expected newest-first ordering")
	}
}

func TestAddTaskValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("invalid priority is rejected", func(t *testing.T) {
		_, err := f.store.AddTask(ctx, AddTaskInput{Title: "x", Priority: "urgent"})
		if !errors.Is(err, domainerror.ErrInvalidPriority) {
			t.Errorf("expected ErrInvalidPriority, got %v", err)
		}
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		_, err := f.store.AddTask(ctx, AddTaskInput{Title: "x", Date: "05/10/2024"})
		if !errors.Is(err, domainerror.ErrInvalidDate) {
			t.Errorf("expected ErrInvalidDate, got %v", err)
		}
	})

	if f.tasks.createCalls != 0 {
		t.Errorf("expected no remote insert for rejected input, got %d", f.tasks.createCalls)
	}
	if got := f.store.Profile().XP; got != 0 {
		t.Errorf("expected no XP for rejected input, got %d", got)
	}
}

func TestAddTaskRemoteFailure(t *testing.T) {
	f := newFixture(t)
	f.tasks.createErr = errors.New("insert failed")

	_, err := f.store.AddTask(context.Background(), AddTaskInput{Title: "x"})
	if err == nil {
		t.Fatal("expected the insert failure to propagate")
	}
	if len(f.store.Tasks()) != 0 {
		t.Error("expected no local task after a failed insert")
	}
	if got := f.store.Profile().XP; got != 0 {
		t.Errorf("expected no XP after a failed insert, got %d", got)
	}
}

func TestAddTasksBulk(t *testing.T) {
	f := newFixture(t)

	drafts := []entity.TaskDraft{
		{Title: "plan sprint", Priority: entity.PriorityHigh, Date: "2024-05-10"},
		{}, // everything defaulted
		{Title: "review", Priority: "???", Date: "not-a-date"},
	}
	tasks, err := f.store.AddTasksBulk(context.Background(), drafts)
	if err != nil {
		t.Fatalf("AddTasksBulk failed: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}

	if tasks[0].Title != "plan sprint" || tasks[0].Priority != entity.PriorityHigh || tasks[0].Date != "2024-05-10" {
		t.Errorf("explicit draft fields lost: %+v", tasks[0])
	}
	today := entity.LocalDate(time.Now())
	if tasks[1].Title != defaultBulkTaskTitle {
		t.Errorf("expected default title %q, got %q", defaultBulkTaskTitle, tasks[1].Title)
	}
	if tasks[1].Priority != entity.PriorityMedium || tasks[1].Date != today {
		t.Errorf("expected defaulted priority/date, got %+v", tasks[1])
	}
	if tasks[2].Priority != entity.PriorityMedium || tasks[2].Date != today {
		t.Errorf("expected invalid priority/date replaced with defaults, got %+v", tasks[2])
	}

	if f.tasks.batchCalls != 1 {
		t.Errorf("expected 1 batch insert, got %d", f.tasks.batchCalls)
	}
	if got := f.store.Profile().XP; got != xpPerTaskCreated*3 {
		t.Errorf("expected %d XP for 3 tasks, got %d", xpPerTaskCreated*3, got)
	}
}

func TestAddTasksBulkEmpty(t *testing.T) {
	f := newFixture(t)

	tasks, err := f.store.AddTasksBulk(context.Background(), nil)
	if err != nil {
		t.Fatalf("AddTasksBulk failed: %v", err)
	}
	if tasks != nil {
		t.Errorf("expected nil result for empty input, got %v", tasks)
	}
	if f.tasks.batchCalls != 0 {
		t.Errorf("expected no batch insert for empty input, got %d", f.tasks.batchCalls)
	}
}

func TestToggleTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	task, _ := f.store.AddTask(ctx, AddTaskInput{Title: "x"})
	xpAfterAdd := f.store.Profile().XP

	outcome, err := f.store.ToggleTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("ToggleTask failed: %v", err)
	}
	if !outcome.AppliedLocally || !outcome.PersistedRemotely {
		t.Errorf("unexpected outcome: %+v", outcome)
	}
	if !f.store.Tasks()[0].Completed {
		t.Error("expected the task to be completed")
	}
	if f.tasks.lastPatch.Completed == nil || !*f.tasks.lastPatch.Completed {
		t.Error("expected the remote patch to carry completed=true")
	}
	if got := f.store.Profile().XP; got != xpAfterAdd+xpPerTaskCompleted {
		t.Errorf("expected +%d XP on completion, got %d", xpPerTaskCompleted, got-xpAfterAdd)
	}

	// Toggling back clears the flag without refunding XP.
	if _, err := f.store.ToggleTask(ctx, task.ID); err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if f.store.Tasks()[0].Completed {
		t.Error("expected the task to be incomplete after the second toggle")
	}
	if got := f.store.Profile().XP; got != xpAfterAdd+xpPerTaskCompleted {
		t.Errorf("expected no XP change on un-complete, got %d", got)
	}
	if f.tasks.updateCalls != 2 {
		t.Errorf("expected 2 remote updates, got %d", f.tasks.updateCalls)
	}
}

func TestToggleTaskRemoteFailureKeepsLocalFlip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	task, _ := f.store.AddTask(ctx, AddTaskInput{Title: "x"})
	f.tasks.updateErr = errors.New("update failed")
	xpBefore := f.store.Profile().XP

	outcome, err := f.store.ToggleTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("expected the remote failure to be absorbed, got %v", err)
	}
	if !outcome.AppliedLocally || outcome.PersistedRemotely {
		t.Errorf("unexpected outcome: %+v", outcome)
	}
	if !f.store.Tasks()[0].Completed {
		t.Error("expected the local flip to survive the remote failure")
	}
	// XP is still awarded; gamification follows the local state.
	if got := f.store.Profile().XP; got != xpBefore+xpPerTaskCompleted {
		t.Errorf("expected XP despite the remote failure, got %d", got)
	}
}

func TestToggleTaskUnknownID(t *testing.T) {
	f := newFixture(t)

	_, err := f.store.ToggleTask(context.Background(), uuid.New())
	if !errors.Is(err, domainerror.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestUpdateTaskShallowMerge(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	task, _ := f.store.AddTask(ctx, AddTaskInput{Title: "draft", TimeBlock: "09:00"})

	title := "final"
	priority := entity.PriorityHigh
	outcome, err := f.store.UpdateTask(ctx, task.ID, adapter.TaskPatch{Title: &title, Priority: &priority})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if !outcome.AppliedLocally || !outcome.PersistedRemotely {
		t.Errorf("unexpected outcome: %+v", outcome)
	}

	got := f.store.Tasks()[0]
	if got.Title != "final" || got.Priority != entity.PriorityHigh {
		t.Errorf("patched fields not applied: %+v", got)
	}
	if got.TimeBlock != "09:00" {
		t.Errorf("untouched field changed: %q", got.TimeBlock)
	}
	if f.tasks.lastPatch.Title == nil || *f.tasks.lastPatch.Title != "final" {
		t.Error("expected the remote patch to carry the new title")
	}
	if f.tasks.lastPatch.TimeBlock != nil {
		t.Error("expected the remote patch to leave the time block unset")
	}
}

func TestDeleteTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	task, _ := f.store.AddTask(ctx, AddTaskInput{Title: "x"})

	outcome, err := f.store.DeleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	if !outcome.AppliedLocally || !outcome.PersistedRemotely || outcome.Resynced {
		t.Errorf("unexpected outcome: %+v", outcome)
	}
	if len(f.store.Tasks()) != 0 {
		t.Error("expected the task to be removed locally")
	}
	if f.tasks.deleteCalls != 1 {
		t.Errorf("expected 1 remote delete, got %d", f.tasks.deleteCalls)
	}
}

func TestDeleteTaskFailureTriggersSingleResync(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	task, _ := f.store.AddTask(ctx, AddTaskInput{Title: "x"})
	findCallsBefore := f.tasks.findCalls
	f.tasks.deleteErr = errors.New("delete rejected")

	outcome, err := f.store.DeleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("expected the delete failure to be absorbed, got %v", err)
	}
	if !outcome.AppliedLocally || outcome.PersistedRemotely || !outcome.Resynced {
		t.Errorf("unexpected outcome: %+v", outcome)
	}
	if got := f.tasks.findCalls - findCallsBefore; got != 1 {
		t.Errorf("expected exactly 1 corrective re-fetch, got %d", got)
	}
	// The re-fetch restores the server's view, which still has the row.
	if len(f.store.Tasks()) != 1 {
		t.Errorf("expected the resync to restore the server row, got %d tasks", len(f.store.Tasks()))
	}
}

func TestConvertNoteToTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	note, err := f.store.AddNote(ctx, "buy milk")
	if err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}

	task, err := f.store.ConvertNoteToTask(ctx, note.ID)
	if err != nil {
		t.Fatalf("ConvertNoteToTask failed: %v", err)
	}
	if task.Title != "buy milk" {
		t.Errorf("expected the note content as title, got %q", task.Title)
	}
	if task.Date != entity.LocalDate(time.Now()) {
		t.Errorf("expected today's date, got %s", task.Date)
	}
	if task.Priority != entity.PriorityMedium {
		t.Errorf("expected medium priority, got %s", task.Priority)
	}
	if len(f.store.Notes()) != 0 {
		t.Error("expected the source note to be deleted")
	}
	if len(f.store.Tasks()) != 1 {
		t.Error("expected the converted task in the collection")
	}
}

func TestConvertNoteToTaskDeleteFailureLeavesDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	note, _ := f.store.AddNote(ctx, "buy milk")
	f.notes.deleteErr = errors.New("delete rejected")

	task, err := f.store.ConvertNoteToTask(ctx, note.ID)
	if err != nil {
		t.Fatalf("expected the note-delete failure to be absorbed, got %v", err)
	}
	if task == nil {
		t.Fatal("expected the task despite the failed note delete")
	}
	// The pair is not atomic: the remote note survives, the local one is gone.
	if len(f.store.Notes()) != 0 {
		t.Error("expected the local note removed")
	}
	if len(f.store.Tasks()) != 1 {
		t.Error("expected the converted task present")
	}
}

func TestTasksSnapshotIsolatedFromLaterMutations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	task, _ := f.store.AddTask(ctx, AddTaskInput{Title: "draft"})

	snapshot := f.store.Tasks()

	title := "final"
	if _, err := f.store.UpdateTask(ctx, task.ID, adapter.TaskPatch{Title: &title}); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if _, err := f.store.ToggleTask(ctx, task.ID); err != nil {
		t.Fatalf("ToggleTask failed: %v", err)
	}

	if snapshot[0].Title != "draft" || snapshot[0].Completed {
		t.Errorf("expected the snapshot untouched by later mutations, got %+v", snapshot[0])
	}
	if task.Title != "draft" {
		t.Error("expected the task returned by AddTask untouched by later mutations")
	}
	got := f.store.Tasks()[0]
	if got.Title != "final" || !got.Completed {
		t.Errorf("expected the store to carry the mutations, got %+v", got)
	}
}

func TestConcurrentReadersAndWriters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	task, _ := f.store.AddTask(ctx, AddTaskInput{Title: "x"})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			title := "renamed"
			_, _ = f.store.UpdateTask(ctx, task.ID, adapter.TaskPatch{Title: &title})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			for _, tk := range f.store.Tasks() {
				_ = tk.Title
			}
		}
	}()
	wg.Wait()
}

func TestConvertNoteToTaskUnknownNote(t *testing.T) {
	f := newFixture(t)

	_, err := f.store.ConvertNoteToTask(context.Background(), uuid.New())
	if !errors.Is(err, domainerror.ErrNoteNotFound) {
		t.Errorf("expected ErrNoteNotFound, got %v", err)
	}
	if f.tasks.createCalls != 0 {
		t.Errorf("expected no task insert for an unknown note, got %d", f.tasks.createCalls)
	}
}
