// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Priority represents the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DateLayout is the calendar-day format used throughout the planner.
// Dates are plain calendar days with no timezone component.
const DateLayout = "2006-01-02"

// LocalDate formats t as a plain calendar day in the local timezone.
func LocalDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SubTask represents a checklist item nested inside a task.
type SubTask struct {
	ID        uuid.UUID
	Title     string
	Completed bool
}

// Task represents a scheduled to-do item in the Planify system.
type Task struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Completed bool
	Priority  Priority
	Date      string // YYYY-MM-DD, no timezone
	TimeBlock string // optional "HH:MM" time of day
	Tags      []string
	Subtasks  []SubTask
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTask creates a new Task entity for the given owner.
func NewTask(userID uuid.UUID, title string, priority Priority, date, timeBlock string) *Task {
	now := time.Now().UTC()

	return &Task{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Completed: false,
		Priority:  priority,
		Date:      date,
		TimeBlock: timeBlock,
		Tags:      []string{},
		Subtasks:  []SubTask{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a copy whose slice fields are not shared with the receiver.
func (t *Task) Clone() *Task {
	c := *t
	c.Tags = append([]string(nil), t.Tags...)
	c.Subtasks = append([]SubTask(nil), t.Subtasks...)
	return &c
}

// TaskDraft is a partial task spec produced by the AI planner flow.
// Missing fields are filled with defaults when the draft is materialized.
type TaskDraft struct {
	Title     string
	Priority  Priority
	Date      string
	TimeBlock string
}

// IsValidPriority reports whether p is one of the known priority levels.
func IsValidPriority(p Priority) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}
