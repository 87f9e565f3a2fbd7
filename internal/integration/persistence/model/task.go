// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/planify/backend/internal/domain/entity"
)

// SubTaskRecord is the JSON shape of one checklist item inside a task row.
type SubTaskRecord struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
}

// TaskModel represents the tasks table in the database. The completion flag
// and time block are stored under is_completed and time_block; the entity
// uses Completed and TimeBlock.
type TaskModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title       string          `gorm:"type:varchar(500);not null"`
	IsCompleted bool            `gorm:"column:is_completed;default:false"`
	Priority    string          `gorm:"type:varchar(10);not null"`
	Date        string          `gorm:"type:varchar(10);not null;index"`
	TimeBlock   string          `gorm:"column:time_block;type:varchar(5)"`
	Tags        []string        `gorm:"serializer:json;type:text"`
	Subtasks    []SubTaskRecord `gorm:"serializer:json;type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TaskModel.
func (TaskModel) TableName() string {
	return "tasks"
}

// ToEntity converts a TaskModel to a domain Task entity.
func (m *TaskModel) ToEntity() *entity.Task {
	subtasks := make([]entity.SubTask, len(m.Subtasks))
	for i, st := range m.Subtasks {
		subtasks[i] = entity.SubTask{ID: st.ID, Title: st.Title, Completed: st.Completed}
	}
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}

	return &entity.Task{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Completed: m.IsCompleted,
		Priority:  entity.Priority(m.Priority),
		Date:      m.Date,
		TimeBlock: m.TimeBlock,
		Tags:      tags,
		Subtasks:  subtasks,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// TaskFromEntity creates a TaskModel from a domain Task entity.
func TaskFromEntity(task *entity.Task) *TaskModel {
	subtasks := make([]SubTaskRecord, len(task.Subtasks))
	for i, st := range task.Subtasks {
		subtasks[i] = SubTaskRecord{ID: st.ID, Title: st.Title, Completed: st.Completed}
	}

	return &TaskModel{
		ID:          task.ID,
		UserID:      task.UserID,
		Title:       task.Title,
		IsCompleted: task.Completed,
		Priority:    string(task.Priority),
		Date:        task.Date,
		TimeBlock:   task.TimeBlock,
		Tags:        task.Tags,
		Subtasks:    subtasks,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
