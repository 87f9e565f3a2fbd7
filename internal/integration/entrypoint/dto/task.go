package dto

import (
	"time"

	"github.com/planify/backend/internal/domain/entity"
)

// CreateTaskRequest represents the request body for task creation.
type CreateTaskRequest struct {
	Title     string   `json:"title" binding:"required,min=1,max=500"`
	Priority  string   `json:"priority"`
	Date      string   `json:"date"`
	TimeBlock string   `json:"time_block"`
	Tags      []string `json:"tags"`
}

// TaskDraftRequest is one draft in a bulk task creation request.
type TaskDraftRequest struct {
	Title     string `json:"title"`
	Priority  string `json:"priority"`
	Date      string `json:"date"`
	TimeBlock string `json:"time_block"`
}

// BulkTasksRequest represents the request body for bulk task creation.
type BulkTasksRequest struct {
	Drafts []TaskDraftRequest `json:"drafts" binding:"required"`
}

// UpdateTaskRequest represents the request body for a partial task update.
// Absent fields are left untouched.
type UpdateTaskRequest struct {
	Title     *string   `json:"title,omitempty"`
	Priority  *string   `json:"priority,omitempty"`
	Date      *string   `json:"date,omitempty"`
	TimeBlock *string   `json:"time_block,omitempty"`
	Tags      *[]string `json:"tags,omitempty"`
}

// SubTaskResponse represents a checklist item in API responses.
type SubTaskResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// TaskResponse represents a task in API responses.
type TaskResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	IsCompleted bool              `json:"is_completed"`
	Priority    string            `json:"priority"`
	Date        string            `json:"date"`
	TimeBlock   string            `json:"time_block,omitempty"`
	Tags        []string          `json:"tags"`
	Subtasks    []SubTaskResponse `json:"subtasks"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ToTaskResponse converts a Task entity to a TaskResponse DTO.
func ToTaskResponse(task *entity.Task) TaskResponse {
	subtasks := make([]SubTaskResponse, len(task.Subtasks))
	for i, st := range task.Subtasks {
		subtasks[i] = SubTaskResponse{
			ID:        st.ID.String(),
			Title:     st.Title,
			Completed: st.Completed,
		}
	}
	tags := task.Tags
	if tags == nil {
		tags = []string{}
	}
	return TaskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		IsCompleted: task.Completed,
		Priority:    string(task.Priority),
		Date:        task.Date,
		TimeBlock:   task.TimeBlock,
		Tags:        tags,
		Subtasks:    subtasks,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ToTaskResponses converts a slice of Task entities to response DTOs.
func ToTaskResponses(tasks []*entity.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = ToTaskResponse(task)
	}
	return responses
}
