package dto

import (
	"time"

	"github.com/planify/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for saving goal creation.
type CreateGoalRequest struct {
	Title         string  `json:"title" binding:"required,min=1,max=200"`
	TargetAmount  float64 `json:"target_amount" binding:"required"`
	CurrentAmount float64 `json:"current_amount"`
	Color         string  `json:"color"`
	Deadline      string  `json:"deadline"`
}

// UpdateGoalRequest represents the request body for a partial goal update.
// Absent fields are left untouched. CurrentAmount may exceed the target.
type UpdateGoalRequest struct {
	Title         *string  `json:"title,omitempty"`
	TargetAmount  *float64 `json:"target_amount,omitempty"`
	CurrentAmount *float64 `json:"current_amount,omitempty"`
	Color         *string  `json:"color,omitempty"`
	Deadline      *string  `json:"deadline,omitempty"`
}

// GoalResponse represents a saving goal in API responses.
type GoalResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	TargetAmount  string    `json:"target_amount"`
	CurrentAmount string    `json:"current_amount"`
	Color         string    `json:"color"`
	Deadline      string    `json:"deadline,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToGoalResponse converts a SavingGoal entity to a response DTO.
func ToGoalResponse(goal *entity.SavingGoal) GoalResponse {
	return GoalResponse{
		ID:            goal.ID.String(),
		Title:         goal.Title,
		TargetAmount:  goal.TargetAmount.String(),
		CurrentAmount: goal.CurrentAmount.String(),
		Color:         goal.Color,
		Deadline:      goal.Deadline,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}

// ToGoalResponses converts a slice of SavingGoal entities to response DTOs.
func ToGoalResponses(goals []*entity.SavingGoal) []GoalResponse {
	responses := make([]GoalResponse, len(goals))
	for i, goal := range goals {
		responses[i] = ToGoalResponse(goal)
	}
	return responses
}
