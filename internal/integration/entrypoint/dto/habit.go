package dto

import (
	"time"

	"github.com/planify/backend/internal/domain/entity"
)

// CreateHabitRequest represents the request body for habit creation.
type CreateHabitRequest struct {
	Title string `json:"title" binding:"required,min=1,max=200"`
	Color string `json:"color"`
}

// ToggleHabitDateRequest represents the request body for toggling a
// habit's completion on a calendar day.
type ToggleHabitDateRequest struct {
	Date string `json:"date" binding:"required"`
}

// HabitResponse represents a habit in API responses. Streak is recomputed
// from the completion dates at response time.
type HabitResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Streak         int       `json:"streak"`
	CompletedDates []string  `json:"completed_dates"`
	Color          string    `json:"color"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToHabitResponse converts a Habit entity to a HabitResponse DTO.
func ToHabitResponse(habit *entity.Habit) HabitResponse {
	dates := habit.CompletedDates
	if dates == nil {
		dates = []string{}
	}
	return HabitResponse{
		ID:             habit.ID.String(),
		Title:          habit.Title,
		Streak:         entity.CurrentStreak(habit.CompletedDates, time.Now()),
		CompletedDates: dates,
		Color:          habit.Color,
		CreatedAt:      habit.CreatedAt,
		UpdatedAt:      habit.UpdatedAt,
	}
}

// ToHabitResponses converts a slice of Habit entities to response DTOs.
func ToHabitResponses(habits []*entity.Habit) []HabitResponse {
	responses := make([]HabitResponse, len(habits))
	for i, habit := range habits {
		responses[i] = ToHabitResponse(habit)
	}
	return responses
}
