package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/planify/backend/internal/domain/entity"
)

// HabitModel represents the habits table in the database.
type HabitModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Title          string    `gorm:"type:varchar(255);not null"`
	Streak         int       `gorm:"default:0"`
	CompletedDates []string  `gorm:"column:completed_dates;serializer:json;type:text"`
	Color          string    `gorm:"type:varchar(20)"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for the HabitModel.
func (HabitModel) TableName() string {
	return "habits"
}

// ToEntity converts a HabitModel to a domain Habit entity.
func (m *HabitModel) ToEntity() *entity.Habit {
	dates := m.CompletedDates
	if dates == nil {
		dates = []string{}
	}

	return &entity.Habit{
		ID:             m.ID,
		UserID:         m.UserID,
		Title:          m.Title,
		Streak:         m.Streak,
		CompletedDates: dates,
		Color:          m.Color,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// HabitFromEntity creates a HabitModel from a domain Habit entity.
func HabitFromEntity(habit *entity.Habit) *HabitModel {
	return &HabitModel{
		ID:             habit.ID,
		UserID:         habit.UserID,
		Title:          habit.Title,
		Streak:         habit.Streak,
		CompletedDates: habit.CompletedDates,
		Color:          habit.Color,
		CreatedAt:      habit.CreatedAt,
		UpdatedAt:      habit.UpdatedAt,
	}
}
