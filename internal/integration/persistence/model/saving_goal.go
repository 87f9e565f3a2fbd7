package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/planify/backend/internal/domain/entity"
)

// SavingGoalModel represents the saving_goals table in the database.
type SavingGoalModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title         string          `gorm:"type:varchar(255);not null"`
	TargetAmount  decimal.Decimal `gorm:"column:target_amount;type:decimal(15,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"column:current_amount;type:decimal(15,2);not null"`
	Color         string          `gorm:"type:varchar(20)"`
	Deadline      string          `gorm:"type:varchar(10)"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SavingGoalModel.
func (SavingGoalModel) TableName() string {
	return "saving_goals"
}

// ToEntity converts a SavingGoalModel to a domain SavingGoal entity.
func (m *SavingGoalModel) ToEntity() *entity.SavingGoal {
	return &entity.SavingGoal{
		ID:            m.ID,
		UserID:        m.UserID,
		Title:         m.Title,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		Color:         m.Color,
		Deadline:      m.Deadline,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// SavingGoalFromEntity creates a SavingGoalModel from a domain SavingGoal entity.
func SavingGoalFromEntity(goal *entity.SavingGoal) *SavingGoalModel {
	return &SavingGoalModel{
		ID:            goal.ID,
		UserID:        goal.UserID,
		Title:         goal.Title,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		Color:         goal.Color,
		Deadline:      goal.Deadline,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}
