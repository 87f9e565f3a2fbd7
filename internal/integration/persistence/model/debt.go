package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/planify/backend/internal/domain/entity"
)

// DebtModel represents the debts table in the database.
type DebtModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title        string          `gorm:"type:varchar(255);not null"`
	TotalAmount  decimal.Decimal `gorm:"column:total_amount;type:decimal(15,2);not null"`
	PaidAmount   decimal.Decimal `gorm:"column:paid_amount;type:decimal(15,2);not null"`
	InterestRate decimal.Decimal `gorm:"column:interest_rate;type:decimal(7,4);not null"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the DebtModel.
func (DebtModel) TableName() string {
	return "debts"
}

// ToEntity converts a DebtModel to a domain Debt entity.
func (m *DebtModel) ToEntity() *entity.Debt {
	return &entity.Debt{
		ID:           m.ID,
		UserID:       m.UserID,
		Title:        m.Title,
		TotalAmount:  m.TotalAmount,
		PaidAmount:   m.PaidAmount,
		InterestRate: m.InterestRate,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// DebtFromEntity creates a DebtModel from a domain Debt entity.
func DebtFromEntity(debt *entity.Debt) *DebtModel {
	return &DebtModel{
		ID:           debt.ID,
		UserID:       debt.UserID,
		Title:        debt.Title,
		TotalAmount:  debt.TotalAmount,
		PaidAmount:   debt.PaidAmount,
		InterestRate: debt.InterestRate,
		CreatedAt:    debt.CreatedAt,
		UpdatedAt:    debt.UpdatedAt,
	}
}
