package dto

import (
	"time"

	"github.com/planify/backend/internal/domain/entity"
)

// CreateDebtRequest represents the request body for debt creation.
type CreateDebtRequest struct {
	Title        string  `json:"title" binding:"required,min=1,max=200"`
	TotalAmount  float64 `json:"total_amount" binding:"required"`
	PaidAmount   float64 `json:"paid_amount"`
	InterestRate float64 `json:"interest_rate"`
}

// UpdateDebtRequest represents the request body for a partial debt update.
// Absent fields are left untouched. PaidAmount may exceed the total.
type UpdateDebtRequest struct {
	Title        *string  `json:"title,omitempty"`
	TotalAmount  *float64 `json:"total_amount,omitempty"`
	PaidAmount   *float64 `json:"paid_amount,omitempty"`
	InterestRate *float64 `json:"interest_rate,omitempty"`
}

// DebtResponse represents a debt in API responses.
type DebtResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	TotalAmount  string    `json:"total_amount"`
	PaidAmount   string    `json:"paid_amount"`
	Remaining    string    `json:"remaining"`
	InterestRate string    `json:"interest_rate"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToDebtResponse converts a Debt entity to a response DTO.
func ToDebtResponse(debt *entity.Debt) DebtResponse {
	return DebtResponse{
		ID:           debt.ID.String(),
		Title:        debt.Title,
		TotalAmount:  debt.TotalAmount.String(),
		PaidAmount:   debt.PaidAmount.String(),
		Remaining:    debt.Remaining().String(),
		InterestRate: debt.InterestRate.String(),
		CreatedAt:    debt.CreatedAt,
		UpdatedAt:    debt.UpdatedAt,
	}
}

// ToDebtResponses converts a slice of Debt entities to response DTOs.
func ToDebtResponses(debts []*entity.Debt) []DebtResponse {
	responses := make([]DebtResponse, len(debts))
	for i, debt := range debts {
		responses[i] = ToDebtResponse(debt)
	}
	return responses
}
