package dto

import (
	"time"

	"github.com/planify/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction
// creation. Negative amounts are accepted and stored as magnitudes.
type CreateTransactionRequest struct {
	Title    string  `json:"title" binding:"required,min=1,max=200"`
	Amount   float64 `json:"amount" binding:"required"`
	Type     string  `json:"type" binding:"required"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Amount       string    `json:"amount"`
	SignedAmount string    `json:"signed_amount"`
	Type         string    `json:"type"`
	Category     string    `json:"category"`
	Date         string    `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToTransactionResponse converts a Transaction entity to a response DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           txn.ID.String(),
		Title:        txn.Title,
		Amount:       txn.Amount.String(),
		SignedAmount: txn.SignedAmount().String(),
		Type:         string(txn.Type),
		Category:     txn.Category,
		Date:         txn.Date,
		CreatedAt:    txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of Transaction entities to
// response DTOs.
func ToTransactionResponses(txns []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(txn)
	}
	return responses
}
