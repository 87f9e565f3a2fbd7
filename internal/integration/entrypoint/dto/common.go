// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/planify/backend/internal/application/store"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// OutcomeResponse reports how far a mutation propagated.
type OutcomeResponse struct {
	AppliedLocally    bool `json:"applied_locally"`
	PersistedRemotely bool `json:"persisted_remotely"`
	Resynced          bool `json:"resynced"`
}

// ToOutcomeResponse converts a store outcome to its response DTO.
func ToOutcomeResponse(o store.Outcome) OutcomeResponse {
	return OutcomeResponse{
		AppliedLocally:    o.AppliedLocally,
		PersistedRemotely: o.PersistedRemotely,
		Resynced:          o.Resynced,
	}
}
