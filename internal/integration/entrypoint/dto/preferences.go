package dto

import "github.com/planify/backend/internal/domain/entity"

// PreferencesResponse represents UI preferences in API responses.
type PreferencesResponse struct {
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

// ToPreferencesResponse converts a Preferences entity to a response DTO.
func ToPreferencesResponse(prefs entity.Preferences) PreferencesResponse {
	return PreferencesResponse{
		Language: string(prefs.Language),
		Theme:    string(prefs.Theme),
	}
}

// SetLanguageRequest represents the request body for a language change.
type SetLanguageRequest struct {
	Language string `json:"language" binding:"required,oneof=uz ru"`
}

// SetThemeRequest represents the request body for a theme change.
type SetThemeRequest struct {
	Theme string `json:"theme" binding:"required,oneof=light dark"`
}
