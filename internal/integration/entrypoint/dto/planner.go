package dto

// AdviceRequest represents the request body for productivity advice.
type AdviceRequest struct {
	Language string `json:"language"`
}

// AdviceResponse represents the response for productivity advice.
type AdviceResponse struct {
	Advice string `json:"advice"`
}

// BriefingRequest represents the request body for a morning briefing.
type BriefingRequest struct {
	Language string `json:"language"`
}

// BriefingResponse represents the response for a morning briefing.
type BriefingResponse struct {
	Briefing string `json:"briefing"`
}

// ImagePayload is an optional base64-encoded image attached to a planning
// request.
type ImagePayload struct {
	Data     string `json:"data" binding:"required"`
	MIMEType string `json:"mime_type" binding:"required"`
}

// PlanTasksRequest represents the request body for natural-language task
// planning.
type PlanTasksRequest struct {
	Text     string        `json:"text" binding:"required,min=1"`
	Language string        `json:"language"`
	Image    *ImagePayload `json:"image,omitempty"`
}

// PlanTasksResponse represents the response for natural-language task
// planning.
type PlanTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}
