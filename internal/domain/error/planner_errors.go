package error

import "errors"

// AI planner domain errors.
var (
	// ErrPlannerUnavailable is returned when the AI service is not configured.
	ErrPlannerUnavailable = errors.New("planner service is not configured")

	// ErrPlannerEmptyResponse is returned when the AI returns no usable content.
	ErrPlannerEmptyResponse = errors.New("empty response from planner service")

	// ErrPlannerBadPayload is returned when the AI response fails schema validation.
	ErrPlannerBadPayload = errors.New("planner response failed validation")
)

// PlannerErrorCode defines error codes for AI planner errors.
// Format: PLAN-XXYYYY where XX is category and YYYY is specific error.
type PlannerErrorCode string

const (
	ErrCodePlannerUnavailable   PlannerErrorCode = "PLAN-010001"
	ErrCodePlannerEmptyResponse PlannerErrorCode = "PLAN-020001"
	ErrCodePlannerBadPayload    PlannerErrorCode = "PLAN-020002"
)
