package adapter

import (
	"context"

	"github.com/planify/backend/internal/domain/entity"
)

// ImageInput is an optional inline image attached to a task-extraction call.
type ImageInput struct {
	Data     []byte
	MIMEType string
}

// PlannerService defines the interface for the generative-AI collaborator.
// Failures are returned to the caller; no retries are performed here.
type PlannerService interface {
	// GenerateText returns free text for a prompt, optionally steered by a
	// system instruction.
	GenerateText(ctx context.Context, prompt, systemInstruction string) (string, error)

	// ExtractTasks parses natural language (and an optional image) into
	// schema-validated task drafts relative to currentDate.
	ExtractTasks(ctx context.Context, text, currentDate string, language entity.Language, image *ImageInput) ([]entity.TaskDraft, error)

	// IsAvailable reports whether the service is configured.
	IsAvailable() bool
}
