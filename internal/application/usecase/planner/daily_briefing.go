// Package planner contains AI planner use cases.
package planner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/domain/entity"
)

const briefingInstruction = "You are a professional personal assistant. Provide a very brief, helpful morning briefing."

// DailyBriefingInput represents the input for a morning briefing.
type DailyBriefingInput struct {
	TaskTitles []string
	Language   entity.Language
}

// DailyBriefingOutput represents the output of a morning briefing.
type DailyBriefingOutput struct {
	Briefing string
}

// DailyBriefingUseCase summarizes today's plan into a short briefing.
type DailyBriefingUseCase struct {
	planner adapter.PlannerService
}

// NewDailyBriefingUseCase creates a new DailyBriefingUseCase instance.
func NewDailyBriefingUseCase(planner adapter.PlannerService) *DailyBriefingUseCase {
	return &DailyBriefingUseCase{planner: planner}
}

// Execute requests the briefing. Model failures degrade to an empty
// briefing instead of an error.
func (uc *DailyBriefingUseCase) Execute(ctx context.Context, input DailyBriefingInput) (*DailyBriefingOutput, error) {
	prompt := fmt.Sprintf(
		"Summarize today's plan: %s. Language: %s",
		strings.Join(input.TaskTitles, ", "), input.Language,
	)

	briefing, err := uc.planner.GenerateText(ctx, prompt, briefingInstruction)
	if err != nil {
		slog.Debug("Daily briefing generation failed", "error", err)
		return &DailyBriefingOutput{}, nil
	}

	return &DailyBriefingOutput{Briefing: briefing}, nil
}
