// Package planner contains AI planner use cases.
package planner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/domain/entity"
)

const adviceInstruction = "You are a world-class productivity coach. Be concise and motivational."

// Localized fallback shown when the model cannot be reached.
var adviceFallback = map[entity.Language]string{
	entity.LanguageUzbek:   "AI bilan bog'lanishda xatolik yuz berdi.",
	entity.LanguageRussian: "Произошла ошибка при обращении к AI.",
}

// GetAdviceInput represents the input for productivity advice.
type GetAdviceInput struct {
	TaskCount  int
	HabitCount int
	Language   entity.Language
}

// GetAdviceOutput represents the output of productivity advice.
type GetAdviceOutput struct {
	Advice string
}

// GetAdviceUseCase asks the planner for one short piece of productivity advice.
type GetAdviceUseCase struct {
	planner adapter.PlannerService
}

// NewGetAdviceUseCase creates a new GetAdviceUseCase instance.
func NewGetAdviceUseCase(planner adapter.PlannerService) *GetAdviceUseCase {
	return &GetAdviceUseCase{planner: planner}
}

// Execute requests the advice. Model failures degrade to a localized
// fallback message instead of an error.
func (uc *GetAdviceUseCase) Execute(ctx context.Context, input GetAdviceInput) (*GetAdviceOutput, error) {
	prompt := fmt.Sprintf(
		"User has %d tasks and %d habits. Language: %s. Give 1 sentence productivity advice.",
		input.TaskCount, input.HabitCount, input.Language,
	)

	advice, err := uc.planner.GenerateText(ctx, prompt, adviceInstruction)
	if err != nil {
		slog.Error("Productivity advice generation failed", "error", err)
		return &GetAdviceOutput{Advice: adviceFallback[input.Language]}, nil
	}

	return &GetAdviceOutput{Advice: advice}, nil
}
