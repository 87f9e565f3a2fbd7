// Package planner contains AI planner use cases.
package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/application/store"
	"github.com/planify/backend/internal/domain/entity"
)

// PlanTasksInput represents the input for natural-language task planning.
type PlanTasksInput struct {
	Session  *entity.Session
	Text     string
	Image    *adapter.ImageInput
	Language entity.Language
}

// PlanTasksOutput represents the output of natural-language task planning.
type PlanTasksOutput struct {
	Tasks []*entity.Task
}

// PlanTasksUseCase extracts structured tasks from free text (and an
// optional image) and inserts them through the caller's store.
type PlanTasksUseCase struct {
	planner adapter.PlannerService
	stores  *store.Manager
}

// NewPlanTasksUseCase creates a new PlanTasksUseCase instance.
func NewPlanTasksUseCase(planner adapter.PlannerService, stores *store.Manager) *PlanTasksUseCase {
	return &PlanTasksUseCase{
		planner: planner,
		stores:  stores,
	}
}

// Execute performs the extraction and bulk insert.
func (uc *PlanTasksUseCase) Execute(ctx context.Context, input PlanTasksInput) (*PlanTasksOutput, error) {
	currentDate := time.Now().UTC().Format("2006-01-02")

	drafts, err := uc.planner.ExtractTasks(ctx, input.Text, currentDate, input.Language, input.Image)
	if err != nil {
		return nil, fmt.Errorf("failed to extract tasks: %w", err)
	}

	st, err := uc.stores.StoreFor(ctx, input.Session)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve store: %w", err)
	}

	tasks, err := st.AddTasksBulk(ctx, drafts)
	if err != nil {
		return nil, fmt.Errorf("failed to add planned tasks: %w", err)
	}

	return &PlanTasksOutput{Tasks: tasks}, nil
}
