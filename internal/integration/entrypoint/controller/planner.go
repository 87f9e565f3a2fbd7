package controller

import (
	"encoding/base64"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/application/store"
	"github.com/planify/backend/internal/application/usecase/planner"
	"github.com/planify/backend/internal/domain/entity"
	"github.com/planify/backend/internal/integration/entrypoint/dto"
)

// PlannerController handles AI planner endpoints.
type PlannerController struct {
	stores        *store.Manager
	getAdvice     *planner.GetAdviceUseCase
	dailyBriefing *planner.DailyBriefingUseCase
	planTasks     *planner.PlanTasksUseCase
}

// NewPlannerController creates a new planner controller instance.
func NewPlannerController(
	stores *store.Manager,
	getAdvice *planner.GetAdviceUseCase,
	dailyBriefing *planner.DailyBriefingUseCase,
	planTasks *planner.PlanTasksUseCase,
) *PlannerController {
	return &PlannerController{
		stores:        stores,
		getAdvice:     getAdvice,
		dailyBriefing: dailyBriefing,
		planTasks:     planTasks,
	}
}

// Advice handles POST /planner/advice requests.
func (c *PlannerController) Advice(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	var req dto.AdviceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx)
		return
	}

	output, err := c.getAdvice.Execute(ctx.Request.Context(), planner.GetAdviceInput{
		TaskCount:  len(st.Tasks()),
		HabitCount: len(st.Habits()),
		Language:   languageOrDefault(req.Language, st),
	})
	if err != nil {
		handleStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AdviceResponse{Advice: output.Advice})
}

// Briefing handles POST /planner/briefing requests. The briefing covers
// today's tasks only.
func (c *PlannerController) Briefing(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	var req dto.BriefingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx)
		return
	}

	var titles []string
	today := entity.LocalDate(time.Now())
	for _, task := range st.Tasks() {
		if task.Date == today {
			titles = append(titles, task.Title)
		}
	}

	output, err := c.dailyBriefing.Execute(ctx.Request.Context(), planner.DailyBriefingInput{
		TaskTitles: titles,
		Language:   languageOrDefault(req.Language, st),
	})
	if err != nil {
		handleStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BriefingResponse{Briefing: output.Briefing})
}

// PlanTasks handles POST /planner/tasks requests.
func (c *PlannerController) PlanTasks(ctx *gin.Context) {
	session, ok := sessionFromContext(ctx)
	if !ok {
		return
	}
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	var req dto.PlanTasksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx)
		return
	}

	input := planner.PlanTasksInput{
		Session:  session,
		Text:     req.Text,
		Language: languageOrDefault(req.Language, st),
	}
	if req.Image != nil {
		data, err := base64.StdEncoding.DecodeString(req.Image.Data)
		if err != nil {
			bindError(ctx)
			return
		}
		input.Image = &adapter.ImageInput{
			Data:     data,
			MIMEType: req.Image.MIMEType,
		}
	}

	output, err := c.planTasks.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.PlanTasksResponse{
		Tasks: dto.ToTaskResponses(output.Tasks),
	})
}

// languageOrDefault resolves the request language, falling back to the
// caller's stored preference.
func languageOrDefault(lang string, st *store.Store) entity.Language {
	switch entity.Language(lang) {
	case entity.LanguageUzbek, entity.LanguageRussian:
		return entity.Language(lang)
	default:
		return st.Preferences().Language
	}
}
