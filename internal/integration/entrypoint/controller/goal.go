package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/application/store"
	domainerror "github.com/planify/backend/internal/domain/error"
	"github.com/planify/backend/internal/integration/entrypoint/dto"
)

// GoalController handles saving goal endpoints.
type GoalController struct {
	stores *store.Manager
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(stores *store.Manager) *GoalController {
	return &GoalController{stores: stores}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToGoalResponses(st.Goals()))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx)
		return
	}

	goal, err := st.AddGoal(ctx.Request.Context(), store.AddGoalInput{
		Title:         req.Title,
		TargetAmount:  decimal.NewFromFloat(req.TargetAmount),
		CurrentAmount: decimal.NewFromFloat(req.CurrentAmount),
		Color:         req.Color,
		Deadline:      req.Deadline,
	})
	if err != nil {
		handleStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(goal))
}

// Update handles PATCH /goals/:id requests. The current amount is free to
// exceed the target; over-saving is never clamped.
func (c *GoalController) Update(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		handleStoreError(ctx, domainerror.ErrGoalNotFound)
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx)
		return
	}

	patch := adapter.GoalPatch{
		Title:    req.Title,
		Color:    req.Color,
		Deadline: req.Deadline,
	}
	if req.TargetAmount != nil {
		target := decimal.NewFromFloat(*req.TargetAmount)
		patch.TargetAmount = &target
	}
	if req.CurrentAmount != nil {
		current := decimal.NewFromFloat(*req.CurrentAmount)
		patch.CurrentAmount = &current
	}

	outcome, err := st.UpdateGoal(ctx.Request.Context(), id, patch)
	if err != nil {
		handleStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOutcomeResponse(outcome))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		handleStoreError(ctx, domainerror.ErrGoalNotFound)
		return
	}

	outcome, err := st.DeleteGoal(ctx.Request.Context(), id)
	if err != nil {
		handleStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOutcomeResponse(outcome))
}
