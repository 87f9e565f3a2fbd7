package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/planify/backend/internal/application/store"
	domainerror "github.com/planify/backend/internal/domain/error"
	"github.com/planify/backend/internal/integration/entrypoint/dto"
)

// HabitController handles habit endpoints.
type HabitController struct {
	stores *store.Manager
}

// NewHabitController creates a new habit controller instance.
func NewHabitController(stores *store.Manager) *HabitController {
	return &HabitController{stores: stores}
}

// List handles GET /habits requests.
func (c *HabitController) List(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToHabitResponses(st.Habits()))
}

// Create handles POST /habits requests.
func (c *HabitController) Create(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	var req dto.CreateHabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx)
		return
	}

	habit, err := st.AddHabit(ctx.Request.Context(), req.Title, req.Color)
	if err != nil {
		handleStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToHabitResponse(habit))
}

// ToggleDate handles POST /habits/:id/toggle requests. Adding a date
// awards XP; removing one does not refund it.
func (c *HabitController) ToggleDate(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		handleStoreError(ctx, domainerror.ErrHabitNotFound)
		return
	}

	var req dto.ToggleHabitDateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx)
		return
	}

	outcome, err := st.ToggleHabitForDate(ctx.Request.Context(), id, req.Date)
	if err != nil {
		handleStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOutcomeResponse(outcome))
}

// Delete handles DELETE /habits/:id requests.
func (c *HabitController) Delete(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		handleStoreError(ctx, domainerror.ErrHabitNotFound)
		return
	}

	outcome, err := st.DeleteHabit(ctx.Request.Context(), id)
	if err != nil {
		handleStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOutcomeResponse(outcome))
}
