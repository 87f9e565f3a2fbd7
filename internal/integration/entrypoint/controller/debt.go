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

// DebtController handles debt endpoints.
type DebtController struct {
	stores *store.Manager
}

// NewDebtController creates a new debt controller instance.
func NewDebtController(stores *store.Manager) *DebtController {
	return &DebtController{stores: stores}
}

// List handles GET /debts requests.
func (c *DebtController) List(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToDebtResponses(st.Debts()))
}

// Create handles POST /debts requests.
func (c *DebtController) Create(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	var req dto.CreateDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx)
		return
	}

	debt, err := st.AddDebt(ctx.Request.Context(), store.AddDebtInput{
		Title:        req.Title,
		TotalAmount:  decimal.NewFromFloat(req.TotalAmount),
		PaidAmount:   decimal.NewFromFloat(req.PaidAmount),
		InterestRate: decimal.NewFromFloat(req.InterestRate),
	})
	if err != nil {
		handleStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDebtResponse(debt))
}

// Update handles PATCH /debts/:id requests. Paying past the total is
// allowed; the remaining balance simply goes negative.
func (c *DebtController) Update(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		handleStoreError(ctx, domainerror.ErrDebtNotFound)
		return
	}

	var req dto.UpdateDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx)
		return
	}

	patch := adapter.DebtPatch{
		Title: req.Title,
	}
	if req.TotalAmount != nil {
		total := decimal.NewFromFloat(*req.TotalAmount)
		patch.TotalAmount = &total
	}
	if req.PaidAmount != nil {
		paid := decimal.NewFromFloat(*req.PaidAmount)
		patch.PaidAmount = &paid
	}
	if req.InterestRate != nil {
		rate := decimal.NewFromFloat(*req.InterestRate)
		patch.InterestRate = &rate
	}

	outcome, err := st.UpdateDebt(ctx.Request.Context(), id, patch)
	if err != nil {
		handleStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOutcomeResponse(outcome))
}

// Delete handles DELETE /debts/:id requests.
func (c *DebtController) Delete(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		handleStoreError(ctx, domainerror.ErrDebtNotFound)
		return
	}

	outcome, err := st.DeleteDebt(ctx.Request.Context(), id)
	if err != nil {
		handleStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOutcomeResponse(outcome))
}
