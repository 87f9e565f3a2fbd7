package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/planify/backend/internal/application/store"
	"github.com/planify/backend/internal/domain/entity"
	domainerror "github.com/planify/backend/internal/domain/error"
	"github.com/planify/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	stores *store.Manager
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(stores *store.Manager) *TransactionController {
	return &TransactionController{stores: stores}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransactionResponses(st.Transactions()))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx)
		return
	}

	txn, err := st.AddTransaction(ctx.Request.Context(), store.AddTransactionInput{
		Title:    req.Title,
		Amount:   decimal.NewFromFloat(req.Amount),
		Type:     entity.TransactionType(req.Type),
		Category: req.Category,
		Date:     req.Date,
	})
	if err != nil {
		handleStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// Delete handles DELETE /transactions/:id requests. Failures never
// trigger a resync; transactions are not a resynced collection.
func (c *TransactionController) Delete(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		handleStoreError(ctx, domainerror.ErrTransactionNotFound)
		return
	}

	outcome, err := st.DeleteTransaction(ctx.Request.Context(), id)
	if err != nil {
		handleStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOutcomeResponse(outcome))
}
