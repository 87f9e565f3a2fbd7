package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/planify/backend/internal/application/store"
	domainerror "github.com/planify/backend/internal/domain/error"
	"github.com/planify/backend/internal/integration/entrypoint/dto"
)

// NoteController handles note endpoints.
type NoteController struct {
	stores *store.Manager
}

// NewNoteController creates a new note controller instance.
func NewNoteController(stores *store.Manager) *NoteController {
	return &NoteController{stores: stores}
}

// List handles GET /notes requests.
func (c *NoteController) List(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToNoteResponses(st.Notes()))
}

// Create handles POST /notes requests.
func (c *NoteController) Create(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	var req dto.CreateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx)
		return
	}

	note, err := st.AddNote(ctx.Request.Context(), req.Content)
	if err != nil {
		handleStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToNoteResponse(note))
}

// Delete handles DELETE /notes/:id requests.
func (c *NoteController) Delete(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		handleStoreError(ctx, domainerror.ErrNoteNotFound)
		return
	}

	outcome, err := st.DeleteNote(ctx.Request.Context(), id)
	if err != nil {
		handleStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOutcomeResponse(outcome))
}
