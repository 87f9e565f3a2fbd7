package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/planify/backend/internal/application/store"
	"github.com/planify/backend/internal/domain/entity"
	"github.com/planify/backend/internal/integration/entrypoint/dto"
)

// PreferencesController handles UI preference endpoints.
type PreferencesController struct {
	stores *store.Manager
}

// NewPreferencesController creates a new preferences controller instance.
func NewPreferencesController(stores *store.Manager) *PreferencesController {
	return &PreferencesController{stores: stores}
}

// Get handles GET /preferences requests.
func (c *PreferencesController) Get(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPreferencesResponse(st.Preferences()))
}

// SetLanguage handles PUT /preferences/language requests.
func (c *PreferencesController) SetLanguage(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	var req dto.SetLanguageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx)
		return
	}

	st.SetLanguage(ctx.Request.Context(), entity.Language(req.Language))
	ctx.JSON(http.StatusOK, dto.ToPreferencesResponse(st.Preferences()))
}

// SetTheme handles PUT /preferences/theme requests.
func (c *PreferencesController) SetTheme(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	var req dto.SetThemeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx)
		return
	}

	st.SetTheme(ctx.Request.Context(), entity.Theme(req.Theme))
	ctx.JSON(http.StatusOK, dto.ToPreferencesResponse(st.Preferences()))
}

// ToggleTheme handles POST /preferences/theme/toggle requests.
func (c *PreferencesController) ToggleTheme(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	st.ToggleTheme(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.ToPreferencesResponse(st.Preferences()))
}
