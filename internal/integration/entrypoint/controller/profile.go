package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/planify/backend/internal/application/store"
	"github.com/planify/backend/internal/application/usecase/admin"
	"github.com/planify/backend/internal/domain/entity"
	domainerror "github.com/planify/backend/internal/domain/error"
	"github.com/planify/backend/internal/integration/entrypoint/dto"
)

// ProfileController handles profile and gamification endpoints, plus the
// admin-only profile management surface.
type ProfileController struct {
	stores        *store.Manager
	listProfiles  *admin.ListProfilesUseCase
	updateProfile *admin.UpdateProfileUseCase
	grantAccess   *admin.GrantAccessUseCase
	deleteProfile *admin.DeleteProfileUseCase
}

// NewProfileController creates a new profile controller instance.
func NewProfileController(
	stores *store.Manager,
	listProfiles *admin.ListProfilesUseCase,
	updateProfile *admin.UpdateProfileUseCase,
	grantAccess *admin.GrantAccessUseCase,
	deleteProfile *admin.DeleteProfileUseCase,
) *ProfileController {
	return &ProfileController{
		stores:        stores,
		listProfiles:  listProfiles,
		updateProfile: updateProfile,
		grantAccess:   grantAccess,
		deleteProfile: deleteProfile,
	}
}

// Me handles GET /profile requests.
func (c *ProfileController) Me(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	profile := st.Profile()
	if profile == nil {
		handleStoreError(ctx, domainerror.ErrProfileNotFound)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// AwardXP handles POST /profile/xp requests.
func (c *ProfileController) AwardXP(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	var req dto.AwardXPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx)
		return
	}

	st.AwardXP(ctx.Request.Context(), req.Amount)
	c.xpResponse(ctx, st)
}

// FocusSession handles POST /profile/focus requests. XP is awarded at one
// point per 2.5 minutes, rounded down.
func (c *ProfileController) FocusSession(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	var req dto.FocusSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx)
		return
	}

	st.LogFocusSession(ctx.Request.Context(), req.Minutes)
	c.xpResponse(ctx, st)
}

// xpResponse reports the post-award profile and the latest XP toast.
func (c *ProfileController) xpResponse(ctx *gin.Context, st *store.Store) {
	response := gin.H{}
	if profile := st.Profile(); profile != nil {
		response["profile"] = dto.ToProfileResponse(profile)
	}
	if note := st.LastXPNotification(); note != nil {
		response["notification"] = dto.XPNotificationResponse{
			Amount: note.Amount,
			ID:     note.ID,
		}
	}
	ctx.JSON(http.StatusOK, response)
}

// ListAll handles GET /admin/profiles requests.
func (c *ProfileController) ListAll(ctx *gin.Context) {
	session, ok := sessionFromContext(ctx)
	if !ok {
		return
	}

	output, err := c.listProfiles.Execute(ctx.Request.Context(), admin.ListProfilesInput{
		ActorID: session.UserID,
	})
	if err != nil {
		handleStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponses(output.Profiles))
}

// UpdateOne handles PATCH /admin/profiles/:id requests.
func (c *ProfileController) UpdateOne(ctx *gin.Context) {
	session, ok := sessionFromContext(ctx)
	if !ok {
		return
	}

	profileID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		handleStoreError(ctx, domainerror.ErrProfileNotFound)
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx)
		return
	}

	input := admin.UpdateProfileInput{
		ActorID:   session.UserID,
		ProfileID: profileID,
		IsActive:  req.IsActive,
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		input.Role = &role
	}
	if req.SubscriptionExpiresAt != nil {
		var expiry *time.Time
		if *req.SubscriptionExpiresAt != "" {
			parsed, err := time.Parse(time.RFC3339, *req.SubscriptionExpiresAt)
			if err != nil {
				bindError(ctx)
				return
			}
			expiry = &parsed
		}
		input.SubscriptionExpiresAt = &expiry
	}

	output, err := c.updateProfile.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

// Grant handles POST /admin/profiles/:id/grant requests.
func (c *ProfileController) Grant(ctx *gin.Context) {
	session, ok := sessionFromContext(ctx)
	if !ok {
		return
	}

	profileID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		handleStoreError(ctx, domainerror.ErrProfileNotFound)
		return
	}

	output, err := c.grantAccess.Execute(ctx.Request.Context(), admin.GrantAccessInput{
		ActorID:   session.UserID,
		ProfileID: profileID,
	})
	if err != nil {
		handleStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

// DeleteOne handles DELETE /admin/profiles/:id requests.
func (c *ProfileController) DeleteOne(ctx *gin.Context) {
	session, ok := sessionFromContext(ctx)
	if !ok {
		return
	}

	profileID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		handleStoreError(ctx, domainerror.ErrProfileNotFound)
		return
	}

	if _, err := c.deleteProfile.Execute(ctx.Request.Context(), admin.DeleteProfileInput{
		ActorID:   session.UserID,
		ProfileID: profileID,
	}); err != nil {
		handleStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Profile deleted"})
}
