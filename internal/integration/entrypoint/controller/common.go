// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/planify/backend/internal/application/store"
	"github.com/planify/backend/internal/domain/entity"
	domainerror "github.com/planify/backend/internal/domain/error"
	"github.com/planify/backend/internal/integration/entrypoint/dto"
	"github.com/planify/backend/internal/integration/entrypoint/middleware"
)

// sessionFromContext rebuilds the session carried by the auth middleware.
func sessionFromContext(ctx *gin.Context) (*entity.Session, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return nil, false
	}
	email, _ := middleware.GetUserEmailFromContext(ctx)
	return &entity.Session{UserID: userID, Email: email}, true
}

// resolveStore returns the caller's store, routing the demo identity to
// the shared in-memory demo store.
func resolveStore(ctx *gin.Context, stores *store.Manager) (*store.Store, bool) {
	session, ok := sessionFromContext(ctx)
	if !ok {
		return nil, false
	}

	var (
		st  *store.Store
		err error
	)
	if session.UserID == entity.DemoUserID {
		st, err = stores.DemoStore(ctx.Request.Context())
	} else {
		st, err = stores.StoreFor(ctx.Request.Context(), session)
	}
	if err != nil {
		handleStoreError(ctx, err)
		return nil, false
	}
	return st, true
}

// handleStoreError maps store and domain errors to HTTP responses.
func handleStoreError(ctx *gin.Context, err error) {
	type mapping struct {
		target error
		status int
		code   string
	}
	mappings := []mapping{
		{domainerror.ErrNotSignedIn, http.StatusUnauthorized, string(domainerror.ErrCodeNotSignedIn)},
		{domainerror.ErrStoreClosed, http.StatusServiceUnavailable, string(domainerror.ErrCodeStoreClosed)},
		{domainerror.ErrTaskNotFound, http.StatusNotFound, string(domainerror.ErrCodeTaskNotFound)},
		{domainerror.ErrHabitNotFound, http.StatusNotFound, string(domainerror.ErrCodeHabitNotFound)},
		{domainerror.ErrNoteNotFound, http.StatusNotFound, string(domainerror.ErrCodeNoteNotFound)},
		{domainerror.ErrGoalNotFound, http.StatusNotFound, string(domainerror.ErrCodeGoalNotFound)},
		{domainerror.ErrDebtNotFound, http.StatusNotFound, string(domainerror.ErrCodeDebtNotFound)},
		{domainerror.ErrTransactionNotFound, http.StatusNotFound, string(domainerror.ErrCodeTransactionNotFound)},
		{domainerror.ErrInvalidPriority, http.StatusBadRequest, string(domainerror.ErrCodeInvalidPriority)},
		{domainerror.ErrInvalidTransactionType, http.StatusBadRequest, string(domainerror.ErrCodeInvalidTransactionType)},
		{domainerror.ErrInvalidDate, http.StatusBadRequest, string(domainerror.ErrCodeInvalidDate)},
		{domainerror.ErrProfileNotFound, http.StatusNotFound, string(domainerror.ErrCodeProfileNotFound)},
		{domainerror.ErrAdminRequired, http.StatusForbidden, string(domainerror.ErrCodeAdminRequired)},
		{domainerror.ErrPlannerUnavailable, http.StatusServiceUnavailable, string(domainerror.ErrCodePlannerUnavailable)},
		{domainerror.ErrPlannerBadPayload, http.StatusBadGateway, string(domainerror.ErrCodePlannerBadPayload)},
		{domainerror.ErrPlannerEmptyResponse, http.StatusBadGateway, string(domainerror.ErrCodePlannerEmptyResponse)},
	}
	for _, m := range mappings {
		if errors.Is(err, m.target) {
			ctx.JSON(m.status, dto.ErrorResponse{Error: m.target.Error(), Code: m.code})
			return
		}
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// bindError rejects a malformed request body.
func bindError(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body",
		Code:  string(domainerror.ErrCodeMissingFields),
	})
}
