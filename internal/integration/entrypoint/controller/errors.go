package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/wallet/internal/application/usecase/guard"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
	"github.com/finance-tracker/wallet/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/wallet/internal/integration/entrypoint/middleware"
)

// statusForKind maps a ledger error kind to its HTTP status.
func statusForKind(kind domainerror.ErrorKind) int {
	switch kind {
	case domainerror.KindValidation:
		return http.StatusBadRequest
	case domainerror.KindAuthorization:
		return http.StatusForbidden
	case domainerror.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// statusForAuthCode maps auth error codes to HTTP status codes.
func statusForAuthCode(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the JSON error body matching err.
func respondError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		status := statusForKind(ledgerErr.Kind())
		if status == http.StatusInternalServerError {
			email, _ := middleware.GetUserEmailFromContext(ctx)
			slog.Error("Ledger store failure",
				"path", ctx.FullPath(),
				"caller_email", email,
				"code", ledgerErr.Code,
				"error", err,
			)
			ctx.JSON(status, dto.ErrorResponse{
				Error: "An internal error occurred",
				Code:  string(ledgerErr.Code),
			})
			return
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(statusForAuthCode(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	slog.Error("Unhandled request error", "path", ctx.FullPath(), "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// respondBadBody reports a request body that failed to bind.
func respondBadBody(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body",
		Code:    string(domainerror.ErrCodeInvalidRequestBody),
		Details: err.Error(),
	})
}

// callerID returns the authenticated user, writing a 401 when absent.
func callerID(ctx *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return id, true
}

// ownerID returns the authenticated caller once it matches :userId, writing
// the error response otherwise. Handlers that bind a body call it first.
func ownerID(ctx *gin.Context) (uuid.UUID, bool) {
	caller, ok := callerID(ctx)
	if !ok {
		return uuid.Nil, false
	}
	if _, err := guard.AuthorizeOwner(caller, ctx.Param("userId")); err != nil {
		respondError(ctx, err)
		return uuid.Nil, false
	}
	return caller, true
}
