// Package auth exposes the credential lifecycle endpoints: signup,
// email confirmation, login, token refresh and logout.
package auth

import (
	"errors"
	"net/http"

	httperrors "github.com/dropDatabas3/fauxbook/internal/http/errors"
	jwtx "github.com/dropDatabas3/fauxbook/internal/jwt"
	svc "github.com/dropDatabas3/fauxbook/internal/http/services/auth"
	"github.com/dropDatabas3/fauxbook/internal/observability/logger"
	"github.com/dropDatabas3/fauxbook/internal/security/password"
	"go.uber.org/zap"
)

// Controller wires the auth service to HTTP.
type Controller struct {
	service *svc.Service
}

func NewController(service *svc.Service) *Controller {
	return &Controller{service: service}
}

// handleError maps service errors to HTTP responses. Every login
// failure collapses into 401 on the wire; refresh failures into 403.
func (c *Controller) handleError(w http.ResponseWriter, err error, log *zap.Logger) {
	switch {
	case errors.Is(err, svc.ErrDuplicateEmail):
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("email already registered"))
	case errors.Is(err, password.ErrTooWeak):
		httperrors.WriteError(w, httperrors.ErrInvalidInput.WithDetail(err.Error()))
	case errors.Is(err, svc.ErrCodeExpired):
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("confirmation code expired"))
	case errors.Is(err, svc.ErrCodeMismatch):
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("confirmation code mismatch"))
	case errors.Is(err, svc.ErrNoSuchUser),
		errors.Is(err, svc.ErrAccountSuspended),
		errors.Is(err, svc.ErrEmailNotConfirmed),
		errors.Is(err, svc.ErrIncorrectPassword):
		httperrors.WriteError(w, httperrors.ErrInvalidCredentials)
	case errors.Is(err, svc.ErrNoActiveSession),
		errors.Is(err, svc.ErrTokenMismatch),
		errors.Is(err, jwtx.ErrTokenExpired),
		errors.Is(err, jwtx.ErrTokenInvalid),
		errors.Is(err, jwtx.ErrTokenMalformed):
		httperrors.WriteError(w, httperrors.ErrForbidden.WithDetail("invalid session"))
	default:
		log.Error("unexpected error", logger.Err(err))
		httperrors.WriteError(w, httperrors.ErrInternalServerError)
	}
}
