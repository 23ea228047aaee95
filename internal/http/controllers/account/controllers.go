// Package account exposes the account management endpoints: password
// change and recovery, profile edit and account disable.
package account

import (
	"errors"
	"net/http"

	httperrors "github.com/dropDatabas3/fauxbook/internal/http/errors"
	accsvc "github.com/dropDatabas3/fauxbook/internal/http/services/account"
	authsvc "github.com/dropDatabas3/fauxbook/internal/http/services/auth"
	"github.com/dropDatabas3/fauxbook/internal/observability/logger"
	"github.com/dropDatabas3/fauxbook/internal/security/password"
	"go.uber.org/zap"
)

type Controller struct {
	service *accsvc.Service
}

func NewController(service *accsvc.Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) handleError(w http.ResponseWriter, err error, log *zap.Logger) {
	switch {
	case errors.Is(err, authsvc.ErrIncorrectPassword):
		httperrors.WriteError(w, httperrors.ErrInvalidCredentials)
	case errors.Is(err, authsvc.ErrNoSuchUser):
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("no such user"))
	case errors.Is(err, accsvc.ErrCodeInvalid):
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("reset code invalid"))
	case errors.Is(err, password.ErrTooWeak):
		httperrors.WriteError(w, httperrors.ErrInvalidInput.WithDetail(err.Error()))
	case errors.Is(err, accsvc.ErrEmailDeliveryFailed):
		log.Error("reset email delivery failed", logger.Err(err))
		httperrors.WriteError(w, httperrors.ErrInternalServerError.WithDetail("email delivery failed"))
	default:
		log.Error("unexpected error", logger.Err(err))
		httperrors.WriteError(w, httperrors.ErrInternalServerError)
	}
}
