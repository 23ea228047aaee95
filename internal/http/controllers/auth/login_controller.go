package auth

import (
	"net/http"

	dto "github.com/dropDatabas3/fauxbook/internal/http/dto/auth"
	httperrors "github.com/dropDatabas3/fauxbook/internal/http/errors"
	"github.com/dropDatabas3/fauxbook/internal/http/helpers"
	mw "github.com/dropDatabas3/fauxbook/internal/http/middlewares"
	"github.com/dropDatabas3/fauxbook/internal/observability/logger"
)

// Login handles POST /login. On success it returns both tokens plus
// the public user.
func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("auth.Login"))

	var req dto.LoginRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidInput.WithDetail(err.Error()))
		return
	}

	result, err := c.service.Login(ctx, req)
	if err != nil {
		c.handleError(w, err, log)
		return
	}

	helpers.WriteJSON(w, http.StatusOK, result)
}

// Refresh handles POST /auth/token: exchanges a refresh token for a
// fresh access token.
func (c *Controller) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("auth.Refresh"))

	var req dto.RefreshRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidInput.WithDetail(err.Error()))
		return
	}

	access, err := c.service.Refresh(ctx, req.UID, req.RefreshToken)
	if err != nil {
		c.handleError(w, err, log)
		return
	}

	helpers.WriteJSON(w, http.StatusOK, dto.RefreshResponse{
		AccessToken: access,
		TokenType:   "Bearer",
	})
}

// Logout handles POST /logout. Requires auth; revokes the caller's
// session.
func (c *Controller) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("auth.Logout"))

	uid := mw.GetUserID(ctx)
	if uid == "" {
		httperrors.WriteError(w, httperrors.ErrUnauthorized)
		return
	}

	if err := c.service.Logout(ctx, uid); err != nil {
		c.handleError(w, err, log)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
