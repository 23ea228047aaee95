package account

import (
	"net/http"

	dto "github.com/dropDatabas3/fauxbook/internal/http/dto/account"
	httperrors "github.com/dropDatabas3/fauxbook/internal/http/errors"
	"github.com/dropDatabas3/fauxbook/internal/http/helpers"
	mw "github.com/dropDatabas3/fauxbook/internal/http/middlewares"
	"github.com/dropDatabas3/fauxbook/internal/observability/logger"
)

// UpdateInfo handles PUT /updateinfo. Requires auth.
func (c *Controller) UpdateInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("account.UpdateInfo"))

	uid := mw.GetUserID(ctx)
	if uid == "" {
		httperrors.WriteError(w, httperrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateInfoRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidInput.WithDetail(err.Error()))
		return
	}

	u, err := c.service.UpdateInfo(ctx, uid, req.FirstName, req.LastName)
	if err != nil {
		c.handleError(w, err, log)
		return
	}

	helpers.WriteJSON(w, http.StatusOK, u)
}

// DisableAccount handles POST /disableaccount. Requires auth plus a
// fresh password check.
func (c *Controller) DisableAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("account.DisableAccount"))

	uid := mw.GetUserID(ctx)
	if uid == "" {
		httperrors.WriteError(w, httperrors.ErrUnauthorized)
		return
	}

	var req dto.DisableAccountRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidInput.WithDetail(err.Error()))
		return
	}

	if err := c.service.DisableAccount(ctx, uid, req.Password); err != nil {
		c.handleError(w, err, log)
		return
	}

	helpers.WriteJSON(w, http.StatusOK, map[string]string{"message": "account disabled"})
}
