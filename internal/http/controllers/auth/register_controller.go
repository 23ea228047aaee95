package auth

import (
	"net/http"

	dto "github.com/dropDatabas3/fauxbook/internal/http/dto/auth"
	httperrors "github.com/dropDatabas3/fauxbook/internal/http/errors"
	"github.com/dropDatabas3/fauxbook/internal/http/helpers"
	"github.com/dropDatabas3/fauxbook/internal/observability/logger"
)

// Register handles POST /signup.
func (c *Controller) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("auth.Register"))

	var req dto.RegisterRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidInput.WithDetail(err.Error()))
		return
	}

	u, err := c.service.Register(ctx, req)
	if err != nil {
		c.handleError(w, err, log)
		return
	}

	helpers.WriteJSON(w, http.StatusCreated, dto.RegisterResponse{
		UID:       u.UID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	})
}

// ConfirmEmail handles GET /confirmemail?email=..&c=..
// The link lands here straight from the confirmation mail.
func (c *Controller) ConfirmEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("auth.ConfirmEmail"))

	req := dto.ConfirmEmailRequest{
		Email: r.URL.Query().Get("email"),
		Code:  r.URL.Query().Get("c"),
	}
	if err := req.Validate(); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidInput.WithDetail(err.Error()))
		return
	}

	if err := c.service.ConfirmEmail(ctx, req.Email, req.Code); err != nil {
		c.handleError(w, err, log)
		return
	}

	helpers.WriteJSON(w, http.StatusOK, map[string]string{"message": "email confirmed"})
}
