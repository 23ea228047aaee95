package account

import (
	"net/http"

	dto "github.com/dropDatabas3/fauxbook/internal/http/dto/account"
	httperrors "github.com/dropDatabas3/fauxbook/internal/http/errors"
	"github.com/dropDatabas3/fauxbook/internal/http/helpers"
	mw "github.com/dropDatabas3/fauxbook/internal/http/middlewares"
	"github.com/dropDatabas3/fauxbook/internal/observability/logger"
)

// ChangePassword handles POST /changepassword. Requires auth.
func (c *Controller) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("account.ChangePassword"))

	uid := mw.GetUserID(ctx)
	if uid == "" {
		httperrors.WriteError(w, httperrors.ErrUnauthorized)
		return
	}

	var req dto.ChangePasswordRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidInput.WithDetail(err.Error()))
		return
	}

	if err := c.service.ChangePassword(ctx, uid, req.OldPassword, req.NewPassword); err != nil {
		c.handleError(w, err, log)
		return
	}

	helpers.WriteJSON(w, http.StatusOK, map[string]string{"message": "password changed"})
}

// ForgotPassword handles POST /forgotpassword. Unauthenticated: the
// only input is the account email.
func (c *Controller) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("account.ForgotPassword"))

	var req dto.ForgotPasswordRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidInput.WithDetail(err.Error()))
		return
	}

	if err := c.service.ForgotPassword(ctx, req.Email); err != nil {
		c.handleError(w, err, log)
		return
	}

	helpers.WriteJSON(w, http.StatusOK, map[string]string{"message": "reset email sent"})
}

// CheckResetLink handles GET /resetlink?code=..&email=..
// The reset mail points the browser here to validate the pair before
// showing the new-password form.
func (c *Controller) CheckResetLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("account.CheckResetLink"))

	req := dto.CheckResetLinkRequest{
		Email: r.URL.Query().Get("email"),
		Code:  r.URL.Query().Get("code"),
	}
	if err := req.Validate(); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidInput.WithDetail(err.Error()))
		return
	}

	if err := c.service.CheckResetLink(ctx, req.Email, req.Code); err != nil {
		c.handleError(w, err, log)
		return
	}

	helpers.WriteJSON(w, http.StatusOK, map[string]string{"message": "reset link valid"})
}

// ResetPassword handles POST /resetpassword: consumes the mailed code
// and sets the new password.
func (c *Controller) ResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("account.ResetPassword"))

	var req dto.ResetPasswordRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidInput.WithDetail(err.Error()))
		return
	}

	if err := c.service.ResetPassword(ctx, req.Email, req.Code, req.Password); err != nil {
		c.handleError(w, err, log)
		return
	}

	helpers.WriteJSON(w, http.StatusOK, map[string]string{"message": "password reset"})
}
