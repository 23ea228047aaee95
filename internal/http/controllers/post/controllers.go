// Package post exposes the feed endpoints: posts, comments and likes.
package post

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	httperrors "github.com/dropDatabas3/fauxbook/internal/http/errors"
	mw "github.com/dropDatabas3/fauxbook/internal/http/middlewares"
	svc "github.com/dropDatabas3/fauxbook/internal/http/services/post"
	"github.com/dropDatabas3/fauxbook/internal/observability/logger"
	"go.uber.org/zap"
)

type Controller struct {
	service *svc.Service
}

func NewController(service *svc.Service) *Controller {
	return &Controller{service: service}
}

// requireUID extracts the authenticated uid or writes a 401.
func requireUID(w http.ResponseWriter, r *http.Request) (string, bool) {
	uid := mw.GetUserID(r.Context())
	if uid == "" {
		httperrors.WriteError(w, httperrors.ErrUnauthorized)
		return "", false
	}
	return uid, true
}

// pathID parses the {id} URL param or writes a 400.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("invalid id"))
		return 0, false
	}
	return id, true
}

func (c *Controller) handleError(w http.ResponseWriter, err error, log *zap.Logger) {
	switch {
	case errors.Is(err, svc.ErrPostNotFound):
		httperrors.WriteError(w, httperrors.ErrNotFound.WithDetail("post not found"))
	case errors.Is(err, svc.ErrCommentNotFound):
		httperrors.WriteError(w, httperrors.ErrNotFound.WithDetail("comment not found"))
	case errors.Is(err, svc.ErrNotOwner):
		httperrors.WriteError(w, httperrors.ErrForbidden)
	case errors.Is(err, svc.ErrAlreadyLiked):
		httperrors.WriteError(w, httperrors.ErrConflict.WithDetail("already liked"))
	case errors.Is(err, svc.ErrNotLiked):
		httperrors.WriteError(w, httperrors.ErrConflict.WithDetail("not liked"))
	case errors.Is(err, svc.ErrBadImage):
		httperrors.WriteError(w, httperrors.ErrInvalidInput.WithDetail("image must be jpeg or png"))
	case errors.Is(err, svc.ErrImageTooLarge):
		httperrors.WriteError(w, httperrors.ErrBodyTooLarge.WithDetail("image exceeds 10MiB"))
	default:
		log.Error("unexpected error", logger.Err(err))
		httperrors.WriteError(w, httperrors.ErrInternalServerError)
	}
}
