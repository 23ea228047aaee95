package post

import (
	"net/http"

	dto "github.com/dropDatabas3/fauxbook/internal/http/dto/post"
	httperrors "github.com/dropDatabas3/fauxbook/internal/http/errors"
	"github.com/dropDatabas3/fauxbook/internal/http/helpers"
	"github.com/dropDatabas3/fauxbook/internal/observability/logger"
)

// AddComment handles POST /posts/{id}/comments.
func (c *Controller) AddComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("post.AddComment"))

	uid, ok := requireUID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.CommentRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidInput.WithDetail(err.Error()))
		return
	}

	cm, err := c.service.AddComment(ctx, uid, id, req.Body)
	if err != nil {
		c.handleError(w, err, log)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, cm)
}

// DeleteComment handles DELETE /comments/{id}.
func (c *Controller) DeleteComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("post.DeleteComment"))

	uid, ok := requireUID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := c.service.DeleteComment(ctx, uid, id); err != nil {
		c.handleError(w, err, log)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Like handles POST /posts/{id}/like.
func (c *Controller) Like(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("post.Like"))

	uid, ok := requireUID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := c.service.Like(ctx, uid, id); err != nil {
		c.handleError(w, err, log)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, map[string]string{"message": "liked"})
}

// Unlike handles DELETE /posts/{id}/like.
func (c *Controller) Unlike(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("post.Unlike"))

	uid, ok := requireUID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := c.service.Unlike(ctx, uid, id); err != nil {
		c.handleError(w, err, log)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, map[string]string{"message": "unliked"})
}
