package post

import (
	"net/http"
	"strings"

	dto "github.com/dropDatabas3/fauxbook/internal/http/dto/post"
	httperrors "github.com/dropDatabas3/fauxbook/internal/http/errors"
	"github.com/dropDatabas3/fauxbook/internal/http/helpers"
	svc "github.com/dropDatabas3/fauxbook/internal/http/services/post"
	"github.com/dropDatabas3/fauxbook/internal/observability/logger"
)

// Publish handles POST /posts. Accepts either plain JSON or multipart
// form-data with an optional "image" file alongside the "post" field.
func (c *Controller) Publish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("post.Publish"))

	uid, ok := requireUID(w, r)
	if !ok {
		return
	}

	var req dto.PublishRequest
	var img *svc.ImageUpload

	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		// +64KB de margen para el campo de texto.
		r.Body = http.MaxBytesReader(w, r.Body, svc.MaxImageSize+helpers.MaxBodySize)
		if err := r.ParseMultipartForm(svc.MaxImageSize); err != nil {
			httperrors.WriteError(w, httperrors.ErrBodyTooLarge)
			return
		}
		req.Body = r.FormValue("post")

		if file, hdr, err := r.FormFile("image"); err == nil {
			defer file.Close()
			img = &svc.ImageUpload{Filename: hdr.Filename, Reader: file}
		}
	} else {
		if !helpers.DecodeJSON(w, r, &req) {
			return
		}
	}

	if err := req.Validate(); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidInput.WithDetail(err.Error()))
		return
	}

	p, err := c.service.Publish(ctx, uid, req.Body, img)
	if err != nil {
		c.handleError(w, err, log)
		return
	}

	helpers.WriteJSON(w, http.StatusCreated, p)
}

// FetchAll handles GET /posts.
func (c *Controller) FetchAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("post.FetchAll"))

	posts, err := c.service.FetchAll(ctx)
	if err != nil {
		c.handleError(w, err, log)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, posts)
}

// Fetch handles GET /posts/{id}. ?comments=true embeds the comments.
func (c *Controller) Fetch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("post.Fetch"))

	id, ok := pathID(w, r)
	if !ok {
		return
	}
	withComments := r.URL.Query().Get("comments") == "true"

	p, err := c.service.Fetch(ctx, id, withComments)
	if err != nil {
		c.handleError(w, err, log)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, p)
}

// FetchOwn handles GET /myposts.
func (c *Controller) FetchOwn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("post.FetchOwn"))

	uid, ok := requireUID(w, r)
	if !ok {
		return
	}

	posts, err := c.service.FetchOwn(ctx, uid)
	if err != nil {
		c.handleError(w, err, log)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, posts)
}

// Update handles PUT /posts/{id}.
func (c *Controller) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("post.Update"))

	uid, ok := requireUID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidInput.WithDetail(err.Error()))
		return
	}

	p, err := c.service.Update(ctx, uid, id, req.Body)
	if err != nil {
		c.handleError(w, err, log)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, p)
}

// Delete handles DELETE /posts/{id}.
func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("post.Delete"))

	uid, ok := requireUID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx, uid, id); err != nil {
		c.handleError(w, err, log)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
