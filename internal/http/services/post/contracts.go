// Package post implementa el feed: publicación de posts (con imagen
// opcional), comentarios y likes.
package post

import (
	"context"
	"errors"

	"github.com/dropDatabas3/fauxbook/internal/store/core"
)

// Errores del feed.
var (
	ErrPostNotFound    = errors.New("post: not found")
	ErrCommentNotFound = errors.New("post: comment not found")
	ErrNotOwner        = errors.New("post: not the owner")
	ErrAlreadyLiked    = errors.New("post: already liked")
	ErrNotLiked        = errors.New("post: not liked")
	ErrBadImage        = errors.New("post: unsupported image format")
	ErrImageTooLarge   = errors.New("post: image too large")
)

// Deps contiene las dependencias del servicio de posts.
type Deps struct {
	Store core.Store

	// Domain es la base del URL público de las imágenes subidas.
	Domain string
	// UploadsDir es el directorio local donde se guardan las imágenes.
	UploadsDir string
}

type Service struct {
	deps Deps
}

func NewService(deps Deps) *Service {
	return &Service{deps: deps}
}

// owner resuelve el uid del token al usuario persistido. Todas las
// operaciones del feed requieren un usuario autenticado existente.
func (s *Service) owner(ctx context.Context, uid string) (*core.User, error) {
	return s.deps.Store.Users().GetByUID(ctx, uid)
}
