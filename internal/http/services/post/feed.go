package post

import (
	"context"
	"errors"

	"github.com/dropDatabas3/fauxbook/internal/store/core"
)

// mapNotFound traduce core.ErrNotFound al sentinel del feed que
// corresponda, dejando pasar el resto de los errores.
func mapNotFound(err, sentinel error) error {
	if errors.Is(err, core.ErrNotFound) {
		return sentinel
	}
	return err
}

// FetchAll devuelve el feed completo, más reciente primero.
func (s *Service) FetchAll(ctx context.Context) ([]core.Post, error) {
	return s.deps.Store.Posts().ListAll(ctx)
}

// Fetch devuelve un post; con withComments incluye sus comments.
func (s *Service) Fetch(ctx context.Context, postID int64, withComments bool) (*core.Post, error) {
	p, err := s.deps.Store.Posts().GetByID(ctx, postID, withComments)
	if err != nil {
		return nil, mapNotFound(err, ErrPostNotFound)
	}
	return p, nil
}

// FetchOwn devuelve los posts del usuario autenticado.
func (s *Service) FetchOwn(ctx context.Context, uid string) ([]core.Post, error) {
	u, err := s.owner(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.deps.Store.Posts().ListByUser(ctx, u.ID)
}
