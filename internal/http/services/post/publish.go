package post

import (
	"context"

	"github.com/dropDatabas3/fauxbook/internal/observability/logger"
	"github.com/dropDatabas3/fauxbook/internal/store/core"
)

// Publish crea un post nuevo, con imagen opcional.
func (s *Service) Publish(ctx context.Context, uid, body string, img *ImageUpload) (*core.Post, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("post.publish"),
		logger.Op("Publish"),
		logger.UserID(uid),
	)

	u, err := s.owner(ctx, uid)
	if err != nil {
		return nil, err
	}

	imageURL := ""
	if img != nil {
		imageURL, err = s.saveImage(img)
		if err != nil {
			return nil, err
		}
	}

	p := &core.Post{
		UserID: u.ID,
		Body:   body,
		Image:  imageURL,
	}
	if err := s.deps.Store.Posts().Create(ctx, p); err != nil {
		return nil, err
	}

	log.Info("post published", logger.PostID(p.ID))
	return p, nil
}

// Update edita el cuerpo de un post propio.
func (s *Service) Update(ctx context.Context, uid string, postID int64, body string) (*core.Post, error) {
	u, err := s.owner(ctx, uid)
	if err != nil {
		return nil, err
	}

	p, err := s.deps.Store.Posts().GetByID(ctx, postID, false)
	if err != nil {
		return nil, mapNotFound(err, ErrPostNotFound)
	}
	if p.UserID != u.ID {
		return nil, ErrNotOwner
	}

	p.Body = body
	if err := s.deps.Store.Posts().Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete borra un post propio; sus comments caen en cascada.
func (s *Service) Delete(ctx context.Context, uid string, postID int64) error {
	u, err := s.owner(ctx, uid)
	if err != nil {
		return err
	}

	p, err := s.deps.Store.Posts().GetByID(ctx, postID, false)
	if err != nil {
		return mapNotFound(err, ErrPostNotFound)
	}
	if p.UserID != u.ID {
		return ErrNotOwner
	}

	if err := s.deps.Store.Posts().Delete(ctx, postID); err != nil {
		return err
	}

	logger.From(ctx).Info("post deleted",
		logger.Component("post.manage"),
		logger.PostID(postID),
		logger.UserID(uid),
	)
	return nil
}
