package post

import (
	"context"

	"github.com/dropDatabas3/fauxbook/internal/observability/logger"
	"github.com/dropDatabas3/fauxbook/internal/store/core"
)

// AddComment agrega un comment a un post existente.
func (s *Service) AddComment(ctx context.Context, uid string, postID int64, body string) (*core.Comment, error) {
	u, err := s.owner(ctx, uid)
	if err != nil {
		return nil, err
	}

	if _, err := s.deps.Store.Posts().GetByID(ctx, postID, false); err != nil {
		return nil, mapNotFound(err, ErrPostNotFound)
	}

	c := &core.Comment{
		UserID: u.ID,
		PostID: postID,
		Body:   body,
	}
	if err := s.deps.Store.Comments().Create(ctx, c); err != nil {
		return nil, err
	}

	logger.From(ctx).Info("comment added",
		logger.Component("post.comments"),
		logger.PostID(postID),
		logger.UserID(uid),
	)
	return c, nil
}

// DeleteComment borra un comment propio.
func (s *Service) DeleteComment(ctx context.Context, uid string, commentID int64) error {
	u, err := s.owner(ctx, uid)
	if err != nil {
		return err
	}

	c, err := s.deps.Store.Comments().GetByID(ctx, commentID)
	if err != nil {
		return mapNotFound(err, ErrCommentNotFound)
	}
	if c.UserID != u.ID {
		return ErrNotOwner
	}

	return s.deps.Store.Comments().Delete(ctx, commentID)
}
