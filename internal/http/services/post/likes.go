package post

import (
	"context"
	"errors"

	"github.com/dropDatabas3/fauxbook/internal/store/core"
)

// Like registra un like del usuario sobre el post e incrementa el
// contador desnormalizado. Un like repetido es error, no un no-op.
func (s *Service) Like(ctx context.Context, uid string, postID int64) error {
	u, err := s.owner(ctx, uid)
	if err != nil {
		return err
	}

	if _, err := s.deps.Store.Posts().GetByID(ctx, postID, false); err != nil {
		return mapNotFound(err, ErrPostNotFound)
	}

	if _, err := s.deps.Store.Likes().GetByUserAndPost(ctx, u.ID, postID); err == nil {
		return ErrAlreadyLiked
	} else if !errors.Is(err, core.ErrNotFound) {
		return err
	}

	l := &core.Like{UserID: u.ID, PostID: postID}
	if err := s.deps.Store.Likes().Create(ctx, l); err != nil {
		if errors.Is(err, core.ErrConflict) {
			// Carrera entre el check y el insert.
			return ErrAlreadyLiked
		}
		return err
	}

	return s.deps.Store.Posts().IncrementLikes(ctx, postID, +1)
}

// Unlike retira un like previo y decrementa el contador.
func (s *Service) Unlike(ctx context.Context, uid string, postID int64) error {
	u, err := s.owner(ctx, uid)
	if err != nil {
		return err
	}

	l, err := s.deps.Store.Likes().GetByUserAndPost(ctx, u.ID, postID)
	if err != nil {
		return mapNotFound(err, ErrNotLiked)
	}

	if err := s.deps.Store.Likes().Delete(ctx, l.ID); err != nil {
		return err
	}

	return s.deps.Store.Posts().IncrementLikes(ctx, postID, -1)
}
