package account

import (
	"context"
	"errors"

	authsvc "github.com/dropDatabas3/fauxbook/internal/http/services/auth"
	"github.com/dropDatabas3/fauxbook/internal/observability/logger"
	"github.com/dropDatabas3/fauxbook/internal/store/core"
)

// UpdateInfo actualiza nombre y apellido del usuario y devuelve la
// versión persistida.
func (s *Service) UpdateInfo(ctx context.Context, uid, firstName, lastName string) (*core.User, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("account.profile"),
		logger.Op("UpdateInfo"),
		logger.UserID(uid),
	)

	u, err := s.deps.Store.Users().GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, authsvc.ErrNoSuchUser
		}
		return nil, err
	}

	u.FirstName = firstName
	u.LastName = lastName
	if err := s.deps.Store.Users().Update(ctx, u); err != nil {
		return nil, err
	}

	log.Info("profile updated")
	return u, nil
}
