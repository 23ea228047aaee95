package account

import (
	"context"
	"errors"

	authsvc "github.com/dropDatabas3/fauxbook/internal/http/services/auth"
	"github.com/dropDatabas3/fauxbook/internal/observability/logger"
	"github.com/dropDatabas3/fauxbook/internal/security/password"
	"github.com/dropDatabas3/fauxbook/internal/store/core"
)

// ChangePassword verifica el password actual y lo reemplaza por el
// nuevo. El salt del usuario no cambia: se fijó en el registro y se
// reusa en cada rehash.
func (s *Service) ChangePassword(ctx context.Context, uid, oldPassword, newPassword string) error {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("account.password"),
		logger.Op("ChangePassword"),
		logger.UserID(uid),
	)

	if err := s.deps.Policy.Validate(newPassword); err != nil {
		return err
	}

	u, err := s.deps.Store.Users().GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return authsvc.ErrNoSuchUser
		}
		return err
	}

	if !password.Verify(u.PasswordHash, u.Salt, oldPassword) {
		return authsvc.ErrIncorrectPassword
	}

	hash, err := password.Hash(s.deps.Hash, u.Salt, newPassword)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	if err := s.deps.Store.Users().Update(ctx, u); err != nil {
		return err
	}

	log.Info("password changed")
	return nil
}
