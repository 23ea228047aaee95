package account

import (
	"context"
	"errors"

	"github.com/dropDatabas3/fauxbook/internal/cache"
	authsvc "github.com/dropDatabas3/fauxbook/internal/http/services/auth"
	"github.com/dropDatabas3/fauxbook/internal/observability/logger"
	"github.com/dropDatabas3/fauxbook/internal/security/password"
	"github.com/dropDatabas3/fauxbook/internal/store/core"
)

// DisableAccount suspende la cuenta del usuario previa verificación de
// su password. Además revoca la sesión activa: una cuenta suspendida
// no debe poder seguir refrescando tokens.
func (s *Service) DisableAccount(ctx context.Context, uid, pass string) error {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("account.disable"),
		logger.Op("DisableAccount"),
		logger.UserID(uid),
	)

	u, err := s.deps.Store.Users().GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return authsvc.ErrNoSuchUser
		}
		return err
	}

	if !password.Verify(u.PasswordHash, u.Salt, pass) {
		return authsvc.ErrIncorrectPassword
	}

	u.IsActive = false
	if err := s.deps.Store.Users().Update(ctx, u); err != nil {
		return err
	}

	_ = s.deps.Cache.Delete(ctx, cache.RefreshTokenKey(uid))

	log.Info("account disabled")
	return nil
}
