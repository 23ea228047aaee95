package auth

import (
	"context"

	"github.com/dropDatabas3/fauxbook/internal/cache"
	"github.com/dropDatabas3/fauxbook/internal/observability/logger"
)

// Logout revoca la sesión activa del usuario borrando su refresh token
// del cache. Idempotente: cerrar una sesión inexistente no es error, y
// el delete es best-effort: si el cache no responde, el TTL de 7 días
// limpia la entrada igual.
func (s *Service) Logout(ctx context.Context, uid string) error {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth.logout"),
		logger.Op("Logout"),
		logger.UserID(uid),
	)

	if err := s.deps.Cache.Delete(ctx, cache.RefreshTokenKey(uid)); err != nil {
		log.Warn("session revoke delete failed", logger.Err(err))
		return nil
	}

	log.Info("session revoked")
	return nil
}
