package auth

import (
	"context"
	"crypto/subtle"

	"github.com/dropDatabas3/fauxbook/internal/cache"
	jwtx "github.com/dropDatabas3/fauxbook/internal/jwt"
	"github.com/dropDatabas3/fauxbook/internal/observability/logger"
)

// Refresh intercambia un refresh token válido por un access token
// nuevo. No rota el refresh token: la sesión sigue atada al emitido en
// el login hasta que expire o se cierre.
//
// Orden de chequeos: primero el estado de sesión en el cache (ausente =
// NoActiveSession, distinto = TokenMismatch) y recién después la
// verificación criptográfica. Un token revocado responde lo mismo
// tenga o no la firma vencida.
func (s *Service) Refresh(ctx context.Context, uid, refreshToken string) (string, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth.refresh"),
		logger.Op("Refresh"),
		logger.UserID(uid),
	)

	stored, err := s.deps.Cache.Get(ctx, cache.RefreshTokenKey(uid))
	if err != nil {
		if cache.IsNotFound(err) {
			return "", ErrNoActiveSession
		}
		// Error de conectividad: propagar, no tratar como ausencia.
		return "", err
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(refreshToken)) != 1 {
		log.Warn("refresh token mismatch")
		return "", ErrTokenMismatch
	}

	payload, err := s.deps.Issuer.Verify(refreshToken, jwtx.FlavorRefresh)
	if err != nil {
		return "", err
	}

	access, err := s.deps.Issuer.Issue(*payload, jwtx.FlavorAccess)
	if err != nil {
		return "", err
	}

	log.Debug("access token refreshed")
	return access, nil
}
