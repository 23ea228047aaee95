package auth

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/dropDatabas3/fauxbook/internal/cache"
	"github.com/dropDatabas3/fauxbook/internal/observability/logger"
	"github.com/dropDatabas3/fauxbook/internal/store/core"
)

// ConfirmEmail valida el código que llegó por mail y marca la cuenta
// como confirmada.
//
// Orden de chequeos: primero el código contra el cache (CodeExpired /
// CodeMismatch), después el usuario. Si la cuenta ya estaba confirmada
// y el código es válido, la operación es idempotente: no falla.
func (s *Service) ConfirmEmail(ctx context.Context, emailAddr, code string) error {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth.confirm"),
		logger.Op("ConfirmEmail"),
	)

	stored, err := s.deps.Cache.Get(ctx, cache.ConfirmationKey(emailAddr))
	if err != nil {
		if cache.IsNotFound(err) {
			// Nunca existió o venció el TTL de 24h: indistinguibles acá.
			return ErrCodeExpired
		}
		return err
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return ErrCodeMismatch
	}

	u, err := s.deps.Store.Users().GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return ErrNoSuchUser
		}
		return err
	}

	if !u.IsUserConfirmed {
		u.IsUserConfirmed = true
		if err := s.deps.Store.Users().Update(ctx, u); err != nil {
			return err
		}
	}

	// Best-effort: si falla, el TTL lo limpia igual.
	_ = s.deps.Cache.Delete(ctx, cache.ConfirmationKey(emailAddr))

	log.Info("email confirmed", logger.UserID(u.UID))
	return nil
}
