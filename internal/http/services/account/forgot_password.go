package account

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/url"
	"time"

	"github.com/dropDatabas3/fauxbook/internal/cache"
	"github.com/dropDatabas3/fauxbook/internal/email"
	authsvc "github.com/dropDatabas3/fauxbook/internal/http/services/auth"
	"github.com/dropDatabas3/fauxbook/internal/observability/logger"
	"github.com/dropDatabas3/fauxbook/internal/security/password"
	tokens "github.com/dropDatabas3/fauxbook/internal/security/token"
	"github.com/dropDatabas3/fauxbook/internal/store/core"
)

const (
	// ResetTTL es la ventana para usar el link de reset.
	ResetTTL = 2 * time.Hour

	resetCodeBytes = 30
)

// ForgotPassword genera un código de reset, lo guarda en el cache y
// envía el mail con el link.
//
// A diferencia del mail de confirmación, este envío SÍ se espera: si
// el SMTP falla, la operación falla y el cliente puede reintentar. Un
// Set posterior sobreescribe el código anterior, así que a lo sumo hay
// un código de reset vigente por email.
func (s *Service) ForgotPassword(ctx context.Context, emailAddr string) error {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("account.reset"),
		logger.Op("ForgotPassword"),
	)

	u, err := s.deps.Store.Users().GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return authsvc.ErrNoSuchUser
		}
		return err
	}

	code, err := tokens.GenerateCode(resetCodeBytes)
	if err != nil {
		return err
	}
	if err := s.deps.Cache.Set(ctx, cache.ResetPassKey(emailAddr), code, ResetTTL); err != nil {
		return err
	}

	link := s.deps.Domain + "/resetlink?code=" + url.QueryEscape(code) + "&email=" + url.QueryEscape(emailAddr)

	if err := s.deps.Mailer.Send(ctx, email.KindResetPass, emailAddr, link); err != nil {
		// El código queda en el cache; lo limpia el TTL de 2h.
		log.Warn("reset email delivery failed", logger.Err(err))
		return errors.Join(ErrEmailDeliveryFailed, err)
	}

	log.Info("reset email sent", logger.UserID(u.UID))
	return nil
}

// CheckResetLink valida que el par (email, code) corresponda a un reset
// pendiente. Código ausente, vencido o distinto colapsan en
// ErrCodeInvalid: el link no revela cuál fue el caso.
func (s *Service) CheckResetLink(ctx context.Context, emailAddr, code string) error {
	stored, err := s.deps.Cache.Get(ctx, cache.ResetPassKey(emailAddr))
	if err != nil {
		if cache.IsNotFound(err) {
			return ErrCodeInvalid
		}
		return err
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return ErrCodeInvalid
	}
	return nil
}

// ResetPassword consume un código de reset válido y fija el password
// nuevo, rehasheando con el salt original del usuario.
func (s *Service) ResetPassword(ctx context.Context, emailAddr, code, newPassword string) error {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("account.reset"),
		logger.Op("ResetPassword"),
	)

	if err := s.CheckResetLink(ctx, emailAddr, code); err != nil {
		return err
	}
	if err := s.deps.Policy.Validate(newPassword); err != nil {
		return err
	}

	u, err := s.deps.Store.Users().GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return authsvc.ErrNoSuchUser
		}
		return err
	}

	hash, err := password.Hash(s.deps.Hash, u.Salt, newPassword)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	if err := s.deps.Store.Users().Update(ctx, u); err != nil {
		return err
	}

	// Código de un solo uso. Best-effort: el TTL limpia igual.
	_ = s.deps.Cache.Delete(ctx, cache.ResetPassKey(emailAddr))

	log.Info("password reset", logger.UserID(u.UID))
	return nil
}
