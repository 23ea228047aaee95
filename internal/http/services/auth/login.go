package auth

import (
	"context"
	"errors"
	"time"

	"github.com/dropDatabas3/fauxbook/internal/cache"
	dto "github.com/dropDatabas3/fauxbook/internal/http/dto/auth"
	jwtx "github.com/dropDatabas3/fauxbook/internal/jwt"
	"github.com/dropDatabas3/fauxbook/internal/observability/logger"
	"github.com/dropDatabas3/fauxbook/internal/security/password"
	"github.com/dropDatabas3/fauxbook/internal/store/core"
)

// Login autentica email+password y abre una sesión.
//
// El orden de chequeos es fijo: usuario inexistente, cuenta suspendida,
// email sin confirmar y recién al final el password. El estado de la
// cuenta se informa antes de verificar credenciales; los cuatro casos
// igual responden 401 en el borde HTTP.
//
// Guardar el refresh token bajo refreshToken:<uid> sobreescribe
// cualquier sesión previa: a lo sumo una sesión activa por usuario.
func (s *Service) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResult, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth.login"),
		logger.Op("Login"),
	)

	u, err := s.deps.Store.Users().GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, ErrNoSuchUser
		}
		return nil, err
	}

	log = log.With(logger.UserID(u.UID))

	if !u.IsActive {
		return nil, ErrAccountSuspended
	}
	if !u.IsUserConfirmed {
		return nil, ErrEmailNotConfirmed
	}
	if !password.Verify(u.PasswordHash, u.Salt, in.Password) {
		log.Debug("password verification failed")
		return nil, ErrIncorrectPassword
	}

	now := time.Now().UTC()
	u.LastLogin = &now
	if err := s.deps.Store.Users().Update(ctx, u); err != nil {
		return nil, err
	}

	payload := jwtx.Payload{
		UID:             u.UID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		IsUserConfirmed: u.IsUserConfirmed,
		LastLogin:       now.Format(time.RFC3339Nano),
	}

	access, err := s.deps.Issuer.Issue(payload, jwtx.FlavorAccess)
	if err != nil {
		return nil, err
	}
	refresh, err := s.deps.Issuer.Issue(payload, jwtx.FlavorRefresh)
	if err != nil {
		return nil, err
	}

	// Registrar la sesión. Si el cache no está disponible no se emite
	// sesión: el refresh dependería de un estado que no existe.
	if err := s.deps.Cache.Set(ctx, cache.RefreshTokenKey(u.UID), refresh, s.deps.Issuer.RefreshTTL); err != nil {
		return nil, err
	}

	log.Info("login ok")
	return &dto.LoginResult{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         u,
	}, nil
}
