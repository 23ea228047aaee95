package auth

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/dropDatabas3/fauxbook/internal/cache"
	"github.com/dropDatabas3/fauxbook/internal/email"
	dto "github.com/dropDatabas3/fauxbook/internal/http/dto/auth"
	"github.com/dropDatabas3/fauxbook/internal/observability/logger"
	"github.com/dropDatabas3/fauxbook/internal/security/password"
	tokens "github.com/dropDatabas3/fauxbook/internal/security/token"
	"github.com/dropDatabas3/fauxbook/internal/store/core"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// ConfirmationTTL es la ventana para confirmar la cuenta por mail.
	ConfirmationTTL = 24 * time.Hour

	confirmationCodeBytes = 16
)

// Register da de alta un usuario nuevo, deja un código de confirmación
// en el cache y despacha el mail de confirmación en background: el
// registro NO se bloquea esperando al SMTP, y un fallo de entrega solo
// se loguea.
func (s *Service) Register(ctx context.Context, in dto.RegisterRequest) (*core.User, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth.register"),
		logger.Op("Register"),
	)

	if err := s.deps.Policy.Validate(in.Password); err != nil {
		return nil, err
	}

	// Paso 1: unicidad de email
	if _, err := s.deps.Store.Users().GetByEmail(ctx, in.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}

	// Paso 2: credenciales. El salt es por-usuario e inmutable: se
	// genera una única vez acá y se reusa en todos los rehashes.
	salt, err := password.GenerateSalt()
	if err != nil {
		return nil, err
	}
	hash, err := password.Hash(s.deps.Hash, salt, in.Password)
	if err != nil {
		return nil, err
	}

	u := &core.User{
		UID:             uuid.NewString(),
		Email:           in.Email,
		PasswordHash:    hash,
		Salt:            salt,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		IsActive:        true,
		IsUserConfirmed: false,
	}
	if err := s.deps.Store.Users().Create(ctx, u); err != nil {
		if errors.Is(err, core.ErrConflict) {
			// Carrera entre el check y el insert: el unique index manda.
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	log = log.With(logger.UserID(u.UID))

	// Paso 3: código de confirmación + mail en background
	if err := s.sendConfirmation(ctx, u.Email, log); err != nil {
		// El alta ya está hecha; un fallo acá no la revierte.
		log.Warn("confirmation code setup failed", logger.Err(err))
	}

	log.Info("user registered")
	return u, nil
}

// sendConfirmation deja el código en el cache y larga el mail en una
// goroutine propia, con contexto independiente del request.
func (s *Service) sendConfirmation(ctx context.Context, to string, log *zap.Logger) error {
	code, err := tokens.GenerateCode(confirmationCodeBytes)
	if err != nil {
		return err
	}
	if err := s.deps.Cache.Set(ctx, cache.ConfirmationKey(to), code, ConfirmationTTL); err != nil {
		return err
	}

	link := s.deps.Domain + "/confirmemail?email=" + url.QueryEscape(to) + "&c=" + url.QueryEscape(code)

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.deps.Mailer.Send(sendCtx, email.KindConfirmation, to, link); err != nil {
			log.Warn("confirmation email delivery failed", logger.Email(to), logger.Err(err))
		}
	}()
	return nil
}
