// Package account implementa la gestión de cuenta de un usuario ya
// registrado: cambio y recupero de password, edición de perfil y baja.
package account

import (
	"errors"

	"github.com/dropDatabas3/fauxbook/internal/cache"
	"github.com/dropDatabas3/fauxbook/internal/email"
	"github.com/dropDatabas3/fauxbook/internal/security/password"
	"github.com/dropDatabas3/fauxbook/internal/store/core"
)

// Errores propios de los flujos de recupero. Los de credenciales
// (NoSuchUser, IncorrectPassword) se comparten con el package auth.
var (
	// ErrCodeInvalid cubre código ausente, vencido o distinto: el flujo
	// de reset no distingue entre esos casos hacia afuera.
	ErrCodeInvalid = errors.New("account: reset code invalid")

	// ErrEmailDeliveryFailed indica que el mail de reset no salió. El
	// código queda en el cache igual; lo limpia el TTL.
	ErrEmailDeliveryFailed = errors.New("account: email delivery failed")
)

// Deps contiene las dependencias del servicio de cuenta.
type Deps struct {
	Store  core.Store
	Cache  cache.Client
	Mailer *email.Mailer

	// Domain es la base para el link de reset que viaja en el mail.
	Domain string

	Hash   password.Params
	Policy password.Policy
}

type Service struct {
	deps Deps
}

func NewService(deps Deps) *Service {
	if deps.Hash == (password.Params{}) {
		deps.Hash = password.Default
	}
	if deps.Policy.MinLength == 0 {
		deps.Policy = password.DefaultPolicy
	}
	return &Service{deps: deps}
}
