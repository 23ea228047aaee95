// Package auth implementa el ciclo de vida de credenciales: registro,
// confirmación de email, login, refresh y logout.
//
// Los services retornan errores sentinel (ver errors.go); los
// controllers los mapean a status codes con errors.Is. Acá no se toca
// nada de HTTP.
package auth

import (
	"errors"

	"github.com/dropDatabas3/fauxbook/internal/cache"
	"github.com/dropDatabas3/fauxbook/internal/email"
	jwtx "github.com/dropDatabas3/fauxbook/internal/jwt"
	"github.com/dropDatabas3/fauxbook/internal/security/password"
	"github.com/dropDatabas3/fauxbook/internal/store/core"
)

// Errores del ciclo de vida de credenciales. Taxonomía cerrada: los
// controllers dependen de estos valores, no de los mensajes.
var (
	ErrDuplicateEmail    = errors.New("auth: email already registered")
	ErrNoSuchUser        = errors.New("auth: no such user")
	ErrAccountSuspended  = errors.New("auth: account suspended")
	ErrEmailNotConfirmed = errors.New("auth: email not confirmed")
	ErrIncorrectPassword = errors.New("auth: incorrect password")
	ErrCodeExpired       = errors.New("auth: confirmation code expired")
	ErrCodeMismatch      = errors.New("auth: confirmation code mismatch")
	ErrNoActiveSession   = errors.New("auth: no active session")
	ErrTokenMismatch     = errors.New("auth: refresh token mismatch")
)

// Deps contiene las dependencias del servicio de auth.
type Deps struct {
	Store  core.Store
	Cache  cache.Client
	Issuer *jwtx.Issuer
	Mailer *email.Mailer

	// Domain es la base para los links que viajan en los mails
	// (ej: "http://localhost:8080").
	Domain string

	Hash   password.Params
	Policy password.Policy
}

// Service implementa las operaciones de auth sobre Deps.
type Service struct {
	deps Deps
}

// NewService crea el servicio aplicando defaults donde falten.
func NewService(deps Deps) *Service {
	if deps.Hash == (password.Params{}) {
		deps.Hash = password.Default
	}
	if deps.Policy.MinLength == 0 {
		deps.Policy = password.DefaultPolicy
	}
	return &Service{deps: deps}
}
