package auth_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/fauxbook/internal/cache"
	"github.com/dropDatabas3/fauxbook/internal/email"
	dto "github.com/dropDatabas3/fauxbook/internal/http/dto/auth"
	authsvc "github.com/dropDatabas3/fauxbook/internal/http/services/auth"
	jwtx "github.com/dropDatabas3/fauxbook/internal/jwt"
	"github.com/dropDatabas3/fauxbook/internal/security/password"
	"github.com/dropDatabas3/fauxbook/internal/store/memory"
)

// fakeSender captura los mails en lugar de hablar SMTP.
type fakeSender struct {
	mu   sync.Mutex
	sent []string // destinatarios
	fail bool
}

func (f *fakeSender) Send(to, subject, htmlBody, textBody string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return context.DeadlineExceeded
	}
	f.sent = append(f.sent, to)
	return nil
}

// downCache envuelve al client real y, con down seteado, responde ese
// error en Get/Set/Delete: un cache caído, no una key ausente.
type downCache struct {
	cache.Client
	down error
}

func (d *downCache) Get(ctx context.Context, key string) (string, error) {
	if d.down != nil {
		return "", d.down
	}
	return d.Client.Get(ctx, key)
}

func (d *downCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if d.down != nil {
		return d.down
	}
	return d.Client.Set(ctx, key, value, ttl)
}

func (d *downCache) Delete(ctx context.Context, key string) error {
	if d.down != nil {
		return d.down
	}
	return d.Client.Delete(ctx, key)
}

type env struct {
	svc    *authsvc.Service
	store  *memory.Store
	cache  cache.Client
	sender *fakeSender
	issuer *jwtx.Issuer
}

func newEnv(t *testing.T) *env {
	return newEnvWithCache(t, cache.NewMemory(""))
}

func newEnvWithCache(t *testing.T, cc cache.Client) *env {
	t.Helper()
	st := memory.New()
	sender := &fakeSender{}
	issuer := jwtx.NewIssuer("Faux Facebook", []byte("access-secret"), []byte("refresh-secret"))

	svc := authsvc.NewService(authsvc.Deps{
		Store:  st,
		Cache:  cc,
		Issuer: issuer,
		Mailer: email.NewMailer(sender, "Faux Facebook"),
		Domain: "http://localhost:8080",
	})
	return &env{svc: svc, store: st, cache: cc, sender: sender, issuer: issuer}
}

func registerReq(emailAddr string) dto.RegisterRequest {
	return dto.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     emailAddr,
		Password:  "hunter22",
	}
}

// signupAndConfirm deja una cuenta lista para loguearse.
func (e *env) signupAndConfirm(t *testing.T, emailAddr string) {
	t.Helper()
	ctx := context.Background()

	_, err := e.svc.Register(ctx, registerReq(emailAddr))
	require.NoError(t, err)

	code, err := e.cache.Get(ctx, cache.ConfirmationKey(emailAddr))
	require.NoError(t, err)
	require.NoError(t, e.svc.ConfirmEmail(ctx, emailAddr, code))
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	u, err := e.svc.Register(ctx, registerReq("ada@example.com"))
	require.NoError(t, err)
	require.NotEmpty(t, u.UID)
	require.False(t, u.IsUserConfirmed)
	require.True(t, u.IsActive)
	require.Len(t, u.Salt, 32) // 16 bytes hex
	require.True(t, strings.HasPrefix(u.PasswordHash, "$argon2id$"))

	// El código de confirmación queda en el cache aunque el mail salga
	// en background.
	code, err := e.cache.Get(ctx, cache.ConfirmationKey("ada@example.com"))
	require.NoError(t, err)
	require.Len(t, code, 32) // 16 bytes hex

	// Email duplicado
	_, err = e.svc.Register(ctx, registerReq("ada@example.com"))
	require.ErrorIs(t, err, authsvc.ErrDuplicateEmail)

	// Password débil
	weak := registerReq("otra@example.com")
	weak.Password = "abc"
	_, err = e.svc.Register(ctx, weak)
	require.ErrorIs(t, err, password.ErrTooWeak)
}

func TestConfirmEmail(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	_, err := e.svc.Register(ctx, registerReq("ada@example.com"))
	require.NoError(t, err)

	// Código incorrecto
	err = e.svc.ConfirmEmail(ctx, "ada@example.com", "deadbeef")
	require.ErrorIs(t, err, authsvc.ErrCodeMismatch)

	// Sin código en el cache (nunca pedido o vencido)
	err = e.svc.ConfirmEmail(ctx, "nadie@example.com", "deadbeef")
	require.ErrorIs(t, err, authsvc.ErrCodeExpired)

	// Éxito
	code, err := e.cache.Get(ctx, cache.ConfirmationKey("ada@example.com"))
	require.NoError(t, err)
	require.NoError(t, e.svc.ConfirmEmail(ctx, "ada@example.com", code))

	u, err := e.store.Users().GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.True(t, u.IsUserConfirmed)
}

func TestLogin_CheckOrder(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	// Usuario inexistente
	_, err := e.svc.Login(ctx, dto.LoginRequest{Email: "nadie@example.com", Password: "x"})
	require.ErrorIs(t, err, authsvc.ErrNoSuchUser)

	// Cuenta suspendida: se informa antes que el password incorrecto
	e.signupAndConfirm(t, "baja@example.com")
	u, err := e.store.Users().GetByEmail(ctx, "baja@example.com")
	require.NoError(t, err)
	u.IsActive = false
	require.NoError(t, e.store.Users().Update(ctx, u))

	_, err = e.svc.Login(ctx, dto.LoginRequest{Email: "baja@example.com", Password: "incorrecto"})
	require.ErrorIs(t, err, authsvc.ErrAccountSuspended)

	// Email sin confirmar: también antes que el password
	_, err = e.svc.Register(ctx, registerReq("nueva@example.com"))
	require.NoError(t, err)
	_, err = e.svc.Login(ctx, dto.LoginRequest{Email: "nueva@example.com", Password: "incorrecto"})
	require.ErrorIs(t, err, authsvc.ErrEmailNotConfirmed)

	// Password incorrecto recién al final
	e.signupAndConfirm(t, "ada@example.com")
	_, err = e.svc.Login(ctx, dto.LoginRequest{Email: "ada@example.com", Password: "incorrecto"})
	require.ErrorIs(t, err, authsvc.ErrIncorrectPassword)
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.signupAndConfirm(t, "ada@example.com")

	res, err := e.svc.Login(ctx, dto.LoginRequest{Email: "ada@example.com", Password: "hunter22"})
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)
	require.NotEmpty(t, res.RefreshToken)
	require.NotNil(t, res.User.LastLogin)

	// Ambos tokens verifican con su sabor
	p, err := e.issuer.Verify(res.AccessToken, jwtx.FlavorAccess)
	require.NoError(t, err)
	require.Equal(t, res.User.UID, p.UID)
	_, err = e.issuer.Verify(res.RefreshToken, jwtx.FlavorRefresh)
	require.NoError(t, err)

	// La sesión queda registrada bajo refreshToken:<uid>
	stored, err := e.cache.Get(ctx, cache.RefreshTokenKey(res.User.UID))
	require.NoError(t, err)
	require.Equal(t, res.RefreshToken, stored)
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.signupAndConfirm(t, "ada@example.com")

	res, err := e.svc.Login(ctx, dto.LoginRequest{Email: "ada@example.com", Password: "hunter22"})
	require.NoError(t, err)
	uid := res.User.UID

	// Sin sesión: otro uid
	_, err = e.svc.Refresh(ctx, "uid-fantasma", res.RefreshToken)
	require.ErrorIs(t, err, authsvc.ErrNoActiveSession)

	// Token distinto al almacenado
	_, err = e.svc.Refresh(ctx, uid, "token-falso")
	require.ErrorIs(t, err, authsvc.ErrTokenMismatch)

	// Éxito: emite un access nuevo, sin rotar el refresh
	access, err := e.svc.Refresh(ctx, uid, res.RefreshToken)
	require.NoError(t, err)
	_, err = e.issuer.Verify(access, jwtx.FlavorAccess)
	require.NoError(t, err)

	stored, err := e.cache.Get(ctx, cache.RefreshTokenKey(uid))
	require.NoError(t, err)
	require.Equal(t, res.RefreshToken, stored)
}

func TestLogin_SecondSessionOverwritesFirst(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.signupAndConfirm(t, "ada@example.com")

	first, err := e.svc.Login(ctx, dto.LoginRequest{Email: "ada@example.com", Password: "hunter22"})
	require.NoError(t, err)
	second, err := e.svc.Login(ctx, dto.LoginRequest{Email: "ada@example.com", Password: "hunter22"})
	require.NoError(t, err)
	require.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// El refresh de la primera sesión quedó inválido: una sola sesión
	// activa por usuario.
	_, err = e.svc.Refresh(ctx, first.User.UID, first.RefreshToken)
	require.ErrorIs(t, err, authsvc.ErrTokenMismatch)

	// El segundo sigue vivo
	_, err = e.svc.Refresh(ctx, second.User.UID, second.RefreshToken)
	require.NoError(t, err)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.signupAndConfirm(t, "ada@example.com")

	res, err := e.svc.Login(ctx, dto.LoginRequest{Email: "ada@example.com", Password: "hunter22"})
	require.NoError(t, err)

	require.NoError(t, e.svc.Logout(ctx, res.User.UID))

	_, err = e.svc.Refresh(ctx, res.User.UID, res.RefreshToken)
	require.ErrorIs(t, err, authsvc.ErrNoActiveSession)

	// Idempotente
	require.NoError(t, e.svc.Logout(ctx, res.User.UID))
}

func TestRegister_MailFailureDoesNotFailSignup(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.sender.fail = true

	// El alta no depende del SMTP: el mail sale en background y su
	// fallo solo se loguea.
	u, err := e.svc.Register(ctx, registerReq("ada@example.com"))
	require.NoError(t, err)

	// El código quedó en el cache antes de intentar el envío, así que
	// la cuenta sigue siendo confirmable.
	code, err := e.cache.Get(ctx, cache.ConfirmationKey("ada@example.com"))
	require.NoError(t, err)
	require.NoError(t, e.svc.ConfirmEmail(ctx, "ada@example.com", code))

	got, err := e.store.Users().GetByUID(ctx, u.UID)
	require.NoError(t, err)
	require.True(t, got.IsUserConfirmed)
}

func TestCacheDown_ErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	errDown := errors.New("cache: connection refused")
	dc := &downCache{Client: cache.NewMemory("")}
	e := newEnvWithCache(t, dc)

	// Estado previo con el cache sano: una cuenta logueada y otra
	// pendiente de confirmación.
	e.signupAndConfirm(t, "ada@example.com")
	res, err := e.svc.Login(ctx, dto.LoginRequest{Email: "ada@example.com", Password: "hunter22"})
	require.NoError(t, err)
	_, err = e.svc.Register(ctx, registerReq("otra@example.com"))
	require.NoError(t, err)

	dc.down = errDown

	// Un cache caído no es una sesión ausente ni un token ajeno: el
	// error de conectividad llega tal cual al caller.
	_, err = e.svc.Refresh(ctx, res.User.UID, res.RefreshToken)
	require.ErrorIs(t, err, errDown)
	require.NotErrorIs(t, err, authsvc.ErrNoActiveSession)
	require.NotErrorIs(t, err, authsvc.ErrTokenMismatch)

	// Tampoco es un código vencido.
	err = e.svc.ConfirmEmail(ctx, "otra@example.com", "deadbeef")
	require.ErrorIs(t, err, errDown)
	require.NotErrorIs(t, err, authsvc.ErrCodeExpired)

	// El delete de logout es best-effort: no falla con el cache caído.
	require.NoError(t, e.svc.Logout(ctx, res.User.UID))

	// Como el delete no llegó, la sesión sigue viva al volver el cache.
	dc.down = nil
	_, err = e.svc.Refresh(ctx, res.User.UID, res.RefreshToken)
	require.NoError(t, err)
}
