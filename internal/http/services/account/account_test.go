package account_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/fauxbook/internal/cache"
	"github.com/dropDatabas3/fauxbook/internal/email"
	dto "github.com/dropDatabas3/fauxbook/internal/http/dto/auth"
	accsvc "github.com/dropDatabas3/fauxbook/internal/http/services/account"
	authsvc "github.com/dropDatabas3/fauxbook/internal/http/services/auth"
	jwtx "github.com/dropDatabas3/fauxbook/internal/jwt"
	"github.com/dropDatabas3/fauxbook/internal/store/memory"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []string
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

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

// downCache simula un cache caído: con down seteado, Get/Set/Delete
// responden ese error en lugar de delegar.
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
	auth    *authsvc.Service
	account *accsvc.Service
	store   *memory.Store
	cache   cache.Client
	sender  *fakeSender
}

func newEnv(t *testing.T) *env {
	return newEnvWithCache(t, cache.NewMemory(""))
}

func newEnvWithCache(t *testing.T, cc cache.Client) *env {
	t.Helper()
	st := memory.New()
	sender := &fakeSender{}
	mailer := email.NewMailer(sender, "Faux Facebook")
	issuer := jwtx.NewIssuer("Faux Facebook", []byte("access-secret"), []byte("refresh-secret"))

	a := authsvc.NewService(authsvc.Deps{
		Store: st, Cache: cc, Issuer: issuer, Mailer: mailer,
		Domain: "http://localhost:8080",
	})
	acc := accsvc.NewService(accsvc.Deps{
		Store: st, Cache: cc, Mailer: mailer,
		Domain: "http://localhost:8080",
	})
	return &env{auth: a, account: acc, store: st, cache: cc, sender: sender}
}

// seedUser registra y confirma una cuenta, devolviendo su uid.
func (e *env) seedUser(t *testing.T, emailAddr string) string {
	t.Helper()
	ctx := context.Background()

	u, err := e.auth.Register(ctx, dto.RegisterRequest{
		FirstName: "Ada", LastName: "Lovelace",
		Email: emailAddr, Password: "hunter22",
	})
	require.NoError(t, err)

	code, err := e.cache.Get(ctx, cache.ConfirmationKey(emailAddr))
	require.NoError(t, err)
	require.NoError(t, e.auth.ConfirmEmail(ctx, emailAddr, code))
	return u.UID
}

func (e *env) login(t *testing.T, emailAddr, pass string) error {
	t.Helper()
	_, err := e.auth.Login(context.Background(), dto.LoginRequest{Email: emailAddr, Password: pass})
	return err
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	uid := e.seedUser(t, "ada@example.com")

	// Password actual incorrecto
	err := e.account.ChangePassword(ctx, uid, "incorrecto", "nuevo-pass")
	require.ErrorIs(t, err, authsvc.ErrIncorrectPassword)

	// Usuario inexistente
	err = e.account.ChangePassword(ctx, "uid-fantasma", "hunter22", "nuevo-pass")
	require.ErrorIs(t, err, authsvc.ErrNoSuchUser)

	// El salt no cambia con el rehash
	before, err := e.store.Users().GetByUID(ctx, uid)
	require.NoError(t, err)

	require.NoError(t, e.account.ChangePassword(ctx, uid, "hunter22", "nuevo-pass"))

	after, err := e.store.Users().GetByUID(ctx, uid)
	require.NoError(t, err)
	require.Equal(t, before.Salt, after.Salt)
	require.NotEqual(t, before.PasswordHash, after.PasswordHash)

	// El password viejo dejó de servir
	require.ErrorIs(t, e.login(t, "ada@example.com", "hunter22"), authsvc.ErrIncorrectPassword)
	require.NoError(t, e.login(t, "ada@example.com", "nuevo-pass"))
}

func TestForgotAndResetPassword(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.seedUser(t, "ada@example.com")

	// Email desconocido
	err := e.account.ForgotPassword(ctx, "nadie@example.com")
	require.ErrorIs(t, err, authsvc.ErrNoSuchUser)

	require.NoError(t, e.account.ForgotPassword(ctx, "ada@example.com"))
	require.Equal(t, 1, e.sender.count()) // el mail de reset se espera

	code, err := e.cache.Get(ctx, cache.ResetPassKey("ada@example.com"))
	require.NoError(t, err)
	require.Len(t, code, 60) // 30 bytes hex

	// Link con código equivocado
	require.ErrorIs(t, e.account.CheckResetLink(ctx, "ada@example.com", "basura"), accsvc.ErrCodeInvalid)
	// Link sin reset pendiente
	require.ErrorIs(t, e.account.CheckResetLink(ctx, "nadie@example.com", code), accsvc.ErrCodeInvalid)
	// Link correcto
	require.NoError(t, e.account.CheckResetLink(ctx, "ada@example.com", code))

	// Reset con código inválido no toca nada
	err = e.account.ResetPassword(ctx, "ada@example.com", "basura", "nuevo-pass")
	require.ErrorIs(t, err, accsvc.ErrCodeInvalid)
	require.NoError(t, e.login(t, "ada@example.com", "hunter22"))

	// Reset correcto: password nuevo, código consumido
	require.NoError(t, e.account.ResetPassword(ctx, "ada@example.com", code, "nuevo-pass"))
	require.NoError(t, e.login(t, "ada@example.com", "nuevo-pass"))
	require.ErrorIs(t, e.account.CheckResetLink(ctx, "ada@example.com", code), accsvc.ErrCodeInvalid)
}

func TestForgotPassword_DeliveryFailure(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.seedUser(t, "ada@example.com")
	e.sender.fail = true

	err := e.account.ForgotPassword(ctx, "ada@example.com")
	require.ErrorIs(t, err, accsvc.ErrEmailDeliveryFailed)

	// El código queda en el cache igual; lo limpia el TTL.
	_, err = e.cache.Get(ctx, cache.ResetPassKey("ada@example.com"))
	require.NoError(t, err)
}

func TestDisableAccount(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	uid := e.seedUser(t, "ada@example.com")
	require.NoError(t, e.login(t, "ada@example.com", "hunter22"))

	// Password incorrecto: la cuenta sigue activa
	err := e.account.DisableAccount(ctx, uid, "incorrecto")
	require.ErrorIs(t, err, authsvc.ErrIncorrectPassword)
	require.NoError(t, e.login(t, "ada@example.com", "hunter22"))

	require.NoError(t, e.account.DisableAccount(ctx, uid, "hunter22"))

	// Suspendida: el login la rechaza y la sesión quedó revocada
	require.ErrorIs(t, e.login(t, "ada@example.com", "hunter22"), authsvc.ErrAccountSuspended)
	_, err = e.cache.Get(ctx, cache.RefreshTokenKey(uid))
	require.True(t, cache.IsNotFound(err))
}

func TestUpdateInfo(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	uid := e.seedUser(t, "ada@example.com")

	_, err := e.account.UpdateInfo(ctx, "uid-fantasma", "Grace", "Hopper")
	require.ErrorIs(t, err, authsvc.ErrNoSuchUser)

	u, err := e.account.UpdateInfo(ctx, uid, "Grace", "Hopper")
	require.NoError(t, err)
	require.Equal(t, "Grace", u.FirstName)
	require.Equal(t, "Hopper", u.LastName)

	persisted, err := e.store.Users().GetByUID(ctx, uid)
	require.NoError(t, err)
	require.Equal(t, "Grace", persisted.FirstName)
}

func TestCheckResetLink_CacheDownPropagates(t *testing.T) {
	ctx := context.Background()
	errDown := errors.New("cache: connection refused")
	dc := &downCache{Client: cache.NewMemory("")}
	e := newEnvWithCache(t, dc)

	e.seedUser(t, "ada@example.com")
	require.NoError(t, e.account.ForgotPassword(ctx, "ada@example.com"))

	// Cache caído: error de conectividad, no un código inválido. El
	// caller decide (503/500), nunca se le miente al usuario con un
	// "link vencido".
	dc.down = errDown
	err := e.account.CheckResetLink(ctx, "ada@example.com", "deadbeef")
	require.ErrorIs(t, err, errDown)
	require.NotErrorIs(t, err, accsvc.ErrCodeInvalid)

	// Con el cache de vuelta, el código real sigue siendo usable.
	dc.down = nil
	code, err := e.cache.Get(ctx, cache.ResetPassKey("ada@example.com"))
	require.NoError(t, err)
	require.NoError(t, e.account.CheckResetLink(ctx, "ada@example.com", code))
}
