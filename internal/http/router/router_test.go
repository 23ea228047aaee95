package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/fauxbook/internal/cache"
	"github.com/dropDatabas3/fauxbook/internal/email"
	accountctrl "github.com/dropDatabas3/fauxbook/internal/http/controllers/account"
	authctrl "github.com/dropDatabas3/fauxbook/internal/http/controllers/auth"
	healthctrl "github.com/dropDatabas3/fauxbook/internal/http/controllers/health"
	postctrl "github.com/dropDatabas3/fauxbook/internal/http/controllers/post"
	"github.com/dropDatabas3/fauxbook/internal/http/router"
	accountsvc "github.com/dropDatabas3/fauxbook/internal/http/services/account"
	authsvc "github.com/dropDatabas3/fauxbook/internal/http/services/auth"
	postsvc "github.com/dropDatabas3/fauxbook/internal/http/services/post"
	jwtx "github.com/dropDatabas3/fauxbook/internal/jwt"
	"github.com/dropDatabas3/fauxbook/internal/store/memory"
)

type nullSender struct{}

func (nullSender) Send(to, subject, htmlBody, textBody string) error { return nil }

func newServer(t *testing.T) (http.Handler, cache.Client) {
	t.Helper()
	st := memory.New()
	cc := cache.NewMemory("")
	mailer := email.NewMailer(nullSender{}, "Faux Facebook")
	issuer := jwtx.NewIssuer("Faux Facebook", []byte("access-secret"), []byte("refresh-secret"))

	h := router.New(router.Deps{
		Issuer: issuer,
		Auth: authctrl.NewController(authsvc.NewService(authsvc.Deps{
			Store: st, Cache: cc, Issuer: issuer, Mailer: mailer,
			Domain: "http://localhost:8080",
		})),
		Account: accountctrl.NewController(accountsvc.NewService(accountsvc.Deps{
			Store: st, Cache: cc, Mailer: mailer,
			Domain: "http://localhost:8080",
		})),
		Post: postctrl.NewController(postsvc.NewService(postsvc.Deps{
			Store: st, Domain: "http://localhost:8080", UploadsDir: t.TempDir(),
		})),
		Health:     healthctrl.NewController(st, cc),
		UploadsDir: "",
	})
	return h, cc
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_AuthFlow(t *testing.T) {
	h, cc := newServer(t)

	signup := map[string]string{
		"firstName": "Ada", "lastName": "Lovelace",
		"email": "ada@example.com", "password": "hunter22",
	}

	// Alta
	rec := doJSON(t, h, http.MethodPost, "/signup", "", signup)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	// Alta duplicada
	rec = doJSON(t, h, http.MethodPost, "/signup", "", signup)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	login := map[string]string{"email": "ada@example.com", "password": "hunter22"}

	// Login sin confirmar: 401 como cualquier otra falla de login
	rec = doJSON(t, h, http.MethodPost, "/login", "", login)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Confirmación vía el link del mail
	code, err := cc.Get(context.Background(), cache.ConfirmationKey("ada@example.com"))
	require.NoError(t, err)
	rec = doJSON(t, h, http.MethodGet,
		"/confirmemail?email="+url.QueryEscape("ada@example.com")+"&c="+code, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Login ok
	rec = doJSON(t, h, http.MethodPost, "/login", "", login)
	require.Equal(t, http.StatusOK, rec.Code)

	var tokens struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
		User         struct {
			UID string `json:"uid"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tokens))
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)

	// Feed sin token: 401
	rec = doJSON(t, h, http.MethodGet, "/posts", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Feed con token: 200
	rec = doJSON(t, h, http.MethodGet, "/posts", tokens.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Publicar y leer
	rec = doJSON(t, h, http.MethodPost, "/posts", tokens.AccessToken, map[string]string{"post": "hola"})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Refresh con token basura: 403
	rec = doJSON(t, h, http.MethodPost, "/auth/token", "", map[string]string{
		"uid": tokens.User.UID, "refreshToken": "basura",
	})
	require.Equal(t, http.StatusForbidden, rec.Code)

	// Refresh válido: 200 y access nuevo
	rec = doJSON(t, h, http.MethodPost, "/auth/token", "", map[string]string{
		"uid": tokens.User.UID, "refreshToken": tokens.RefreshToken,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Logout y la sesión muere: refresh pasa a 403
	rec = doJSON(t, h, http.MethodPost, "/logout", tokens.AccessToken, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(t, h, http.MethodPost, "/auth/token", "", map[string]string{
		"uid": tokens.User.UID, "refreshToken": tokens.RefreshToken,
	})
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_Misc(t *testing.T) {
	h, _ := newServer(t)

	rec := doJSON(t, h, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Toda respuesta lleva request id y el envelope de error es JSON
	rec = doJSON(t, h, http.MethodGet, "/no-existe", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	require.Contains(t, rec.Body.String(), `"code"`)

	// JSON roto: 400
	req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader([]byte("{nope")))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}
