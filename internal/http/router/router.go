// Package router arma el árbol de rutas del servicio.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	accountctrl "github.com/dropDatabas3/fauxbook/internal/http/controllers/account"
	authctrl "github.com/dropDatabas3/fauxbook/internal/http/controllers/auth"
	healthctrl "github.com/dropDatabas3/fauxbook/internal/http/controllers/health"
	postctrl "github.com/dropDatabas3/fauxbook/internal/http/controllers/post"
	httperrors "github.com/dropDatabas3/fauxbook/internal/http/errors"
	mw "github.com/dropDatabas3/fauxbook/internal/http/middlewares"
	jwtx "github.com/dropDatabas3/fauxbook/internal/jwt"
)

// Deps contiene todo lo necesario para armar el router.
type Deps struct {
	Issuer  *jwtx.Issuer
	Auth    *authctrl.Controller
	Account *accountctrl.Controller
	Post    *postctrl.Controller
	Health  *healthctrl.Controller

	// Metrics es el handler de /metrics; nil lo deshabilita.
	Metrics http.Handler

	// UploadsDir se sirve estático bajo /uploads/.
	UploadsDir string

	// CORSOrigins son los origins permitidos; vacío deshabilita CORS.
	CORSOrigins []string
}

// New arma el router con la cadena global de middlewares:
// request-id -> logging -> metrics -> recover -> security headers.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()

	base := []mw.Middleware{
		mw.WithRequestID(),
		mw.WithLogging(),
		mw.WithMetrics(),
		mw.WithRecover(),
		mw.WithSecurityHeaders(),
	}
	if len(deps.CORSOrigins) > 0 {
		base = append([]mw.Middleware{mw.WithCORS(deps.CORSOrigins)}, base...)
	}
	for _, m := range base {
		r.Use(m)
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.WriteError(w, httperrors.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed)
	})

	// ─── Observabilidad ───
	r.Get("/healthz", deps.Health.Live)
	r.Get("/readyz", deps.Health.Ready)
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}

	// ─── Auth (público) ───
	// Los endpoints que devuelven tokens no deben cachearse nunca.
	r.Group(func(r chi.Router) {
		r.Use(mw.WithNoStore())
		r.Post("/signup", deps.Auth.Register)
		r.Get("/confirmemail", deps.Auth.ConfirmEmail)
		r.Post("/login", deps.Auth.Login)
		r.Post("/auth/token", deps.Auth.Refresh)
		r.Post("/forgotpassword", deps.Account.ForgotPassword)
		r.Get("/resetlink", deps.Account.CheckResetLink)
		r.Post("/resetpassword", deps.Account.ResetPassword)
	})

	// ─── Rutas autenticadas ───
	r.Group(func(r chi.Router) {
		r.Use(mw.RequireAuth(deps.Issuer))

		r.With(mw.WithNoStore()).Post("/logout", deps.Auth.Logout)
		r.With(mw.WithNoStore()).Post("/changepassword", deps.Account.ChangePassword)
		r.Put("/updateinfo", deps.Account.UpdateInfo)
		r.Post("/disableaccount", deps.Account.DisableAccount)

		r.Post("/posts", deps.Post.Publish)
		r.Get("/posts", deps.Post.FetchAll)
		r.Get("/posts/{id}", deps.Post.Fetch)
		r.Get("/myposts", deps.Post.FetchOwn)
		r.Put("/posts/{id}", deps.Post.Update)
		r.Delete("/posts/{id}", deps.Post.Delete)

		r.Post("/posts/{id}/comments", deps.Post.AddComment)
		r.Delete("/comments/{id}", deps.Post.DeleteComment)

		r.Post("/posts/{id}/like", deps.Post.Like)
		r.Delete("/posts/{id}/like", deps.Post.Unlike)
	})

	// ─── Estáticos ───
	if deps.UploadsDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(deps.UploadsDir)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	return r
}
