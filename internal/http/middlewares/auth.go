package middlewares

import (
	"net/http"
	"strings"

	"github.com/dropDatabas3/fauxbook/internal/http/errors"
	jwtx "github.com/dropDatabas3/fauxbook/internal/jwt"
)

// RequireAuth valida Authorization: Bearer <access token> y guarda el
// payload en el contexto. Si el token es inválido o no está presente,
// responde 401.
func RequireAuth(issuer *jwtx.Issuer) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ah := strings.TrimSpace(r.Header.Get("Authorization"))
			if ah == "" || !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
				w.Header().Set("WWW-Authenticate", `Bearer realm="api", error="invalid_token", error_description="missing bearer token"`)
				errors.WriteError(w, errors.ErrUnauthorized.WithDetail("missing bearer token"))
				return
			}
			raw := strings.TrimSpace(ah[len("Bearer "):])

			payload, err := issuer.Verify(raw, jwtx.FlavorAccess)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer realm="api", error="invalid_token", error_description="`+err.Error()+`"`)
				errors.WriteError(w, errors.ErrUnauthorized.WithDetail(err.Error()))
				return
			}

			ctx := WithSession(r.Context(), payload)
			ctx = WithUserID(ctx, payload.UID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
