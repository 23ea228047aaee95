package middlewares

import (
	"context"

	jwtx "github.com/dropDatabas3/fauxbook/internal/jwt"
)

type ctxKey string

const (
	// ctxSessionKey guarda el payload del access token parseado
	ctxSessionKey ctxKey = "session"
	// ctxUserIDKey guarda el uid extraído del token
	ctxUserIDKey ctxKey = "user_id"
	// ctxRequestIDKey guarda el request ID
	ctxRequestIDKey ctxKey = "request_id"
)

// WithSession inyecta el payload del token en el contexto
func WithSession(ctx context.Context, p *jwtx.Payload) context.Context {
	return context.WithValue(ctx, ctxSessionKey, p)
}

// WithUserID inyecta el uid en el contexto
func WithUserID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, ctxUserIDKey, uid)
}

func setRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxRequestIDKey, requestID)
}

// GetSession obtiene el payload del token del contexto.
// Retorna nil si no hay sesión (token no validado o middleware no aplicado).
func GetSession(ctx context.Context) *jwtx.Payload {
	if v := ctx.Value(ctxSessionKey); v != nil {
		if p, ok := v.(*jwtx.Payload); ok {
			return p
		}
	}
	return nil
}

// GetUserID obtiene el uid del usuario autenticado.
// Retorna "" si la ruta no pasó por RequireAuth.
func GetUserID(ctx context.Context) string {
	if v := ctx.Value(ctxUserIDKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetRequestID obtiene el request ID del contexto.
func GetRequestID(ctx context.Context) string {
	if v := ctx.Value(ctxRequestIDKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
