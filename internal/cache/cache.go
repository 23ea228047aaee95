// Package cache provee el store efímero de tokens y códigos one-time.
//
// Soporta:
//   - Memory (in-process, para desarrollo/testing)
//   - Redis (para producción)
//
// Las keys se namespacian por propósito: "confirmation:<email>",
// "resetpass:<email>", "refreshToken:<uid>". Un Set sobre una key
// existente la sobreescribe y resetea su TTL; así se garantiza a lo
// sumo una entrada viva por key (una sesión activa por usuario, un
// código de reset activo por email).
package cache

import (
	"context"
	"time"
)

// Client define las operaciones del store efímero.
type Client interface {
	// Get obtiene un valor. Retorna ErrNotFound si no existe o expiró.
	Get(ctx context.Context, key string) (string, error)

	// Set guarda un valor con TTL, sobreescribiendo cualquier entrada
	// previa para la misma key. Si ttl es 0, no expira.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Delete elimina una key. Los callers lo tratan como best-effort:
	// el TTL garantiza la limpieza eventual.
	Delete(ctx context.Context, key string) error

	// Ping verifica la conexión.
	Ping(ctx context.Context) error

	// Close cierra la conexión.
	Close() error
}

// Config para crear un cliente de cache.
type Config struct {
	Driver   string // "memory" | "redis"
	Host     string
	Port     int
	Password string
	DB       int
	Prefix   string // Prefijo para todas las keys
}

// Errores de cache.
var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (e errNotFound) Error() string { return "cache: key not found" }

// IsNotFound distingue "la key no existe" de un error de conectividad.
// Los errores de conectividad gatean decisiones de seguridad y deben
// propagarse al caller, nunca tratarse como ausencia.
func IsNotFound(err error) bool {
	_, ok := err.(errNotFound)
	return ok
}

// New crea un cliente según la configuración.
func New(cfg Config) (Client, error) {
	switch cfg.Driver {
	case "redis":
		return NewRedis(cfg)
	default:
		return NewMemory(cfg.Prefix), nil
	}
}

// Keys namespaciadas usadas por los flujos de auth.

func ConfirmationKey(email string) string { return "confirmation:" + email }
func ResetPassKey(email string) string    { return "resetpass:" + email }
func RefreshTokenKey(uid string) string   { return "refreshToken:" + uid }
