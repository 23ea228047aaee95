package logger

import (
	"time"

	"go.uber.org/zap"
)

// Campos estándar HTTP.

func RequestID(v string) zap.Field { return zap.String("request_id", v) }
func Method(v string) zap.Field    { return zap.String("method", v) }
func Path(v string) zap.Field      { return zap.String("path", v) }
func Status(v int) zap.Field       { return zap.Int("status", v) }
func ClientIP(v string) zap.Field  { return zap.String("client_ip", v) }

// Duration crea un campo para la duración del request.
func Duration(v time.Duration) zap.Field { return zap.Duration("duration", v) }

// DurationMs expone la duración en milisegundos (más legible en dashboards).
func DurationMs(v int64) zap.Field { return zap.Int64("duration_ms", v) }

func Bytes(v int) zap.Field { return zap.Int("bytes", v) }

// Campos estándar de negocio.

func UserID(v string) zap.Field { return zap.String("user_id", v) }
func PostID(v int64) zap.Field  { return zap.Int64("post_id", v) }

// Email crea un campo para el email (usar con cuidado en prod).
func Email(v string) zap.Field { return zap.String("email", v) }

// Campos de sistema.

// Component identifica el componente emisor (ej: "auth.login").
func Component(v string) zap.Field { return zap.String("component", v) }

// Layer identifica la capa (controller, service, store).
func Layer(v string) zap.Field { return zap.String("layer", v) }

// Op identifica la operación en curso.
func Op(v string) zap.Field { return zap.String("op", v) }

// Err crea un campo para un error.
func Err(err error) zap.Field { return zap.Error(err) }

// Genéricos.

func Any(key string, v any) zap.Field { return zap.Any(key, v) }
func String(key, v string) zap.Field  { return zap.String(key, v) }
func Int(key string, v int) zap.Field { return zap.Int(key, v) }
