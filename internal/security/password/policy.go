package password

import (
	"errors"
	"fmt"
)

// ErrTooWeak indica que el password no cumple la política mínima.
var ErrTooWeak = errors.New("password does not meet policy")

// Policy define los requisitos mínimos para passwords nuevos.
// La validación de forma (email, longitudes de nombre) vive en los DTOs;
// esto solo cubre la fuerza del password en register/reset/change.
type Policy struct {
	MinLength int
}

var DefaultPolicy = Policy{MinLength: 6}

func (p Policy) Validate(s string) error {
	if len([]rune(s)) < p.MinLength {
		return fmt.Errorf("%w: minimum %d characters", ErrTooWeak, p.MinLength)
	}
	return nil
}
