// Package auth contiene los DTOs de los endpoints de autenticación.
// La validación de forma vive acá (Validate por request); las reglas de
// negocio viven en los services.
package auth

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/dropDatabas3/fauxbook/internal/store/core"
)

const maxNameLen = 50

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (r *RegisterRequest) Validate() error {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	if r.FirstName == "" || len(r.FirstName) > maxNameLen {
		return fmt.Errorf("firstName is required (max %d chars)", maxNameLen)
	}
	if r.LastName == "" || len(r.LastName) > maxNameLen {
		return fmt.Errorf("lastName is required (max %d chars)", maxNameLen)
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("invalid email")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

type RegisterResponse struct {
	UID       string `json:"uid"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type ConfirmEmailRequest struct {
	Email string
	Code  string
}

func (r *ConfirmEmailRequest) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("invalid email")
	}
	if len(r.Code) < 16 {
		return fmt.Errorf("invalid code")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("invalid email")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// LoginResult es el resultado del login: ambos tokens + el payload
// público del usuario.
type LoginResult struct {
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
	User         *core.User `json:"user"`
}

type RefreshRequest struct {
	UID          string `json:"uid"`
	RefreshToken string `json:"refreshToken"`
}

func (r *RefreshRequest) Validate() error {
	if strings.TrimSpace(r.UID) == "" || strings.TrimSpace(r.RefreshToken) == "" {
		return fmt.Errorf("uid and refreshToken are required")
	}
	return nil
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
}
