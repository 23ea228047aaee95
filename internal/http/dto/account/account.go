// Package account contiene los DTOs de gestión de cuenta (cambio y
// recupero de contraseña, baja de cuenta y edición de perfil).
package account

import (
	"fmt"
	"net/mail"
	"strings"
)

const maxNameLen = 50

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (r *ChangePasswordRequest) Validate() error {
	if r.OldPassword == "" || r.NewPassword == "" {
		return fmt.Errorf("oldPassword and newPassword are required")
	}
	return nil
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

func (r *ForgotPasswordRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("invalid email")
	}
	return nil
}

// CheckResetLinkRequest llega por query string desde el link del mail.
type CheckResetLinkRequest struct {
	Email string
	Code  string
}

func (r *CheckResetLinkRequest) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("invalid email")
	}
	if r.Code == "" {
		return fmt.Errorf("code is required")
	}
	return nil
}

type ResetPasswordRequest struct {
	Email    string `json:"email"`
	Code     string `json:"code"`
	Password string `json:"password"`
}

func (r *ResetPasswordRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("invalid email")
	}
	if r.Code == "" {
		return fmt.Errorf("code is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

type DisableAccountRequest struct {
	Password string `json:"password"`
}

func (r *DisableAccountRequest) Validate() error {
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

type UpdateInfoRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (r *UpdateInfoRequest) Validate() error {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	if r.FirstName == "" || len(r.FirstName) > maxNameLen {
		return fmt.Errorf("firstName is required (max %d chars)", maxNameLen)
	}
	if r.LastName == "" || len(r.LastName) > maxNameLen {
		return fmt.Errorf("lastName is required (max %d chars)", maxNameLen)
	}
	return nil
}
