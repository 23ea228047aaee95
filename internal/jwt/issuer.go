// Package jwt emite y verifica los session tokens firmados.
//
// Dos sabores: access (corto) y refresh (largo), firmados con secretos
// HMAC-SHA-384 distintos, de modo que el compromiso de una clave no
// permite forjar el otro sabor. El issuer es stateless: la expiración
// se valida criptográficamente, no contra el store.
package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

// Flavor identifica el tipo de token.
type Flavor string

const (
	FlavorAccess  Flavor = "access"
	FlavorRefresh Flavor = "refresh"
)

const (
	// El access token expira a los 60*30*12 segundos.
	// El refresh token expira a los 7 días; se intercambia por nuevos
	// access tokens en /auth/token.
	AccessTTL  = 60 * 30 * 12 * time.Second
	RefreshTTL = 60 * 60 * 24 * 7 * time.Second

	Audience = "auth"
)

// Errores de verificación.
var (
	ErrTokenExpired   = errors.New("jwt: token expired")
	ErrTokenInvalid   = errors.New("jwt: invalid signature or claims")
	ErrTokenMalformed = errors.New("jwt: malformed token")
)

// Payload son los datos de usuario embebidos bajo el claim "data".
type Payload struct {
	UID             string `json:"uid"`
	Email           string `json:"email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	IsUserConfirmed bool   `json:"isUserConfirmed"`
	LastLogin       string `json:"lastLogin,omitempty"`
}

// Claims es el envelope completo: payload + claims estándar.
type Claims struct {
	Data Payload `json:"data"`
	jwtv5.RegisteredClaims
}

// Issuer firma y verifica session tokens.
type Issuer struct {
	Iss           string // claim "iss", nombre de la aplicación
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// NewIssuer crea un Issuer con los TTLs por defecto.
func NewIssuer(iss string, accessSecret, refreshSecret []byte) *Issuer {
	return &Issuer{
		Iss:           iss,
		AccessSecret:  accessSecret,
		RefreshSecret: refreshSecret,
		AccessTTL:     AccessTTL,
		RefreshTTL:    RefreshTTL,
	}
}

func (i *Issuer) secret(f Flavor) []byte {
	if f == FlavorRefresh {
		return i.RefreshSecret
	}
	return i.AccessSecret
}

func (i *Issuer) ttl(f Flavor) time.Duration {
	if f == FlavorRefresh {
		return i.RefreshTTL
	}
	return i.AccessTTL
}

// Issue firma un token del sabor indicado con el payload dado.
func (i *Issuer) Issue(data Payload, flavor Flavor) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Data: data,
		RegisteredClaims: jwtv5.RegisteredClaims{
			Issuer:    i.Iss,
			Subject:   data.UID,
			Audience:  jwtv5.ClaimStrings{Audience},
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(i.ttl(flavor))),
		},
	}
	tk := jwtv5.NewWithClaims(jwtv5.SigningMethodHS384, claims)
	return tk.SignedString(i.secret(flavor))
}

// Verify valida firma y expiración de un token del sabor indicado y
// devuelve su payload. El allow-list de algoritmos se restringe a
// HS384 para rechazar intentos de alg-confusion.
func (i *Issuer) Verify(token string, flavor Flavor) (*Payload, error) {
	var claims Claims
	tok, err := jwtv5.ParseWithClaims(token, &claims,
		func(t *jwtv5.Token) (any, error) { return i.secret(flavor), nil },
		jwtv5.WithValidMethods([]string{jwtv5.SigningMethodHS384.Alg()}),
	)
	switch {
	case err == nil && tok.Valid:
		return &claims.Data, nil
	case errors.Is(err, jwtv5.ErrTokenMalformed):
		return nil, ErrTokenMalformed
	case errors.Is(err, jwtv5.ErrTokenExpired):
		return nil, ErrTokenExpired
	default:
		return nil, ErrTokenInvalid
	}
}
