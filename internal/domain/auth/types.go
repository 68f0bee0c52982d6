package auth

// Package auth contains domain-level types for identity, roles and navigation.
// It is pure and free of framework/adapter concerns.

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role represents an ERP role as carried in the token's role claim.
// Values match the backend's role names exactly.
type Role string

const (
	RoleAdmin      Role = "Administrador"
	RoleHR         Role = "RRHH"
	RoleSales      Role = "Ventas"
	RoleInventory  Role = "Inventarista"
	RolePurchasing Role = "Compras"
	RoleFinance    Role = "Finanzas"
)

// Identity is the display view of decoded token claims.
// Fields are empty when the corresponding claim is absent.
type Identity struct {
	Subject   string
	Name      string
	Email     string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IdentityFromClaims maps decoded claims into an Identity.
// Claims of unexpected types are treated as absent.
func IdentityFromClaims(claims jwt.MapClaims) Identity {
	if claims == nil {
		return Identity{}
	}

	id := Identity{
		Name:  stringClaim(claims, "name"),
		Email: stringClaim(claims, "email"),
		Role:  Role(stringClaim(claims, "role")),
	}
	if sub, err := claims.GetSubject(); err == nil {
		id.Subject = sub
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		id.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		id.ExpiresAt = exp.Time
	}
	return id
}

// Expired reports whether the identity carries an expiry that is not after now.
func (i Identity) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && !now.Before(i.ExpiresAt)
}

// DisplayName returns the name to show in page chrome.
func (i Identity) DisplayName() string {
	if i.Name == "" {
		return "Desconocido"
	}
	return i.Name
}

// DisplayEmail returns the email to show in page chrome.
func (i Identity) DisplayEmail() string {
	if i.Email == "" {
		return "Sin correo"
	}
	return i.Email
}

func stringClaim(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}

// Credentials is an email/password login attempt.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
