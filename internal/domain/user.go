package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims são as claims do token JWT emitido no login do operador do painel.
type Claims struct {
	UserEmail string
	jwt.RegisteredClaims
}
