package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type GestorClaims struct {
	Papel string `json:"papel"`
	jwt.RegisteredClaims
}

func GenerateToken(secret string) (string, error) {
	claims := &GestorClaims{
		Papel: "gestor",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(12 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
