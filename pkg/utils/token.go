package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AdminClaims represents the claims in an admin session token
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminTokenManager issues and validates short-lived admin session tokens.
// A token is obtained by exchanging the admin passphrase and is what gates
// destructive ledger edits.
type AdminTokenManager struct {
	secretKey []byte
	expiry    time.Duration
}

// NewAdminTokenManager creates a new token manager
func NewAdminTokenManager(secret string, expiry time.Duration) *AdminTokenManager {
	return &AdminTokenManager{
		secretKey: []byte(secret),
		expiry:    expiry,
	}
}

// Issue generates a new admin session token
func (m *AdminTokenManager) Issue() (string, error) {
	claims := &AdminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "counter-api",
			Subject:   "admin",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// Validate validates an admin session token and returns its claims
func (m *AdminTokenManager) Validate(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Role != "admin" {
		return nil, errors.New("token is not an admin token")
	}

	return claims, nil
}
