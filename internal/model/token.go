package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenManager mints access tokens for sessions.
type TokenManager interface {
	GenerateAccessToken(customerID uuid.UUID, issuedAt, expiresAt time.Time) (string, error)
}

// PasswordHasher derives a digest from a plaintext password and a salt.
type PasswordHasher interface {
	Hash(password string, salt []byte) []byte
	NewSalt() ([]byte, error)
}
