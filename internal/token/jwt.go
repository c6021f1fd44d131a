package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/storefront-server/internal/model"
)

const typeAccess = "access"

// Claims are the claims embedded into access tokens.
type Claims struct {
	jwt.RegisteredClaims
	CustomerID uuid.UUID `json:"customer_id"`
	TokenType  string    `json:"typ"`
}

// JWT implements TokenManager backed by symmetric HMAC. Every token carries a
// random JTI, so two tokens minted for the same customer and window differ.
// The server never parses its own tokens: sessions are looked up by token hash.
type JWT struct {
	secretKey string
}

var _ model.TokenManager = (*JWT)(nil)

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) *JWT {
	return &JWT{secretKey: secretKey}
}

// GenerateAccessToken signs a token bound to customerID for [issuedAt, expiresAt].
func (j *JWT) GenerateAccessToken(customerID uuid.UUID, issuedAt, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   customerID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		CustomerID: customerID,
		TokenType:  typeAccess,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}
