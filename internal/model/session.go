package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionTTL is the validity window of a freshly issued session.
const SessionTTL = 8 * time.Hour

// SessionStore persists login sessions.
type SessionStore interface {
	Create(ctx context.Context, session Session) (Session, error)
	GetByTokenHash(ctx context.Context, tokenHash []byte) (Session, error)
	// Update changes a session that is still open. A session that has already
	// been logged out is reported as ErrNotFound.
	Update(ctx context.Context, session Session) (Session, error)
}

// Session binds an access token to a customer and a validity window.
type Session struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	// AccessToken is set only on the value returned from login.
	AccessToken string
	TokenHash   []byte
	LoginAt     time.Time
	ExpiresAt   time.Time
	LogoutAt    *time.Time
	Customer    Customer
}

// Active reports whether the session is neither logged out nor expired at now.
func (s Session) Active(now time.Time) bool {
	return s.LogoutAt == nil && !now.After(s.ExpiresAt)
}

// Authorizer resolves a bearer token to the customer of an active session.
type Authorizer interface {
	Authorize(ctx context.Context, accessToken string) (Customer, error)
}
