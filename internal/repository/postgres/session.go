package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dtroode/storefront-server/internal/model"
)

var _ model.SessionStore = (*SessionRepository)(nil)

type SessionRepository struct {
	db *Connection
}

func NewSessionRepository(db *Connection) *SessionRepository {
	return &SessionRepository{
		db: db,
	}
}

func (r *SessionRepository) Create(ctx context.Context, session model.Session) (model.Session, error) {
	query := `INSERT INTO customer_sessions (id, customer_id, token_hash, login_at, expires_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, customer_id, token_hash, login_at, expires_at, logout_at`

	var saved model.Session
	err := r.db.conn(ctx).QueryRowContext(ctx, query,
		session.ID, session.CustomerID, session.TokenHash, session.LoginAt, session.ExpiresAt,
	).Scan(
		&saved.ID, &saved.CustomerID, &saved.TokenHash, &saved.LoginAt, &saved.ExpiresAt, &saved.LogoutAt,
	)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	saved.AccessToken = session.AccessToken
	saved.Customer = session.Customer

	return saved, nil
}

// GetByTokenHash returns the session together with its customer.
func (r *SessionRepository) GetByTokenHash(ctx context.Context, tokenHash []byte) (model.Session, error) {
	query := `SELECT s.id, s.customer_id, s.token_hash, s.login_at, s.expires_at, s.logout_at,
			         c.id, c.first_name, c.last_name, c.email, c.contact_number, c.password_digest, c.salt,
			         c.created_at, c.updated_at, c.last_login_at
			  FROM customer_sessions s
			  JOIN customers c ON c.id = s.customer_id
			  WHERE s.token_hash = $1`

	var s model.Session
	c := &s.Customer
	err := r.db.conn(ctx).QueryRowContext(ctx, query, tokenHash).Scan(
		&s.ID, &s.CustomerID, &s.TokenHash, &s.LoginAt, &s.ExpiresAt, &s.LogoutAt,
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.ContactNumber, &c.PasswordDigest, &c.Salt,
		&c.CreatedAt, &c.UpdatedAt, &c.LastLoginAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Session{}, model.ErrNotFound
		}
		return model.Session{}, fmt.Errorf("failed to get session by token: %w", err)
	}

	return s, nil
}

func (r *SessionRepository) Update(ctx context.Context, session model.Session) (model.Session, error) {
	query := `UPDATE customer_sessions SET expires_at = $2, logout_at = $3
			  WHERE id = $1 AND logout_at IS NULL
			  RETURNING id, customer_id, token_hash, login_at, expires_at, logout_at`

	var saved model.Session
	err := r.db.conn(ctx).QueryRowContext(ctx, query, session.ID, session.ExpiresAt, session.LogoutAt).Scan(
		&saved.ID, &saved.CustomerID, &saved.TokenHash, &saved.LoginAt, &saved.ExpiresAt, &saved.LogoutAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Session{}, model.ErrNotFound
		}
		return model.Session{}, fmt.Errorf("failed to update session: %w", err)
	}

	saved.Customer = session.Customer

	return saved, nil
}
