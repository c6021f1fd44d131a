package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/storefront-server/internal/model"
)

var sessionRowColumns = []string{"id", "customer_id", "token_hash", "login_at", "expires_at", "logout_at"}

func TestSessionRepository_Create(t *testing.T) {
	q := `^INSERT INTO customer_sessions \(id, customer_id, token_hash, login_at, expires_at\) VALUES \(\$1, \$2, \$3, \$4, \$5\)`
	now := time.Now().UTC()
	session := model.Session{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		AccessToken: "token",
		TokenHash:   []byte("hash"),
		LoginAt:     now,
		ExpiresAt:   now.Add(model.SessionTTL),
		Customer:    model.Customer{FirstName: "Ada"},
	}

	t.Run("success", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewSessionRepository(conn)

		mock.ExpectQuery(q).
			WithArgs(session.ID, session.CustomerID, []byte("hash"), now, session.ExpiresAt).
			WillReturnRows(sqlmock.NewRows(sessionRowColumns).AddRow(
				session.ID.String(), session.CustomerID.String(), []byte("hash"), now, session.ExpiresAt, nil,
			))

		got, err := repo.Create(context.Background(), session)
		require.NoError(t, err)
		assert.Equal(t, session.ID, got.ID)
		assert.Equal(t, "token", got.AccessToken)
		assert.Equal(t, "Ada", got.Customer.FirstName)
		assert.Nil(t, got.LogoutAt)
	})

	t.Run("db error", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewSessionRepository(conn)

		mock.ExpectQuery(q).WillReturnError(errors.New("db down"))

		_, err := repo.Create(context.Background(), session)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create session")
	})
}

func TestSessionRepository_GetByTokenHash(t *testing.T) {
	q := `^SELECT s.id, .* FROM customer_sessions s JOIN customers c ON c.id = s.customer_id WHERE s.token_hash = \$1$`
	now := time.Now().UTC()
	sessionID, customerID := uuid.New(), uuid.New()

	t.Run("found with customer", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewSessionRepository(conn)

		cols := append(append([]string{}, sessionRowColumns...), customerRowColumns...)
		mock.ExpectQuery(q).WithArgs([]byte("hash")).WillReturnRows(
			sqlmock.NewRows(cols).AddRow(
				sessionID.String(), customerID.String(), []byte("hash"), now, now.Add(time.Hour), now,
				customerID.String(), "Ada", "", "ada@example.com", "9876543210", []byte("d"), []byte("s"),
				now, now, now,
			))

		got, err := repo.GetByTokenHash(context.Background(), []byte("hash"))
		require.NoError(t, err)
		assert.Equal(t, sessionID, got.ID)
		assert.Equal(t, customerID, got.Customer.ID)
		assert.Equal(t, "9876543210", got.Customer.ContactNumber)
		require.NotNil(t, got.LogoutAt)
	})

	t.Run("unknown token", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewSessionRepository(conn)

		mock.ExpectQuery(q).WithArgs([]byte("nope")).WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByTokenHash(context.Background(), []byte("nope"))
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestSessionRepository_Update(t *testing.T) {
	q := `^UPDATE customer_sessions SET expires_at = \$2, logout_at = \$3 WHERE id = \$1 AND logout_at IS NULL`
	now := time.Now().UTC()
	session := model.Session{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		TokenHash:  []byte("hash"),
		LoginAt:    now,
		ExpiresAt:  now.Add(time.Hour),
		LogoutAt:   &now,
	}

	t.Run("success", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewSessionRepository(conn)

		mock.ExpectQuery(q).
			WithArgs(session.ID, session.ExpiresAt, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(sessionRowColumns).AddRow(
				session.ID.String(), session.CustomerID.String(), []byte("hash"), now, session.ExpiresAt, now,
			))

		got, err := repo.Update(context.Background(), session)
		require.NoError(t, err)
		require.NotNil(t, got.LogoutAt)
		assert.True(t, now.Equal(*got.LogoutAt))
	})

	t.Run("already logged out", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewSessionRepository(conn)

		mock.ExpectQuery(q).
			WithArgs(session.ID, session.ExpiresAt, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(sessionRowColumns))

		_, err := repo.Update(context.Background(), session)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("missing row", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewSessionRepository(conn)

		mock.ExpectQuery(q).WillReturnError(sql.ErrNoRows)

		_, err := repo.Update(context.Background(), session)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
