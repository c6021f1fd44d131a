package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/storefront-server/internal/apperr"
	"github.com/dtroode/storefront-server/internal/model"
	"github.com/dtroode/storefront-server/internal/password"
)

// Authenticate verifies the credentials and issues a new session. The returned
// session carries the plaintext access token; only its hash is stored.
func (s *Customer) Authenticate(ctx context.Context, contactNumber, plaintext string) (model.Session, error) {
	s.logger.Debug("Customer service: starting login",
		"contact_number", contactNumber)

	var session model.Session
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		customer, err := s.customerStore.GetByContactNumber(ctx, contactNumber)
		if errors.Is(err, model.ErrNotFound) {
			return apperr.NewErrContactNotRegistered()
		}
		if err != nil {
			s.logger.Error("Customer service: failed to get customer by contact number",
				"contact_number", contactNumber,
				"error", err.Error())
			return fmt.Errorf("failed to get customer by contact number: %w", err)
		}

		if !password.Equal(s.hasher.Hash(plaintext, customer.Salt), customer.PasswordDigest) {
			return apperr.NewErrInvalidCredentials()
		}

		now := s.now()
		expiresAt := now.Add(s.sessionTTL)

		accessToken, err := s.tokenManager.GenerateAccessToken(customer.ID, now, expiresAt)
		if err != nil {
			s.logger.Error("Customer service: failed to generate access token",
				"customer_id", customer.ID,
				"error", err.Error())
			return fmt.Errorf("failed to generate access token: %w", err)
		}

		session, err = s.sessionStore.Create(ctx, model.Session{
			ID:          uuid.New(),
			CustomerID:  customer.ID,
			AccessToken: accessToken,
			TokenHash:   hashToken(accessToken),
			LoginAt:     now,
			ExpiresAt:   expiresAt,
		})
		if err != nil {
			s.logger.Error("Customer service: failed to create session",
				"customer_id", customer.ID,
				"error", err.Error())
			return fmt.Errorf("failed to create session: %w", err)
		}

		customer.LastLoginAt = &now
		touched, err := s.customerStore.Update(ctx, customer)
		if err != nil {
			s.logger.Error("Customer service: failed to update last login",
				"customer_id", customer.ID,
				"error", err.Error())
			return fmt.Errorf("failed to update customer: %w", err)
		}

		session.AccessToken = accessToken
		session.Customer = touched

		return nil
	})
	if err != nil {
		return model.Session{}, err
	}

	s.logger.Info("Customer service: customer logged in",
		"customer_id", session.CustomerID,
		"session_id", session.ID)

	return session, nil
}

// Authorize returns the customer of the active session identified by the
// access token. A logged out session is reported as such even when it has
// also expired.
func (s *Customer) Authorize(ctx context.Context, accessToken string) (model.Customer, error) {
	session, err := s.activeSession(ctx, accessToken)
	if err != nil {
		return model.Customer{}, err
	}

	return session.Customer, nil
}

// Logout closes the session identified by the access token.
func (s *Customer) Logout(ctx context.Context, accessToken string) (model.Session, error) {
	var session model.Session
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		active, err := s.activeSession(ctx, accessToken)
		if err != nil {
			return err
		}

		now := s.now()
		active.LogoutAt = &now

		session, err = s.sessionStore.Update(ctx, active)
		if errors.Is(err, model.ErrNotFound) {
			// closed by a concurrent logout after the read above
			return apperr.NewErrLoggedOut()
		}
		if err != nil {
			s.logger.Error("Customer service: failed to update session",
				"session_id", active.ID,
				"error", err.Error())
			return fmt.Errorf("failed to update session: %w", err)
		}
		session.Customer = active.Customer

		return nil
	})
	if err != nil {
		return model.Session{}, err
	}

	s.logger.Info("Customer service: customer logged out",
		"customer_id", session.CustomerID,
		"session_id", session.ID)

	return session, nil
}

func (s *Customer) activeSession(ctx context.Context, accessToken string) (model.Session, error) {
	if accessToken == "" {
		return model.Session{}, apperr.NewErrNotLoggedIn()
	}

	presented := hashToken(accessToken)

	session, err := s.sessionStore.GetByTokenHash(ctx, presented)
	if errors.Is(err, model.ErrNotFound) {
		return model.Session{}, apperr.NewErrNotLoggedIn()
	}
	if err != nil {
		s.logger.Error("Customer service: failed to get session by token",
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get session by token: %w", err)
	}

	if subtle.ConstantTimeCompare(session.TokenHash, presented) != 1 {
		return model.Session{}, apperr.NewErrNotLoggedIn()
	}
	if session.LogoutAt != nil {
		return model.Session{}, apperr.NewErrLoggedOut()
	}
	if !session.Active(s.now()) {
		return model.Session{}, apperr.NewErrSessionExpired()
	}

	return session, nil
}

func hashToken(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return sum[:]
}
