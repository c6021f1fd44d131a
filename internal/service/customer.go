package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/storefront-server/internal/apperr"
	"github.com/dtroode/storefront-server/internal/logger"
	"github.com/dtroode/storefront-server/internal/model"
	"github.com/dtroode/storefront-server/internal/password"
	"github.com/dtroode/storefront-server/internal/validate"
)

var _ model.Authorizer = (*Customer)(nil)

// Customer implements signup, the session lifecycle, password change and
// avatar management. It holds no mutable state.
type Customer struct {
	customerStore model.CustomerStore
	sessionStore  model.SessionStore
	transactor    model.Transactor
	hasher        model.PasswordHasher
	tokenManager  model.TokenManager
	storage       model.Storage
	logger        *logger.Logger
	sessionTTL    time.Duration
	now           func() time.Time
}

func NewCustomer(
	customerStore model.CustomerStore,
	sessionStore model.SessionStore,
	transactor model.Transactor,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	storage model.Storage,
	logger *logger.Logger,
	sessionTTL time.Duration,
) *Customer {
	if sessionTTL <= 0 {
		sessionTTL = model.SessionTTL
	}

	return &Customer{
		customerStore: customerStore,
		sessionStore:  sessionStore,
		transactor:    transactor,
		hasher:        hasher,
		tokenManager:  tokenManager,
		storage:       storage,
		logger:        logger,
		sessionTTL:    sessionTTL,
		now:           time.Now,
	}
}

// Signup registers a new customer with a freshly salted password digest.
func (s *Customer) Signup(ctx context.Context, params model.SignupParams) (model.Customer, error) {
	s.logger.Debug("Customer service: starting signup",
		"contact_number", params.ContactNumber)

	var created model.Customer
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		_, err := s.customerStore.GetByContactNumber(ctx, params.ContactNumber)
		if err == nil {
			return apperr.NewErrContactTaken()
		}
		if !errors.Is(err, model.ErrNotFound) {
			s.logger.Error("Customer service: failed to get customer by contact number",
				"contact_number", params.ContactNumber,
				"error", err.Error())
			return fmt.Errorf("failed to get customer by contact number: %w", err)
		}

		if !validate.RequiredFieldsPresent(params) {
			return apperr.NewErrSignupFieldsMissing()
		}
		if !validate.EmailValid(params.Email) {
			return apperr.NewErrInvalidEmail()
		}
		if !validate.MobileValid(params.ContactNumber) {
			return apperr.NewErrInvalidContactNumber()
		}
		if !validate.PasswordStrong(params.Password) {
			return apperr.NewErrSignupWeakPassword()
		}

		salt, err := s.hasher.NewSalt()
		if err != nil {
			s.logger.Error("Customer service: failed to generate salt",
				"error", err.Error())
			return fmt.Errorf("failed to generate salt: %w", err)
		}

		now := s.now()
		created, err = s.customerStore.Create(ctx, model.Customer{
			ID:             uuid.New(),
			FirstName:      params.FirstName,
			LastName:       params.LastName,
			Email:          params.Email,
			ContactNumber:  params.ContactNumber,
			PasswordDigest: s.hasher.Hash(params.Password, salt),
			Salt:           salt,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if errors.Is(err, model.ErrAlreadyExists) {
			// registered concurrently since the lookup above
			return apperr.NewErrContactTaken()
		}
		if err != nil {
			s.logger.Error("Customer service: failed to create customer",
				"contact_number", params.ContactNumber,
				"error", err.Error())
			return fmt.Errorf("failed to create customer: %w", err)
		}

		return nil
	})
	if err != nil {
		return model.Customer{}, err
	}

	s.logger.Info("Customer service: customer registered",
		"customer_id", created.ID)

	return created, nil
}

// GetCustomer returns the customer bound to the access token.
func (s *Customer) GetCustomer(ctx context.Context, accessToken string) (model.Customer, error) {
	return s.Authorize(ctx, accessToken)
}

// UpdatePassword replaces the digest of an authorized customer. The salt and
// all sessions stay untouched.
func (s *Customer) UpdatePassword(ctx context.Context, accessToken, oldPassword, newPassword string) (model.Customer, error) {
	var updated model.Customer
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		customer, err := s.Authorize(ctx, accessToken)
		if err != nil {
			return err
		}

		s.logger.Debug("Customer service: changing password",
			"customer_id", customer.ID)

		if oldPassword == "" || newPassword == "" {
			return apperr.NewErrEmptyPasswordField()
		}
		if !validate.PasswordStrong(newPassword) {
			return apperr.NewErrWeakPassword()
		}
		if !password.Equal(s.hasher.Hash(oldPassword, customer.Salt), customer.PasswordDigest) {
			return apperr.NewErrIncorrectOldPassword()
		}

		customer.PasswordDigest = s.hasher.Hash(newPassword, customer.Salt)
		customer.UpdatedAt = s.now()

		updated, err = s.customerStore.Update(ctx, customer)
		if err != nil {
			s.logger.Error("Customer service: failed to update customer",
				"customer_id", customer.ID,
				"error", err.Error())
			return fmt.Errorf("failed to update customer: %w", err)
		}

		return nil
	})
	if err != nil {
		return model.Customer{}, err
	}

	s.logger.Info("Customer service: password changed",
		"customer_id", updated.ID)

	return updated, nil
}
