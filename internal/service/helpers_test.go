package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/storefront-server/internal/mocks"
	"github.com/dtroode/storefront-server/internal/model"
	"github.com/dtroode/storefront-server/internal/testutil"
)

// plainHasher is a deterministic PasswordHasher for tests.
type plainHasher struct{}

func (plainHasher) Hash(password string, salt []byte) []byte {
	return []byte(password + "|" + string(salt))
}

func (plainHasher) NewSalt() ([]byte, error) {
	return []byte("salt"), nil
}

var testNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func passthroughTx(t *testing.T) *mocks.Transactor {
	tx := mocks.NewTransactor(t)
	tx.On("WithinTx", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }).
		Maybe()
	return tx
}

type customerDeps struct {
	customers *mocks.CustomerStore
	sessions  *mocks.SessionStore
	tokens    *mocks.TokenManager
	storage   *mocks.Storage
}

func newCustomerService(t *testing.T) (*Customer, customerDeps) {
	deps := customerDeps{
		customers: mocks.NewCustomerStore(t),
		sessions:  mocks.NewSessionStore(t),
		tokens:    mocks.NewTokenManager(t),
		storage:   mocks.NewStorage(t),
	}

	s := NewCustomer(deps.customers, deps.sessions, passthroughTx(t), plainHasher{}, deps.tokens,
		deps.storage, testutil.MakeNoopLogger(), model.SessionTTL)
	s.now = func() time.Time { return testNow }

	return s, deps
}

func registeredCustomer(plaintext string) model.Customer {
	return model.Customer{
		ID:             uuid.MustParse("0b8d3f4e-5a61-4c2e-9f1d-3c7b2a9e8d10"),
		FirstName:      "Ada",
		Email:          "ada@example.com",
		ContactNumber:  "9876543210",
		PasswordDigest: plainHasher{}.Hash(plaintext, []byte("salt")),
		Salt:           []byte("salt"),
	}
}
