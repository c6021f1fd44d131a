package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CustomerStore defines persistence operations for customers.
type CustomerStore interface {
	GetByContactNumber(ctx context.Context, contactNumber string) (Customer, error)
	Create(ctx context.Context, customer Customer) (Customer, error)
	Update(ctx context.Context, customer Customer) (Customer, error)
}

// Customer represents a registered customer with password material.
type Customer struct {
	ID             uuid.UUID
	FirstName      string
	LastName       string
	Email          string
	ContactNumber  string
	PasswordDigest []byte
	Salt           []byte
	CreatedAt      time.Time
	UpdatedAt      time.Time
	LastLoginAt    *time.Time
}

// SignupParams contains customer-supplied signup fields.
type SignupParams struct {
	FirstName     string
	LastName      string
	Email         string
	ContactNumber string
	Password      string
}
