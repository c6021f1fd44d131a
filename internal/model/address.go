package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AddressStore persists customer addresses and their links.
type AddressStore interface {
	Create(ctx context.Context, address Address) (Address, error)
	LinkToCustomer(ctx context.Context, customerID, addressID uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (Address, error)
	GetOwnerID(ctx context.Context, addressID uuid.UUID) (uuid.UUID, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]Address, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// StateStore reads the state dictionary.
type StateStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (State, error)
	List(ctx context.Context) ([]State, error)
}

// Address is a postal address owned by a customer or a brand.
type Address struct {
	ID               uuid.UUID
	FlatBuildingName string
	Locality         string
	City             string
	Pincode          string
	State            State
	CreatedAt        time.Time
}

// State is an entry of the state dictionary.
type State struct {
	ID   uuid.UUID
	Name string
}

// SaveAddressParams contains customer-supplied address fields.
type SaveAddressParams struct {
	FlatBuildingName string
	Locality         string
	City             string
	Pincode          string
	StateID          string
}
