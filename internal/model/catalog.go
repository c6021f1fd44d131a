package model

import (
	"context"

	"github.com/google/uuid"
)

// BrandStore reads brands.
type BrandStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (Brand, error)
	ListByName(ctx context.Context, name string) ([]Brand, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]Brand, error)
}

// CategoryStore reads categories.
type CategoryStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (Category, error)
	ListOrderedByName(ctx context.Context) ([]Category, error)
	ListByBrand(ctx context.Context, brandID uuid.UUID) ([]Category, error)
}

// ItemStore reads items.
type ItemStore interface {
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]Item, error)
	ListByCategoryAndBrand(ctx context.Context, categoryID, brandID uuid.UUID) ([]Item, error)
}

// Brand is a seller brand with its rating.
type Brand struct {
	ID                   uuid.UUID
	Name                 string
	Address              Address
	CustomerRating       float64
	NumberCustomersRated int
	Categories           []Category
}

// Category groups items.
type Category struct {
	ID    uuid.UUID
	Name  string
	Items []Item
}

// Item is a sellable product. Price is in minor currency units.
type Item struct {
	ID         uuid.UUID
	Name       string
	Price      int64
	BrandID    uuid.UUID
	CategoryID uuid.UUID
}
