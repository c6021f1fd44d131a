package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/storefront-server/internal/model"
)

var _ model.BrandStore = (*BrandRepository)(nil)

type BrandRepository struct {
	db *Connection
}

func NewBrandRepository(db *Connection) *BrandRepository {
	return &BrandRepository{
		db: db,
	}
}

const brandSelect = `SELECT b.id, b.name, b.customer_rating, b.number_customers_rated,
			         a.id, a.flat_building_name, a.locality, a.city, a.pincode, a.created_at, st.id, st.name
			  FROM brands b
			  JOIN addresses a ON a.id = b.address_id
			  JOIN states st ON st.id = a.state_id`

func scanBrand(row interface{ Scan(dest ...any) error }) (model.Brand, error) {
	var b model.Brand
	a := &b.Address
	err := row.Scan(
		&b.ID, &b.Name, &b.CustomerRating, &b.NumberCustomersRated,
		&a.ID, &a.FlatBuildingName, &a.Locality, &a.City, &a.Pincode, &a.CreatedAt, &a.State.ID, &a.State.Name,
	)
	return b, err
}

func (r *BrandRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Brand, error) {
	query := brandSelect + `
			  WHERE b.id = $1`

	brand, err := scanBrand(r.db.conn(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Brand{}, model.ErrNotFound
		}
		return model.Brand{}, fmt.Errorf("failed to get brand by id: %w", err)
	}

	return brand, nil
}

// ListByName matches name as a case-insensitive substring.
func (r *BrandRepository) ListByName(ctx context.Context, name string) ([]model.Brand, error) {
	query := brandSelect + `
			  WHERE position(lower($1) in lower(b.name)) > 0
			  ORDER BY b.name`

	return r.list(ctx, "by name", query, name)
}

func (r *BrandRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Brand, error) {
	query := brandSelect + `
			  JOIN brand_categories bc ON bc.brand_id = b.id
			  WHERE bc.category_id = $1
			  ORDER BY b.name`

	return r.list(ctx, "by category", query, categoryID)
}

func (r *BrandRepository) list(ctx context.Context, what, query string, args ...any) ([]model.Brand, error) {
	rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands %s: %w", what, err)
	}
	defer rows.Close()

	brands := make([]model.Brand, 0)
	for rows.Next() {
		brand, err := scanBrand(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		brands = append(brands, brand)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate brands: %w", err)
	}

	return brands, nil
}
