package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/storefront-server/internal/model"
)

var _ model.AddressStore = (*AddressRepository)(nil)

type AddressRepository struct {
	db *Connection
}

func NewAddressRepository(db *Connection) *AddressRepository {
	return &AddressRepository{
		db: db,
	}
}

const addressSelect = `SELECT a.id, a.flat_building_name, a.locality, a.city, a.pincode, a.created_at, st.id, st.name
			  FROM addresses a
			  JOIN states st ON st.id = a.state_id`

func scanAddress(row interface{ Scan(dest ...any) error }) (model.Address, error) {
	var a model.Address
	err := row.Scan(&a.ID, &a.FlatBuildingName, &a.Locality, &a.City, &a.Pincode, &a.CreatedAt, &a.State.ID, &a.State.Name)
	return a, err
}

func (r *AddressRepository) Create(ctx context.Context, address model.Address) (model.Address, error) {
	query := `INSERT INTO addresses (id, flat_building_name, locality, city, pincode, state_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.conn(ctx).ExecContext(ctx, query,
		address.ID, address.FlatBuildingName, address.Locality, address.City, address.Pincode,
		address.State.ID, address.CreatedAt,
	)
	if err != nil {
		return model.Address{}, fmt.Errorf("failed to create address: %w", err)
	}

	return address, nil
}

func (r *AddressRepository) LinkToCustomer(ctx context.Context, customerID, addressID uuid.UUID) error {
	query := `INSERT INTO customer_addresses (customer_id, address_id) VALUES ($1, $2)`

	if _, err := r.db.conn(ctx).ExecContext(ctx, query, customerID, addressID); err != nil {
		return fmt.Errorf("failed to link address to customer: %w", err)
	}

	return nil
}

func (r *AddressRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Address, error) {
	query := addressSelect + `
			  WHERE a.id = $1`

	address, err := scanAddress(r.db.conn(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Address{}, model.ErrNotFound
		}
		return model.Address{}, fmt.Errorf("failed to get address by id: %w", err)
	}

	return address, nil
}

// GetOwnerID returns the customer linked to the address.
func (r *AddressRepository) GetOwnerID(ctx context.Context, addressID uuid.UUID) (uuid.UUID, error) {
	query := `SELECT customer_id FROM customer_addresses WHERE address_id = $1`

	var ownerID uuid.UUID
	err := r.db.conn(ctx).QueryRowContext(ctx, query, addressID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, model.ErrNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to get address owner: %w", err)
	}

	return ownerID, nil
}

func (r *AddressRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Address, error) {
	query := addressSelect + `
			  JOIN customer_addresses ca ON ca.address_id = a.id
			  WHERE ca.customer_id = $1
			  ORDER BY a.created_at DESC`

	rows, err := r.db.conn(ctx).QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	defer rows.Close()

	addresses := make([]model.Address, 0)
	for rows.Next() {
		address, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}
		addresses = append(addresses, address)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate addresses: %w", err)
	}

	return addresses, nil
}

// Delete removes the address; the customer link goes with it.
func (r *AddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.conn(ctx).ExecContext(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}

	return nil
}
