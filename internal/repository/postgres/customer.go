package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/storefront-server/internal/model"
)

// uniqueViolation is the SQLSTATE of a unique constraint failure.
const uniqueViolation = "23505"

var _ model.CustomerStore = (*CustomerRepository)(nil)

type CustomerRepository struct {
	db *Connection
}

func NewCustomerRepository(db *Connection) *CustomerRepository {
	return &CustomerRepository{
		db: db,
	}
}

const customerColumns = `id, first_name, last_name, email, contact_number, password_digest, salt,
			  created_at, updated_at, last_login_at`

func scanCustomer(row interface{ Scan(dest ...any) error }) (model.Customer, error) {
	var c model.Customer
	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.ContactNumber, &c.PasswordDigest, &c.Salt,
		&c.CreatedAt, &c.UpdatedAt, &c.LastLoginAt,
	)
	return c, err
}

func (r *CustomerRepository) GetByContactNumber(ctx context.Context, contactNumber string) (model.Customer, error) {
	query := `SELECT ` + customerColumns + `
			  FROM customers WHERE contact_number = $1`

	customer, err := scanCustomer(r.db.conn(ctx).QueryRowContext(ctx, query, contactNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Customer{}, model.ErrNotFound
		}
		return model.Customer{}, fmt.Errorf("failed to get customer by contact number: %w", err)
	}

	return customer, nil
}

func (r *CustomerRepository) Create(ctx context.Context, customer model.Customer) (model.Customer, error) {
	query := `INSERT INTO customers (id, first_name, last_name, email, contact_number, password_digest, salt, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING ` + customerColumns

	saved, err := scanCustomer(r.db.conn(ctx).QueryRowContext(ctx, query,
		customer.ID, customer.FirstName, customer.LastName, customer.Email, customer.ContactNumber,
		customer.PasswordDigest, customer.Salt, customer.CreatedAt, customer.UpdatedAt,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.Customer{}, model.ErrAlreadyExists
		}
		return model.Customer{}, fmt.Errorf("failed to create customer: %w", err)
	}

	return saved, nil
}

func (r *CustomerRepository) Update(ctx context.Context, customer model.Customer) (model.Customer, error) {
	query := `UPDATE customers
			  SET first_name = $2, last_name = $3, email = $4, password_digest = $5, salt = $6,
			      updated_at = $7, last_login_at = $8
			  WHERE id = $1
			  RETURNING ` + customerColumns

	saved, err := scanCustomer(r.db.conn(ctx).QueryRowContext(ctx, query,
		customer.ID, customer.FirstName, customer.LastName, customer.Email,
		customer.PasswordDigest, customer.Salt, customer.UpdatedAt, customer.LastLoginAt,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Customer{}, model.ErrNotFound
		}
		return model.Customer{}, fmt.Errorf("failed to update customer: %w", err)
	}

	return saved, nil
}
