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

var brandRowColumns = []string{
	"id", "name", "customer_rating", "number_customers_rated",
	"address_id", "flat_building_name", "locality", "city", "pincode", "created_at", "state_id", "state_name",
}

func brandRow(rows *sqlmock.Rows, id uuid.UUID, name string) *sqlmock.Rows {
	return rows.AddRow(
		id.String(), name, 4.5, int64(120),
		uuid.NewString(), "Plot 7", "MIDC", "Mumbai", "400001", time.Now().UTC(), uuid.NewString(), "Maharashtra",
	)
}

func TestBrandRepository_GetByID(t *testing.T) {
	q := `^SELECT b.id, .* FROM brands b JOIN addresses a ON a.id = b.address_id JOIN states st ON st.id = a.state_id WHERE b.id = \$1$`
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewBrandRepository(conn)

		mock.ExpectQuery(q).WithArgs(id).WillReturnRows(brandRow(sqlmock.NewRows(brandRowColumns), id, "Acme"))

		got, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Acme", got.Name)
		assert.InDelta(t, 4.5, got.CustomerRating, 0.001)
		assert.Equal(t, 120, got.NumberCustomersRated)
		assert.Equal(t, "Mumbai", got.Address.City)
		assert.Equal(t, "Maharashtra", got.Address.State.Name)
	})

	t.Run("not found", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewBrandRepository(conn)

		mock.ExpectQuery(q).WithArgs(id).WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestBrandRepository_ListByName(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewBrandRepository(conn)

	rows := sqlmock.NewRows(brandRowColumns)
	brandRow(rows, uuid.New(), "Acme")
	brandRow(rows, uuid.New(), "Acme Kids")

	mock.ExpectQuery(`WHERE position\(lower\(\$1\) in lower\(b.name\)\) > 0 ORDER BY b.name$`).
		WithArgs("acm").WillReturnRows(rows)

	got, err := repo.ListByName(context.Background(), "acm")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Acme Kids", got[1].Name)
}

func TestBrandRepository_ListByCategory(t *testing.T) {
	categoryID := uuid.New()
	q := `JOIN brand_categories bc ON bc.brand_id = b.id WHERE bc.category_id = \$1 ORDER BY b.name$`

	t.Run("empty", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewBrandRepository(conn)

		mock.ExpectQuery(q).WithArgs(categoryID).WillReturnRows(sqlmock.NewRows(brandRowColumns))

		got, err := repo.ListByCategory(context.Background(), categoryID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("db error", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewBrandRepository(conn)

		mock.ExpectQuery(q).WithArgs(categoryID).WillReturnError(errors.New("db down"))

		_, err := repo.ListByCategory(context.Background(), categoryID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list brands by category")
	})
}

func TestCategoryRepository(t *testing.T) {
	id := uuid.New()

	t.Run("get by id", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewCategoryRepository(conn)

		mock.ExpectQuery(`^SELECT id, name FROM categories WHERE id = \$1$`).WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(id.String(), "Shoes"))

		got, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Shoes", got.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewCategoryRepository(conn)

		mock.ExpectQuery(`^SELECT id, name FROM categories WHERE id = \$1$`).WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("ordered by name", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewCategoryRepository(conn)

		mock.ExpectQuery(`^SELECT id, name FROM categories ORDER BY name$`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
				AddRow(uuid.NewString(), "Books").
				AddRow(uuid.NewString(), "Shoes"))

		got, err := repo.ListOrderedByName(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Books", got[0].Name)
	})

	t.Run("by brand", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewCategoryRepository(conn)

		mock.ExpectQuery(`WHERE bc.brand_id = \$1 ORDER BY c.name$`).WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(uuid.NewString(), "Shoes"))

		got, err := repo.ListByBrand(context.Background(), id)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestItemRepository(t *testing.T) {
	categoryID, brandID := uuid.New(), uuid.New()
	cols := []string{"id", "name", "price", "brand_id", "category_id"}

	t.Run("by category", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewItemRepository(conn)

		mock.ExpectQuery(`WHERE category_id = \$1 ORDER BY name$`).WithArgs(categoryID).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(uuid.NewString(), "Runner", int64(249900), brandID.String(), categoryID.String()))

		got, err := repo.ListByCategory(context.Background(), categoryID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(249900), got[0].Price)
		assert.Equal(t, brandID, got[0].BrandID)
	})

	t.Run("by category and brand", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewItemRepository(conn)

		mock.ExpectQuery(`WHERE category_id = \$1 AND brand_id = \$2 ORDER BY name$`).
			WithArgs(categoryID, brandID).
			WillReturnRows(sqlmock.NewRows(cols))

		got, err := repo.ListByCategoryAndBrand(context.Background(), categoryID, brandID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
