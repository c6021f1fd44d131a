package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/storefront-server/internal/model"
)

var _ model.CategoryStore = (*CategoryRepository)(nil)

type CategoryRepository struct {
	db *Connection
}

func NewCategoryRepository(db *Connection) *CategoryRepository {
	return &CategoryRepository{
		db: db,
	}
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Category, error) {
	var category model.Category
	err := r.db.conn(ctx).QueryRowContext(ctx, `SELECT id, name FROM categories WHERE id = $1`, id).
		Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Category{}, model.ErrNotFound
		}
		return model.Category{}, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

func (r *CategoryRepository) ListOrderedByName(ctx context.Context) ([]model.Category, error) {
	return r.list(ctx, `SELECT id, name FROM categories ORDER BY name`)
}

func (r *CategoryRepository) ListByBrand(ctx context.Context, brandID uuid.UUID) ([]model.Category, error) {
	query := `SELECT c.id, c.name
			  FROM categories c
			  JOIN brand_categories bc ON bc.category_id = c.id
			  WHERE bc.brand_id = $1
			  ORDER BY c.name`

	return r.list(ctx, query, brandID)
}

func (r *CategoryRepository) list(ctx context.Context, query string, args ...any) ([]model.Category, error) {
	rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]model.Category, 0)
	for rows.Next() {
		var category model.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}
