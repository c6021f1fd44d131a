package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/storefront-server/internal/model"
)

var _ model.ItemStore = (*ItemRepository)(nil)

type ItemRepository struct {
	db *Connection
}

func NewItemRepository(db *Connection) *ItemRepository {
	return &ItemRepository{
		db: db,
	}
}

func (r *ItemRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Item, error) {
	query := `SELECT id, name, price, brand_id, category_id FROM items
			  WHERE category_id = $1
			  ORDER BY name`

	return r.list(ctx, query, categoryID)
}

func (r *ItemRepository) ListByCategoryAndBrand(ctx context.Context, categoryID, brandID uuid.UUID) ([]model.Item, error) {
	query := `SELECT id, name, price, brand_id, category_id FROM items
			  WHERE category_id = $1 AND brand_id = $2
			  ORDER BY name`

	return r.list(ctx, query, categoryID, brandID)
}

func (r *ItemRepository) list(ctx context.Context, query string, args ...any) ([]model.Item, error) {
	rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := make([]model.Item, 0)
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.BrandID, &item.CategoryID); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	return items, nil
}
