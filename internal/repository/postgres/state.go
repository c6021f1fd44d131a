package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/storefront-server/internal/model"
)

var _ model.StateStore = (*StateRepository)(nil)

type StateRepository struct {
	db *Connection
}

func NewStateRepository(db *Connection) *StateRepository {
	return &StateRepository{
		db: db,
	}
}

func (r *StateRepository) GetByID(ctx context.Context, id uuid.UUID) (model.State, error) {
	var state model.State
	err := r.db.conn(ctx).QueryRowContext(ctx, `SELECT id, name FROM states WHERE id = $1`, id).
		Scan(&state.ID, &state.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.State{}, model.ErrNotFound
		}
		return model.State{}, fmt.Errorf("failed to get state by id: %w", err)
	}

	return state, nil
}

func (r *StateRepository) List(ctx context.Context) ([]model.State, error) {
	rows, err := r.db.conn(ctx).QueryContext(ctx, `SELECT id, name FROM states ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}
	defer rows.Close()

	states := make([]model.State, 0)
	for rows.Next() {
		var state model.State
		if err := rows.Scan(&state.ID, &state.Name); err != nil {
			return nil, fmt.Errorf("failed to scan state: %w", err)
		}
		states = append(states, state)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate states: %w", err)
	}

	return states, nil
}
