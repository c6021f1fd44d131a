package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dtroode/storefront-server/internal/model"
)

type txKey struct{}

var _ model.Transactor = (*Connection)(nil)

// WithinTx runs fn in a transaction and commits when it returns nil. It rolls
// back on error or panic; panics are re-raised. Nested calls reuse the outer
// transaction.
func (c *Connection) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", cerr)
		}
	}()

	err = fn(context.WithValue(ctx, txKey{}, tx))
	return err
}
