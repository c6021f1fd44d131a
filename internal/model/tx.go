package model

import "context"

// Transactor runs fn inside a single database transaction. Stores called with
// the ctx passed to fn take part in that transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
