// Package storage persists transactions for the transaction service. Two
// implementations exist: a SQLite repository for real deployments and an
// in-memory store for tests and dev mode.
package storage

import (
	"context"
	"errors"

	"fintrack/internal/core"
)

// ErrNotFound is returned when no transaction exists for the requested id.
var ErrNotFound = errors.New("transaction not found")

// Store is the persistence port the service handlers depend on.
type Store interface {
	// List returns transactions in insertion order, honoring offset/limit.
	// A limit <= 0 means no limit.
	List(ctx context.Context, offset, limit int) ([]core.Transaction, error)
	Get(ctx context.Context, id int64) (core.Transaction, error)
	Create(ctx context.Context, in core.TransactionInput) (core.Transaction, error)
	Update(ctx context.Context, id int64, patch core.TransactionPatch) (core.Transaction, error)
	Delete(ctx context.Context, id int64) error
	Close() error
}
