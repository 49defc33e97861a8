package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command so concurrent
// commands never share a transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary for a single command. Callers own
// the lifecycle: Begin, do work through the bound repositories, then Commit
// or Rollback.
type UnitOfWork interface {
	// Begin opens the underlying database transaction.
	Begin(ctx context.Context) error

	// Commit makes the pending changes durable.
	Commit(ctx context.Context) error

	// Rollback discards the pending changes. Safe to defer after Begin.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// ConfirmationRepository returns a ConfirmationRepository bound to the current transaction.
	ConfirmationRepository() ConfirmationRepository
}
