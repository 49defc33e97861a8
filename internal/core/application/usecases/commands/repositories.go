// Package commands holds the write-side operations of the driver order
// workflow. Every command follows the same shape: validate input, acquire
// the per-order transition gate, run the change inside a unit of work, then
// notify subscribers of the new status.
package commands

import (
	"context"

	"driverops/internal/core/ports"
)

// Handlers depend on these narrow unit of work interfaces rather than the
// full ports.UnitOfWork, so each handler states exactly which repositories
// it touches.
type (
	// TxManager controls the transaction boundary of a single command.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ConfirmationRepoFactory provides access to the confirmation repository
	// within a transaction.
	ConfirmationRepoFactory interface {
		ConfirmationRepository() ports.ConfirmationRepository
	}

	// OrderUoW is the transaction scope for commands that only touch the
	// orders table.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory hands each command invocation its own OrderUoW.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions spanning orders and confirmation records.
	// Used by the confirmation commands, which persist the proof and the
	// status change atomically.
	UoW interface {
		TxManager
		OrderRepoFactory
		ConfirmationRepoFactory
	}

	// UoWFactory hands each command invocation its own UoW.
	UoWFactory interface {
		Create() UoW
	}
)
