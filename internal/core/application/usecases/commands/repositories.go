// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence. Every handler locks the orders it mutates for the duration
// of its transaction, so manual, bulk, and scheduled transitions touching the
// same order are serialized.
package commands

import (
	"context"

	"foodorder/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across repository boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StatusJobRepoFactory provides access to the status job repository within a transaction.
	StatusJobRepoFactory interface {
		StatusJobRepository() ports.StatusJobRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions spanning orders and their scheduled transitions.
	// Every lifecycle command uses this: transitions and job-table maintenance
	// must commit or roll back together.
	UoW interface {
		TxManager
		OrderRepoFactory
		StatusJobRepoFactory
	}

	// UoWFactory creates new unit of work instances for lifecycle operations.
	UoWFactory interface {
		Create() UoW
	}
)
