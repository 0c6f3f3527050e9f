package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// StatusJobRepository defines persistence operations for the durable schedule
// of automatic status transitions. Jobs are keyed by (order, target status):
// an order has at most one pending job per target status.
type StatusJobRepository interface {
	// Add enqueues the given scheduled transitions.
	Add(ctx context.Context, transitions []order.ScheduledTransition) error

	// DueForUpdate retrieves up to limit transitions due at or before now,
	// oldest first, locking their rows so concurrent workers never consume
	// the same job twice (locked rows are skipped, not waited on).
	DueForUpdate(ctx context.Context, now time.Time, limit int) ([]order.ScheduledTransition, error)

	// Delete removes the job for the given order and target status.
	// Removing an absent job is not an error.
	Delete(ctx context.Context, orderID kernel.UUID, target order.Status) error

	// DeleteForOrder removes every pending job for the given order.
	// Called when an order reaches a terminal state.
	DeleteForOrder(ctx context.Context, orderID kernel.UUID) error

	// DeleteThrough removes every pending job for the order whose target is at
	// or below the given status. Called when a manual transition advances the
	// order past scheduled targets.
	DeleteThrough(ctx context.Context, orderID kernel.UUID, status order.Status) error
}
