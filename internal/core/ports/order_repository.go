package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines persistence operations for the Order aggregate.
type OrderRepository interface {
	// Add saves a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update saves an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by ID.
	// Returns errs.ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order by ID and locks its row for the duration
	// of the current transaction, serializing concurrent writers per order.
	// Returns errs.ObjectNotFoundError if the order does not exist.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
