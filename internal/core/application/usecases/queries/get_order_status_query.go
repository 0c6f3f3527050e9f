// Package queries contains read-only operations over the order store.
// Implements the query side of the CQRS architecture: handlers read the
// database directly with raw SQL and return flat response structs, bypassing
// the domain aggregates entirely.
package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetOrderStatusQueryIsNotConstructed = errors.New(
		"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
	)
)

// GetOrderStatusQuery retrieves the lifecycle position of a single order:
// its current status plus every status timestamp stamped so far.
type GetOrderStatusQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery creates a query for an order's lifecycle position.
func NewGetOrderStatusQuery(orderID kernel.UUID) (GetOrderStatusQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderStatusQuery{}, err
	}

	return GetOrderStatusQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatusQueryIsNotConstructed if validation fails.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to look up.
func (q GetOrderStatusQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderStatusQueryResponse represents an order's lifecycle position.
// Timestamps holds one entry per status the order has entered, keyed by the
// status's snake_case name (for example "out_for_delivery").
type GetOrderStatusQueryResponse struct {
	OrderID    kernel.UUID
	Status     int
	StatusName string
	Timestamps map[string]time.Time
}
