package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetOrderByIDQueryIsNotConstructed = errors.New(
		"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
	)
)

// GetOrderByIDQuery retrieves one order in full: lifecycle state plus the
// joined customer, address, item, and add-on display data.
type GetOrderByIDQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for a single order's details.
func NewGetOrderByIDQuery(orderID kernel.UUID) (GetOrderByIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return GetOrderByIDQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByIDQueryIsNotConstructed if validation fails.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to look up.
func (q GetOrderByIDQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderLineResponse carries the display data of one referenced item or add-on,
// in the position the customer supplied it.
type OrderLineResponse struct {
	ID         kernel.UUID
	Name       string
	PriceCents int
}

// GetOrderByIDQueryResponse represents one order in full detail.
type GetOrderByIDQueryResponse struct {
	OrderID      kernel.UUID
	Status       int
	StatusName   string
	StatusReason string
	CreatedAt    time.Time
	Timestamps   map[string]time.Time
	Customer     CustomerSummaryResponse
	Address      AddressSummaryResponse
	Items        []OrderLineResponse
	Addons       []OrderLineResponse
}
