package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetOrdersByCustomerQueryIsNotConstructed = errors.New(
		"GetOrdersByCustomerQuery must be created via NewGetOrdersByCustomerQuery constructor",
	)
)

// GetOrdersByCustomerQuery retrieves a customer's order history, newest first.
type GetOrdersByCustomerQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersByCustomerQuery creates a query for one customer's orders.
func NewGetOrdersByCustomerQuery(customerID kernel.UUID) (GetOrdersByCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetOrdersByCustomerQuery{}, err
	}

	return GetOrdersByCustomerQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByCustomerQueryIsNotConstructed if validation fails.
func (q GetOrdersByCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCustomerQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer whose orders to list.
func (q GetOrdersByCustomerQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetOrdersByCustomerQueryResponse represents one order in a customer's history.
type GetOrdersByCustomerQueryResponse struct {
	OrderID    kernel.UUID
	Status     int
	StatusName string
	CreatedAt  time.Time
	Address    AddressSummaryResponse
}
