package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
		"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
	)
)

// GetOrdersByStatusQuery retrieves all orders currently in a given status,
// newest first, with customer and address display data joined in.
type GetOrdersByStatusQuery struct { //nolint:recvcheck //using for validation
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for orders in one status.
// The status ordinal must be one of the seven recognized values (1-7);
// anything else is rejected here, before any SQL runs.
func NewGetOrdersByStatusQuery(statusOrdinal int) (GetOrdersByStatusQuery, error) {
	status, err := order.StatusFromInt(statusOrdinal)
	if err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return GetOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByStatusQueryIsNotConstructed if validation fails.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the status to filter by.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// CustomerSummaryResponse carries the customer display data joined into order
// listings.
type CustomerSummaryResponse struct {
	ID    kernel.UUID
	Name  string
	Email string
	Phone string
}

// AddressSummaryResponse carries the delivery address display data joined into
// order listings.
type AddressSummaryResponse struct {
	ID     kernel.UUID
	Street string
	City   string
	Zip    string
}

// GetOrdersByStatusQueryResponse represents one order in a status listing.
type GetOrdersByStatusQueryResponse struct {
	OrderID    kernel.UUID
	Status     int
	StatusName string
	CreatedAt  time.Time
	Customer   CustomerSummaryResponse
	Address    AddressSummaryResponse
}
