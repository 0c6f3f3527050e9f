package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrBulkChangeOrderStatusCommandIsNotConstructed = errors.New(
		"BulkChangeOrderStatusCommand must be created via NewBulkChangeOrderStatusCommand constructor",
	)
)

// BulkChangeOrderStatusCommand represents an administrative status override
// applied to a batch of orders in one operation. Unlike the single-order
// transition it bypasses the lifecycle rules: every existing order in the
// batch is set to the target status regardless of its prior state.
type BulkChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID
	status   order.Status
	reason   string

	guard guard.ConstructorGuard
}

// NewBulkChangeOrderStatusCommand creates a bulk status override command.
// Requires a non-empty list of order identifiers and a status ordinal in 1-7.
func NewBulkChangeOrderStatusCommand(
	orderIDs []kernel.UUID,
	statusOrdinal int,
	reason string,
) (BulkChangeOrderStatusCommand, error) {
	cmd := BulkChangeOrderStatusCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if len(orderIDs) == 0 {
		return BulkChangeOrderStatusCommand{}, errs.NewValueIsRequiredError("orderIds")
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return BulkChangeOrderStatusCommand{}, err
		}
	}
	cmd.orderIDs = orderIDs

	status, err := order.StatusFromInt(statusOrdinal)
	if err != nil {
		return BulkChangeOrderStatusCommand{}, err
	}
	cmd.status = status

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrBulkChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c BulkChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrBulkChangeOrderStatusCommandIsNotConstructed)
}

// OrderIDs returns the identifiers of the orders to update.
func (c BulkChangeOrderStatusCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// Status returns the target status.
func (c BulkChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

// Reason returns the optional transition reason.
func (c BulkChangeOrderStatusCommand) Reason() string {
	return c.reason
}
