package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand represents a manual, caller-driven status change
// for a single order, optionally carrying a free-text reason (used for
// cancellation explanations).
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status
	reason  string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// The status ordinal must be one of the seven recognized values (1-7);
// anything else is rejected here, before any storage access.
func NewChangeOrderStatusCommand(orderID kernel.UUID, statusOrdinal int, reason string) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, err
	}
	cmd.orderID = orderID

	status, err := order.StatusFromInt(statusOrdinal)
	if err != nil {
		return ChangeOrderStatusCommand{}, err
	}
	cmd.status = status

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the target status.
func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

// Reason returns the optional transition reason.
func (c ChangeOrderStatusCommand) Reason() string {
	return c.reason
}
