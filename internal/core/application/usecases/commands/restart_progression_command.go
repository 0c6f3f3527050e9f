package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrRestartProgressionCommandIsNotConstructed = errors.New(
		"RestartProgressionCommand must be created via NewRestartProgressionCommand constructor",
	)
)

// RestartProgressionCommand represents a request to re-accept an order and
// restart its automatic progression on the alternate (re-acceptance) schedule.
type RestartProgressionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRestartProgressionCommand creates a command to restart an order's progression.
func NewRestartProgressionCommand(orderID kernel.UUID) (RestartProgressionCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RestartProgressionCommand{}, err
	}

	return RestartProgressionCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRestartProgressionCommandIsNotConstructed if validation fails.
func (c RestartProgressionCommand) Validate() error {
	return c.guard.Validate(ErrRestartProgressionCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to restart.
func (c RestartProgressionCommand) OrderID() kernel.UUID {
	return c.orderID
}
