package commands

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var (
	ErrApplyDueTransitionsCommandIsNotConstructed = errors.New(
		"ApplyDueTransitionsCommand must be created via NewApplyDueTransitionsCommand constructor",
	)
)

// ApplyDueTransitionsCommand represents one pass of the progression worker:
// consume every scheduled transition that has become due and apply those that
// are still valid. Parameterless; the handler works against the current time.
type ApplyDueTransitionsCommand struct {
	guard guard.ConstructorGuard
}

// NewApplyDueTransitionsCommand creates a command to process due transitions.
func NewApplyDueTransitionsCommand() ApplyDueTransitionsCommand {
	return ApplyDueTransitionsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrApplyDueTransitionsCommandIsNotConstructed if validation fails.
func (c ApplyDueTransitionsCommand) Validate() error {
	return c.guard.Validate(ErrApplyDueTransitionsCommandIsNotConstructed)
}
