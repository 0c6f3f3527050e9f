package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler applies a manual status transition to one order.
//
// The order row is locked for the duration of the transaction, so a racing
// scheduled transition either sees the new status (and no-ops) or completes
// first (and this transition is validated against its result). Scheduled jobs
// the transition makes stale are pruned in the same transaction: all of them
// when the order becomes terminal, those at or below the new status otherwise.
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for manual status transitions.
func NewChangeOrderStatusCommandHandler(uowFactory UoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the manual transition and returns the updated order.
// Fails with errs.ObjectNotFoundError if the order does not exist and with
// errs.ValueIsInvalidError if the transition violates the lifecycle rules.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.ChangeStatus(cmd.Status(), cmd.Reason(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	jobRepo := uow.StatusJobRepository()
	if o.Status().IsTerminal() {
		err = jobRepo.DeleteForOrder(ctx, o.ID())
	} else {
		err = jobRepo.DeleteThrough(ctx, o.ID(), o.Status())
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
