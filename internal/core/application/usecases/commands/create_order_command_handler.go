package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Confirms every referenced entity exists, then persists the order in PENDING
// status and enqueues its automatic progression schedule within one
// transaction, so a failed write leaves neither an order nor stray jobs.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, validator)
//	cmd, _ := NewCreateOrderCommand(customerID, addressID, itemIDs, nil)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	validator  ports.ReferenceValidator
	planner    services.ProgressionPlanner
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory for transactional persistence and a ReferenceValidator
// for existence checks on the customer, address, and items.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	validator ports.ReferenceValidator,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
		planner:    services.NewProgressionPlanner(),
	}
}

// Handle processes the order placement command.
// Fails with errs.InvalidReferenceError before touching storage if any
// referenced entity is missing. On success the returned order is in PENDING
// status with its pending timestamp stamped at creation.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.validator.Validate(ctx, cmd.CustomerID(), cmd.AddressID(), cmd.ItemIDs()); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.CustomerID(),
		cmd.AddressID(),
		cmd.ItemIDs(),
		cmd.AddonIDs(),
		now,
	)
	if err != nil {
		return nil, err
	}

	transitions, err := h.planner.PlanCreation(newOrder, now)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.StatusJobRepository().Add(ctx, transitions); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
