package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
)

// RestartProgressionCommandHandler re-accepts an order and replaces its pending
// scheduled transitions with the re-acceptance schedule. The move to ACCEPTED
// goes through the regular lifecycle rules, so a terminal or further-advanced
// order cannot be restarted.
type RestartProgressionCommandHandler struct {
	uowFactory UoWFactory
	planner    services.ProgressionPlanner
}

// NewRestartProgressionCommandHandler creates a handler for progression restarts.
func NewRestartProgressionCommandHandler(uowFactory UoWFactory) RestartProgressionCommandHandler {
	return RestartProgressionCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewProgressionPlanner(),
	}
}

// Handle processes the restart and returns the updated order.
func (h *RestartProgressionCommandHandler) Handle(
	ctx context.Context,
	cmd RestartProgressionCommand,
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

	now := time.Now().UTC()
	if err = o.ChangeStatus(order.Accepted, "", now); err != nil {
		return nil, err
	}

	transitions, err := h.planner.PlanReacceptance(o, now)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	jobRepo := uow.StatusJobRepository()
	if err = jobRepo.DeleteForOrder(ctx, o.ID()); err != nil {
		return nil, err
	}

	if err = jobRepo.Add(ctx, transitions); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
