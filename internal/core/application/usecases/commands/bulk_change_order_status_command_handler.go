package commands

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/pkg/errs"
)

// BulkChangeOrderStatusCommandHandler applies the same status override to a
// batch of orders within a single transaction.
//
// Orders that do not exist are silently skipped; the returned count is the
// number of orders actually found and updated. A storage failure rolls back
// the whole batch.
type BulkChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewBulkChangeOrderStatusCommandHandler creates a handler for bulk status overrides.
func NewBulkChangeOrderStatusCommandHandler(uowFactory UoWFactory) BulkChangeOrderStatusCommandHandler {
	return BulkChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bulk override and returns the number of orders modified.
func (h *BulkChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd BulkChangeOrderStatusCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	jobRepo := uow.StatusJobRepository()
	now := time.Now().UTC()

	modified := 0
	for _, id := range cmd.OrderIDs() {
		o, err := orderRepo.GetForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			return 0, err
		}

		if err = o.OverrideStatus(cmd.Status(), cmd.Reason(), now); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}

		if o.Status().IsTerminal() {
			err = jobRepo.DeleteForOrder(ctx, o.ID())
		} else {
			err = jobRepo.DeleteThrough(ctx, o.ID(), o.Status())
		}
		if err != nil {
			return 0, err
		}

		modified++
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return modified, nil
}
