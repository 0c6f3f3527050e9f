package commands

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/pkg/errs"
)

// dueTransitionsBatchSize caps how many scheduled transitions one worker pass
// consumes, keeping the transaction short.
const dueTransitionsBatchSize = 100

// ApplyDueTransitionsCommandHandler consumes due entries from the durable
// schedule and applies them to their orders.
//
// Every consumed job re-reads its order under a row lock and applies the
// transition only if the order is still behind the target: orders that were
// cancelled, delivered, or manually advanced past the target are left alone
// and the stale job is simply discarded. Timestamps are stamped with the
// actual firing time, not the scheduled time.
type ApplyDueTransitionsCommandHandler struct {
	uowFactory UoWFactory
}

// NewApplyDueTransitionsCommandHandler creates a handler for the progression worker.
func NewApplyDueTransitionsCommandHandler(uowFactory UoWFactory) ApplyDueTransitionsCommandHandler {
	return ApplyDueTransitionsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one batch of due transitions and returns how many orders
// it actually moved forward.
func (h *ApplyDueTransitionsCommandHandler) Handle(
	ctx context.Context,
	cmd ApplyDueTransitionsCommand,
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

	jobRepo := uow.StatusJobRepository()
	orderRepo := uow.OrderRepository()

	due, err := jobRepo.DueForUpdate(ctx, time.Now().UTC(), dueTransitionsBatchSize)
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, job := range due {
		o, getErr := orderRepo.GetForUpdate(ctx, job.OrderID())
		if getErr != nil {
			// The order was deleted out from under its schedule; drop the job.
			if errors.Is(getErr, errs.ErrObjectNotFound) {
				if err = jobRepo.Delete(ctx, job.OrderID(), job.Target()); err != nil {
					return 0, err
				}
				continue
			}
			return 0, getErr
		}

		didApply, applyErr := o.ApplyScheduled(job.Target(), time.Now().UTC())
		if applyErr != nil {
			return 0, applyErr
		}

		if didApply {
			if err = orderRepo.Update(ctx, o); err != nil {
				return 0, err
			}
			applied++
		}

		// Consumed either way: a skipped job is stale and must not fire again.
		if err = jobRepo.Delete(ctx, job.OrderID(), job.Target()); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return applied, nil
}
