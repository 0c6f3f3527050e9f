package services

import (
	"time"

	"foodorder/internal/core/domain/model/order"
)

// ProgressionPlanner builds the sequence of scheduled automatic transitions for
// an order. It is a stateless domain service: the application layer decides
// when to plan and persists the result in the job table.
//
// A plan never contains steps the order has already reached. Scheduled times
// are whole-minute offsets from the supplied base time with no jitter.
type ProgressionPlanner struct{}

// NewProgressionPlanner creates a ProgressionPlanner.
func NewProgressionPlanner() ProgressionPlanner {
	return ProgressionPlanner{}
}

// PlanCreation returns the automatic progression for a freshly placed order,
// relative to base (the order's creation time).
func (p ProgressionPlanner) PlanCreation(o *order.Order, base time.Time) ([]order.ScheduledTransition, error) {
	return p.plan(o, order.DefaultSchedule(), base)
}

// PlanReacceptance returns the alternate progression used after an order's
// automatic progression is restarted, relative to base (the restart time).
func (p ProgressionPlanner) PlanReacceptance(o *order.Order, base time.Time) ([]order.ScheduledTransition, error) {
	return p.plan(o, order.ReacceptanceSchedule(), base)
}

func (p ProgressionPlanner) plan(
	o *order.Order,
	schedule []order.ScheduleStep,
	base time.Time,
) ([]order.ScheduledTransition, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	transitions := make([]order.ScheduledTransition, 0, len(schedule))
	for _, step := range schedule {
		// Steps the order has already reached would be dropped by the worker
		// anyway; don't enqueue them in the first place.
		if step.Target <= o.Status() {
			continue
		}

		t, err := order.NewScheduledTransition(o.ID(), step.Target, base.Add(step.After))
		if err != nil {
			return nil, err
		}
		transitions = append(transitions, t)
	}

	return transitions, nil
}
