package order

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
)

// ErrScheduledTransitionIsNotConstructed is returned when a ScheduledTransition
// was not created through NewScheduledTransition.
var ErrScheduledTransitionIsNotConstructed = errors.New(
	"ScheduledTransition must be created via NewScheduledTransition",
)

// ScheduleStep is one entry of an automatic progression schedule: the target
// status and its delay relative to the schedule's base time.
type ScheduleStep struct {
	Target Status
	After  time.Duration
}

// DefaultSchedule returns the automatic progression applied to a freshly
// created order, relative to its creation time.
func DefaultSchedule() []ScheduleStep {
	return []ScheduleStep{
		{Target: Accepted, After: 2 * time.Minute},
		{Target: Preparing, After: 5 * time.Minute},
		{Target: Prepared, After: 18 * time.Minute},
		{Target: OutForDelivery, After: 20 * time.Minute},
		{Target: Delivered, After: 40 * time.Minute},
	}
}

// ReacceptanceSchedule returns the alternate progression used when an order is
// re-accepted and its automatic progression is restarted, relative to the
// restart time. The order is moved to Accepted immediately, so the schedule
// starts at Preparing.
func ReacceptanceSchedule() []ScheduleStep {
	return []ScheduleStep{
		{Target: Preparing, After: 3 * time.Minute},
		{Target: Prepared, After: 16 * time.Minute},
		{Target: OutForDelivery, After: 18 * time.Minute},
		{Target: Delivered, After: 38 * time.Minute},
	}
}

// ScheduledTransition is a durable, fire-once automatic transition: at RunAt
// the order identified by OrderID should move to Target, provided it is still
// behind Target at that moment. Persisted in a time-ordered job table and
// consumed by the progression worker.
type ScheduledTransition struct {
	orderID kernel.UUID
	target  Status
	runAt   time.Time

	isConstructed bool
}

// NewScheduledTransition creates a validated ScheduledTransition.
func NewScheduledTransition(orderID kernel.UUID, target Status, runAt time.Time) (ScheduledTransition, error) {
	if err := orderID.Validate(); err != nil {
		return ScheduledTransition{}, err
	}
	if err := target.Validate(); err != nil {
		return ScheduledTransition{}, err
	}

	return ScheduledTransition{
		orderID:       orderID,
		target:        target,
		runAt:         runAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the transition was created through NewScheduledTransition.
func (t ScheduledTransition) Validate() error {
	if !t.isConstructed {
		return ErrScheduledTransitionIsNotConstructed
	}
	return nil
}

// OrderID returns the identifier of the order this transition applies to.
func (t ScheduledTransition) OrderID() kernel.UUID {
	return t.orderID
}

// Target returns the status the transition moves the order to.
func (t ScheduledTransition) Target() Status {
	return t.target
}

// RunAt returns the instant the transition becomes due.
func (t ScheduledTransition) RunAt() time.Time {
	return t.runAt
}
