package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct delivery workflow.
//
// State transitions:
//
//	Pending ──> Accepted ──> Preparing ──> Prepared ──> OutForDelivery ──> Delivered
//	    │           │            │             │                │
//	    └───────────┴────────────┴─────────────┴────────────────┴──> Cancelled
//
// The happy path is monotonically non-decreasing; Cancelled is a side exit
// reachable from any non-terminal state. Delivered and Cancelled are terminal.
//
// Statuses are persisted and exposed over the API as their ordinals 1-7.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first placed.
	Pending

	// Accepted indicates the restaurant has accepted the order.
	Accepted

	// Preparing indicates the kitchen has started preparing the order.
	Preparing

	// Prepared indicates the order is ready for pickup by a courier.
	Prepared

	// OutForDelivery indicates the order is on its way to the customer.
	OutForDelivery

	// Delivered indicates the order reached the customer.
	// This is a terminal state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was cancelled before delivery.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns the display name for every Status value,
// including Unknown, to support string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		Accepted:       "ACCEPTED",
		Preparing:      "PREPARING",
		Prepared:       "PREPARED",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// getStatusKeys returns the lowercase timestamp key for every valid Status.
// These keys name the entries of the order's status timestamp map on the wire
// and the timestamp columns in the orders table.
func getStatusKeys() map[Status]string {
	return map[Status]string{
		Pending:        "pending",
		Accepted:       "accepted",
		Preparing:      "preparing",
		Prepared:       "prepared",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// AllStatuses returns the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Accepted, Preparing, Prepared, OutForDelivery, Delivered, Cancelled}
}

// StatusFromInt converts an ordinal received at the boundary into a Status.
// Returns an error for anything outside 1-7.
func StatusFromInt(v int) (Status, error) {
	s := Status(v)
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return s, nil
}

// Validate checks if the Status value is one of the seven recognized statuses.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusKeys()[s]; !ok {
		return errs.NewValueIsOutOfRangeError("status", int(s), int(Pending), int(Cancelled))
	}
	return nil
}

// String returns the display name of the status, e.g. "OUT_FOR_DELIVERY".
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Key returns the lowercase timestamp key of the status, e.g. "out_for_delivery".
// Returns an empty string for invalid statuses.
func (s Status) Key() string {
	return getStatusKeys()[s]
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo checks whether a manual transition from s to target is allowed
// without performing it.
//
// Rules:
//   - No transitions out of a terminal state (Delivered, Cancelled).
//   - Cancelled is reachable from any non-terminal state.
//   - Otherwise the target must not move backwards along the happy path;
//     re-entering the current status is allowed (and is a timestamp no-op).
func (s Status) CanTransitionTo(target Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if s.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is terminal and accepts no further transitions", s),
		)
	}

	if target != Cancelled && target < s {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot move back from %s to %s", s, target),
		)
	}

	return nil
}

// TransitionTo returns the status after a manual transition to target.
// This method is used by Order.ChangeStatus to enforce state transitions.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.CanTransitionTo(target); err != nil {
		return Unknown, err
	}
	return target, nil
}
