package order

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a placed food order. It is the aggregate root that manages
// the order lifecycle from placement through kitchen progress to delivery or
// cancellation.
//
// Order maintains these invariants:
//   - Must reference a valid customer and delivery address
//   - Status transitions follow the rules defined on Status
//   - Each status timestamp is stamped once, the first time the status is
//     entered, and never overwritten
//   - Can only be created through NewOrder or RestoreOrder
//
// Item references are kept in the order the customer supplied them. An empty
// item list is permitted; reference existence is the caller's concern and is
// checked before construction by the application layer.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	addressID  kernel.UUID
	itemIDs    []kernel.UUID
	addonIDs   []kernel.UUID

	status       Status
	timestamps   map[Status]time.Time
	statusReason string
	createdAt    time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status.
// The pending timestamp and createdAt are both stamped with now.
//
// All identifiers must be valid UUIDs; itemIDs and addonIDs may be empty but
// must not contain zero-value entries.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	addressID kernel.UUID,
	itemIDs []kernel.UUID,
	addonIDs []kernel.UUID,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		timestamps:    map[Status]time.Time{Pending: now},
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setAddressID(addressID),
		o.setItemIDs(itemIDs),
		o.setAddonIDs(addonIDs),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence.
// Unlike NewOrder it accepts an arbitrary valid status, the full timestamp map
// and the stored reason. Used by repositories only.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	addressID kernel.UUID,
	itemIDs []kernel.UUID,
	addonIDs []kernel.UUID,
	status Status,
	timestamps map[Status]time.Time,
	statusReason string,
	createdAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		status:        status,
		timestamps:    make(map[Status]time.Time, len(timestamps)),
		statusReason:  statusReason,
		createdAt:     createdAt,
		isConstructed: true,
	}
	for s, ts := range timestamps {
		o.timestamps[s] = ts
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setAddressID(addressID),
		o.setItemIDs(itemIDs),
		o.setAddonIDs(addonIDs),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// AddressID returns the identifier of the delivery address.
func (o *Order) AddressID() kernel.UUID {
	return o.addressID
}

// ItemIDs returns the referenced item identifiers in the order they were supplied.
func (o *Order) ItemIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(o.itemIDs))
	copy(out, o.itemIDs)
	return out
}

// AddonIDs returns the referenced add-on identifiers.
func (o *Order) AddonIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(o.addonIDs))
	copy(out, o.addonIDs)
	return out
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// StatusReason returns the free-text reason attached to the last transition
// that supplied one, typically a cancellation explanation.
func (o *Order) StatusReason() string {
	return o.statusReason
}

// CreatedAt returns the creation instant of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// StatusTimestamps returns a copy of the per-status entry timestamps.
// Only statuses the order has entered have an entry.
func (o *Order) StatusTimestamps() map[Status]time.Time {
	out := make(map[Status]time.Time, len(o.timestamps))
	for s, ts := range o.timestamps {
		out[s] = ts
	}
	return out
}

// EnteredAt returns the instant the order first entered the given status.
func (o *Order) EnteredAt(s Status) (time.Time, bool) {
	ts, ok := o.timestamps[s]
	return ts, ok
}

// ChangeStatus applies a manual, caller-driven transition to target.
//
// The transition is validated against the state machine rules on Status:
// terminal orders reject all transitions, backward moves are rejected, and
// Cancelled is reachable from any non-terminal state. The timestamp for target
// is stamped with now only if the order has never entered target before, so
// repeating the same transition is idempotent on the timestamp. A non-empty
// reason replaces the stored status reason.
func (o *Order) ChangeStatus(target Status, reason string, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.stamp(newStatus, now)
	if reason != "" {
		o.statusReason = reason
	}
	return nil
}

// OverrideStatus applies an administrative status override regardless of the
// order's prior status. Used by the bulk update operation, which by contract
// modifies every existing order it is given. The target must still be one of
// the seven recognized statuses, and timestamps remain first-wins.
func (o *Order) OverrideStatus(target Status, reason string, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}

	o.status = target
	o.stamp(target, now)
	if reason != "" {
		o.statusReason = reason
	}
	return nil
}

// ApplyScheduled applies a scheduled automatic transition to target.
//
// The transition is applied only if the order is still behind the target on
// the happy path: a terminal order, or one already at or past the target
// (advanced manually in the meantime), makes the scheduled transition a no-op.
// Returns true when the order was modified.
func (o *Order) ApplyScheduled(target Status, now time.Time) (bool, error) {
	if err := target.Validate(); err != nil {
		return false, err
	}

	if o.status.IsTerminal() || target <= o.status {
		return false, nil
	}

	o.status = target
	o.stamp(target, now)
	return true, nil
}

// stamp records the first entry into s. Later entries into the same status
// keep the original timestamp.
func (o *Order) stamp(s Status, now time.Time) {
	if _, ok := o.timestamps[s]; !ok {
		o.timestamps[s] = now
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setAddressID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.addressID = id
	return nil
}

func (o *Order) setItemIDs(ids []kernel.UUID) error {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	o.itemIDs = make([]kernel.UUID, len(ids))
	copy(o.itemIDs, ids)
	return nil
}

func (o *Order) setAddonIDs(ids []kernel.UUID) error {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	o.addonIDs = make([]kernel.UUID, len(ids))
	copy(o.addonIDs, ids)
	return nil
}
