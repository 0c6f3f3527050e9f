package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
)

// ReferenceValidator confirms that the entities an order references exist.
// Side-effect-free; a missing reference is a client error, not a transient
// fault, so implementations report it without retrying.
type ReferenceValidator interface {
	// Validate checks the customer, the address, and each item in turn and
	// returns an errs.InvalidReferenceError naming the first missing
	// reference, or nil when every reference exists.
	Validate(ctx context.Context, customerID, addressID kernel.UUID, itemIDs []kernel.UUID) error
}
