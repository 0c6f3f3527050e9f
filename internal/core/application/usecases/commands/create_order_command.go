package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to place a new food order.
// Encapsulates the customer, the delivery address, and the referenced items
// and add-ons. The item list may be empty; existence of every reference is
// checked by the handler before anything is persisted.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, addressID, itemIDs, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	addressID  kernel.UUID
	itemIDs    []kernel.UUID
	addonIDs   []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the customer and address identifiers are valid and that no
// item or add-on identifier is a zero value.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	addressID kernel.UUID,
	itemIDs []kernel.UUID,
	addonIDs []kernel.UUID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setAddressID(addressID),
		cmd.setItemIDs(itemIDs),
		cmd.setAddonIDs(addonIDs),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// AddressID returns the identifier of the delivery address.
func (c CreateOrderCommand) AddressID() kernel.UUID {
	return c.addressID
}

// ItemIDs returns the referenced item identifiers.
func (c CreateOrderCommand) ItemIDs() []kernel.UUID {
	return c.itemIDs
}

// AddonIDs returns the referenced add-on identifiers.
func (c CreateOrderCommand) AddonIDs() []kernel.UUID {
	return c.addonIDs
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setAddressID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.addressID = id
	return nil
}

func (c *CreateOrderCommand) setItemIDs(ids []kernel.UUID) error {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.itemIDs = ids
	return nil
}

func (c *CreateOrderCommand) setAddonIDs(ids []kernel.UUID) error {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.addonIDs = ids
	return nil
}
