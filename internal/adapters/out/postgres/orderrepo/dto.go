// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Each lifecycle status has its own nullable timestamp column; a column is set
// the first time the order enters that status and never overwritten.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	AddressID    uuid.UUID `gorm:"type:uuid;not null"`
	Status       int       `gorm:"type:int;not null;index"`
	StatusReason string    `gorm:"type:varchar(512)"`

	PendingAt        *time.Time
	AcceptedAt       *time.Time
	PreparingAt      *time.Time
	PreparedAt       *time.Time
	OutForDeliveryAt *time.Time
	DeliveredAt      *time.Time
	CancelledAt      *time.Time

	CreatedAt time.Time `gorm:"not null;index"`

	Items  []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Addons []OrderAddonDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO links an order to a referenced menu item.
// Position preserves the order the customer supplied the items in.
type OrderItemDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int       `gorm:"primaryKey"`
	ItemID   uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName specifies the database table name for order item rows.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderAddonDTO links an order to a referenced add-on.
type OrderAddonDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int       `gorm:"primaryKey"`
	AddonID  uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName specifies the database table name for order add-on rows.
func (OrderAddonDTO) TableName() string {
	return "order_addons"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps the per-status timestamp map onto the nullable timestamp columns.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(aggregate.ItemIDs()))
	for i, id := range aggregate.ItemIDs() {
		items = append(items, OrderItemDTO{
			OrderID:  orderID,
			Position: i,
			ItemID:   id.Bytes(),
		})
	}

	addons := make([]OrderAddonDTO, 0, len(aggregate.AddonIDs()))
	for i, id := range aggregate.AddonIDs() {
		addons = append(addons, OrderAddonDTO{
			OrderID:  orderID,
			Position: i,
			AddonID:  id.Bytes(),
		})
	}

	return OrderDTO{
		ID:               orderID,
		CustomerID:       aggregate.CustomerID().Bytes(),
		AddressID:        aggregate.AddressID().Bytes(),
		Status:           int(aggregate.Status()),
		StatusReason:     aggregate.StatusReason(),
		PendingAt:        timestampColumn(aggregate, order.Pending),
		AcceptedAt:       timestampColumn(aggregate, order.Accepted),
		PreparingAt:      timestampColumn(aggregate, order.Preparing),
		PreparedAt:       timestampColumn(aggregate, order.Prepared),
		OutForDeliveryAt: timestampColumn(aggregate, order.OutForDelivery),
		DeliveredAt:      timestampColumn(aggregate, order.Delivered),
		CancelledAt:      timestampColumn(aggregate, order.Cancelled),
		CreatedAt:        aggregate.CreatedAt(),
		Items:            items,
		Addons:           addons,
	}
}

func timestampColumn(aggregate *order.Order, s order.Status) *time.Time {
	if ts, ok := aggregate.EnteredAt(s); ok {
		return &ts
	}
	return nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the timestamp map using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	addressID, err := kernel.UUIDFromBytes(dto.AddressID[:])
	if err != nil {
		return nil, err
	}

	itemIDs := make([]kernel.UUID, 0, len(dto.Items))
	for _, item := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(item.ItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		itemIDs = append(itemIDs, itemID)
	}

	addonIDs := make([]kernel.UUID, 0, len(dto.Addons))
	for _, addon := range dto.Addons {
		addonID, addonErr := kernel.UUIDFromBytes(addon.AddonID[:])
		if addonErr != nil {
			return nil, addonErr
		}
		addonIDs = append(addonIDs, addonID)
	}

	timestamps := make(map[order.Status]time.Time)
	for s, column := range map[order.Status]*time.Time{
		order.Pending:        dto.PendingAt,
		order.Accepted:       dto.AcceptedAt,
		order.Preparing:      dto.PreparingAt,
		order.Prepared:       dto.PreparedAt,
		order.OutForDelivery: dto.OutForDeliveryAt,
		order.Delivered:      dto.DeliveredAt,
		order.Cancelled:      dto.CancelledAt,
	} {
		if column != nil {
			timestamps[s] = *column
		}
	}

	return order.RestoreOrder(
		id,
		customerID,
		addressID,
		itemIDs,
		addonIDs,
		order.Status(dto.Status),
		timestamps,
		dto.StatusReason,
		dto.CreatedAt,
	)
}
