// Package refstore holds the reference tables an order points into: customers,
// delivery addresses, menu items, and add-ons. Orders store only identifiers;
// the query layer joins back into these tables for display data.
package refstore

import (
	"github.com/google/uuid"
)

// CustomerDTO represents a registered customer.
type CustomerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);not null"`
	Email string    `gorm:"type:varchar(255);not null"`
	Phone string    `gorm:"type:varchar(32);not null;index"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// AddressDTO represents a delivery address.
type AddressDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Street string    `gorm:"type:varchar(255);not null"`
	City   string    `gorm:"type:varchar(128);not null"`
	Zip    string    `gorm:"type:varchar(16);not null"`
}

// TableName specifies the database table name for address entities.
func (AddressDTO) TableName() string {
	return "addresses"
}

// ItemDTO represents a menu item an order can reference.
type ItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(255);not null"`
	PriceCents int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for menu item entities.
func (ItemDTO) TableName() string {
	return "items"
}

// AddonDTO represents an optional add-on an order can reference.
type AddonDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(255);not null"`
	PriceCents int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for add-on entities.
func (AddonDTO) TableName() string {
	return "addons"
}
