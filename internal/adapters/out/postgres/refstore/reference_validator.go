package refstore

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReferenceValidator implements ports.ReferenceValidator against the
// reference tables.
type GormReferenceValidator struct {
	db *gorm.DB
}

// NewGormReferenceValidator creates a validator backed by the given connection.
func NewGormReferenceValidator(db *gorm.DB) *GormReferenceValidator {
	return &GormReferenceValidator{db: db}
}

// Validate checks the customer, the address, and each item in turn and returns
// an errs.InvalidReferenceError naming the first missing reference.
func (v *GormReferenceValidator) Validate(
	ctx context.Context,
	customerID, addressID kernel.UUID,
	itemIDs []kernel.UUID,
) error {
	if err := v.exists(ctx, &CustomerDTO{}, "customer", customerID); err != nil {
		return err
	}

	if err := v.exists(ctx, &AddressDTO{}, "address", addressID); err != nil {
		return err
	}

	for _, itemID := range itemIDs {
		if err := v.exists(ctx, &ItemDTO{}, "item", itemID); err != nil {
			return err
		}
	}

	return nil
}

func (v *GormReferenceValidator) exists(ctx context.Context, model any, kind string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	var count int64
	err := v.db.WithContext(ctx).Model(model).Where("id = ?", id.Bytes()).Count(&count).Error
	if err != nil {
		return err
	}

	if count == 0 {
		return errs.NewInvalidReferenceError(kind, id.String())
	}

	return nil
}
