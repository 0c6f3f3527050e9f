package queries

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCurrentOrderQueryHandler resolves a phone number to its customer's most
// recent order, with full detail joined in.
type GetCurrentOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetCurrentOrderQueryHandler creates a handler for current-order lookups.
// Requires a GORM database connection for query execution.
func NewGetCurrentOrderQueryHandler(db *gorm.DB) GetCurrentOrderQueryHandler {
	return GetCurrentOrderQueryHandler{db: db}
}

// Handle executes the lookup. An unknown phone number or a customer with no
// orders yields Found=false, not an error.
func (h GetCurrentOrderQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentOrderQuery,
) (GetCurrentOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCurrentOrderQueryResponse{}, err
	}

	orderID, found, err := h.latestOrderID(ctx, query.Phone())
	if err != nil {
		return GetCurrentOrderQueryResponse{}, err
	}
	if !found {
		return GetCurrentOrderQueryResponse{}, nil
	}

	detailQuery, err := NewGetOrderByIDQuery(orderID)
	if err != nil {
		return GetCurrentOrderQueryResponse{}, err
	}

	detail, err := NewGetOrderByIDQueryHandler(h.db).Handle(ctx, detailQuery)
	if err != nil {
		// The order vanished between the two statements; report an empty result.
		if errors.Is(err, errs.ErrObjectNotFound) {
			return GetCurrentOrderQueryResponse{}, nil
		}
		return GetCurrentOrderQueryResponse{}, err
	}

	return GetCurrentOrderQueryResponse{Found: true, Order: detail}, nil
}

func (h GetCurrentOrderQueryHandler) latestOrderID(
	ctx context.Context,
	phone string,
) (kernel.UUID, bool, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT o.id
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE c.phone = ?
		ORDER BY o.created_at DESC
		LIMIT 1
	`, phone).Rows()
	if err != nil {
		return kernel.UUID{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return kernel.UUID{}, false, err
		}
		return kernel.UUID{}, false, nil
	}

	var id uuid.UUID
	if err = rows.Scan(&id); err != nil {
		return kernel.UUID{}, false, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, false, err
	}

	return orderID, true, nil
}
