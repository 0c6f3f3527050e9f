package queries

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersByCustomerQueryHandler lists one customer's orders from the database.
type GetOrdersByCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByCustomerQueryHandler creates a handler for customer order history.
// Requires a GORM database connection for query execution.
func NewGetOrdersByCustomerQueryHandler(db *gorm.DB) GetOrdersByCustomerQueryHandler {
	return GetOrdersByCustomerQueryHandler{db: db}
}

// Handle executes the listing. Results are sorted newest first; an unknown
// customer yields an empty slice, not an error.
func (h GetOrdersByCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByCustomerQuery,
) ([]GetOrdersByCustomerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersByCustomerQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.created_at,
			a.id,
			a.street,
			a.city,
			a.zip
		FROM orders o
		JOIN addresses a ON a.id = o.address_id
		WHERE o.customer_id = ?
		ORDER BY o.created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrdersByCustomerQueryResponse
		var orderID, addressID uuid.UUID
		var statusOrdinal int
		var createdAt time.Time

		err = rows.Scan(
			&orderID,
			&statusOrdinal,
			&createdAt,
			&addressID,
			&resp.Address.Street,
			&resp.Address.City,
			&resp.Address.Zip,
		)
		if err != nil {
			return nil, err
		}

		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if resp.Address.ID, err = kernel.UUIDFromBytes(addressID[:]); err != nil {
			return nil, err
		}

		status, statusErr := order.StatusFromInt(statusOrdinal)
		if statusErr != nil {
			return nil, statusErr
		}
		resp.Status = statusOrdinal
		resp.StatusName = status.String()
		resp.CreatedAt = createdAt

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
