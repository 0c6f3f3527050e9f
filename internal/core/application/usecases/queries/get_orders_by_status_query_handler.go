package queries

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersByStatusQueryHandler lists orders in a given status from the database.
// Joins the customer and address reference tables for display data.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for status listings.
// Requires a GORM database connection for query execution.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the listing. Results are sorted newest first.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]GetOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersByStatusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.created_at,
			c.id,
			c.name,
			c.email,
			c.phone,
			a.id,
			a.street,
			a.city,
			a.zip
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		JOIN addresses a ON a.id = o.address_id
		WHERE o.status = ?
		ORDER BY o.created_at DESC
	`, int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrdersByStatusQueryResponse
		var orderID, customerID, addressID uuid.UUID
		var statusOrdinal int
		var createdAt time.Time

		err = rows.Scan(
			&orderID,
			&statusOrdinal,
			&createdAt,
			&customerID,
			&resp.Customer.Name,
			&resp.Customer.Email,
			&resp.Customer.Phone,
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
		if resp.Customer.ID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
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
