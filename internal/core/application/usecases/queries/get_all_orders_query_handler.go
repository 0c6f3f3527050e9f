package queries

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists every order with its customer summary.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the full order listing.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the listing. Results are sorted newest first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.created_at,
			c.id,
			c.name,
			c.email,
			c.phone
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		ORDER BY o.created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllOrdersQueryResponse
		var orderID, customerID uuid.UUID
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
