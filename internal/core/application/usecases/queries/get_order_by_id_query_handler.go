package queries

import (
	"context"
	"database/sql"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves one order with all joined display data.
// Runs three statements: the order row with customer and address, then the
// item lines, then the add-on lines, each preserving the customer's ordering.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order detail lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns errs.ObjectNotFoundError if the order does not exist.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (GetOrderByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	resp, err := h.fetchOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	resp.Items, err = h.fetchLines(ctx, query.OrderID(), `
		SELECT i.id, i.name, i.price_cents
		FROM order_items oi
		JOIN items i ON i.id = oi.item_id
		WHERE oi.order_id = ?
		ORDER BY oi.position
	`)
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	resp.Addons, err = h.fetchLines(ctx, query.OrderID(), `
		SELECT ad.id, ad.name, ad.price_cents
		FROM order_addons oa
		JOIN addons ad ON ad.id = oa.addon_id
		WHERE oa.order_id = ?
		ORDER BY oa.position
	`)
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderByIDQueryHandler) fetchOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (GetOrderByIDQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.status,
			o.status_reason,
			o.created_at,
			o.pending_at,
			o.accepted_at,
			o.preparing_at,
			o.prepared_at,
			o.out_for_delivery_at,
			o.delivered_at,
			o.cancelled_at,
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
		WHERE o.id = ?
	`, orderID.Bytes()).Rows()
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderByIDQueryResponse{}, err
		}
		return GetOrderByIDQueryResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
	}

	var resp GetOrderByIDQueryResponse
	var statusOrdinal int
	var createdAt time.Time
	var customerID, addressID uuid.UUID
	columns := make([]sql.NullTime, len(order.AllStatuses()))

	scanArgs := []any{&statusOrdinal, &resp.StatusReason, &createdAt}
	for i := range columns {
		scanArgs = append(scanArgs, &columns[i])
	}
	scanArgs = append(scanArgs,
		&customerID, &resp.Customer.Name, &resp.Customer.Email, &resp.Customer.Phone,
		&addressID, &resp.Address.Street, &resp.Address.City, &resp.Address.Zip,
	)

	if err = rows.Scan(scanArgs...); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	if resp.Customer.ID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	if resp.Address.ID, err = kernel.UUIDFromBytes(addressID[:]); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	status, err := order.StatusFromInt(statusOrdinal)
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	timestamps := make(map[string]time.Time)
	for i, s := range order.AllStatuses() {
		if columns[i].Valid {
			timestamps[s.Key()] = columns[i].Time
		}
	}

	resp.OrderID = orderID
	resp.Status = statusOrdinal
	resp.StatusName = status.String()
	resp.CreatedAt = createdAt
	resp.Timestamps = timestamps

	return resp, nil
}

func (h GetOrderByIDQueryHandler) fetchLines(
	ctx context.Context,
	orderID kernel.UUID,
	query string,
) ([]OrderLineResponse, error) {
	lines := make([]OrderLineResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(query, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderLineResponse
		var lineID uuid.UUID

		if err = rows.Scan(&lineID, &line.Name, &line.PriceCents); err != nil {
			return nil, err
		}

		if line.ID, err = kernel.UUIDFromBytes(lineID[:]); err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
