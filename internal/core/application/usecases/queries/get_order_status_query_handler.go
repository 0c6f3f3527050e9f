package queries

import (
	"context"
	"database/sql"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderStatusQueryHandler retrieves an order's current status and the
// timestamps of every status it has passed through.
type GetOrderStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusQueryHandler creates a handler for order status lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderStatusQueryHandler(db *gorm.DB) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns errs.ObjectNotFoundError if the order does not exist.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			pending_at,
			accepted_at,
			preparing_at,
			prepared_at,
			out_for_delivery_at,
			delivered_at,
			cancelled_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderStatusQueryResponse{}, err
		}
		return GetOrderStatusQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	var statusOrdinal int
	columns := make([]sql.NullTime, len(order.AllStatuses()))

	scanArgs := make([]any, 0, len(columns)+1)
	scanArgs = append(scanArgs, &statusOrdinal)
	for i := range columns {
		scanArgs = append(scanArgs, &columns[i])
	}

	if err = rows.Scan(scanArgs...); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	status, err := order.StatusFromInt(statusOrdinal)
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	timestamps := make(map[string]time.Time)
	for i, s := range order.AllStatuses() {
		if columns[i].Valid {
			timestamps[s.Key()] = columns[i].Time
		}
	}

	return GetOrderStatusQueryResponse{
		OrderID:    query.OrderID(),
		Status:     statusOrdinal,
		StatusName: status.String(),
		Timestamps: timestamps,
	}, nil
}
