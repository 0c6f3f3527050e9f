// Package jobrepo persists the durable schedule of automatic status
// transitions. Each row is one fire-once job: at run_at the order moves to
// target, provided it has not been cancelled or advanced past it in the
// meantime.
package jobrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// StatusJobDTO represents a scheduled status transition row.
// The (order_id, target) primary key guarantees at most one pending job per
// order and target status.
type StatusJobDTO struct {
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Target  int       `gorm:"primaryKey"`
	RunAt   time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for scheduled transition rows.
func (StatusJobDTO) TableName() string {
	return "order_status_jobs"
}

func fromDomain(transition order.ScheduledTransition) StatusJobDTO {
	return StatusJobDTO{
		OrderID: transition.OrderID().Bytes(),
		Target:  int(transition.Target()),
		RunAt:   transition.RunAt(),
	}
}

func toDomain(dto StatusJobDTO) (order.ScheduledTransition, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.ScheduledTransition{}, err
	}

	return order.NewScheduledTransition(orderID, order.Status(dto.Target), dto.RunAt)
}
