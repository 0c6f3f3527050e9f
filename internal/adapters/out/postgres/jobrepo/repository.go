package jobrepo

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStatusJobRepository implements StatusJobRepository using GORM.
type GormStatusJobRepository struct {
	db *gorm.DB
}

// NewGormStatusJobRepository creates a new GORM status job repository.
func NewGormStatusJobRepository(db *gorm.DB) *GormStatusJobRepository {
	return &GormStatusJobRepository{db: db}
}

// Add enqueues the given scheduled transitions.
func (r *GormStatusJobRepository) Add(ctx context.Context, transitions []order.ScheduledTransition) error {
	if len(transitions) == 0 {
		return nil
	}

	dtos := make([]StatusJobDTO, 0, len(transitions))
	for _, transition := range transitions {
		if err := transition.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(transition))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// DueForUpdate retrieves up to limit transitions due at or before now, oldest
// first. Due rows are locked with SKIP LOCKED so concurrent workers divide the
// backlog instead of blocking on each other. Callers must run inside a
// transaction for the lock to have any effect.
func (r *GormStatusJobRepository) DueForUpdate(
	ctx context.Context,
	now time.Time,
	limit int,
) ([]order.ScheduledTransition, error) {
	var dtos []StatusJobDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("run_at <= ?", now).
		Order("run_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	transitions := make([]order.ScheduledTransition, 0, len(dtos))
	for _, dto := range dtos {
		transition, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		transitions = append(transitions, transition)
	}

	return transitions, nil
}

// Delete removes the job for the given order and target status.
// Removing an absent job is not an error.
func (r *GormStatusJobRepository) Delete(ctx context.Context, orderID kernel.UUID, target order.Status) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("order_id = ? AND target = ?", orderID.Bytes(), int(target)).
		Delete(&StatusJobDTO{}).Error
}

// DeleteForOrder removes every pending job for the given order.
func (r *GormStatusJobRepository) DeleteForOrder(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Delete(&StatusJobDTO{}).Error
}

// DeleteThrough removes every pending job for the order whose target is at or
// below the given status.
func (r *GormStatusJobRepository) DeleteThrough(ctx context.Context, orderID kernel.UUID, status order.Status) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("order_id = ? AND target <= ?", orderID.Bytes(), int(status)).
		Delete(&StatusJobDTO{}).Error
}
