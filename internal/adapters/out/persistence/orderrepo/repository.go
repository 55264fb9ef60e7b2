package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// session provides the database handle, returning the active transaction when
// the owning unit of work has one open.
type session interface {
	DB() *gorm.DB
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	session session
}

// NewGormOrderRepository creates a new GORM order repository bound to a session.
func NewGormOrderRepository(session session) *GormOrderRepository {
	return &GormOrderRepository{session: session}
}

// Add saves a new order with its line items and assigns the generated id
// back to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.session.DB().WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if aggregate.ID() == 0 {
		return aggregate.AssignID(dto.ID)
	}
	return nil
}

// Update saves changes to an existing order. Line items are immutable after
// creation, so only the order row itself is updated.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.session.DB().WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{"status": dto.Status})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves an order by id, including its line items.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("orderId is invalid",
			fmt.Errorf("%d is not greater than 0", id))
	}

	var dto OrderDTO
	if err := r.session.DB().WithContext(ctx).Preload("Details").First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInCreatedStatusOlderThan retrieves orders still in Created status
// created before cutoff.
func (r *GormOrderRepository) GetAllInCreatedStatusOlderThan(
	ctx context.Context,
	cutoff time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.session.DB().WithContext(ctx).
		Preload("Details").
		Find(&dtos, "status = ? AND created_at < ?", int(order.Created), cutoff).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
