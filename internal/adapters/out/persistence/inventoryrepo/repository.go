package inventoryrepo

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// session provides the database handle, returning the active transaction when
// the owning unit of work has one open.
type session interface {
	DB() *gorm.DB
}

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	session session
}

// NewGormInventoryRepository creates a new GORM inventory repository bound to
// a session.
func NewGormInventoryRepository(session session) *GormInventoryRepository {
	return &GormInventoryRepository{session: session}
}

// Add persists a stock row for a product that has none yet.
func (r *GormInventoryRepository) Add(ctx context.Context, aggregate *inventory.Inventory) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.session.DB().WithContext(ctx).Create(&dto).Error
}

// Update persists a changed stock level. The single-column update keeps a
// legitimate stock of zero from being skipped as a zero value.
func (r *GormInventoryRepository) Update(ctx context.Context, aggregate *inventory.Inventory) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.session.DB().WithContext(ctx).
		Model(&InventoryDTO{}).
		Where("product_id = ?", dto.ProductID).
		Update("stock", dto.Stock)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves the stock level for a product.
func (r *GormInventoryRepository) Get(ctx context.Context, productID int64) (*inventory.Inventory, error) {
	if productID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("productId is invalid",
			fmt.Errorf("%d is not greater than 0", productID))
	}

	var dto InventoryDTO
	if err := r.session.DB().WithContext(ctx).First(&dto, "product_id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", productID)
		}
		return nil, err
	}

	return toDomain(dto)
}
