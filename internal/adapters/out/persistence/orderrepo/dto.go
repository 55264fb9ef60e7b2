// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// rows. Line items are persisted as child rows owned by the order: they are
// created with it and removed with it, never independently.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The id is database-assigned; details are a owned association loaded and
// saved together with the order row.
type OrderDTO struct {
	ID         int64            `gorm:"primaryKey;autoIncrement"`
	CustomerID int64            `gorm:"index"`
	Status     int              `gorm:"index"`
	CreatedAt  time.Time        `gorm:"index"`
	Details    []OrderDetailDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderDetailDTO represents a single line item row. It exists only as part
// of its parent order.
type OrderDetailDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	OrderID   int64 `gorm:"index"`
	ProductID int64
	Quantity  int
	UnitPrice int64
}

// TableName specifies the database table name for order line items.
func (OrderDetailDTO) TableName() string {
	return "order_details"
}

// fromDomain converts an order domain aggregate to its database representation.
// A fresh aggregate carries id 0, which lets the database assign one on insert.
func fromDomain(aggregate *order.Order) OrderDTO {
	details := aggregate.Details()
	detailDTOs := make([]OrderDetailDTO, 0, len(details))
	for _, detail := range details {
		detailDTOs = append(detailDTOs, OrderDetailDTO{
			OrderID:   aggregate.ID(),
			ProductID: detail.ProductID(),
			Quantity:  detail.Quantity(),
			UnitPrice: detail.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID(),
		CustomerID: aggregate.CustomerID(),
		Status:     int(aggregate.Status()),
		CreatedAt:  aggregate.CreatedAt(),
		Details:    detailDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	details := make([]order.Detail, 0, len(dto.Details))
	for _, detailDTO := range dto.Details {
		detail, err := order.NewDetail(detailDTO.ProductID, detailDTO.Quantity, detailDTO.UnitPrice)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	return order.RestoreOrder(dto.ID, dto.CustomerID, order.Status(dto.Status), dto.CreatedAt, details)
}
