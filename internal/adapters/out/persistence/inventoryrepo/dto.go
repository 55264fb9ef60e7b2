// Package inventoryrepo persists per-product stock levels. There is exactly
// one row per product, keyed by the product id.
package inventoryrepo

import (
	"storefront/internal/core/domain/model/inventory"
)

// InventoryDTO represents the database row for a product's stock level.
type InventoryDTO struct {
	ProductID int64 `gorm:"primaryKey"`
	Stock     int
}

// TableName specifies the database table name for stock levels.
func (InventoryDTO) TableName() string {
	return "inventory"
}

// fromDomain converts a stock aggregate to its database representation.
func fromDomain(aggregate *inventory.Inventory) InventoryDTO {
	return InventoryDTO{
		ProductID: aggregate.ProductID(),
		Stock:     aggregate.Stock(),
	}
}

// toDomain converts a database row to a stock aggregate.
func toDomain(dto InventoryDTO) (*inventory.Inventory, error) {
	return inventory.NewInventory(dto.ProductID, dto.Stock)
}
