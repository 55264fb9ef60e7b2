package ports

import (
	"context"

	"storefront/internal/core/domain/model/inventory"
)

// InventoryRepository defines the persistence contract for per-product stock
// levels.
type InventoryRepository interface {
	// Add persists a stock row for a product that has none yet.
	Add(ctx context.Context, aggregate *inventory.Inventory) error

	// Update persists a changed stock level.
	Update(ctx context.Context, aggregate *inventory.Inventory) error

	// Get retrieves the stock level for a product.
	Get(ctx context.Context, productID int64) (*inventory.Inventory, error)
}
