package queries

import (
	"context"
	"fmt"

	"storefront/internal/pkg/result"

	"gorm.io/gorm"
)

// GetInventoryQueryHandler reads the stock level of a single product.
type GetInventoryQueryHandler struct {
	db *gorm.DB
}

// NewGetInventoryQueryHandler creates a handler for stock lookups.
// Requires a GORM database connection for query execution.
func NewGetInventoryQueryHandler(db *gorm.DB) GetInventoryQueryHandler {
	return GetInventoryQueryHandler{db: db}
}

// Handle executes the lookup. A product without an inventory row is a
// NotFound failure, never a Go error.
func (h GetInventoryQueryHandler) Handle(
	ctx context.Context,
	query GetInventoryQuery,
) (result.ValueResult[InventoryResponse], error) {
	if err := query.Validate(); err != nil {
		return result.ValueResult[InventoryResponse]{}, err
	}

	var response InventoryResponse

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			stock
		FROM inventory
		WHERE product_id = ?
	`, query.ProductID()).Rows()
	if err != nil {
		return result.ValueResult[InventoryResponse]{}, err
	}
	defer rows.Close()

	found := false
	for rows.Next() {
		if err = rows.Scan(&response.ProductID, &response.Stock); err != nil {
			return result.ValueResult[InventoryResponse]{}, err
		}
		found = true
	}
	if err = rows.Err(); err != nil {
		return result.ValueResult[InventoryResponse]{}, err
	}

	if !found {
		return result.Failure[InventoryResponse](result.NotFound(
			fmt.Sprintf("product %d not found", query.ProductID()))), nil
	}

	return result.Value(response), nil
}
