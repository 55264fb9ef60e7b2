package queries

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/result"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order with its details from the
// database. The read model is scanned straight from SQL rows; no aggregate
// is reconstructed.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. A missing order is a NotFound failure, never
// a Go error.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (result.ValueResult[OrderResponse], error) {
	if err := query.Validate(); err != nil {
		return result.ValueResult[OrderResponse]{}, err
	}

	var response OrderResponse

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Rows()
	if err != nil {
		return result.ValueResult[OrderResponse]{}, err
	}
	defer rows.Close()

	found := false
	for rows.Next() {
		var status int
		var createdAt time.Time

		if err = rows.Scan(&response.ID, &response.CustomerID, &status, &createdAt); err != nil {
			return result.ValueResult[OrderResponse]{}, err
		}

		response.Status = order.Status(status).String()
		response.CreatedAt = createdAt.UTC()
		found = true
	}
	if err = rows.Err(); err != nil {
		return result.ValueResult[OrderResponse]{}, err
	}

	if !found {
		return result.Failure[OrderResponse](result.NotFound(
			fmt.Sprintf("order %d not found", query.OrderID()))), nil
	}

	details, err := h.loadDetails(ctx, query.OrderID())
	if err != nil {
		return result.ValueResult[OrderResponse]{}, err
	}
	response.Details = details
	for _, detail := range details {
		response.Total += detail.Subtotal
	}

	return result.Value(response), nil
}

func (h GetOrderQueryHandler) loadDetails(ctx context.Context, orderID int64) ([]OrderDetailResponse, error) {
	details := make([]OrderDetailResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price
		FROM order_details
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var detail OrderDetailResponse

		if err = rows.Scan(&detail.ProductID, &detail.Quantity, &detail.UnitPrice); err != nil {
			return nil, err
		}

		detail.Subtotal = int64(detail.Quantity) * detail.UnitPrice
		details = append(details, detail)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}
