package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders together
// with their line items.
type OrderRepository interface {
	// Add persists a new order aggregate with its details and assigns the
	// database-generated id back to the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier, including its
	// line items.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAllInCreatedStatusOlderThan retrieves orders still in Created status
	// whose creation time is before cutoff. Used by the stale-order job.
	GetAllInCreatedStatusOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
