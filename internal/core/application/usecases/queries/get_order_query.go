// Package queries contains read-only operations backed by raw SQL read
// models. Queries bypass the aggregates and the unit of work: they read
// straight from the base connection and never open a transactional scope.
package queries

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its details.
//
// Example:
//
//	query, err := NewGetOrderQuery(101)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	res, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if order, valueErr := res.Value(); valueErr == nil {
//	    fmt.Printf("order %d has %d lines\n", order.ID, len(order.Details))
//	}
type GetOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the order with the given id.
// Returns an error if the id is not positive.
func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsInvalidErrorWithCause("orderId is invalid",
			fmt.Errorf("%d is not greater than 0", orderID))
	}
	query.orderID = orderID

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the id of the order to fetch.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

// OrderDetailResponse is one order line of the read model.
type OrderDetailResponse struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
	UnitPrice int64 `json:"unitPrice"`
	Subtotal  int64 `json:"subtotal"`
}

// OrderResponse is the order read model returned to the API layer.
type OrderResponse struct {
	ID         int64                 `json:"id"`
	CustomerID int64                 `json:"customerId"`
	Status     string                `json:"status"`
	CreatedAt  time.Time             `json:"createdAt"`
	Details    []OrderDetailResponse `json:"details"`
	Total      int64                 `json:"total"`
}
