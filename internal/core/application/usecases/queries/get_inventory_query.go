package queries

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetInventoryQueryIsNotConstructed = errors.New(
	"GetInventoryQuery must be created via NewGetInventoryQuery constructor",
)

// GetInventoryQuery retrieves the stock level of a single product.
type GetInventoryQuery struct {
	productID int64

	guard guard.ConstructorGuard
}

// NewGetInventoryQuery creates a query for the product with the given id.
// Returns an error if the id is not positive.
func NewGetInventoryQuery(productID int64) (GetInventoryQuery, error) {
	query := GetInventoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if productID <= 0 {
		return GetInventoryQuery{}, errs.NewValueIsInvalidErrorWithCause("productId is invalid",
			fmt.Errorf("%d is not greater than 0", productID))
	}
	query.productID = productID

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetInventoryQueryIsNotConstructed if validation fails.
func (q GetInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryQueryIsNotConstructed)
}

// ProductID returns the id of the product to fetch.
func (q GetInventoryQuery) ProductID() int64 {
	return q.productID
}

// InventoryResponse is the stock read model returned to the API layer.
type InventoryResponse struct {
	ProductID int64 `json:"productId"`
	Stock     int   `json:"stock"`
}
