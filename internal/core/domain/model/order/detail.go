package order

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
)

// ErrDetailIsNotConstructed is returned when a Detail instance was not created
// through the NewDetail factory method.
var ErrDetailIsNotConstructed = errors.New("Detail must be created via NewDetail constructor")

// Detail is a line item of an Order. It is a value object owned entirely by
// its parent order: details have no independent lifecycle or repository and
// are created, persisted, and removed only together with the order.
//
// Detail follows these invariants:
//   - Product ID must be positive
//   - Quantity must be positive
//   - Unit price is expressed in minor currency units and must not be negative
type Detail struct {
	// productID references the inventory row this line reserves stock from
	productID int64

	// quantity is the number of units ordered (must be positive)
	quantity int

	// unitPrice is the price per unit in minor currency units
	unitPrice int64

	// isConstructed ensures the detail was created via NewDetail
	isConstructed bool
}

// NewDetail creates a new Detail instance with validation.
//
// Parameters:
//   - productID: Identifier of the ordered product (must be positive)
//   - quantity: Number of units (must be positive)
//   - unitPrice: Price per unit in minor currency units (must not be negative)
//
// Returns:
//   - Detail: The created line item if all validations pass
//   - error: Validation error if any parameter is invalid
func NewDetail(productID int64, quantity int, unitPrice int64) (Detail, error) {
	detail := Detail{isConstructed: true}

	if err := errors.Join(
		detail.setProductID(productID),
		detail.setQuantity(quantity),
		detail.setUnitPrice(unitPrice),
	); err != nil {
		return Detail{}, err
	}

	return detail, nil
}

// Validate ensures the Detail instance was properly constructed through NewDetail.
func (d Detail) Validate() error {
	if !d.isConstructed {
		return ErrDetailIsNotConstructed
	}

	return nil
}

// ProductID returns the ordered product's identifier.
func (d Detail) ProductID() int64 {
	return d.productID
}

// Quantity returns the number of units ordered.
func (d Detail) Quantity() int {
	return d.quantity
}

// UnitPrice returns the price per unit in minor currency units.
func (d Detail) UnitPrice() int64 {
	return d.unitPrice
}

// Subtotal returns the line total: quantity multiplied by unit price.
func (d Detail) Subtotal() int64 {
	return int64(d.quantity) * d.unitPrice
}

// setProductID validates and sets the referenced product.
// This is a private method used only during construction.
func (d *Detail) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productId is invalid",
			fmt.Errorf("%d is not greater than 0", productID))
	}
	d.productID = productID
	return nil
}

// setQuantity validates and sets the ordered quantity.
// Quantity must be positive (greater than 0).
// This is a private method used only during construction.
func (d *Detail) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	d.quantity = quantity
	return nil
}

// setUnitPrice validates and sets the price per unit.
// Zero is allowed to support promotional items.
// This is a private method used only during construction.
func (d *Detail) setUnitPrice(unitPrice int64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice is invalid",
			fmt.Errorf("%d is less than 0", unitPrice))
	}
	d.unitPrice = unitPrice
	return nil
}
