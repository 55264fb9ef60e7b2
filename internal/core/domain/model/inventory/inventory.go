// Package inventory provides the per-product stock aggregate. Stock is
// reserved when an order is placed, released when it is cancelled, and
// increased by restocking.
package inventory

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
)

var (
	// ErrInventoryIsNotConstructed is returned when an Inventory instance was
	// not created through the NewInventory factory method.
	ErrInventoryIsNotConstructed = errors.New("Inventory must be created via NewInventory constructor")

	// ErrInsufficientStock is returned by Reserve when the requested quantity
	// exceeds the available stock. Callers translate it into the
	// INSUFFICIENT_STOCK business failure.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Inventory is the stock level of a single product. ProductID is the
// aggregate's identity; there is exactly one row per product.
type Inventory struct {
	productID     int64
	stock         int
	isConstructed bool
}

// NewInventory creates an Inventory with validation. It is used both for
// fresh rows and for rows restored from persistence.
//
// Returns a validation error when productID is not positive or stock is
// negative.
func NewInventory(productID int64, stock int) (*Inventory, error) {
	inv := &Inventory{isConstructed: true}

	if err := errors.Join(
		inv.setProductID(productID),
		inv.setStock(stock),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

// Validate ensures the Inventory instance was properly constructed through
// NewInventory.
func (i *Inventory) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInventoryIsNotConstructed
	}

	return nil
}

// ProductID returns the product this stock level belongs to.
func (i *Inventory) ProductID() int64 {
	return i.productID
}

// Stock returns the number of units currently available.
func (i *Inventory) Stock() int {
	return i.stock
}

// Reserve removes quantity units from stock for a new order.
//
// Returns:
//   - nil on success
//   - a validation error when quantity is not positive
//   - ErrInsufficientStock (wrapped with the requested and available
//     quantities) when stock is too low; stock is left unchanged
func (i *Inventory) Reserve(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}

	if quantity > i.stock {
		return fmt.Errorf("%w: requested %d, available %d", ErrInsufficientStock, quantity, i.stock)
	}

	i.stock -= quantity
	return nil
}

// Release returns quantity units to stock, undoing a reservation when an
// order is cancelled.
func (i *Inventory) Release(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}

	i.stock += quantity
	return nil
}

// Restock adds quantity units of new stock.
func (i *Inventory) Restock(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}

	i.stock += quantity
	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}

func (i *Inventory) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productId is invalid",
			fmt.Errorf("%d is not greater than 0", productID))
	}
	i.productID = productID
	return nil
}

func (i *Inventory) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock is invalid",
			fmt.Errorf("%d is less than 0", stock))
	}
	i.stock = stock
	return nil
}
